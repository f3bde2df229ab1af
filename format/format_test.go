package format_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rx "github.com/codesimply/rx"
	"github.com/codesimply/rx/format"
	rxjson "github.com/codesimply/rx/source/json"
)

func compileWith(t *testing.T, reg *rx.Registry, schema string) *rx.Schema {
	t.Helper()
	doc, err := rxjson.DecodeValue([]byte(schema))
	require.NoError(t, err)
	s, err := rx.Compile(doc, reg)
	require.NoError(t, err)
	return s
}

func TestDate(t *testing.T) {
	reg := rx.NewRegistry()
	reg.MustRegister("reindeer-date", format.Date())
	s := compileWith(t, reg, `{"type":"reindeer-date"}`)

	assert.True(t, s.Validate(rx.NewString("1823-12-24")).Valid)

	res := s.Validate(rx.NewString("12/24/1939"))
	require.Len(t, res.Failures, 1)
	assert.Equal(t, rx.FailTypeMismatch, res.Failures[0].Kind)
	assert.Equal(t, "reindeer-date", res.Failures[0].Expected)

	res = s.Validate(rx.NewBool(true))
	require.Len(t, res.Failures, 1)
	assert.Equal(t, rx.FailTypeMismatch, res.Failures[0].Kind)
}

func TestTimeRFC3339(t *testing.T) {
	reg := rx.NewRegistry()
	reg.MustRegister("stamp", format.TimeRFC3339())
	s := compileWith(t, reg, `{"type":"stamp"}`)

	assert.True(t, s.Validate(rx.NewString("2026-08-29T12:00:00Z")).Valid)
	assert.False(t, s.Validate(rx.NewString("2026-08-29")).Valid)
}

func TestUUID(t *testing.T) {
	reg := rx.NewRegistry()
	reg.MustRegister("id", format.UUID())
	s := compileWith(t, reg, `{"type":"id"}`)

	assert.True(t, s.Validate(rx.NewString(uuid.NewString())).Valid)
	assert.False(t, s.Validate(rx.NewString("not-a-uuid")).Valid)
}

func TestRegister_CanonicalTags(t *testing.T) {
	reg := rx.NewRegistry()
	require.NoError(t, format.Register(reg))

	s := compileWith(t, reg, `{
		"type": "record",
		"required": {
			"id":   {"type": "`+format.TagUUID+`"},
			"when": {"type": "`+format.TagDate+`"}
		}
	}`)
	doc, err := rxjson.DecodeValue([]byte(`{"id":"` + uuid.NewString() + `","when":"2026-08-29"}`))
	require.NoError(t, err)
	assert.True(t, s.Validate(doc).Valid)

	// Registering twice collides on every tag.
	require.Error(t, format.Register(reg))
}
