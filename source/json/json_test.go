package json_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rx "github.com/codesimply/rx"
	rxjson "github.com/codesimply/rx/source/json"
)

func TestDecodeValue_PreservesKeyOrder(t *testing.T) {
	v, err := rxjson.DecodeValue([]byte(`{"zeta":1,"alpha":2,"mid":{"b":1,"a":2}}`))
	require.NoError(t, err)
	require.Equal(t, rx.KindMap, v.Kind())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, v.Keys())

	mid, ok := v.Field("mid")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, mid.Keys())
}

func TestDecodeValue_NumberTextPreserved(t *testing.T) {
	v, err := rxjson.DecodeValue([]byte(`{"price":1.50,"qty":10000000000000001}`))
	require.NoError(t, err)
	price, _ := v.Field("price")
	require.Equal(t, rx.KindNumber, price.Kind())
	assert.Equal(t, "1.50", price.Number().String())
	qty, _ := v.Field("qty")
	assert.Equal(t, "10000000000000001", qty.Number().String())
}

func TestDecodeValue_Scalars(t *testing.T) {
	cases := map[string]rx.ValueKind{
		`null`: rx.KindNull,
		`true`: rx.KindBool,
		`"hi"`: rx.KindString,
		`3`:    rx.KindNumber,
		`[]`:   rx.KindSeq,
		`{}`:   rx.KindMap,
	}
	for src, kind := range cases {
		v, err := rxjson.DecodeValue([]byte(src))
		require.NoError(t, err, src)
		assert.Equal(t, kind, v.Kind(), src)
	}
}

func TestDecodeValue_NestedSequence(t *testing.T) {
	v, err := rxjson.DecodeValue([]byte(`[1, ["a", null], {"k": false}]`))
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	inner := v.Index(1)
	require.Equal(t, rx.KindSeq, inner.Kind())
	assert.Equal(t, "a", inner.Index(0).String())
	assert.True(t, inner.Index(1).IsNull())
}

func TestDecodeValue_Errors(t *testing.T) {
	_, err := rxjson.DecodeValue([]byte(`{"broken":`))
	require.Error(t, err)

	_, err = rxjson.DecodeValue(nil)
	require.Error(t, err)
}

func TestDecodeReader(t *testing.T) {
	v, err := rxjson.DecodeReader(strings.NewReader(`{"a":[1,2]}`))
	require.NoError(t, err)
	a, ok := v.Field("a")
	require.True(t, ok)
	assert.Equal(t, 2, a.Len())
}
