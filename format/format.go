// Package format provides ready-made custom scalar validators for
// common string formats. Each constructor returns an rx.ValidatorFn
// that the caller registers under an identifier of their choosing;
// Register installs the whole set under canonical namespaced tags.
package format

import (
	"time"

	"github.com/google/uuid"

	rx "github.com/codesimply/rx"
)

// Canonical identifiers used by Register. The tag-URI namespace keeps
// them from ever colliding with built-ins or other custom types.
const (
	TagDate    = "tag:codesimply.com,2026:rx/format/date"
	TagRFC3339 = "tag:codesimply.com,2026:rx/format/rfc3339"
	TagUUID    = "tag:codesimply.com,2026:rx/format/uuid"
)

// Register installs every format validator under its canonical tag.
func Register(reg *rx.Registry) error {
	for tag, fn := range map[string]rx.ValidatorFn{
		TagDate:    Date(),
		TagRFC3339: TimeRFC3339(),
		TagUUID:    UUID(),
	} {
		if err := reg.Register(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// Date returns a validator accepting strings in YYYY-MM-DD form.
func Date() rx.ValidatorFn {
	return stringFormat("date in YYYY-MM-DD form", func(s string) bool {
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})
}

// TimeRFC3339 returns a validator accepting RFC3339 timestamps.
func TimeRFC3339() rx.ValidatorFn {
	return stringFormat("RFC3339 timestamp", func(s string) bool {
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	})
}

// UUID returns a validator accepting canonical UUID strings.
func UUID() rx.ValidatorFn {
	return stringFormat("UUID", func(s string) bool {
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// stringFormat builds a leaf validator over string values. Null is
// reported as a mismatch too; schemas that allow absence express it
// with an optional record field or a one-of branch.
func stringFormat(desc string, ok func(string) bool) rx.ValidatorFn {
	return func(n *rx.SchemaNode, v rx.Value, path rx.Path) rx.Failures {
		if v.Kind() != rx.KindString {
			return rx.Failures{{
				Path:     path,
				Kind:     rx.FailTypeMismatch,
				Expected: n.Type,
				Message:  "expected a " + desc + ", got " + v.Kind().String(),
			}}
		}
		if !ok(v.String()) {
			return rx.Failures{{
				Path:     path,
				Kind:     rx.FailTypeMismatch,
				Expected: n.Type,
				Message:  "not a " + desc,
			}}
		}
		return nil
	}
}
