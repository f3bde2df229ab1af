package rx_test

import (
	"encoding/json"
	"reflect"
	"testing"

	rx "github.com/codesimply/rx"
)

func TestValue_MapKeepsInsertionOrder(t *testing.T) {
	v := rx.NewMap(
		rx.Entry{Key: "b", Value: rx.NewString("1")},
		rx.Entry{Key: "a", Value: rx.NewString("2")},
		rx.Entry{Key: "c", Value: rx.NewString("3")},
	)
	if got := v.Keys(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("unexpected key order: %v", got)
	}
	fv, ok := v.Field("a")
	if !ok || fv.String() != "2" {
		t.Fatalf("lookup failed: %v %v", fv, ok)
	}
}

func TestValue_MapDuplicateKeyLastWins(t *testing.T) {
	v := rx.NewMap(
		rx.Entry{Key: "a", Value: rx.NewString("old")},
		rx.Entry{Key: "b", Value: rx.NewBool(true)},
		rx.Entry{Key: "a", Value: rx.NewString("new")},
	)
	if v.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", v.Len())
	}
	if got := v.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected key order: %v", got)
	}
	fv, _ := v.Field("a")
	if fv.String() != "new" {
		t.Fatalf("expected last value to win, got %q", fv.String())
	}
}

func TestValue_ZeroIsNull(t *testing.T) {
	var v rx.Value
	if !v.IsNull() || v.Kind() != rx.KindNull {
		t.Fatalf("zero Value should be null, got %v", v.Kind())
	}
}

func TestFromAny_SortsMapKeys(t *testing.T) {
	v, err := rx.FromAny(map[string]any{"z": 1, "a": 2, "m": 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := v.Keys(); !reflect.DeepEqual(got, []string{"a", "m", "z"}) {
		t.Fatalf("keys not sorted: %v", got)
	}
}

func TestFromAny_Scalars(t *testing.T) {
	cases := []struct {
		in   any
		kind rx.ValueKind
	}{
		{nil, rx.KindNull},
		{true, rx.KindBool},
		{"x", rx.KindString},
		{json.Number("1.5"), rx.KindNumber},
		{float64(2), rx.KindNumber},
		{int(7), rx.KindNumber},
		{[]any{1, "two"}, rx.KindSeq},
	}
	for _, c := range cases {
		v, err := rx.FromAny(c.in)
		if err != nil {
			t.Fatalf("FromAny(%v): %v", c.in, err)
		}
		if v.Kind() != c.kind {
			t.Fatalf("FromAny(%v): kind = %v, want %v", c.in, v.Kind(), c.kind)
		}
	}
	if _, err := rx.FromAny(struct{}{}); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}

func TestFromAny_NumberTextPreserved(t *testing.T) {
	v, err := rx.FromAny(json.Number("0.1000"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Number().String() != "0.1000" {
		t.Fatalf("number text not preserved: %q", v.Number().String())
	}
}
