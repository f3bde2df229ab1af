package rx_test

import (
	"errors"
	"testing"

	rx "github.com/codesimply/rx"
)

func noopValidator(n *rx.SchemaNode, v rx.Value, path rx.Path) rx.Failures { return nil }

func TestRegistry_BuiltinsCannotBeShadowed(t *testing.T) {
	reg := rx.NewRegistry(rx.AllowShadowing())
	err := reg.Register("record", noopValidator)
	var dup *rx.DuplicateTypeError
	if !errors.As(err, &dup) || dup.Name != "record" {
		t.Fatalf("expected DuplicateTypeError for builtin, got %v", err)
	}
}

func TestRegistry_DuplicateCustomRejectedByDefault(t *testing.T) {
	reg := rx.NewRegistry()
	if err := reg.Register("tag:example.com,2026:thing", noopValidator); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	err := reg.Register("tag:example.com,2026:thing", noopValidator)
	var dup *rx.DuplicateTypeError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateTypeError, got %v", err)
	}
}

func TestRegistry_AllowShadowing(t *testing.T) {
	reg := rx.NewRegistry(rx.AllowShadowing())
	if err := reg.Register("tag:example.com,2026:thing", noopValidator); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := reg.Register("tag:example.com,2026:thing", noopValidator); err != nil {
		t.Fatalf("shadowing should be permitted: %v", err)
	}
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	reg := rx.NewRegistry()
	reg.MustRegister("any", noopValidator)
}
