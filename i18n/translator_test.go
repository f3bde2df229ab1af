package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("type-mismatch", nil); msg == "type-mismatch" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("type-mismatch", nil); msg == "type mismatch" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_DataInterpolation(t *testing.T) {
	msg := T("missing", map[string]string{"field": "name"})
	if msg != `missing required field "name"` {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := T("unknown-code", nil); msg != "unknown-code" {
		t.Fatalf("unknown codes should pass through, got %q", msg)
	}
}
