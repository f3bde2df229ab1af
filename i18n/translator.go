package i18n

import "fmt"

// Translator retrieves localized messages for failure codes. data
// provides optional metadata to embed in the message (for example,
// "field" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	if t.lang == "ja" {
		switch code {
		case "type-mismatch":
			return "型が一致しません"
		case "missing":
			return "必須フィールドがありません"
		case "unexpected":
			return "未知のフィールドです"
		case "no-alternative":
			return "どの候補にも一致しません"
		case "wrong-length":
			return "要素数が一致しません"
		case "too-small":
			return "小さすぎます"
		case "too-big":
			return "大きすぎます"
		case "too-short":
			return "短すぎます"
		case "too-long":
			return "長すぎます"
		case "not-equal":
			return "値が一致しません"
		}
		return code
	}
	switch code {
	case "type-mismatch":
		if data["expected"] != "" {
			return fmt.Sprintf("expected %s, got %s", data["expected"], data["got"])
		}
		return "type mismatch"
	case "missing":
		if data["field"] != "" {
			return fmt.Sprintf("missing required field %q", data["field"])
		}
		return "missing required field"
	case "unexpected":
		if data["field"] != "" {
			return fmt.Sprintf("unexpected field %q", data["field"])
		}
		return "unexpected field"
	case "no-alternative":
		if data["alternatives"] != "" {
			return "matched none of the alternatives: " + data["alternatives"]
		}
		return "matched none of the alternatives"
	case "wrong-length":
		if data["want"] != "" {
			return fmt.Sprintf("expected %s elements, got %s", data["want"], data["got"])
		}
		return "wrong number of elements"
	case "too-small":
		if data["min"] != "" {
			return fmt.Sprintf("value %s is below the minimum %s", data["got"], data["min"])
		}
		return "value too small"
	case "too-big":
		if data["max"] != "" {
			return fmt.Sprintf("value %s is above the maximum %s", data["got"], data["max"])
		}
		return "value too big"
	case "too-short":
		if data["min"] != "" {
			return fmt.Sprintf("length %s is below the minimum %s", data["got"], data["min"])
		}
		return "too short"
	case "too-long":
		if data["max"] != "" {
			return fmt.Sprintf("length %s is above the maximum %s", data["got"], data["max"])
		}
		return "too long"
	case "not-equal":
		if data["got"] != "" {
			return fmt.Sprintf("value %s does not equal the fixed value", data["got"])
		}
		return "value does not equal the fixed value"
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to
// the dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
