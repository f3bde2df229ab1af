package rx

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindSeq
	KindMap
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSeq:
		return "sequence"
	case KindMap:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is one node of decoded dynamic data. The zero Value is null.
// Mappings remember the key order of the decoded input so that traversal
// (and therefore failure order) is deterministic. Values are immutable
// once constructed.
type Value struct {
	kind ValueKind
	b    bool
	num  json.Number
	str  string
	seq  []Value
	keys []string
	m    map[string]Value
}

// Entry is one key/value pair of a mapping Value.
type Entry struct {
	Key   string
	Value Value
}

// NewNull returns the null Value.
func NewNull() Value { return Value{kind: KindNull} }

// NewBool returns a boolean Value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewNumber returns a numeric Value. The textual json.Number form is kept
// so no precision is lost between decoding and reporting.
func NewNumber(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// NewString returns a string Value.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewSeq returns a sequence Value holding items in order.
func NewSeq(items ...Value) Value {
	return Value{kind: KindSeq, seq: items}
}

// NewMap returns a mapping Value. Key order follows the first occurrence
// of each key; a repeated key overwrites the earlier value.
func NewMap(entries ...Entry) Value {
	keys := make([]string, 0, len(entries))
	m := make(map[string]Value, len(entries))
	for _, e := range entries {
		if _, seen := m[e.Key]; !seen {
			keys = append(keys, e.Key)
		}
		m[e.Key] = e.Value
	}
	return Value{kind: KindMap, keys: keys, m: m}
}

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean content; false for other kinds.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric content; empty for other kinds.
func (v Value) Number() json.Number { return v.num }

// String returns the string content; empty for other kinds.
func (v Value) String() string { return v.str }

// Len returns the element count of a sequence or entry count of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSeq:
		return len(v.seq)
	case KindMap:
		return len(v.keys)
	default:
		return 0
	}
}

// Index returns the i-th element of a sequence. It panics for
// out-of-range indices, like a slice access.
func (v Value) Index(i int) Value { return v.seq[i] }

// Keys returns the mapping keys in decoded order. The returned slice is
// shared and must not be mutated.
func (v Value) Keys() []string { return v.keys }

// Field looks up a mapping entry by key.
func (v Value) Field(key string) (Value, bool) {
	fv, ok := v.m[key]
	return fv, ok
}

// Entries returns the mapping entries in decoded order.
func (v Value) Entries() []Entry {
	out := make([]Entry, 0, len(v.keys))
	for _, k := range v.keys {
		out = append(out, Entry{Key: k, Value: v.m[k]})
	}
	return out
}

// FromAny converts a generic decoded Go value (as produced by the
// standard JSON/YAML unmarshalers) into a Value. Plain map keys carry no
// decoded order, so they are sorted to keep traversal deterministic; use
// the source packages when input order matters.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return NewNull(), nil
	case Value:
		return t, nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t), nil
	case float64:
		return NewNumber(json.Number(strconv.FormatFloat(t, 'g', -1, 64))), nil
	case int:
		return NewNumber(json.Number(strconv.Itoa(t))), nil
	case int64:
		return NewNumber(json.Number(strconv.FormatInt(t, 10))), nil
	case uint64:
		return NewNumber(json.Number(strconv.FormatUint(t, 10))), nil
	case []any:
		items := make([]Value, 0, len(t))
		for i, el := range t {
			cv, err := FromAny(el)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, cv)
		}
		return NewSeq(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			cv, err := FromAny(t[k])
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			entries = append(entries, Entry{Key: k, Value: cv})
		}
		return NewMap(entries...), nil
	default:
		return Value{}, fmt.Errorf("rx: cannot represent %T as a Value", v)
	}
}
