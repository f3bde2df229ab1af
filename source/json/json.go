// Package json decodes JSON documents into rx Values using
// goccy/go-json, preserving object key order and exact number text.
package json

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	rx "github.com/codesimply/rx"
)

// DecodeValue decodes a single JSON document.
func DecodeValue(data []byte) (rx.Value, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes a single JSON document from r.
func DecodeReader(r io.Reader) (rx.Value, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeNext(dec)
	if err != nil {
		return rx.Value{}, fmt.Errorf("rx/source/json: %w", err)
	}
	return v, nil
}

func decodeNext(dec *j.Decoder) (rx.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return rx.Value{}, io.ErrUnexpectedEOF
		}
		return rx.Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *j.Decoder, tok j.Token) (rx.Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return rx.Value{}, fmt.Errorf("unexpected delimiter %v", t)
		}
	case nil:
		return rx.NewNull(), nil
	case bool:
		return rx.NewBool(t), nil
	case string:
		return rx.NewString(t), nil
	case j.Number:
		return rx.NewNumber(stdjson.Number(t)), nil
	case float64:
		// UseNumber normally prevents this; keep the fallback cheap.
		return rx.NewNumber(stdjson.Number(strconv.FormatFloat(t, 'g', -1, 64))), nil
	default:
		return rx.Value{}, fmt.Errorf("unexpected token %T", tok)
	}
}

func decodeObject(dec *j.Decoder) (rx.Value, error) {
	var entries []rx.Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return rx.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return rx.Value{}, fmt.Errorf("object key is %T, not string", keyTok)
		}
		val, err := decodeNext(dec)
		if err != nil {
			return rx.Value{}, err
		}
		entries = append(entries, rx.Entry{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return rx.Value{}, err
	}
	return rx.NewMap(entries...), nil
}

func decodeArray(dec *j.Decoder) (rx.Value, error) {
	var items []rx.Value
	for dec.More() {
		val, err := decodeNext(dec)
		if err != nil {
			return rx.Value{}, err
		}
		items = append(items, val)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return rx.Value{}, err
	}
	return rx.NewSeq(items...), nil
}
