// Package yaml decodes YAML documents into rx Values using yaml.v3's
// node API, preserving mapping key order.
package yaml

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	rx "github.com/codesimply/rx"
)

// DecodeValue decodes the first document of data.
func DecodeValue(data []byte) (rx.Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return rx.Value{}, fmt.Errorf("rx/source/yaml: %w", err)
	}
	if node.Kind == 0 {
		return rx.Value{}, errors.New("rx/source/yaml: empty document")
	}
	v, err := fromNode(&node)
	if err != nil {
		return rx.Value{}, fmt.Errorf("rx/source/yaml: %w", err)
	}
	return v, nil
}

// DecodeAll decodes every document of a multi-document stream, in
// order. A defect in one document fails the whole decode; validation of
// independent documents should decode them separately.
func DecodeAll(data []byte) ([]rx.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []rx.Value
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("rx/source/yaml: document %d: %w", len(out), err)
		}
		v, err := fromNode(&node)
		if err != nil {
			return nil, fmt.Errorf("rx/source/yaml: document %d: %w", len(out), err)
		}
		out = append(out, v)
	}
}

func fromNode(n *yaml.Node) (rx.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return rx.NewNull(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		// yaml.v3 only resolves anchors declared earlier in the stream,
		// so alias chains cannot cycle.
		return fromNode(n.Alias)
	case yaml.MappingNode:
		entries := make([]rx.Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			kn, vn := n.Content[i], n.Content[i+1]
			if kn.Kind != yaml.ScalarNode {
				return rx.Value{}, fmt.Errorf("line %d: mapping key must be a scalar", kn.Line)
			}
			cv, err := fromNode(vn)
			if err != nil {
				return rx.Value{}, err
			}
			entries = append(entries, rx.Entry{Key: kn.Value, Value: cv})
		}
		return rx.NewMap(entries...), nil
	case yaml.SequenceNode:
		items := make([]rx.Value, 0, len(n.Content))
		for _, cn := range n.Content {
			cv, err := fromNode(cn)
			if err != nil {
				return rx.Value{}, err
			}
			items = append(items, cv)
		}
		return rx.NewSeq(items...), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return rx.Value{}, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func fromScalar(n *yaml.Node) (rx.Value, error) {
	switch n.Tag {
	case "!!null":
		return rx.NewNull(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			// Non-canonical booleans like "yes"/"off".
			switch n.Value {
			case "yes", "Yes", "on", "On":
				return rx.NewBool(true), nil
			case "no", "No", "off", "Off":
				return rx.NewBool(false), nil
			}
			return rx.Value{}, fmt.Errorf("line %d: invalid bool %q", n.Line, n.Value)
		}
		return rx.NewBool(b), nil
	case "!!int", "!!float":
		if _, err := strconv.ParseFloat(n.Value, 64); err != nil {
			return rx.Value{}, fmt.Errorf("line %d: invalid number %q", n.Line, n.Value)
		}
		return rx.NewNumber(stdjson.Number(n.Value)), nil
	default:
		// !!str and unresolved custom tags decode as strings.
		return rx.NewString(n.Value), nil
	}
}
