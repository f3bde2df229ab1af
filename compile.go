package rx

import "fmt"

// maxSchemaDepth bounds compilation recursion. Schema documents are
// trees by construction, but a decoding layer that permits
// self-referential structures must not push the compiler into unbounded
// recursion.
const maxSchemaDepth = 500

// Compile turns a decoded schema document into an immutable Schema,
// resolving every type identifier through reg. Compilation is a pure
// transform: it fails with a path-qualified SchemaError on the first
// structural defect and has no side effects.
func Compile(doc Value, reg *Registry) (*Schema, error) {
	root, err := compileNode(doc, reg, nil, 0)
	if err != nil {
		return nil, err
	}
	return &Schema{root: root}, nil
}

// MustCompile is Compile that panics on error, for schemas fixed at
// build time.
func MustCompile(doc Value, reg *Registry) *Schema {
	s, err := Compile(doc, reg)
	if err != nil {
		panic(err)
	}
	return s
}

func compileNode(doc Value, reg *Registry, path Path, depth int) (*SchemaNode, error) {
	if depth > maxSchemaDepth {
		return nil, &SchemaError{Path: path, Message: fmt.Sprintf("nesting exceeds %d levels", maxSchemaDepth)}
	}
	if doc.Kind() != KindMap {
		return nil, &SchemaError{Path: path, Message: fmt.Sprintf("type specification must be a mapping, got %s", doc.Kind())}
	}
	tv, ok := doc.Field("type")
	if !ok {
		return nil, &SchemaError{Path: path, Message: `missing "type"`}
	}
	if tv.Kind() != KindString || tv.String() == "" {
		return nil, &SchemaError{Path: path.Field("type"), Message: `"type" must be a non-empty string`}
	}
	name := tv.String()
	fn, err := reg.resolve(name)
	if err != nil {
		return nil, &SchemaError{Path: path.Field("type"), Message: fmt.Sprintf("unknown type %q", name), Err: err}
	}

	node := &SchemaNode{Type: name, check: fn}
	if !reg.IsBuiltin(name) {
		entries := make([]Entry, 0, doc.Len())
		for _, e := range doc.Entries() {
			if e.Key == "type" {
				continue
			}
			entries = append(entries, e)
		}
		node.Params = NewMap(entries...)
		return node, nil
	}

	if err := rejectUnknownKeys(doc, name, path); err != nil {
		return nil, err
	}

	switch name {
	case "record":
		if err := compileRecord(node, doc, reg, path, depth); err != nil {
			return nil, err
		}
	case "array":
		child, err := compileContents(doc, reg, path, depth)
		if err != nil {
			return nil, err
		}
		node.Contents = child
		if node.Length, err = compileLength(doc, path); err != nil {
			return nil, err
		}
	case "map":
		child, err := compileContents(doc, reg, path, depth)
		if err != nil {
			return nil, err
		}
		node.Contents = child
	case "sequence":
		if err := compileSequence(node, doc, reg, path, depth); err != nil {
			return nil, err
		}
	case "one-of":
		if err := compileOneOf(node, doc, reg, path, depth); err != nil {
			return nil, err
		}
	case "scalar-string":
		var err error
		if node.Length, err = compileLength(doc, path); err != nil {
			return nil, err
		}
		if node.Literal, err = compileLiteral(doc, KindString, path); err != nil {
			return nil, err
		}
	case "scalar-number":
		var err error
		if node.Range, err = compileRange(doc, path); err != nil {
			return nil, err
		}
		if node.Literal, err = compileLiteral(doc, KindNumber, path); err != nil {
			return nil, err
		}
	case "scalar-bool":
		var err error
		if node.Literal, err = compileLiteral(doc, KindBool, path); err != nil {
			return nil, err
		}
	case "any":
		// no configuration
	}
	return node, nil
}

// allowedKeys lists the recognized schema-document keys per built-in.
// Anything else is a typo and fails compilation. Custom types accept
// arbitrary keys as opaque configuration.
var allowedKeys = map[string]map[string]struct{}{
	"record":        {"type": {}, "required": {}, "optional": {}},
	"array":         {"type": {}, "contents": {}, "length": {}},
	"map":           {"type": {}, "contents": {}},
	"sequence":      {"type": {}, "contents": {}},
	"one-of":        {"type": {}, "alternatives": {}},
	"scalar-string": {"type": {}, "length": {}, "value": {}},
	"scalar-number": {"type": {}, "range": {}, "value": {}},
	"scalar-bool":   {"type": {}, "value": {}},
	"any":           {"type": {}},
}

func rejectUnknownKeys(doc Value, name string, path Path) error {
	allowed := allowedKeys[name]
	for _, k := range doc.Keys() {
		if _, ok := allowed[k]; !ok {
			return &SchemaError{Path: path.Field(k), Message: fmt.Sprintf("unrecognized key %q for type %q", k, name)}
		}
	}
	return nil
}

func compileRecord(node *SchemaNode, doc Value, reg *Registry, path Path, depth int) error {
	var err error
	node.Required, node.requiredSet, err = compileFieldSet(doc, "required", reg, path, depth)
	if err != nil {
		return err
	}
	node.Optional, node.optionalSet, err = compileFieldSet(doc, "optional", reg, path, depth)
	if err != nil {
		return err
	}
	for _, f := range node.Optional {
		if _, dup := node.requiredSet[f.Name]; dup {
			return &SchemaError{Path: path, Message: fmt.Sprintf("field %q listed as both required and optional", f.Name)}
		}
	}
	return nil
}

func compileFieldSet(doc Value, key string, reg *Registry, path Path, depth int) ([]FieldSchema, map[string]*SchemaNode, error) {
	fv, ok := doc.Field(key)
	if !ok {
		return nil, map[string]*SchemaNode{}, nil
	}
	if fv.Kind() != KindMap {
		return nil, nil, &SchemaError{Path: path.Field(key), Message: fmt.Sprintf("%q must be a mapping of field name to type specification", key)}
	}
	fields := make([]FieldSchema, 0, fv.Len())
	set := make(map[string]*SchemaNode, fv.Len())
	for _, e := range fv.Entries() {
		child, err := compileNode(e.Value, reg, path.Field(key).Field(e.Key), depth+1)
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, FieldSchema{Name: e.Key, Schema: child})
		set[e.Key] = child
	}
	return fields, set, nil
}

func compileContents(doc Value, reg *Registry, path Path, depth int) (*SchemaNode, error) {
	cv, ok := doc.Field("contents")
	if !ok {
		return nil, &SchemaError{Path: path, Message: `missing "contents"`}
	}
	return compileNode(cv, reg, path.Field("contents"), depth+1)
}

func compileSequence(node *SchemaNode, doc Value, reg *Registry, path Path, depth int) error {
	cv, ok := doc.Field("contents")
	if !ok {
		return &SchemaError{Path: path, Message: `missing "contents"`}
	}
	if cv.Kind() != KindSeq {
		return &SchemaError{Path: path.Field("contents"), Message: `sequence "contents" must be a list of type specifications, one per position`}
	}
	node.Elements = make([]*SchemaNode, 0, cv.Len())
	for i := 0; i < cv.Len(); i++ {
		child, err := compileNode(cv.Index(i), reg, path.Field("contents").Index(i), depth+1)
		if err != nil {
			return err
		}
		node.Elements = append(node.Elements, child)
	}
	return nil
}

func compileOneOf(node *SchemaNode, doc Value, reg *Registry, path Path, depth int) error {
	av, ok := doc.Field("alternatives")
	if !ok {
		return &SchemaError{Path: path, Message: `missing "alternatives"`}
	}
	if av.Kind() != KindSeq || av.Len() == 0 {
		return &SchemaError{Path: path.Field("alternatives"), Message: `"alternatives" must be a non-empty list of type specifications`}
	}
	node.Alternatives = make([]*SchemaNode, 0, av.Len())
	for i := 0; i < av.Len(); i++ {
		child, err := compileNode(av.Index(i), reg, path.Field("alternatives").Index(i), depth+1)
		if err != nil {
			return err
		}
		node.Alternatives = append(node.Alternatives, child)
	}
	return nil
}

func compileRange(doc Value, path Path) (*RangeConstraint, error) {
	rv, ok := doc.Field("range")
	if !ok {
		return nil, nil
	}
	rpath := path.Field("range")
	if rv.Kind() != KindMap {
		return nil, &SchemaError{Path: rpath, Message: `"range" must be a mapping with "min" and/or "max"`}
	}
	rc := &RangeConstraint{}
	for _, e := range rv.Entries() {
		if e.Key != "min" && e.Key != "max" {
			return nil, &SchemaError{Path: rpath.Field(e.Key), Message: fmt.Sprintf("unrecognized range bound %q", e.Key)}
		}
		if e.Value.Kind() != KindNumber {
			return nil, &SchemaError{Path: rpath.Field(e.Key), Message: "range bound must be a number"}
		}
		f, err := e.Value.Number().Float64()
		if err != nil {
			return nil, &SchemaError{Path: rpath.Field(e.Key), Message: "range bound must be a number", Err: err}
		}
		if e.Key == "min" {
			rc.Min = &f
		} else {
			rc.Max = &f
		}
	}
	if rc.Min != nil && rc.Max != nil && *rc.Min > *rc.Max {
		return nil, &SchemaError{Path: rpath, Message: "range min exceeds max"}
	}
	return rc, nil
}

func compileLength(doc Value, path Path) (*LengthConstraint, error) {
	lv, ok := doc.Field("length")
	if !ok {
		return nil, nil
	}
	lpath := path.Field("length")
	if lv.Kind() != KindMap {
		return nil, &SchemaError{Path: lpath, Message: `"length" must be a mapping with "min" and/or "max"`}
	}
	lc := &LengthConstraint{}
	for _, e := range lv.Entries() {
		if e.Key != "min" && e.Key != "max" {
			return nil, &SchemaError{Path: lpath.Field(e.Key), Message: fmt.Sprintf("unrecognized length bound %q", e.Key)}
		}
		if e.Value.Kind() != KindNumber {
			return nil, &SchemaError{Path: lpath.Field(e.Key), Message: "length bound must be a non-negative integer"}
		}
		n, err := e.Value.Number().Int64()
		if err != nil || n < 0 {
			return nil, &SchemaError{Path: lpath.Field(e.Key), Message: "length bound must be a non-negative integer", Err: err}
		}
		i := int(n)
		if e.Key == "min" {
			lc.Min = &i
		} else {
			lc.Max = &i
		}
	}
	if lc.Min != nil && lc.Max != nil && *lc.Min > *lc.Max {
		return nil, &SchemaError{Path: lpath, Message: "length min exceeds max"}
	}
	return lc, nil
}

func compileLiteral(doc Value, want ValueKind, path Path) (*Value, error) {
	vv, ok := doc.Field("value")
	if !ok {
		return nil, nil
	}
	if vv.Kind() != want {
		return nil, &SchemaError{Path: path.Field("value"), Message: fmt.Sprintf(`"value" must be a %s literal, got %s`, want, vv.Kind())}
	}
	return &vv, nil
}
