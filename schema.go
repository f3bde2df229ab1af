package rx

// FieldSchema binds one record field name to its compiled schema.
// Declaration order is preserved so missing-field reports are stable.
type FieldSchema struct {
	Name   string
	Schema *SchemaNode
}

// RangeConstraint bounds a scalar-number. Nil ends are unbounded.
type RangeConstraint struct {
	Min *float64
	Max *float64
}

// LengthConstraint bounds a string's rune count or an array's element
// count. Nil ends are unbounded.
type LengthConstraint struct {
	Min *int
	Max *int
}

// SchemaNode is the compiled form of one type specification. Nodes are
// immutable after compilation; the validator bound at compile time is
// invoked through Check, so no registry lookups happen during
// validation.
type SchemaNode struct {
	Type string

	// record
	Required []FieldSchema
	Optional []FieldSchema

	// array/map element type
	Contents *SchemaNode

	// sequence positions, one schema per element
	Elements []*SchemaNode

	// one-of branches, in declared order
	Alternatives []*SchemaNode

	// optional scalar/array constraints
	Range   *RangeConstraint
	Length  *LengthConstraint
	Literal *Value

	// Params carries the opaque configuration of a custom type: every
	// schema-document key other than "type". Null for built-ins.
	Params Value

	check       ValidatorFn
	requiredSet map[string]*SchemaNode
	optionalSet map[string]*SchemaNode
}

// Check validates v against this node, recording failures under path.
// It is the recursion entry point for built-ins and for custom
// validators that compile subschemas of their own. Check is total: it
// never returns an error, only failures.
func (n *SchemaNode) Check(v Value, path Path) Failures {
	return n.check(n, v, path)
}

func (n *SchemaNode) fieldSchema(key string) (*SchemaNode, bool) {
	if c, ok := n.requiredSet[key]; ok {
		return c, true
	}
	c, ok := n.optionalSet[key]
	return c, ok
}

// Schema is a compiled schema document, ready for any number of
// validation runs, including concurrent ones.
type Schema struct {
	root *SchemaNode
}

// Root exposes the root node, e.g. for custom validators that embed a
// compiled schema.
func (s *Schema) Root() *SchemaNode { return s.root }

// Validate walks v against the schema and collects every defect. The
// failure sequence is deterministic: identical inputs yield identical
// Results.
func (s *Schema) Validate(v Value) Result {
	return newResult(s.root.Check(v, nil))
}
