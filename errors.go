package rx

import "fmt"

// SchemaError reports a structurally invalid schema document. Path
// points into the schema document, not the data being validated.
type SchemaError struct {
	Path    Path
	Message string
	Err     error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("rx: invalid schema at %s: %s", e.Path.render("$schema"), e.Message)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// UnknownTypeError reports a type identifier that is not present in the
// Registry. It surfaces at compile time; a compiled Schema never
// resolves types at validation time.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("rx: unknown type %q", e.Name)
}

// DuplicateTypeError reports an attempt to register a type identifier
// that is already taken.
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("rx: type %q is already registered", e.Name)
}
