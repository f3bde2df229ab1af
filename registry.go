package rx

// ValidatorFn checks a value against a compiled schema node and reports
// zero or more failures at the given path. Implementations must not
// mutate the node or the value.
type ValidatorFn func(node *SchemaNode, v Value, path Path) Failures

// Registry maps type identifiers to validators. Built-ins are installed
// at construction; custom types are registered before compilation.
// Registration must complete before the Registry is handed to Compile —
// after that the Registry is read-only and safe to share across
// goroutines.
type Registry struct {
	entries     map[string]ValidatorFn
	builtins    map[string]struct{}
	allowShadow bool
}

// RegistryOption configures a Registry at construction.
type RegistryOption func(*Registry)

// AllowShadowing permits a custom type to replace a previously
// registered custom type. Built-ins can never be shadowed.
func AllowShadowing() RegistryOption {
	return func(r *Registry) { r.allowShadow = true }
}

// NewRegistry returns a Registry with the built-in Rx types installed:
// record, array, map, sequence, scalar-string, scalar-number,
// scalar-bool, one-of, any.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries:  make(map[string]ValidatorFn, len(builtinValidators)),
		builtins: make(map[string]struct{}, len(builtinValidators)),
	}
	for _, o := range opts {
		o(r)
	}
	for name, fn := range builtinValidators {
		r.entries[name] = fn
		r.builtins[name] = struct{}{}
	}
	return r
}

// Register binds a custom validator to a type identifier. By convention
// identifiers are namespaced URI-like tags (for example
// "tag:example.com,2026:rx/format/date") to avoid collisions with
// built-ins and other custom types. Registering over a built-in, or
// over an existing custom type without AllowShadowing, returns a
// DuplicateTypeError.
func (r *Registry) Register(name string, fn ValidatorFn) error {
	if _, ok := r.builtins[name]; ok {
		return &DuplicateTypeError{Name: name}
	}
	if _, ok := r.entries[name]; ok && !r.allowShadow {
		return &DuplicateTypeError{Name: name}
	}
	r.entries[name] = fn
	return nil
}

// MustRegister is Register that panics on error, for static setup code.
func (r *Registry) MustRegister(name string, fn ValidatorFn) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// IsBuiltin reports whether name is one of the built-in Rx types.
func (r *Registry) IsBuiltin(name string) bool {
	_, ok := r.builtins[name]
	return ok
}

func (r *Registry) resolve(name string) (ValidatorFn, error) {
	fn, ok := r.entries[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return fn, nil
}
