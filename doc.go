package rx

// Package rx validates loosely-structured data against declarative Rx
// schemas:
//
// - An order-preserving Value model for decoded JSON/YAML documents
// - A compiler that turns a schema document into an immutable Schema AST
// - A total, non-throwing validator that accumulates path-qualified Failures
// - A Registry of type validators, extensible with custom scalar types
//
// Design policy:
// - Keep only public APIs in the root package; decoders live under source/,
//   ready-made custom types under format/, the CLI under cmd/rx.
// - Validation never aborts on the first defect: every defect in a document
//   is reported in one pass.
// - A compiled Schema and its Registry are read-only after first use and
//   safe for concurrent Validate calls.
//
// Typical usage:
//
//	reg := rx.NewRegistry()
//	schema, err := rx.Compile(schemaDoc, reg)
//	res := schema.Validate(doc)
//	for _, f := range res.Failures {
//		fmt.Println(f)
//	}
