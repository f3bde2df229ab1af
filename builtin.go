package rx

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/codesimply/rx/i18n"
)

// builtinValidators backs NewRegistry. Compilation binds these into the
// SchemaNode tree, so validation never touches the map.
var builtinValidators = map[string]ValidatorFn{
	"record":        checkRecord,
	"array":         checkArray,
	"map":           checkMap,
	"sequence":      checkSequence,
	"one-of":        checkOneOf,
	"any":           checkAny,
	"scalar-string": checkString,
	"scalar-number": checkNumber,
	"scalar-bool":   checkBool,
}

func typeMismatch(n *SchemaNode, v Value, path Path) Failure {
	return Failure{
		Path:     path,
		Kind:     FailTypeMismatch,
		Expected: n.Type,
		Message:  i18n.T("type-mismatch", map[string]string{"expected": n.Type, "got": v.Kind().String()}),
	}
}

func checkRecord(n *SchemaNode, v Value, path Path) Failures {
	if v.Kind() != KindMap {
		return Failures{typeMismatch(n, v, path)}
	}
	var fs Failures
	// Actual keys first, in decoded order: unexpected keys are reported
	// and known keys recursed into as they are encountered. Missing
	// required keys follow, in declared order.
	for _, e := range v.Entries() {
		child, known := n.fieldSchema(e.Key)
		if !known {
			fs = append(fs, Failure{
				Path:     path.Field(e.Key),
				Kind:     FailUnexpected,
				Expected: n.Type,
				Message:  i18n.T("unexpected", map[string]string{"field": e.Key}),
			})
			continue
		}
		fs = append(fs, child.Check(e.Value, path.Field(e.Key))...)
	}
	for _, f := range n.Required {
		if _, ok := v.Field(f.Name); ok {
			continue
		}
		fs = append(fs, Failure{
			Path:     path,
			Kind:     FailMissing,
			Expected: f.Schema.Type,
			Message:  i18n.T("missing", map[string]string{"field": f.Name}),
		})
	}
	return fs
}

func checkArray(n *SchemaNode, v Value, path Path) Failures {
	if v.Kind() != KindSeq {
		return Failures{typeMismatch(n, v, path)}
	}
	fs := checkCount(n, v.Len(), path)
	for i := 0; i < v.Len(); i++ {
		fs = append(fs, n.Contents.Check(v.Index(i), path.Index(i))...)
	}
	return fs
}

func checkMap(n *SchemaNode, v Value, path Path) Failures {
	if v.Kind() != KindMap {
		return Failures{typeMismatch(n, v, path)}
	}
	var fs Failures
	for _, e := range v.Entries() {
		fs = append(fs, n.Contents.Check(e.Value, path.Field(e.Key))...)
	}
	return fs
}

func checkSequence(n *SchemaNode, v Value, path Path) Failures {
	if v.Kind() != KindSeq {
		return Failures{typeMismatch(n, v, path)}
	}
	var fs Failures
	if v.Len() != len(n.Elements) {
		fs = append(fs, Failure{
			Path:     path,
			Kind:     FailValueInvalid,
			Expected: n.Type,
			Message: i18n.T("wrong-length", map[string]string{
				"want": strconv.Itoa(len(n.Elements)),
				"got":  strconv.Itoa(v.Len()),
			}),
		})
	}
	// Validate the shared prefix even on an arity mismatch so positional
	// defects are still reported in the same pass.
	limit := v.Len()
	if len(n.Elements) < limit {
		limit = len(n.Elements)
	}
	for i := 0; i < limit; i++ {
		fs = append(fs, n.Elements[i].Check(v.Index(i), path.Index(i))...)
	}
	return fs
}

func checkOneOf(n *SchemaNode, v Value, path Path) Failures {
	// Alternatives are tried in declared order; the failures of a
	// rejected branch never leak into the result.
	for _, alt := range n.Alternatives {
		if len(alt.Check(v, path)) == 0 {
			return nil
		}
	}
	names := make([]string, 0, len(n.Alternatives))
	for _, alt := range n.Alternatives {
		names = append(names, alt.Type)
	}
	return Failures{{
		Path:     path,
		Kind:     FailTypeMismatch,
		Expected: n.Type,
		Message:  i18n.T("no-alternative", map[string]string{"alternatives": strings.Join(names, ", ")}),
	}}
}

func checkAny(n *SchemaNode, v Value, path Path) Failures { return nil }

func checkString(n *SchemaNode, v Value, path Path) Failures {
	if v.Kind() != KindString {
		return Failures{typeMismatch(n, v, path)}
	}
	fs := checkCount(n, utf8.RuneCountInString(v.String()), path)
	if n.Literal != nil && v.String() != n.Literal.String() {
		fs = append(fs, literalMismatch(n, strconv.Quote(v.String()), path))
	}
	return fs
}

func checkNumber(n *SchemaNode, v Value, path Path) Failures {
	if v.Kind() != KindNumber {
		return Failures{typeMismatch(n, v, path)}
	}
	f, err := v.Number().Float64()
	if err != nil {
		// Decoders only produce parseable numbers; a hand-built Value
		// that does not parse cannot satisfy any numeric constraint.
		return Failures{typeMismatch(n, v, path)}
	}
	var fs Failures
	if rc := n.Range; rc != nil {
		if rc.Min != nil && f < *rc.Min {
			fs = append(fs, Failure{
				Path:     path,
				Kind:     FailValueInvalid,
				Expected: n.Type,
				Message:  i18n.T("too-small", map[string]string{"min": formatBound(*rc.Min), "got": v.Number().String()}),
			})
		}
		if rc.Max != nil && f > *rc.Max {
			fs = append(fs, Failure{
				Path:     path,
				Kind:     FailValueInvalid,
				Expected: n.Type,
				Message:  i18n.T("too-big", map[string]string{"max": formatBound(*rc.Max), "got": v.Number().String()}),
			})
		}
	}
	if n.Literal != nil {
		want, werr := n.Literal.Number().Float64()
		if werr != nil || f != want {
			fs = append(fs, literalMismatch(n, v.Number().String(), path))
		}
	}
	return fs
}

func checkBool(n *SchemaNode, v Value, path Path) Failures {
	if v.Kind() != KindBool {
		return Failures{typeMismatch(n, v, path)}
	}
	if n.Literal != nil && v.Bool() != n.Literal.Bool() {
		return Failures{literalMismatch(n, strconv.FormatBool(v.Bool()), path)}
	}
	return nil
}

// checkCount applies a LengthConstraint to a string's rune count or an
// array's element count.
func checkCount(n *SchemaNode, count int, path Path) Failures {
	lc := n.Length
	if lc == nil {
		return nil
	}
	var fs Failures
	if lc.Min != nil && count < *lc.Min {
		fs = append(fs, Failure{
			Path:     path,
			Kind:     FailValueInvalid,
			Expected: n.Type,
			Message:  i18n.T("too-short", map[string]string{"min": strconv.Itoa(*lc.Min), "got": strconv.Itoa(count)}),
		})
	}
	if lc.Max != nil && count > *lc.Max {
		fs = append(fs, Failure{
			Path:     path,
			Kind:     FailValueInvalid,
			Expected: n.Type,
			Message:  i18n.T("too-long", map[string]string{"max": strconv.Itoa(*lc.Max), "got": strconv.Itoa(count)}),
		})
	}
	return fs
}

func literalMismatch(n *SchemaNode, got string, path Path) Failure {
	return Failure{
		Path:     path,
		Kind:     FailValueInvalid,
		Expected: n.Type,
		Message:  i18n.T("not-equal", map[string]string{"got": got}),
	}
}

func formatBound(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
