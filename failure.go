package rx

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind classifies a validation defect.
type FailureKind string

const (
	FailMissing      FailureKind = "missing"
	FailUnexpected   FailureKind = "unexpected"
	FailTypeMismatch FailureKind = "type-mismatch"
	FailValueInvalid FailureKind = "value-invalid"
)

// Failure is a single validation defect. Failures are value objects:
// created during traversal, never mutated afterwards.
type Failure struct {
	Path     Path
	Kind     FailureKind
	Expected string // type identifier the value was checked against
	Message  string
}

// String renders the conventional one-line report form,
// e.g. $data->{start_date} failed reindeer-date: invalid date.
func (f Failure) String() string {
	return fmt.Sprintf("%s failed %s: %s", f.Path, f.Expected, f.Message)
}

// Failures is an ordered collection of defects that implements error.
// Order is traversal order and is deterministic for a given schema and
// value.
type Failures []Failure

// Error summarizes the first few failures.
func (fs Failures) Error() string {
	if len(fs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(fs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		f := fs[i]
		// e.g. type-mismatch at $data->{start_date}
		fmt.Fprintf(b, "%s at %s", f.Kind, f.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendFailures appends failures to the destination, initializing the
// slice when needed.
func AppendFailures(dst Failures, more ...Failure) Failures {
	if dst == nil {
		dst = Failures{}
	}
	return append(dst, more...)
}

// AsFailures extracts Failures from an error using errors.As internally.
func AsFailures(err error) (Failures, bool) {
	if err == nil {
		return nil, false
	}
	var fs Failures
	if errors.As(err, &fs) {
		return fs, true
	}
	return nil, false
}

// Result is the outcome of one validation run. It is owned by the
// caller; repeated runs over the same inputs yield identical Results.
type Result struct {
	Valid    bool
	Failures Failures
}

func newResult(fs Failures) Result {
	return Result{Valid: len(fs) == 0, Failures: fs}
}
