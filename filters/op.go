// Package filters defines the per-column filter sets a list endpoint accepts.
//
// A filter set is a struct of optional operator fields. A nil field is an
// absent operator; present operators combine with AND. Sets carry no
// knowledge of SQL, see package gormfilter for the translation.
package filters

// Op is an operator tag as it appears in a request, e.g. the "gte" in age[gte]=20.
type Op string

const (
	OpEq          Op = "eq"
	OpNe          Op = "ne"
	OpGt          Op = "gt"
	OpGte         Op = "gte"
	OpLt          Op = "lt"
	OpLte         Op = "lte"
	OpIn          Op = "in"
	OpContains    Op = "contains"
	OpNotContains Op = "not_contains"
	OpIContains   Op = "i_contains"
	OpStartsWith  Op = "starts_with"
	OpEndsWith    Op = "ends_with"
	OpBefore      Op = "before"
	OpAfter       Op = "after"
)

// Term is one present operator of a set.
type Term struct {
	Op Op
	// Value holds the operand of every operator except OpIn.
	Value any
	// Values holds the OpIn operand list. It may be empty but never nil for OpIn.
	Values []any
}

// Set is implemented by every filter set.
type Set interface {
	// Terms returns the present operators in field declaration order.
	Terms() []Term
}

// IsEmpty reports whether s filters nothing.
func IsEmpty(s Set) bool {
	return s == nil || len(s.Terms()) == 0
}

// Ptr returns a pointer to v, for building sets in code.
func Ptr[T any](v T) *T {
	return &v
}

func appendOne[T any](terms []Term, op Op, v *T) []Term {
	if v == nil {
		return terms
	}
	return append(terms, Term{Op: op, Value: *v})
}

func appendIn[T any](terms []Term, vs []T) []Term {
	if vs == nil {
		return terms
	}
	values := make([]any, len(vs))
	for i, v := range vs {
		values[i] = v
	}
	return append(terms, Term{Op: OpIn, Values: values})
}
