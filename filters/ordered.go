package filters

import (
	"time"

	"github.com/google/uuid"
)

// Ordered filters a column whose values compare with < and >.
type Ordered[T any] struct {
	Eq  *T  `schema:"eq" json:"eq,omitempty"`
	Ne  *T  `schema:"ne" json:"ne,omitempty"`
	Gt  *T  `schema:"gt" json:"gt,omitempty"`
	Gte *T  `schema:"gte" json:"gte,omitempty"`
	Lt  *T  `schema:"lt" json:"lt,omitempty"`
	Lte *T  `schema:"lte" json:"lte,omitempty"`
	In  []T `schema:"in" json:"in,omitempty"`
}

func (s *Ordered[T]) Terms() []Term {
	if s == nil {
		return nil
	}
	var terms []Term
	terms = appendOne(terms, OpEq, s.Eq)
	terms = appendOne(terms, OpNe, s.Ne)
	terms = appendOne(terms, OpGt, s.Gt)
	terms = appendOne(terms, OpGte, s.Gte)
	terms = appendOne(terms, OpLt, s.Lt)
	terms = appendOne(terms, OpLte, s.Lte)
	terms = appendIn(terms, s.In)
	return terms
}

// Temporal is Ordered plus the before (<) and after (>=) shorthands
// that date pickers usually send.
type Temporal[T any] struct {
	Eq     *T  `schema:"eq" json:"eq,omitempty"`
	Ne     *T  `schema:"ne" json:"ne,omitempty"`
	Gt     *T  `schema:"gt" json:"gt,omitempty"`
	Gte    *T  `schema:"gte" json:"gte,omitempty"`
	Lt     *T  `schema:"lt" json:"lt,omitempty"`
	Lte    *T  `schema:"lte" json:"lte,omitempty"`
	In     []T `schema:"in" json:"in,omitempty"`
	Before *T  `schema:"before" json:"before,omitempty"`
	After  *T  `schema:"after" json:"after,omitempty"`
}

func (s *Temporal[T]) Terms() []Term {
	if s == nil {
		return nil
	}
	o := Ordered[T]{Eq: s.Eq, Ne: s.Ne, Gt: s.Gt, Gte: s.Gte, Lt: s.Lt, Lte: s.Lte, In: s.In}
	terms := o.Terms()
	terms = appendOne(terms, OpBefore, s.Before)
	terms = appendOne(terms, OpAfter, s.After)
	return terms
}

type (
	NumberSet     = Ordered[int64]
	FloatSet      = Ordered[float64]
	DateSet       = Temporal[Date]
	DateTimeSet   = Temporal[DateTime]
	DateTimeTzSet = Temporal[time.Time]
)

// UUIDSet filters an identifier column. Identifiers have no useful order,
// so only equality and membership are accepted.
type UUIDSet struct {
	Eq *uuid.UUID  `schema:"eq" json:"eq,omitempty"`
	Ne *uuid.UUID  `schema:"ne" json:"ne,omitempty"`
	In []uuid.UUID `schema:"in" json:"in,omitempty"`
}

func (s *UUIDSet) Terms() []Term {
	if s == nil {
		return nil
	}
	var terms []Term
	terms = appendOne(terms, OpEq, s.Eq)
	terms = appendOne(terms, OpNe, s.Ne)
	terms = appendIn(terms, s.In)
	return terms
}
