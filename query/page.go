package query

import (
	"slices"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
)

// DefaultMaxLimit caps a page when the entity declares no limit of its own.
const DefaultMaxLimit = consts.DEFAULT_MAX_LIMIT

// Sortable is the per-entity pagination policy.
type Sortable interface {
	// SortableFields lists the columns a request may sort by. Any other sort
	// value is dropped, so the list doubles as an identifier allow-list.
	SortableFields() []string
	MaxLimit() int
}

// Policy is a Sortable built from plain values, e.g. loaded from config.
type Policy struct {
	Fields []string
	Max    int
}

func (p Policy) SortableFields() []string { return p.Fields }
func (p Policy) MaxLimit() int            { return p.Max }

// Page is a resolved pagination and sort request.
type Page struct {
	Offset    int
	Limit     int
	Sort      string // empty when no ORDER BY applies
	Direction Direction
	// Ignored holds a requested sort column that was not in the allow-list.
	Ignored string
}

// Sorted reports whether the page orders its rows.
func (p Page) Sorted() bool {
	return p.Sort != ""
}

// Paginate derives a Page from raw request values. It never fails: a missing
// or out-of-range value falls back to its default, and an unknown sort column
// is dropped.
func Paginate(start, end *int, sort, order *string, policy Sortable) Page {
	maxLimit := DefaultMaxLimit
	var fields []string
	if policy != nil {
		if m := policy.MaxLimit(); m > 0 {
			maxLimit = m
		}
		fields = policy.SortableFields()
	}

	p := Page{Offset: offset(start)}
	p.Limit = limit(end, p.Offset, maxLimit)

	if sort != nil && *sort != "" {
		if slices.Contains(fields, *sort) {
			p.Sort = *sort
		} else {
			p.Ignored = *sort
		}
	}
	if order != nil {
		p.Direction, _ = ParseDirection(*order)
	}
	return p
}

func offset(start *int) int {
	if start == nil || *start < 0 {
		return 0
	}
	return *start
}

func limit(end *int, offset, maxLimit int) int {
	if end == nil {
		return maxLimit
	}
	// offset is never negative, so the difference below cannot overflow
	if *end <= offset {
		return 1
	}
	return min(*end-offset, maxLimit)
}
