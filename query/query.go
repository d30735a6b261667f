// Package query models a list request: the start/end/sort/order window of
// an admin-panel style endpoint plus the entity's row filters.
package query

// Query is one decoded list request. Filter is nil when the request filters nothing.
type Query[T any] struct {
	Start  *int    `schema:"start" json:"start,omitempty"`
	End    *int    `schema:"end" json:"end,omitempty"`
	Sort   *string `schema:"sort" json:"sort,omitempty"`
	Order  *string `schema:"order" json:"order,omitempty"`
	Filter *T      `schema:"filter" json:"filter,omitempty"`
}

// Offset is the first row of the page, never negative.
func (q *Query[T]) Offset() int {
	return offset(q.Start)
}

// Limit is the page size for the given offset, between 1 and maxLimit.
func (q *Query[T]) Limit(offset, maxLimit int) int {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return limit(q.End, offset, maxLimit)
}

// Direction is the requested order, Ascending unless "desc" was sent.
func (q *Query[T]) Direction() Direction {
	if q.Order == nil {
		return Ascending
	}
	d, _ := ParseDirection(*q.Order)
	return d
}

// Page resolves the request against policy.
func (q *Query[T]) Page(policy Sortable) Page {
	return Paginate(q.Start, q.End, q.Sort, q.Order, policy)
}
