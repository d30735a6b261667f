package gormfilter

import (
	"reflect"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/logging"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/query"
)

// Entity is a row filter struct that also carries its pagination policy.
// Implement both with value receivers so the zero value can answer.
type Entity interface {
	Conditioner
	query.Sortable
}

// Where adds the conditions of c to the statement. gorm ANDs them with any
// condition already present. Nothing is added when c is nil or empty.
func Where(c Conditioner) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if isNil(c) {
			return db
		}
		and := c.Conditions()
		if len(and.Exprs) == 0 {
			return db
		}
		return db.Where(and)
	}
}

// Paginate adds ORDER BY when p is sorted, then LIMIT and OFFSET.
func Paginate(p query.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Ignored != "" {
			logging.Debug(db.Statement.Context, "sort column not sortable, ignoring", zap.String("sort", p.Ignored))
		}
		if p.Sorted() {
			db = db.Order(clause.OrderByColumn{
				Column: clause.Column{Name: p.Sort},
				Desc:   p.Direction == query.Descending,
			})
		}
		if p.Limit > 0 {
			db = db.Limit(p.Limit)
		}
		if p.Offset > 0 {
			db = db.Offset(p.Offset)
		}
		return db
	}
}

// Apply filters with c, then paginates with p.
func Apply(c Conditioner, p query.Page) func(*gorm.DB) *gorm.DB {
	where, page := Where(c), Paginate(p)
	return func(db *gorm.DB) *gorm.DB {
		return page(where(db))
	}
}

// ApplyQuery applies a decoded list request, using the filter type's own
// pagination policy.
func ApplyQuery[T Entity](q *query.Query[T]) func(*gorm.DB) *gorm.DB {
	return ApplyQueryWith(q, policyOf[T]())
}

// ApplyQueryWith is ApplyQuery with the pagination policy supplied
// separately, e.g. from config.
func ApplyQueryWith[T Conditioner](q *query.Query[T], policy query.Sortable) func(*gorm.DB) *gorm.DB {
	if q == nil {
		q = &query.Query[T]{}
	}
	return Apply(filterOf(q), q.Page(policy))
}

// ApplyDelete applies a list request to a DELETE: the filter, the sort and a
// limit counted from the first row. The start of the request is ignored
// since DELETE has no OFFSET. Dialects without DELETE ... LIMIT (postgres)
// drop the ORDER BY and LIMIT.
func ApplyDelete[T Entity](q *query.Query[T]) func(*gorm.DB) *gorm.DB {
	if q == nil {
		q = &query.Query[T]{}
	}
	policy := policyOf[T]()
	p := q.Page(policy)
	p.Offset = 0
	p.Limit = q.Limit(0, policy.MaxLimit())
	return Apply(filterOf(q), p)
}

// policyOf returns the zero value of T to answer the policy methods. A
// pointer T gets a fresh pointee instead of nil.
func policyOf[T query.Sortable]() T {
	var policy T
	if t := reflect.TypeOf((*T)(nil)).Elem(); t.Kind() == reflect.Pointer {
		policy = reflect.New(t.Elem()).Interface().(T)
	}
	return policy
}

func filterOf[T Conditioner](q *query.Query[T]) Conditioner {
	if q.Filter == nil {
		return nil
	}
	return *q.Filter
}

func isNil(c Conditioner) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
