package gormfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/clause"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/filters"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/internal/testutil"
)

type auditFilters struct {
	CreatedAt *filters.DateTimeSet
}

type orderFilters struct {
	auditFilters
	CustomerName *filters.StringSet `gorm:"column:customer"`
	Total        *filters.FloatSet  `filter:"amount_total"`
	Status       filters.StringSet
	Internal     *filters.StringSet `filter:"-"`
	Any          filters.Set
	note         *filters.StringSet
	Count        int
}

func (f orderFilters) Conditions() clause.AndConditions { return Auto(f) }

func TestAutoMatchesHandWritten(t *testing.T) {
	f := johnInHisPrime()
	assert.Equal(t, f.Conditions(), Auto(f))
	assert.Equal(t, f.Conditions(), Auto(*f))
}

func TestAutoColumnsAndOrder(t *testing.T) {
	at := filters.NewDateTime(2024, 1, 1, 0, 0, 0)
	f := orderFilters{
		auditFilters: auditFilters{CreatedAt: &filters.DateTimeSet{After: &at}},
		CustomerName: &filters.StringSet{Eq: filters.Ptr("ACME")},
		Total:        &filters.FloatSet{Gte: filters.Ptr(10.0)},
		Status:       filters.StringSet{In: []string{"paid", "shipped"}},
		Internal:     &filters.StringSet{Eq: filters.Ptr("hidden")},
		Any:          &filters.NumberSet{Eq: filters.Ptr(int64(1))},
		note:         &filters.StringSet{Eq: filters.Ptr("private")},
		Count:        3,
	}
	want := All(
		clause.Gte{Column: clause.Column{Name: "created_at"}, Value: at},
		clause.Eq{Column: clause.Column{Name: "customer"}, Value: "ACME"},
		clause.Gte{Column: clause.Column{Name: "amount_total"}, Value: 10.0},
		clause.IN{Column: clause.Column{Name: "status"}, Values: []any{"paid", "shipped"}},
		clause.Eq{Column: clause.Column{Name: "any"}, Value: int64(1)},
	)
	assert.Equal(t, want, f.Conditions())
}

func TestAutoSkipsUnset(t *testing.T) {
	assert.Empty(t, Auto(orderFilters{}).Exprs)
	assert.Empty(t, Auto((*orderFilters)(nil)).Exprs)
	assert.Empty(t, Auto(nil).Exprs)
	assert.Empty(t, Auto(42).Exprs)
}

func TestAutoRenders(t *testing.T) {
	f := orderFilters{
		CustomerName: &filters.StringSet{StartsWith: filters.Ptr("AC")},
		Total:        &filters.FloatSet{Gt: filters.Ptr(1.5), Lte: filters.Ptr(99.5)},
	}
	got := testutil.FindSQL(testutil.Postgres(t), Where(f))
	assert.Equal(t,
		`SELECT * FROM "users" WHERE "customer" LIKE 'AC%' AND ("amount_total" > 1.5 AND "amount_total" <= 99.5)`,
		got)
}
