package fuzz

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/filters"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/gormdb"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/gormfilter"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/query"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/querystring"
)

type row struct {
	ID        uint
	Name      string
	Age       int
	Score     float64
	Birthday  time.Time
	CreatedAt time.Time
}

func (row) TableName() string { return "test" }

type rowFilters struct {
	ID        *filters.UUIDSet     `schema:"id"`
	Name      *filters.StringSet   `schema:"name"`
	Age       *filters.NumberSet   `schema:"age"`
	Score     *filters.FloatSet    `schema:"score"`
	Birthday  *filters.DateSet     `schema:"birthday"`
	CreatedAt *filters.DateTimeSet `schema:"created_at"`
}

func (f rowFilters) Conditions() clause.AndConditions { return gormfilter.Auto(f) }
func (rowFilters) SortableFields() []string           { return []string{"name", "age", "created_at"} }
func (rowFilters) MaxLimit() int                      { return 50 }

type parsed struct {
	Stmts []struct {
		Stmt map[string]json.RawMessage `json:"stmt"`
	} `json:"stmts"`
}

func mustParseOne(t *testing.T, in, sql, kind string) {
	t.Helper()
	j, err := pg_query.ParseToJSON(sql)
	if err != nil {
		t.Fatalf("%q %q %v", in, sql, err)
	}
	var p parsed
	if err := json.Unmarshal([]byte(j), &p); err != nil {
		t.Fatal(err)
	}
	if len(p.Stmts) != 1 {
		t.Fatal(sql, "len(p.Stmts) != 1")
	}
	if _, ok := p.Stmts[0].Stmt[kind]; !ok {
		t.Fatal(sql, "not a", kind)
	}
	if strings.Contains(j, "CommentStmt") {
		t.Fatal(sql, "CommentStmt found")
	}
}

func FuzzListQuery(f *testing.F) {
	tcs := []string{
		`age[lt]=50&age[gte]=20&name[contains]=John&start=10&end=100&sort=age&order=DESC`,
		`name[eq]=O'Brien`,
		`name[i_contains]=%25_%25&name[not_contains]=--`,
		`name[in]=a&name[in]=b&name[in]=c`,
		`name[starts_with]=');DROP TABLE test;--`,
		`id[eq]=f9168c5e-ceb2-4faa-b6bf-329bf39fa1e4`,
		`id[in][]=f9168c5e-ceb2-4faa-b6bf-329bf39fa1e4&id[in][]=7b5d8d3e-6a1c-4f7e-9f0a-2d6c1b8e4a90`,
		`score[gt]=1.5&score[lte]=1e300`,
		`birthday[before]=2022-10-15&birthday[after]=2000-01-01`,
		`created_at[gte]=2022-10-15T10:30:05`,
		`sort=password_hash;--&order=sideways`,
		`sort="name"&order=asc`,
		`start=-10&end=-20`,
		`start=99999999&end=1`,
		``,
	}
	for _, tc := range tcs {
		f.Add(tc)
	}

	db, err := gormdb.Preview(consts.DIALECT_POSTGRES)
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, in string) {
		var q query.Query[rowFilters]
		if err := querystring.Decode(in, &q); err != nil {
			return
		}

		sql, _, err := gormdb.Statement(db, func(tx *gorm.DB) *gorm.DB {
			return tx.Scopes(gormfilter.ApplyQuery(&q)).Find(&[]row{})
		})
		if err != nil {
			t.Fatal(in, err)
		}
		mustParseOne(t, in, sql, "SelectStmt")

		sql, _, err = gormdb.Statement(db, func(tx *gorm.DB) *gorm.DB {
			return tx.Scopes(gormfilter.ApplyDelete(&q)).Delete(&row{})
		})
		if errors.Is(err, gorm.ErrMissingWhereClause) {
			return
		}
		if err != nil {
			t.Fatal(in, err)
		}
		mustParseOne(t, in, sql, "DeleteStmt")
	})
}
