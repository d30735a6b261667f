// Package gormfilter turns filter sets into gorm clause expressions and
// applies them, with pagination, to a *gorm.DB as scopes.
//
//	db.Scopes(gormfilter.ApplyQuery(q)).Find(&users)
package gormfilter

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/filters"
)

// Field returns the condition set imposes on column, or nil when set is nil
// or empty. A set with several operators yields a clause.AndConditions,
// which gorm wraps in parentheses.
func Field(column string, set filters.Set) clause.Expression {
	return FieldColumn(clause.Column{Name: column}, set)
}

// FieldColumn is Field for a column that needs a table qualifier or alias.
func FieldColumn(col clause.Column, set filters.Set) clause.Expression {
	if set == nil {
		return nil
	}
	terms := set.Terms()
	if len(terms) == 0 {
		return nil
	}
	exprs := make([]clause.Expression, len(terms))
	for i, t := range terms {
		exprs[i] = leaf(col, t)
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	return clause.AndConditions{Exprs: exprs}
}

func leaf(col clause.Column, t filters.Term) clause.Expression {
	switch t.Op {
	case filters.OpEq:
		return clause.Eq{Column: col, Value: t.Value}
	case filters.OpNe:
		return clause.Neq{Column: col, Value: t.Value}
	case filters.OpGt:
		return clause.Gt{Column: col, Value: t.Value}
	case filters.OpGte, filters.OpAfter:
		return clause.Gte{Column: col, Value: t.Value}
	case filters.OpLt, filters.OpBefore:
		return clause.Lt{Column: col, Value: t.Value}
	case filters.OpLte:
		return clause.Lte{Column: col, Value: t.Value}
	case filters.OpIn:
		return clause.IN{Column: col, Values: t.Values}
	case filters.OpContains:
		return clause.Like{Column: col, Value: "%" + text(t.Value) + "%"}
	case filters.OpNotContains:
		return clause.Not(clause.Like{Column: col, Value: "%" + text(t.Value) + "%"})
	case filters.OpStartsWith:
		return clause.Like{Column: col, Value: text(t.Value) + "%"}
	case filters.OpEndsWith:
		return clause.Like{Column: col, Value: "%" + text(t.Value)}
	case filters.OpIContains:
		return clause.Expr{SQL: "LOWER(?) LIKE LOWER(?)", Vars: []any{col, "%" + text(t.Value) + "%"}}
	default:
		panic(fmt.Sprintf("gormfilter: unsupported operator %q", t.Op))
	}
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
