package gormfilter

import (
	"reflect"
	"strings"
	"sync"

	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/filters"
)

// Conditioner is implemented once per row filter struct. Conditions returns
// the AND of every filtered column, empty when nothing is filtered.
type Conditioner interface {
	Conditions() clause.AndConditions
}

// All joins exprs with AND, skipping nil ones. The result is never nil and
// may be empty. Columns are joined in argument order.
//
//	func (f UserFilters) Conditions() clause.AndConditions {
//		return gormfilter.All(
//			gormfilter.Field("name", f.Name),
//			gormfilter.Field("age", f.Age),
//		)
//	}
func All(exprs ...clause.Expression) clause.AndConditions {
	and := clause.AndConditions{Exprs: make([]clause.Expression, 0, len(exprs))}
	for _, e := range exprs {
		if e != nil {
			and.Exprs = append(and.Exprs, e)
		}
	}
	return and
}

// Predicate returns and as a single expression usable anywhere gorm takes
// one. An empty conjunction becomes the always-true 1 = 1.
func Predicate(and clause.AndConditions) clause.Expression {
	switch len(and.Exprs) {
	case 0:
		return clause.Expr{SQL: "1 = 1"}
	case 1:
		return and.Exprs[0]
	default:
		return and
	}
}

var setType = reflect.TypeOf((*filters.Set)(nil)).Elem()

type autoField struct {
	index  []int
	column string
	ptr    bool // the field itself implements filters.Set
}

var autoFields sync.Map // reflect.Type -> []autoField

// Auto builds the conjunction of a row filter struct by reflection: every
// exported filters.Set field, in declaration order, filters the column named
// by its gorm column tag, its filter tag, or else its snake_cased name.
// filter:"-" skips a field. Embedded structs are flattened.
func Auto(v any) clause.AndConditions {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return All()
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return All()
	}

	fields := fieldsOf(rv.Type())
	exprs := make([]clause.Expression, 0, len(fields))
	for _, f := range fields {
		fv := rv.FieldByIndex(f.index)
		var set filters.Set
		if f.ptr {
			if (fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface) && fv.IsNil() {
				continue
			}
			set = fv.Interface().(filters.Set)
		} else {
			p := reflect.New(fv.Type())
			p.Elem().Set(fv)
			set = p.Interface().(filters.Set)
		}
		exprs = append(exprs, Field(f.column, set))
	}
	return All(exprs...)
}

func fieldsOf(t reflect.Type) []autoField {
	if cached, ok := autoFields.Load(t); ok {
		return cached.([]autoField)
	}
	fields := collectFields(t, nil)
	autoFields.Store(t, fields)
	return fields
}

func collectFields(t reflect.Type, parent []int) []autoField {
	var naming schema.NamingStrategy
	var out []autoField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), parent...), i)

		ptr := sf.Type.Implements(setType)
		byAddr := !ptr && reflect.PointerTo(sf.Type).Implements(setType)
		if !ptr && !byAddr {
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				out = append(out, collectFields(sf.Type, index)...)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		column := columnName(sf, naming)
		if column == "" {
			continue
		}
		out = append(out, autoField{index: index, column: column, ptr: ptr})
	}
	return out
}

func columnName(sf reflect.StructField, naming schema.NamingStrategy) string {
	tag := sf.Tag.Get("filter")
	if tag == "-" {
		return ""
	}
	if col := schema.ParseTagSetting(sf.Tag.Get("gorm"), ";")["COLUMN"]; col != "" {
		return col
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return naming.ColumnName("", sf.Name)
}
