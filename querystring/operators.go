package querystring

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/filters"
)

var setType = reflect.TypeOf((*filters.Set)(nil)).Elem()

// checkOperators rejects keys that reach a filter set of dst without naming
// exactly one operator the set declares: filter.age.gtee, filter.age and
// filter.age.gte.x all fail. Keys that match no field are left alone.
func checkOperators(dst reflect.Type, values map[string][]string) error {
	if dst == nil {
		return nil
	}
	root := indirect(dst)
	if root.Kind() != reflect.Struct {
		return nil
	}
	var errs []error
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if err := checkKey(root, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkKey(t reflect.Type, key string) error {
	parts := strings.Split(key, ".")
	for i, part := range parts {
		f, ok := fieldByAlias(t, part)
		if !ok {
			return nil
		}
		if !isSet(f.Type) {
			if t = indirect(f.Type); t.Kind() != reflect.Struct {
				return nil
			}
			continue
		}

		field, ops := strings.Join(parts[:i+1], "."), parts[i+1:]
		if len(ops) == 0 {
			return fmt.Errorf("%s: missing operator", field)
		}
		set := indirect(f.Type)
		if set.Kind() != reflect.Struct {
			return nil
		}
		if _, ok := fieldByAlias(set, ops[0]); !ok {
			return fmt.Errorf("%s: unknown operator %q", field, ops[0])
		}
		if len(ops) > 1 {
			return fmt.Errorf("%s.%s: unexpected %q after operator", field, ops[0], strings.Join(ops[1:], "."))
		}
		return nil
	}
	return nil
}

// fieldByAlias finds the exported field gorilla/schema would decode name
// into, looking through embedded structs.
func fieldByAlias(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		alias, hasTag := schemaAlias(f)
		if alias == "-" {
			continue
		}
		if f.Anonymous && !hasTag {
			if et := indirect(f.Type); et.Kind() == reflect.Struct {
				if ef, ok := fieldByAlias(et, name); ok {
					return ef, true
				}
			}
			continue
		}
		if f.IsExported() && strings.EqualFold(alias, name) {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func schemaAlias(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("schema")
	if !ok {
		return f.Name, false
	}
	alias, _, _ := strings.Cut(tag, ",")
	if alias == "" {
		return f.Name, true
	}
	return alias, true
}

func isSet(t reflect.Type) bool {
	if t.Implements(setType) {
		return true
	}
	return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(setType)
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
