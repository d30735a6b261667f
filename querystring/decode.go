// Package querystring decodes admin-panel style list requests such as
//
//	?start=10&end=100&sort=age&order=DESC&filter[age][gte]=20&filter[name][contains]=John
//
// into typed filter structs with gorilla/schema.
package querystring

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/schema"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/filters"
)

// ErrDecode wraps every decoding failure. The gorilla/schema MultiError,
// when there is one, stays reachable with errors.As.
var ErrDecode = errors.New("decode query string")

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("schema")
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(uuid.UUID{}, convertUUID)
	d.RegisterConverter(filters.Date{}, convertDate)
	d.RegisterConverter(filters.DateTime{}, convertDateTime)
	d.RegisterConverter(time.Time{}, convertTime)
	return d
}

// Decode parses raw, with or without its leading '?', into dst. Values of
// keys that normalize to the same path keep the order they have in raw.
func Decode(raw string, dst any) error {
	values, err := parseOrdered(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return decode(values, dst)
}

// DecodeValues decodes already parsed values, e.g. r.URL.Query(), into dst.
// Keys that match no field are ignored. A key that reaches a filter set must
// name one of its operators.
func DecodeValues(values url.Values, dst any) error {
	return decode(Normalize(values), dst)
}

func decode(values url.Values, dst any) error {
	if err := checkOperators(reflect.TypeOf(dst), values); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := decoder.Decode(dst, values); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// Normalize rewrites bracket keys into the dotted paths gorilla/schema
// reads: filter[age][gte] becomes filter.age.gte and id[in][] becomes id.in.
// Values of keys that end up equal are merged in sorted key order.
func Normalize(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for _, k := range slices.Sorted(maps.Keys(values)) {
		nk := normalizeKey(k)
		out[nk] = append(out[nk], values[k]...)
	}
	return out
}

// parseOrdered is url.ParseQuery with normalized keys, appending values in
// the order they appear in raw.
func parseOrdered(raw string) (url.Values, error) {
	out := make(url.Values)
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		if strings.Contains(pair, ";") {
			return nil, errors.New("invalid semicolon separator in query")
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, err
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, err
		}
		nk := normalizeKey(key)
		out[nk] = append(out[nk], value)
	}
	return out, nil
}

func normalizeKey(key string) string {
	i := strings.IndexByte(key, '[')
	if i <= 0 {
		return key
	}
	var b strings.Builder
	b.WriteString(key[:i])
	rest := key[i:]
	for rest != "" {
		if rest[0] != '[' {
			return key
		}
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			return key
		}
		if seg := rest[1:j]; seg != "" {
			b.WriteByte('.')
			b.WriteString(seg)
		}
		rest = rest[j+1:]
	}
	return b.String()
}

func convertUUID(s string) reflect.Value {
	id, err := uuid.Parse(s)
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(id)
}

func convertDate(s string) reflect.Value {
	d, err := filters.ParseDate(s)
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(d)
}

func convertDateTime(s string) reflect.Value {
	d, err := filters.ParseDateTime(s)
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(d)
}

func convertTime(s string) reflect.Value {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(t)
}
