package marketstack

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is a single query parameter. Value may be nil, a string, any numeric
// type, a bool, a fmt.Stringer, or a pointer to one of those.
type Param struct {
	Key   string
	Value any
}

// Query is an ordered list of query parameters. Order is preserved on the wire.
type Query []Param

// Add appends a parameter and returns the extended query.
func (q Query) Add(key string, value any) Query {
	return append(q, Param{Key: key, Value: value})
}

// Encode serializes the query as key=value pairs joined with '&'.
// Parameters whose value is nil, a nil pointer or the empty string are omitted
// entirely rather than encoded as empty values.
func (q Query) Encode() string {
	var b strings.Builder
	for _, p := range q {
		if p.Key == "" {
			continue
		}
		v, ok := formatValue(p.Value)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String()
}

// BuildQueryString returns the full query string for a request: access_key
// always comes first, followed by the encoded query when it is not empty.
func BuildQueryString(accessKey string, q Query) string {
	s := "access_key=" + url.QueryEscape(accessKey)
	if extra := q.Encode(); extra != "" {
		s += "&" + extra
	}
	return s
}

func formatValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}

	var s string
	switch rv.Kind() {
	case reflect.String:
		s = rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s = strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s = strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		s = strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		s = strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Bool:
		s = strconv.FormatBool(rv.Bool())
	default:
		if st, ok := rv.Interface().(fmt.Stringer); ok {
			s = st.String()
		} else {
			s = fmt.Sprint(rv.Interface())
		}
	}
	return s, s != ""
}
