package sql

import (
	"fmt"
	"strings"
	"time"

	"github.com/forsaken1/jennifer/dialect"
)

// ParseQuery rewrites the generic `?` argument markers of a query-builder
// fragment into the dialect's native placeholders, one per argument and in
// order. Markers inside string literals are left untouched, and a query
// with zero arguments passes through unchanged.
func ParseQuery(d dialect.Dialect, query string, argc int) string {
	if argc == 0 {
		return query
	}
	var (
		sb       strings.Builder
		n        int
		inString bool
	)
	sb.Grow(len(query))
	for _, r := range query {
		switch {
		case r == '\'':
			inString = !inString
			sb.WriteRune(r)
		case r == '?' && !inString && n < argc:
			n++
			sb.WriteString(d.Placeholder(n))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Literal renders a trusted value as an inline SQL literal: nil becomes
// NULL, strings are single-quoted with no further escaping, times use the
// SQL datetime form and everything else its natural textual form. This
// path is for trusted DDL defaults only; untrusted values must be
// parameterized.
func Literal(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + v + "'"
	case time.Time:
		return "'" + v.Format("2006-01-02 15:04:05") + "'"
	default:
		return fmt.Sprintf("%v", v)
	}
}
