package dialect

import (
	"fmt"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// sqliteTypes maps logical field kinds to SQLite type names. SQLite uses
// type affinity, so the names mostly matter for schema readability.
var sqliteTypes = map[string]string{
	"bool":      "integer",
	"integer":   "integer",
	"short":     "integer",
	"bigint":    "integer",
	"float":     "real",
	"double":    "real",
	"decimal":   "numeric",
	"string":    "varchar",
	"char":      "char",
	"text":      "text",
	"time":      "text",
	"timestamp": "datetime",
	"date":      "date",
	"blob":      "blob",
	"json":      "text",
}

// SQLiteDialect implements Dialect for SQLite.
type SQLiteDialect struct{}

// Name returns the dialect name.
func (SQLiteDialect) Name() string { return SQLite }

// TranslateType translates a logical field kind into a SQLite type name.
func (SQLiteDialect) TranslateType(kind string) (string, error) {
	t, ok := sqliteTypes[kind]
	if !ok {
		return "", fmt.Errorf("dialect: sqlite has no data type for %q", kind)
	}
	return t, nil
}

// DefaultTypeSize returns the default size for the logical field kind.
// SQLite ignores declared sizes, so none are rendered by default.
func (SQLiteDialect) DefaultTypeSize(string) int { return 0 }

// Placeholder returns the SQLite statement placeholder.
func (SQLiteDialect) Placeholder(int) string { return "?" }
