package dialect

import (
	"fmt"
	"strings"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"
)

// postgresTypes maps logical field kinds to PostgreSQL type names.
var postgresTypes = map[string]string{
	"bool":      "boolean",
	"integer":   "int",
	"short":     "smallint",
	"bigint":    "bigint",
	"float":     "real",
	"double":    "double precision",
	"decimal":   "numeric",
	"string":    "varchar",
	"char":      "char",
	"text":      "text",
	"time":      "time",
	"timestamp": "timestamp",
	"date":      "date",
	"blob":      "bytea",
	"json":      "jsonb",
}

// postgresSizes holds default rendered sizes per logical field kind.
var postgresSizes = map[string]int{
	"string": 254,
}

// PostgresDialect implements Dialect for PostgreSQL. It also implements
// EnumSupport, since PostgreSQL manages enums as standalone types.
type PostgresDialect struct{}

// Name returns the dialect name.
func (PostgresDialect) Name() string { return Postgres }

// TranslateType translates a logical field kind into a PostgreSQL type name.
func (PostgresDialect) TranslateType(kind string) (string, error) {
	t, ok := postgresTypes[kind]
	if !ok {
		return "", fmt.Errorf("dialect: postgres has no data type for %q", kind)
	}
	return t, nil
}

// DefaultTypeSize returns the default size for the logical field kind.
func (PostgresDialect) DefaultTypeSize(kind string) int { return postgresSizes[kind] }

// Placeholder returns the n-th PostgreSQL statement placeholder.
func (PostgresDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

// CreateEnumSQL renders the statement creating a new enum type.
func (PostgresDialect) CreateEnumSQL(name string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)", name, strings.Join(quoted, ", "))
}

// DropEnumSQL renders the statement dropping an enum type.
func (PostgresDialect) DropEnumSQL(name string) string {
	return fmt.Sprintf("DROP TYPE %s", name)
}

// ChangeEnumSQL renders the statements adding values to an enum type.
// PostgreSQL only supports appending values, one statement per value.
func (PostgresDialect) ChangeEnumSQL(name string, add []string) []string {
	stmts := make([]string, len(add))
	for i, v := range add {
		stmts[i] = fmt.Sprintf("ALTER TYPE %s ADD VALUE '%s'", name, v)
	}
	return stmts
}
