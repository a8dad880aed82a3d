package dialect

import (
	"github.com/forsaken1/jennifer"
)

// Dialect names. Each matches the name the corresponding database/sql
// driver registers under, so a dialect name is also a valid sql.Open name.
const (
	// MySQL is the name of the MySQL/MariaDB dialect.
	MySQL = "mysql"
	// Postgres is the name of the PostgreSQL dialect.
	Postgres = "postgres"
	// SQLite is the name of the SQLite dialect.
	SQLite = "sqlite"
)

// Dialect supplies the database-specific vocabulary the adapter core needs:
// type-name translation, default type sizes and placeholder rendering.
// The core holds a Dialect reference and never assumes a default
// implementation.
type Dialect interface {
	// Name returns the dialect name, e.g. "mysql".
	Name() string
	// TranslateType translates a logical field kind (e.g. "string",
	// "integer") into the dialect's SQL type name.
	TranslateType(kind string) (string, error)
	// DefaultTypeSize returns the default rendered size for the logical
	// field kind, or 0 when the type carries no size.
	DefaultTypeSize(kind string) int
	// Placeholder returns the n-th (1-based) statement placeholder.
	Placeholder(n int) string
}

// EnumSupport is the optional capability for dialects that manage enum
// types as standalone schema objects. Dialects without it cause the DDL
// layer to fail with an unsupported operation error.
type EnumSupport interface {
	// CreateEnumSQL renders the statement creating a new enum type.
	CreateEnumSQL(name string, values []string) string
	// DropEnumSQL renders the statement dropping an enum type.
	DropEnumSQL(name string) string
	// ChangeEnumSQL renders the statements adding values to an enum type.
	ChangeEnumSQL(name string, add []string) []string
}

// ByName returns the built-in Dialect for the given adapter name.
func ByName(name string) (Dialect, error) {
	switch name {
	case MySQL:
		return MySQLDialect{}, nil
	case Postgres:
		return PostgresDialect{}, nil
	case SQLite:
		return SQLiteDialect{}, nil
	default:
		return nil, jennifer.NewInvalidArgumentError("adapter", name)
	}
}
