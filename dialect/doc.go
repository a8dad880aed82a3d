// Package dialect provides database dialect abstraction for the Jennifer
// adapter layer.
//
// This package defines the capability interface the adapter core calls but
// does not implement: logical-to-SQL type translation, default type sizes,
// placeholder rendering, and optional enum DDL support.
//
// # Supported Dialects
//
// Each dialect is identified by a constant string matching the name its
// database/sql driver registers under:
//
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//
// # Dialect Interface
//
// The Dialect interface is the contract between the adapter core and a
// concrete database engine:
//
//	type Dialect interface {
//	    Name() string
//	    TranslateType(kind string) (string, error)
//	    DefaultTypeSize(kind string) int
//	    Placeholder(n int) string
//	}
//
// # Enum Support
//
// Enum DDL is an optional capability. Dialects that can create standalone
// enum types implement EnumSupport; the DDL layer fails with an unsupported
// operation error for the rest:
//
//	if es, ok := d.(dialect.EnumSupport); ok {
//	    stmt := es.CreateEnumSQL("gender", []string{"male", "female"})
//	    ...
//	}
//
// # Usage
//
// Looking up a dialect by adapter name:
//
//	d, err := dialect.ByName(dialect.Postgres)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Importing this package also registers the MySQL, PostgreSQL and SQLite
// database/sql drivers.
package dialect
