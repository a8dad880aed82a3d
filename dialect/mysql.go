package dialect

import (
	"fmt"

	// Registers the "mysql" database/sql driver.
	_ "github.com/go-sql-driver/mysql"
)

// mysqlTypes maps logical field kinds to MySQL type names.
var mysqlTypes = map[string]string{
	"bool":      "bool",
	"integer":   "int",
	"short":     "smallint",
	"bigint":    "bigint",
	"float":     "float",
	"double":    "double",
	"decimal":   "decimal",
	"string":    "varchar",
	"char":      "char",
	"text":      "text",
	"time":      "time",
	"timestamp": "datetime",
	"date":      "date",
	"blob":      "blob",
	"json":      "json",
	"enum":      "enum",
}

// mysqlSizes holds default rendered sizes per logical field kind.
var mysqlSizes = map[string]int{
	"string": 254,
}

// MySQLDialect implements Dialect for MySQL/MariaDB.
type MySQLDialect struct{}

// Name returns the dialect name.
func (MySQLDialect) Name() string { return MySQL }

// TranslateType translates a logical field kind into a MySQL type name.
func (MySQLDialect) TranslateType(kind string) (string, error) {
	t, ok := mysqlTypes[kind]
	if !ok {
		return "", fmt.Errorf("dialect: mysql has no data type for %q", kind)
	}
	return t, nil
}

// DefaultTypeSize returns the default size for the logical field kind.
func (MySQLDialect) DefaultTypeSize(kind string) int { return mysqlSizes[kind] }

// Placeholder returns the MySQL statement placeholder.
func (MySQLDialect) Placeholder(int) string { return "?" }
