// Package schema implements the DDL side of the Jennifer adapter: the
// structured table, column and index specifications produced by the
// migration DSL, the dialect-flavored statement renderers over them, and
// the orchestrator that drives rendered statements through the execution
// engine. The package never accepts raw DDL text from the migration
// boundary.
package schema

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"
)

// Index kinds accepted by AddIndex. Anything else is rejected with an
// invalid argument error.
const (
	IndexPlain    = ""
	IndexNone     = "none"
	IndexUnique   = "unique"
	IndexUniq     = "uniq"
	IndexFulltext = "fulltext"
	IndexSpatial  = "spatial"
)

// Column describes one column of a table. It is built once by the
// migration DSL and consumed once by the DDL renderers.
type Column struct {
	// Name is the column name.
	Name string
	// Type is the logical field kind ("string", "integer", ...) the
	// dialect translates into its SQL type name.
	Type string
	// SQLType overrides the dialect translation with an explicit SQL
	// type name.
	SQLType string
	// Size is the rendered type size. Zero means the dialect default for
	// the logical kind, which may itself be none.
	Size int
	// Null renders NULL or NOT NULL when set; nothing when nil.
	Null *bool
	// PrimaryKey marks the column PRIMARY KEY.
	PrimaryKey bool
	// AutoIncrement marks the column AUTO_INCREMENT.
	AutoIncrement bool
	// Serial renders the column type as "serial", ignoring Type and Size.
	Serial bool
	// Default is the inline default literal, rendered trusted.
	Default any
	// Enum holds the value list for enum-typed columns.
	Enum []string
}

// IndexColumn is one indexed field with its optional per-field overrides.
type IndexColumn struct {
	Name string
	// Length renders a prefix length, MySQL style.
	Length int
	// Order renders ASC or DESC when set.
	Order string
}

// Index describes one index over a table.
type Index struct {
	Table string
	Name  string
	// Kind is one of the Index* constants.
	Kind    string
	Columns []IndexColumn
}

// Table describes one table: its columns and secondary indexes.
type Table struct {
	Name    string
	Columns []*Column
	Indexes []*Index
}

// Nullable reports whether the column is explicitly nullable.
func (c *Column) Nullable() bool {
	return c.Null != nil && *c.Null
}

// Column returns the table's column with the given name, if any.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// TableName derives the conventional table name for a model name, e.g.
// "SchemaMigration" becomes "schema_migrations".
func TableName(model string) string {
	return inflect.Tableize(model)
}

// DefaultIndexName derives the conventional name for an index over the
// given fields.
func DefaultIndexName(table string, fields ...string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = inflect.Underscore(f)
	}
	return fmt.Sprintf("%s_%s_idx", table, strings.Join(parts, "_"))
}
