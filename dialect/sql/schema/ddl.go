package schema

import (
	"fmt"
	"strings"

	"github.com/forsaken1/jennifer"
	"github.com/forsaken1/jennifer/dialect"
	"github.com/forsaken1/jennifer/dialect/sql"
)

// CreateTable renders the CREATE TABLE statement for the given spec.
func CreateTable(d dialect.Dialect, t *Table) (string, error) {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		def, err := ColumnDefinition(d, c)
		if err != nil {
			return "", err
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", t.Name, strings.Join(defs, ", ")), nil
}

// ColumnDefinition renders one column definition. The field order is
// fixed: type, size, enum list, nullability, primary key, default,
// auto-increment.
func ColumnDefinition(d dialect.Dialect, c *Column) (string, error) {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte(' ')
	switch {
	case c.Serial:
		sb.WriteString("serial")
	case c.SQLType != "":
		sb.WriteString(c.SQLType)
	default:
		t, err := d.TranslateType(c.Type)
		if err != nil {
			return "", jennifer.NewInvalidArgumentError("column type", c.Type)
		}
		sb.WriteString(t)
	}
	if !c.Serial {
		size := c.Size
		if size == 0 && c.SQLType == "" {
			size = d.DefaultTypeSize(c.Type)
		}
		if size > 0 {
			fmt.Fprintf(&sb, "(%d)", size)
		}
	}
	if len(c.Enum) > 0 {
		quoted := make([]string, len(c.Enum))
		for i, v := range c.Enum {
			quoted[i] = "'" + v + "'"
		}
		fmt.Fprintf(&sb, " (%s)", strings.Join(quoted, ", "))
	}
	if c.Null != nil {
		if *c.Null {
			sb.WriteString(" NULL")
		} else {
			sb.WriteString(" NOT NULL")
		}
	}
	if c.PrimaryKey {
		sb.WriteString(" PRIMARY KEY")
	}
	if c.Default != nil {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(sql.Literal(c.Default))
	}
	if c.AutoIncrement {
		sb.WriteString(" AUTO_INCREMENT")
	}
	return sb.String(), nil
}

// AddIndex renders the CREATE INDEX statement for the given spec. An
// unrecognized index kind fails with an invalid argument error.
func AddIndex(idx *Index) (string, error) {
	var kind string
	switch idx.Kind {
	case IndexPlain, IndexNone:
		kind = ""
	case IndexUnique, IndexUniq:
		kind = "UNIQUE "
	case IndexFulltext:
		kind = "FULLTEXT "
	case IndexSpatial:
		kind = "SPATIAL "
	default:
		return "", jennifer.NewInvalidArgumentError("index type", idx.Kind)
	}
	fields := make([]string, len(idx.Columns))
	for i, c := range idx.Columns {
		f := c.Name
		if c.Length > 0 {
			f += fmt.Sprintf("(%d)", c.Length)
		}
		if c.Order != "" {
			f += " " + strings.ToUpper(c.Order)
		}
		fields[i] = f
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s(%s)", kind, idx.Name, idx.Table, strings.Join(fields, ", ")), nil
}

// DropIndex renders the DROP INDEX statement.
func DropIndex(table, name string) string {
	return fmt.Sprintf("DROP INDEX %s ON %s", name, table)
}

// AddColumn renders the ALTER TABLE statement adding one column.
func AddColumn(d dialect.Dialect, table string, c *Column) (string, error) {
	def, err := ColumnDefinition(d, c)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, def), nil
}

// DropColumn renders the ALTER TABLE statement dropping one column.
func DropColumn(table, name string) string {
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", table, name)
}

// ChangeColumn renders the ALTER TABLE statement redefining one column,
// possibly under a new name.
func ChangeColumn(d dialect.Dialect, table, old string, c *Column) (string, error) {
	def, err := ColumnDefinition(d, c)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER TABLE %s CHANGE COLUMN %s %s", table, old, def), nil
}

// RenameTable renders the ALTER TABLE statement renaming a table.
func RenameTable(old, name string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME %s", old, name)
}

// DropTable renders the DROP TABLE statement.
func DropTable(name string) string {
	return fmt.Sprintf("DROP TABLE %s", name)
}
