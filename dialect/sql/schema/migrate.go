package schema

import (
	"context"

	"github.com/forsaken1/jennifer"
	"github.com/forsaken1/jennifer/dialect"
	"github.com/forsaken1/jennifer/dialect/sql"
)

// Migrate assembles dialect-flavored DDL statements from structured specs
// and drives them through the execution engine. It is the only path the
// migration DSL uses to touch the database.
type Migrate struct {
	drv     *sql.Driver
	dialect dialect.Dialect
}

// NewMigrate returns a Migrate running on the given driver.
func NewMigrate(drv *sql.Driver) (*Migrate, error) {
	d, err := dialect.ByName(drv.Dialect())
	if err != nil {
		return nil, err
	}
	return &Migrate{drv: drv, dialect: d}, nil
}

func (m *Migrate) exec(ctx context.Context, stmt string) error {
	_, err := m.drv.Exec(ctx, stmt)
	return err
}

// CreateTable creates the given table.
func (m *Migrate) CreateTable(ctx context.Context, t *Table) error {
	stmt, err := CreateTable(m.dialect, t)
	if err != nil {
		return err
	}
	if err := m.exec(ctx, stmt); err != nil {
		return err
	}
	for _, idx := range t.Indexes {
		if err := m.AddIndex(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

// DropTable drops the given table.
func (m *Migrate) DropTable(ctx context.Context, name string) error {
	return m.exec(ctx, DropTable(name))
}

// RenameTable renames a table.
func (m *Migrate) RenameTable(ctx context.Context, old, name string) error {
	return m.exec(ctx, RenameTable(old, name))
}

// AddColumn adds a column to an existing table.
func (m *Migrate) AddColumn(ctx context.Context, table string, c *Column) error {
	stmt, err := AddColumn(m.dialect, table, c)
	if err != nil {
		return err
	}
	return m.exec(ctx, stmt)
}

// DropColumn drops a column from an existing table.
func (m *Migrate) DropColumn(ctx context.Context, table, name string) error {
	return m.exec(ctx, DropColumn(table, name))
}

// ChangeColumn redefines a column, possibly under a new name.
func (m *Migrate) ChangeColumn(ctx context.Context, table, old string, c *Column) error {
	stmt, err := ChangeColumn(m.dialect, table, old, c)
	if err != nil {
		return err
	}
	return m.exec(ctx, stmt)
}

// AddIndex creates the given index.
func (m *Migrate) AddIndex(ctx context.Context, idx *Index) error {
	stmt, err := AddIndex(idx)
	if err != nil {
		return err
	}
	return m.exec(ctx, stmt)
}

// DropIndex drops the given index.
func (m *Migrate) DropIndex(ctx context.Context, table, name string) error {
	return m.exec(ctx, DropIndex(table, name))
}

// enumSupport returns the dialect's enum capability, or an unsupported
// operation error naming op.
func (m *Migrate) enumSupport(op string) (dialect.EnumSupport, error) {
	es, ok := m.dialect.(dialect.EnumSupport)
	if !ok {
		return nil, jennifer.NewUnsupportedOperationError(m.dialect.Name(), op)
	}
	return es, nil
}

// CreateEnum creates a standalone enum type on dialects that support it.
func (m *Migrate) CreateEnum(ctx context.Context, name string, values []string) error {
	es, err := m.enumSupport("create enum")
	if err != nil {
		return err
	}
	return m.exec(ctx, es.CreateEnumSQL(name, values))
}

// DropEnum drops a standalone enum type on dialects that support it.
func (m *Migrate) DropEnum(ctx context.Context, name string) error {
	es, err := m.enumSupport("drop enum")
	if err != nil {
		return err
	}
	return m.exec(ctx, es.DropEnumSQL(name))
}

// ChangeEnum appends values to a standalone enum type on dialects that
// support it.
func (m *Migrate) ChangeEnum(ctx context.Context, name string, add []string) error {
	es, err := m.enumSupport("change enum")
	if err != nil {
		return err
	}
	for _, stmt := range es.ChangeEnumSQL(name, add) {
		if err := m.exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
