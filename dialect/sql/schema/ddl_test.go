package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forsaken1/jennifer"
	"github.com/forsaken1/jennifer/dialect"
)

func nullable(b bool) *bool { return &b }

func mustDialect(t *testing.T, name string) dialect.Dialect {
	t.Helper()
	d, err := dialect.ByName(name)
	require.NoError(t, err)
	return d
}

func TestCreateTable(t *testing.T) {
	my := mustDialect(t, dialect.MySQL)

	t.Run("VersionsTable", func(t *testing.T) {
		stmt, err := CreateTable(my, &Table{
			Name: "schema_migrations",
			Columns: []*Column{
				{Name: "id", Serial: true, PrimaryKey: true, AutoIncrement: true},
				{Name: "version", Type: "string", Size: 17},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "CREATE TABLE schema_migrations (id serial PRIMARY KEY AUTO_INCREMENT, version varchar(17))", stmt)
	})

	t.Run("UnknownColumnType", func(t *testing.T) {
		_, err := CreateTable(my, &Table{
			Name:    "users",
			Columns: []*Column{{Name: "id", Type: "uuid4"}},
		})
		require.Error(t, err)
		assert.True(t, jennifer.IsInvalidArgument(err))
	})
}

func TestColumnDefinition(t *testing.T) {
	my := mustDialect(t, dialect.MySQL)
	pg := mustDialect(t, dialect.Postgres)

	tests := []struct {
		name string
		d    dialect.Dialect
		col  *Column
		want string
	}{
		{
			name: "DefaultSize",
			d:    my,
			col:  &Column{Name: "name", Type: "string"},
			want: "name varchar(254)",
		},
		{
			name: "ExplicitSize",
			d:    my,
			col:  &Column{Name: "code", Type: "string", Size: 3},
			want: "code varchar(3)",
		},
		{
			name: "Sizeless",
			d:    my,
			col:  &Column{Name: "age", Type: "integer"},
			want: "age int",
		},
		{
			name: "Serial",
			d:    pg,
			col:  &Column{Name: "id", Serial: true, PrimaryKey: true},
			want: "id serial PRIMARY KEY",
		},
		{
			name: "SQLTypeOverride",
			d:    pg,
			col:  &Column{Name: "tags", SQLType: "text[]"},
			want: "tags text[]",
		},
		{
			name: "Enum",
			d:    my,
			col:  &Column{Name: "status", Type: "enum", Enum: []string{"draft", "published"}},
			want: "status enum ('draft', 'published')",
		},
		{
			name: "NotNullWithDefault",
			d:    my,
			col:  &Column{Name: "state", Type: "string", Size: 10, Null: nullable(false), Default: "new"},
			want: "state varchar(10) NOT NULL DEFAULT 'new'",
		},
		{
			name: "ExplicitNull",
			d:    my,
			col:  &Column{Name: "bio", Type: "text", Null: nullable(true)},
			want: "bio text NULL",
		},
		{
			name: "NumericDefault",
			d:    pg,
			col:  &Column{Name: "score", Type: "integer", Default: 0},
			want: "score int DEFAULT 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColumnDefinition(tt.d, tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddIndex(t *testing.T) {
	tests := []struct {
		name string
		idx  *Index
		want string
	}{
		{
			name: "Plain",
			idx: &Index{
				Table:   "users",
				Name:    "users_email_idx",
				Columns: []IndexColumn{{Name: "email"}},
			},
			want: "CREATE INDEX users_email_idx ON users(email)",
		},
		{
			name: "Unique",
			idx: &Index{
				Table:   "users",
				Name:    "users_email_idx",
				Kind:    IndexUnique,
				Columns: []IndexColumn{{Name: "email"}},
			},
			want: "CREATE UNIQUE INDEX users_email_idx ON users(email)",
		},
		{
			name: "UniqAlias",
			idx: &Index{
				Table:   "users",
				Name:    "users_login_idx",
				Kind:    IndexUniq,
				Columns: []IndexColumn{{Name: "login"}},
			},
			want: "CREATE UNIQUE INDEX users_login_idx ON users(login)",
		},
		{
			name: "Fulltext",
			idx: &Index{
				Table:   "posts",
				Name:    "posts_body_idx",
				Kind:    IndexFulltext,
				Columns: []IndexColumn{{Name: "body"}},
			},
			want: "CREATE FULLTEXT INDEX posts_body_idx ON posts(body)",
		},
		{
			name: "Spatial",
			idx: &Index{
				Table:   "places",
				Name:    "places_point_idx",
				Kind:    IndexSpatial,
				Columns: []IndexColumn{{Name: "point"}},
			},
			want: "CREATE SPATIAL INDEX places_point_idx ON places(point)",
		},
		{
			name: "LengthAndOrder",
			idx: &Index{
				Table: "users",
				Name:  "users_name_idx",
				Columns: []IndexColumn{
					{Name: "last_name", Length: 10},
					{Name: "first_name", Order: "desc"},
				},
			},
			want: "CREATE INDEX users_name_idx ON users(last_name(10), first_name DESC)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddIndex(tt.idx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := AddIndex(&Index{Table: "users", Name: "bad", Kind: "hashed"})
		require.Error(t, err)
		assert.True(t, jennifer.IsInvalidArgument(err))
	})
}

func TestAlterStatements(t *testing.T) {
	my := mustDialect(t, dialect.MySQL)

	stmt, err := AddColumn(my, "users", &Column{Name: "age", Type: "integer"})
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE users ADD COLUMN age int", stmt)

	stmt, err = ChangeColumn(my, "users", "login", &Column{Name: "username", Type: "string", Size: 40})
	require.NoError(t, err)
	assert.Equal(t, "ALTER TABLE users CHANGE COLUMN login username varchar(40)", stmt)

	assert.Equal(t, "ALTER TABLE users DROP COLUMN age", DropColumn("users", "age"))
	assert.Equal(t, "DROP INDEX users_email_idx ON users", DropIndex("users", "users_email_idx"))
	assert.Equal(t, "ALTER TABLE people RENAME users", RenameTable("people", "users"))
	assert.Equal(t, "DROP TABLE users", DropTable("users"))
}
