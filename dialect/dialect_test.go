package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forsaken1/jennifer"
	"github.com/forsaken1/jennifer/dialect"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
	}{
		{dialect.MySQL},
		{dialect.Postgres},
		{dialect.SQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := dialect.ByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := dialect.ByName("oracle")
		require.Error(t, err)
		assert.True(t, jennifer.IsInvalidArgument(err))
	})
}

func TestTranslateType(t *testing.T) {
	tests := []struct {
		dialect string
		kind    string
		want    string
	}{
		{dialect.MySQL, "integer", "int"},
		{dialect.MySQL, "string", "varchar"},
		{dialect.MySQL, "bool", "bool"},
		{dialect.MySQL, "timestamp", "datetime"},
		{dialect.Postgres, "bool", "boolean"},
		{dialect.Postgres, "double", "double precision"},
		{dialect.Postgres, "blob", "bytea"},
		{dialect.SQLite, "bigint", "integer"},
		{dialect.SQLite, "json", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect+"/"+tt.kind, func(t *testing.T) {
			d, err := dialect.ByName(tt.dialect)
			require.NoError(t, err)
			got, err := d.TranslateType(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown_kind", func(t *testing.T) {
		d, err := dialect.ByName(dialect.MySQL)
		require.NoError(t, err)
		_, err = d.TranslateType("hyperloglog")
		assert.Error(t, err)
	})
}

func TestDefaultTypeSize(t *testing.T) {
	my, _ := dialect.ByName(dialect.MySQL)
	pg, _ := dialect.ByName(dialect.Postgres)
	lite, _ := dialect.ByName(dialect.SQLite)

	assert.Equal(t, 254, my.DefaultTypeSize("string"))
	assert.Equal(t, 0, my.DefaultTypeSize("integer"))
	assert.Equal(t, 254, pg.DefaultTypeSize("string"))
	assert.Equal(t, 0, lite.DefaultTypeSize("string"))
}

func TestPlaceholder(t *testing.T) {
	my, _ := dialect.ByName(dialect.MySQL)
	pg, _ := dialect.ByName(dialect.Postgres)

	assert.Equal(t, "?", my.Placeholder(1))
	assert.Equal(t, "?", my.Placeholder(7))
	assert.Equal(t, "$1", pg.Placeholder(1))
	assert.Equal(t, "$7", pg.Placeholder(7))
}

func TestEnumSupport(t *testing.T) {
	pg, _ := dialect.ByName(dialect.Postgres)
	es, ok := pg.(dialect.EnumSupport)
	require.True(t, ok)

	assert.Equal(t,
		"CREATE TYPE gender AS ENUM ('male', 'female')",
		es.CreateEnumSQL("gender", []string{"male", "female"}),
	)
	assert.Equal(t, "DROP TYPE gender", es.DropEnumSQL("gender"))
	assert.Equal(t,
		[]string{"ALTER TYPE gender ADD VALUE 'other'"},
		es.ChangeEnumSQL("gender", []string{"other"}),
	)

	my, _ := dialect.ByName(dialect.MySQL)
	_, ok = my.(dialect.EnumSupport)
	assert.False(t, ok)

	lite, _ := dialect.ByName(dialect.SQLite)
	_, ok = lite.(dialect.EnumSupport)
	assert.False(t, ok)
}
