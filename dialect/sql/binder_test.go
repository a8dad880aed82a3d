package sql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forsaken1/jennifer/dialect"
)

func TestParseQuery(t *testing.T) {
	pg, err := dialect.ByName(dialect.Postgres)
	require.NoError(t, err)
	my, err := dialect.ByName(dialect.MySQL)
	require.NoError(t, err)

	tests := []struct {
		name  string
		d     dialect.Dialect
		query string
		argc  int
		want  string
	}{
		{
			name:  "PostgresNumbered",
			d:     pg,
			query: "SELECT * FROM users WHERE id = ? AND name = ?",
			argc:  2,
			want:  "SELECT * FROM users WHERE id = $1 AND name = $2",
		},
		{
			name:  "MySQLUnchanged",
			d:     my,
			query: "SELECT * FROM users WHERE id = ? AND name = ?",
			argc:  2,
			want:  "SELECT * FROM users WHERE id = ? AND name = ?",
		},
		{
			name:  "ZeroArgsPassthrough",
			d:     pg,
			query: "SELECT * FROM flags WHERE note = 'why?'",
			argc:  0,
			want:  "SELECT * FROM flags WHERE note = 'why?'",
		},
		{
			name:  "MarkerInsideLiteralKept",
			d:     pg,
			query: "SELECT * FROM flags WHERE note = 'why?' AND id = ?",
			argc:  1,
			want:  "SELECT * FROM flags WHERE note = 'why?' AND id = $1",
		},
		{
			name:  "NoMoreThanArgc",
			d:     pg,
			query: "a = ? AND b = ? AND c = ?",
			argc:  2,
			want:  "a = $1 AND b = $2 AND c = ?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.d, tt.query, tt.argc))
		})
	}
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, "NULL", Literal(nil))
	assert.Equal(t, "'pending'", Literal("pending"))
	assert.Equal(t, "42", Literal(42))
	assert.Equal(t, "3.14", Literal(3.14))
	assert.Equal(t, "true", Literal(true))

	ts := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "'2024-05-17 09:30:00'", Literal(ts))
}
