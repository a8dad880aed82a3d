package sql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockStatsDriver(t *testing.T, opts ...StatsOption) (*StatsDriver, sqlmock.Sqlmock) {
	t.Helper()
	drv, mock := mockDriver(t, "postgres")
	return NewStatsDriver(drv, opts...), mock
}

func TestStatsCounters(t *testing.T) {
	drv, mock := mockStatsDriver(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT count(*) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM nowhere").
		WillReturnError(errors.New("no such table"))

	require.NoError(t, drv.Query(ctx, "SELECT id FROM users", nil, nil))
	_, err := drv.Scalar(ctx, "SELECT count(*) FROM users")
	require.NoError(t, err)
	_, err = drv.Exec(ctx, "DELETE FROM sessions")
	require.NoError(t, err)
	_, err = drv.Exec(ctx, "DELETE FROM nowhere")
	require.Error(t, err)

	snap := drv.QueryStats().Stats()
	assert.EqualValues(t, 2, snap.TotalQueries)
	assert.EqualValues(t, 2, snap.TotalExecs)
	assert.EqualValues(t, 1, snap.Errors)
	assert.Positive(t, snap.TotalDuration)
	assert.Positive(t, snap.AvgQueryDuration())

	drv.QueryStats().Reset()
	snap = drv.QueryStats().Stats()
	assert.EqualValues(t, 0, snap.TotalQueries)
	assert.EqualValues(t, 0, snap.TotalExecs)
	assert.EqualValues(t, 0, snap.Errors)
}

func TestStatsSlowQueryHook(t *testing.T) {
	var (
		slowQuery string
		slowArgs  []any
	)
	drv, mock := mockStatsDriver(t,
		WithSlowThreshold(0),
		WithSlowQueryHook(func(_ context.Context, query string, args []any, _ time.Duration) {
			slowQuery = query
			slowArgs = args
		}),
	)
	mock.ExpectQuery("SELECT pg_sleep($1)").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"pg_sleep"}).AddRow(""))

	require.NoError(t, drv.Query(context.Background(), "SELECT pg_sleep($1)", []any{1}, nil))
	assert.Equal(t, "SELECT pg_sleep($1)", slowQuery)
	assert.Equal(t, []any{1}, slowArgs)
	assert.EqualValues(t, 1, drv.QueryStats().Stats().SlowQueries)
}

func TestStatsThreshold(t *testing.T) {
	drv, _ := mockStatsDriver(t, WithSlowThreshold(250*time.Millisecond))
	assert.Equal(t, 250*time.Millisecond, drv.SlowThreshold())

	drv.SetSlowThreshold(time.Second)
	assert.Equal(t, time.Second, drv.SlowThreshold())
}

func TestStatsSnapshotString(t *testing.T) {
	snap := StatsSnapshot{
		TotalQueries:  4,
		TotalExecs:    2,
		TotalDuration: 6 * time.Millisecond,
		SlowQueries:   1,
		Errors:        1,
	}
	assert.Equal(t, "queries=4 execs=2 duration=6ms avg=1ms slow=1 errors=1", snap.String())
	assert.Equal(t, time.Millisecond, snap.AvgQueryDuration())

	var empty StatsSnapshot
	assert.Equal(t, time.Duration(0), empty.AvgQueryDuration())
}
