package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/forsaken1/jennifer"
	"github.com/forsaken1/jennifer/config"
	"github.com/forsaken1/jennifer/dialect"
)

// DefaultCheckoutTimeout bounds how long a connection checkout waits for
// the pool before failing with a pool exhausted error.
const DefaultCheckoutTimeout = 5 * time.Second

// ExecQuerier wraps the standard Exec and Query methods. It is satisfied
// by *sql.DB, *sql.Conn and *sql.Tx.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Driver is the adapter entry point for SQL based databases. It owns the
// pooled *sql.DB, the dialect capabilities and the per-scope transaction
// registry, and exposes the exec/query/scalar execution surface.
type Driver struct {
	db       *sql.DB
	dialect  dialect.Dialect
	checkout time.Duration
	logger   *slog.Logger
	registry *TxRegistry
}

// Option configures a Driver.
type Option func(*Driver)

// WithCheckoutTimeout sets the connection checkout timeout.
func WithCheckoutTimeout(d time.Duration) Option {
	return func(drv *Driver) {
		if d > 0 {
			drv.checkout = d
		}
	}
}

// WithLogger sets the logger used for statement logging.
func WithLogger(l *slog.Logger) Option {
	return func(drv *Driver) {
		drv.logger = l
	}
}

// Open wraps database/sql.Open and returns a Driver for the named dialect.
func Open(name, source string, opts ...Option) (*Driver, error) {
	db, err := sql.Open(name, source)
	if err != nil {
		return nil, err
	}
	return OpenDB(name, db, opts...)
}

// OpenDB wraps the given database/sql.DB with a Driver.
func OpenDB(name string, db *sql.DB, opts ...Option) (*Driver, error) {
	d, err := dialect.ByName(name)
	if err != nil {
		return nil, err
	}
	drv := &Driver{
		db:       db,
		dialect:  d,
		checkout: DefaultCheckoutTimeout,
		logger:   slog.Default(),
		registry: NewTxRegistry(),
	}
	for _, opt := range opts {
		opt(drv)
	}
	return drv, nil
}

// OpenConfig opens a Driver from a connection configuration: it renders
// the connection descriptor, applies pool sizing, verifies connectivity
// with the configured retry policy and warms the initial pool.
func OpenConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Driver, error) {
	source, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	drv, err := Open(cfg.Adapter, source, append([]Option{WithCheckoutTimeout(cfg.CheckoutTimeout)}, opts...)...)
	if err != nil {
		return nil, err
	}
	drv.db.SetMaxOpenConns(cfg.MaxPoolSize)
	drv.db.SetMaxIdleConns(cfg.MaxIdlePoolSize)
	if err := drv.connect(ctx, cfg.RetryAttempts, cfg.RetryDelay); err != nil {
		return nil, jennifer.NewAggregateError(err, drv.Close())
	}
	if cfg.InitialPoolSize > 0 {
		if err := drv.Warm(ctx, cfg.InitialPoolSize); err != nil {
			return nil, jennifer.NewAggregateError(err, drv.Close())
		}
	}
	return drv, nil
}

// connect pings the database, retrying per the configured policy. This is
// the only retry in the adapter; statement execution never retries.
func (d *Driver) connect(ctx context.Context, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = d.db.PingContext(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("dialect/sql: connect after %d attempts: %w", attempts, err)
}

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB { return d.db }

// Dialect returns the dialect name.
func (d *Driver) Dialect() string { return d.dialect.Name() }

// Close closes the underlying pool.
func (d *Driver) Close() error { return d.db.Close() }

// Checkout acquires a dedicated connection from the pool. It blocks until
// a connection is free or the pool grows, bounded by the configured
// checkout timeout; on timeout it fails with a pool exhausted error,
// distinct from a caller cancellation.
func (d *Driver) Checkout(ctx context.Context) (*sql.Conn, error) {
	wait, cancel := context.WithTimeout(ctx, d.checkout)
	defer cancel()
	conn, err := d.db.Conn(wait)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, jennifer.NewPoolExhaustedError(d.checkout, err)
		}
		return nil, fmt.Errorf("dialect/sql: checkout: %w", err)
	}
	return conn, nil
}

// Release returns a checked-out connection to the pool. Releasing the same
// connection twice is a caller bug; the second call surfaces the driver's
// error rather than being silently ignored.
func (d *Driver) Release(conn *sql.Conn) error {
	if err := conn.Close(); err != nil {
		return fmt.Errorf("dialect/sql: release: %w", err)
	}
	return nil
}

// WithConn runs fn with a checked-out connection, releasing it on every
// exit path: normal return, error and panic.
func (d *Driver) WithConn(ctx context.Context, fn func(*sql.Conn) error) (rerr error) {
	conn, err := d.Checkout(ctx)
	if err != nil {
		return err
	}
	defer func() {
		rerr = jennifer.NewAggregateError(rerr, d.Release(conn))
	}()
	return fn(conn)
}

// Warm opens n pooled connections and pings them concurrently, forcing the
// pool up to its initial size. All connections are held until every ping
// finished so the pool cannot hand the same connection out twice.
func (d *Driver) Warm(ctx context.Context, n int) (rerr error) {
	conns := make([]*sql.Conn, 0, n)
	defer func() {
		for _, conn := range conns {
			rerr = jennifer.NewAggregateError(rerr, d.Release(conn))
		}
	}()
	for i := 0; i < n; i++ {
		conn, err := d.Checkout(ctx)
		if err != nil {
			return err
		}
		conns = append(conns, conn)
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, conn := range conns {
		conn := conn
		g.Go(func() error {
			return conn.PingContext(ctx)
		})
	}
	return g.Wait()
}
