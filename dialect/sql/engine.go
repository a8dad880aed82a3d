package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/forsaken1/jennifer"
)

// boundTx returns the transaction bound to the calling scope, if any.
func (d *Driver) boundTx(ctx context.Context) (*Tx, bool) {
	id, ok := ScopeFromContext(ctx)
	if !ok {
		return nil, false
	}
	return d.registry.Current(id)
}

// run executes fn on the scope's transaction connection when one is bound,
// otherwise on an ephemeral scoped checkout.
func (d *Driver) run(ctx context.Context, fn func(ExecQuerier) error) error {
	if tx, ok := d.boundTx(ctx); ok {
		return fn(tx.tx)
	}
	return d.WithConn(ctx, func(conn *sql.Conn) error {
		return fn(conn)
	})
}

func (d *Driver) logQuery(ctx context.Context, query string, args []any) {
	d.logger.DebugContext(ctx, "db query", "query", query, "args", args)
}

// Exec executes a statement and returns its result. Generic `?` markers
// are substituted with the dialect's native placeholders first. Any
// driver failure is translated to a BadQueryError carrying the statement
// and arguments.
func (d *Driver) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	query = ParseQuery(d.dialect, query, len(args))
	d.logQuery(ctx, query, args)
	var res sql.Result
	err := d.run(ctx, func(ex ExecQuerier) error {
		r, err := ex.ExecContext(ctx, query, args...)
		if err != nil {
			return jennifer.NewBadQueryError(err, query, args)
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Query executes a query and streams its rows to fn, substituting
// placeholders the same way Exec does. The rows are closed on every exit
// path, including a consumer error. Driver failures are translated to
// BadQueryError; an error returned by fn passes through untouched.
func (d *Driver) Query(ctx context.Context, query string, args []any, fn func(ColumnScanner) error) error {
	query = ParseQuery(d.dialect, query, len(args))
	d.logQuery(ctx, query, args)
	return d.run(ctx, func(ex ExecQuerier) (rerr error) {
		rows, err := ex.QueryContext(ctx, query, args...)
		if err != nil {
			return jennifer.NewBadQueryError(err, query, args)
		}
		defer func() {
			if cerr := rows.Close(); cerr != nil && rerr == nil {
				rerr = fmt.Errorf("dialect/sql: close rows: %w", cerr)
			}
		}()
		if fn != nil {
			if err := fn(rows); err != nil {
				return err
			}
		}
		if err := rows.Err(); err != nil {
			return jennifer.NewBadQueryError(err, query, args)
		}
		return nil
	})
}

// Scalar executes a query and returns the single value of its first row,
// or nil when the query yields no rows. The boolean narrowing applied by
// the row readers applies here as well.
func (d *Driver) Scalar(ctx context.Context, query string, args ...any) (any, error) {
	var out any
	err := d.Query(ctx, query, args, func(cs ColumnScanner) error {
		if !cs.Next() {
			return nil
		}
		var v any
		if err := cs.Scan(&v); err != nil {
			return jennifer.NewBadQueryError(err, query, args)
		}
		out = normalizeValue(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count runs a query-builder fragment under a COUNT(*) wrapper. The
// fragment is used verbatim; only the fixed prefix is added.
func (d *Driver) Count(ctx context.Context, body string, args ...any) (int, error) {
	v, err := d.Scalar(ctx, "SELECT COUNT(*) "+body, args...)
	if err != nil {
		return 0, err
	}
	return toInt(v), nil
}

// Exists runs a query-builder fragment under an EXISTS wrapper.
func (d *Driver) Exists(ctx context.Context, body string, args ...any) (bool, error) {
	v, err := d.Scalar(ctx, "SELECT EXISTS("+body+")", args...)
	if err != nil {
		return false, err
	}
	switch v := v.(type) {
	case bool:
		return v, nil
	default:
		return toInt(v) != 0, nil
	}
}

// Delete runs a query-builder fragment under a DELETE prefix.
func (d *Driver) Delete(ctx context.Context, body string, args ...any) (sql.Result, error) {
	return d.Exec(ctx, "DELETE "+body, args...)
}

func toInt(v any) int {
	switch v := v.(type) {
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int:
		return v
	case int8:
		return int(v)
	case uint64:
		return int(v)
	case []byte:
		// Some drivers return numeric aggregates as raw bytes.
		n := 0
		for _, c := range v {
			if c < '0' || c > '9' {
				return 0
			}
			n = n*10 + int(c-'0')
		}
		return n
	default:
		return 0
	}
}
