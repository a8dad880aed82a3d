package sql

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/forsaken1/jennifer"
)

// Transaction states.
const (
	txActive int32 = iota
	txCommitted
	txRolledBack
)

// Tx wraps one physical transaction on one checked-out connection.
// Committing or rolling back finalizes the transaction and returns the
// connection to the pool; a Tx must not be used afterwards.
type Tx struct {
	drv   *Driver
	conn  *sql.Conn
	tx    *sql.Tx
	state atomic.Int32
}

// Active reports whether the transaction is still open.
func (t *Tx) Active() bool { return t.state.Load() == txActive }

// Commit commits the transaction and releases its connection.
func (t *Tx) Commit() error {
	if !t.state.CompareAndSwap(txActive, txCommitted) {
		return sql.ErrTxDone
	}
	err := t.tx.Commit()
	if err != nil {
		err = fmt.Errorf("dialect/sql: commit: %w", err)
	}
	return jennifer.NewAggregateError(err, t.drv.Release(t.conn))
}

// Rollback rolls the transaction back and releases its connection.
func (t *Tx) Rollback() error {
	if !t.state.CompareAndSwap(txActive, txRolledBack) {
		return sql.ErrTxDone
	}
	err := t.tx.Rollback()
	if err != nil {
		err = fmt.Errorf("dialect/sql: rollback: %w", err)
	}
	return jennifer.NewAggregateError(err, t.drv.Release(t.conn))
}

// begin checks a connection out and opens a physical transaction on it.
// The connection is returned to the pool if begin fails.
func (d *Driver) begin(ctx context.Context) (*Tx, error) {
	conn, err := d.Checkout(ctx)
	if err != nil {
		return nil, err
	}
	stx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		err = fmt.Errorf("dialect/sql: begin: %w", err)
		return nil, jennifer.NewAggregateError(err, d.Release(conn))
	}
	d.logger.DebugContext(ctx, "db transaction begin")
	return &Tx{drv: d, conn: conn, tx: stx}, nil
}

// Transaction runs fn inside a transaction bound to the calling scope.
//
// If the scope already has an active transaction, fn runs on it and no
// second physical transaction is opened; commit and rollback remain owned
// by the outermost call, so a failing inner block rolls the whole
// transaction back. Otherwise a connection is checked out, a transaction
// begun and bound to the scope for the duration of fn: on normal return
// it is committed, on error or panic rolled back, and the prior binding
// is restored in every outcome. The error returned by fn is what the
// caller observes; a rollback failure is logged, not returned.
func (d *Driver) Transaction(ctx context.Context, fn func(context.Context, *Tx) error) error {
	ctx, id := WithScope(ctx)
	if cur, ok := d.registry.Current(id); ok {
		return fn(ctx, cur)
	}
	tx, err := d.begin(ctx)
	if err != nil {
		return err
	}
	prev, _ := d.registry.Current(id)
	d.registry.Bind(id, tx)
	defer d.registry.Bind(id, prev)
	defer func() {
		if p := recover(); p != nil {
			if rberr := tx.Rollback(); rberr != nil {
				d.logger.ErrorContext(ctx, "db transaction rollback failed", "error", &jennifer.RollbackError{Err: rberr})
			}
			panic(p)
		}
	}()
	if err := fn(ctx, tx); err != nil {
		if rberr := tx.Rollback(); rberr != nil {
			d.logger.ErrorContext(ctx, "db transaction rollback failed", "error", &jennifer.RollbackError{Err: rberr})
		}
		return err
	}
	return tx.Commit()
}

// BeginTx begins a transaction and binds it to the calling scope, for
// callers that cannot use the scoped Transaction block. It returns the
// context carrying the scope identity; statements executed with it are
// routed to the transaction's connection. Beginning while the scope
// already has a bound transaction fails with ErrTxStarted.
func (d *Driver) BeginTx(ctx context.Context) (context.Context, *Tx, error) {
	ctx, id := WithScope(ctx)
	if _, ok := d.registry.Current(id); ok {
		return ctx, nil, jennifer.ErrTxStarted
	}
	tx, err := d.begin(ctx)
	if err != nil {
		return ctx, nil, err
	}
	d.registry.Bind(id, tx)
	return ctx, tx, nil
}

// CommitTx commits the transaction bound to the calling scope and clears
// the binding. It fails with ErrNoTx when none is bound.
func (d *Driver) CommitTx(ctx context.Context) error {
	tx, id, err := d.bound(ctx)
	if err != nil {
		return err
	}
	d.registry.Bind(id, nil)
	return tx.Commit()
}

// RollbackTx rolls back the transaction bound to the calling scope and
// clears the binding. It fails with ErrNoTx when none is bound.
func (d *Driver) RollbackTx(ctx context.Context) error {
	tx, id, err := d.bound(ctx)
	if err != nil {
		return err
	}
	d.registry.Bind(id, nil)
	return tx.Rollback()
}

func (d *Driver) bound(ctx context.Context) (*Tx, ScopeID, error) {
	id, ok := ScopeFromContext(ctx)
	if !ok {
		return nil, ScopeID{}, jennifer.ErrNoTx
	}
	tx, ok := d.registry.Current(id)
	if !ok {
		return nil, ScopeID{}, jennifer.ErrNoTx
	}
	return tx, id, nil
}
