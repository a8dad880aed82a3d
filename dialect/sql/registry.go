package sql

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// ScopeID identifies the logical unit of concurrent execution a statement
// belongs to. It is carried on the context and used only as a registry
// lookup key, never as a source of connection ownership.
type ScopeID uuid.UUID

// String returns the canonical string form of the scope id.
func (s ScopeID) String() string { return uuid.UUID(s).String() }

// NewScope returns a fresh scope identity.
func NewScope() ScopeID { return ScopeID(uuid.New()) }

type scopeCtxKey struct{}

// WithScope returns a context carrying a scope identity and that identity.
// A context that already carries one is returned unchanged, so nested
// calls share their caller's scope.
func WithScope(ctx context.Context) (context.Context, ScopeID) {
	if id, ok := ScopeFromContext(ctx); ok {
		return ctx, id
	}
	id := NewScope()
	return context.WithValue(ctx, scopeCtxKey{}, id), id
}

// ScopeFromContext returns the scope identity carried by the context.
func ScopeFromContext(ctx context.Context) (ScopeID, bool) {
	id, ok := ctx.Value(scopeCtxKey{}).(ScopeID)
	return id, ok
}

// TxRegistry maps scope identities to their currently bound transaction.
// At most one entry exists per identity; an entry exists iff a transaction
// begun on that scope has not yet been committed or rolled back. Entries
// for different identities are invisible to each other.
type TxRegistry struct {
	mu     sync.RWMutex
	scopes map[ScopeID]*Tx
}

// NewTxRegistry returns an empty registry.
func NewTxRegistry() *TxRegistry {
	return &TxRegistry{scopes: make(map[ScopeID]*Tx)}
}

// Bind sets the transaction bound to the identity. Binding nil removes the
// entry entirely.
func (r *TxRegistry) Bind(id ScopeID, tx *Tx) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tx == nil {
		delete(r.scopes, id)
		return
	}
	r.scopes[id] = tx
}

// Current returns the transaction bound to the identity, if any.
func (r *TxRegistry) Current(id ScopeID) (*Tx, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.scopes[id]
	return tx, ok
}
