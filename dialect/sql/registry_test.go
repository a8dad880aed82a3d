package sql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestWithScope(t *testing.T) {
	ctx, id := WithScope(context.Background())
	got, ok := ScopeFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	// A context already carrying a scope keeps it.
	ctx2, id2 := WithScope(ctx)
	assert.Equal(t, id, id2)
	assert.Equal(t, ctx, ctx2)

	_, ok = ScopeFromContext(context.Background())
	assert.False(t, ok)
}

func TestScopeIDString(t *testing.T) {
	a := NewScope()
	b := NewScope()
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a.String())
	assert.NotEqual(t, a.String(), b.String())
}

func TestTxRegistry(t *testing.T) {
	r := NewTxRegistry()
	id := NewScope()

	_, ok := r.Current(id)
	assert.False(t, ok)

	tx := &Tx{}
	r.Bind(id, tx)
	got, ok := r.Current(id)
	require.True(t, ok)
	assert.Same(t, tx, got)

	// Another identity sees nothing.
	_, ok = r.Current(NewScope())
	assert.False(t, ok)

	// Binding nil removes the entry.
	r.Bind(id, nil)
	_, ok = r.Current(id)
	assert.False(t, ok)
}

func TestTxRegistryConcurrentIsolation(t *testing.T) {
	r := NewTxRegistry()
	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			_, id := WithScope(context.Background())
			tx := &Tx{}
			r.Bind(id, tx)
			got, ok := r.Current(id)
			if !ok || got != tx {
				t.Errorf("scope %s observed a foreign binding", id)
			}
			r.Bind(id, nil)
			if _, ok := r.Current(id); ok {
				t.Errorf("scope %s still bound after unbind", id)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
