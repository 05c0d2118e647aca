package filter

import (
	"context"
	"errors"
)

var (
	// ErrNoScope is returned when no store has been mounted on the context.
	ErrNoScope = errors.New("filter: no filter scope mounted on context")
	// ErrScopeClosed is returned when the mounted scope has been unmounted.
	ErrScopeClosed = errors.New("filter: filter scope has been unmounted")
)

type scopeKey struct{}

type scope struct {
	store  *Store
	closed bool
}

// Mount publishes store to every component built from the returned context.
// The scope lives until unmount is called; reads after that fail with
// ErrScopeClosed instead of silently returning a stale store. A nested Mount
// shadows the outer one.
func Mount(ctx context.Context, store *Store) (context.Context, func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	sc := &scope{store: store}
	return context.WithValue(ctx, scopeKey{}, sc), func() {
		sc.closed = true
		sc.store = nil
	}
}

// FromContext resolves the store mounted on ctx.
func FromContext(ctx context.Context) (*Store, error) {
	if ctx == nil {
		return nil, ErrNoScope
	}
	sc, ok := ctx.Value(scopeKey{}).(*scope)
	if !ok || sc == nil {
		return nil, ErrNoScope
	}
	if sc.closed {
		return nil, ErrScopeClosed
	}
	if sc.store == nil {
		return nil, ErrNoScope
	}
	return sc.store, nil
}

// MustFromContext is FromContext for components that cannot work without a
// mounted store. It panics outside a scope.
func MustFromContext(ctx context.Context) *Store {
	store, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return store
}
