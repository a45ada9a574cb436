// Package memory is the process-local state layer. All collections live in one
// immutable snapshot that is replaced as a whole on every write.
package memory

import (
	"context"
	"slices"
	"sync"

	"solarjuice/internal/domain/entity"
)

// state is one snapshot of every collection. A published snapshot is never
// mutated: writers work on a clone and swap it in.
type state struct {
	users         []entity.User
	shops         []entity.Shop
	machines      []entity.Machine
	orders        []entity.Order
	registrations []entity.ShopRegistration
}

func (s *state) clone() *state {
	return &state{
		users:         slices.Clone(s.users),
		shops:         slices.Clone(s.shops),
		machines:      slices.Clone(s.machines),
		orders:        slices.Clone(s.orders),
		registrations: slices.Clone(s.registrations),
	}
}

// accessor gives repositories read and write access to a state.
// Writes that return an error leave the state untouched.
type accessor interface {
	view(ctx context.Context, fn func(*state) error) error
	update(ctx context.Context, fn func(*state) error) error
}

// Store owns the current snapshot.
type Store struct {
	mu   sync.RWMutex
	snap *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{snap: &state{}}
}

func (s *Store) view(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	return fn(snap)
}

func (s *Store) update(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.snap.clone()
	if err := fn(draft); err != nil {
		return err
	}
	s.snap = draft

	return nil
}

// txAccessor works directly on a transaction draft. The store lock is held
// by the transaction for its whole duration.
type txAccessor struct {
	draft *state
}

func (a *txAccessor) view(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(a.draft)
}

func (a *txAccessor) update(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Apply to a scratch copy so a failing write leaves the draft as it was.
	scratch := a.draft.clone()
	if err := fn(scratch); err != nil {
		return err
	}
	*a.draft = *scratch

	return nil
}
