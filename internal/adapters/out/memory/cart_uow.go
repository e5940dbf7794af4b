package memory

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"
)

// CartUnitOfWork satisfies the cart unit-of-work contract over the in-memory
// store. There is no transaction to manage: each Save is atomic under the
// store's lock, and guest carts never span aggregates.
type CartUnitOfWork struct {
	store *CartStore
}

// NewCartUnitOfWorkFactory creates a factory producing no-op transactional
// wrappers around the given store.
func NewCartUnitOfWorkFactory(store *CartStore) *CartUnitOfWorkFactory {
	return &CartUnitOfWorkFactory{store: store}
}

// CartUnitOfWorkFactory creates CartUnitOfWork instances for guest requests.
type CartUnitOfWorkFactory struct {
	store *CartStore
}

// Create produces a unit of work over the shared guest store.
func (f *CartUnitOfWorkFactory) Create() commands.CartUoW {
	return &CartUnitOfWork{store: f.store}
}

// Begin is a no-op; the memory store has no transactions.
func (u *CartUnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op; every Save already took effect.
func (u *CartUnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op; there is nothing to undo.
func (u *CartUnitOfWork) Rollback(_ context.Context) error { return nil }

// CartRepository returns the shared guest cart store.
func (u *CartUnitOfWork) CartRepository() ports.CartRepository {
	return u.store
}
