package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// There are two implementations selected by session presence: a postgres
// store for authenticated customers and an in-process store for guests,
// both behind this single contract.
type CartRepository interface {
	// Get retrieves the cart owned by the given customer or guest identity.
	// Returns an ObjectNotFoundError when no cart exists yet.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save persists the cart's current lines, replacing any stored state.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Delete removes the cart entirely, for example when checkout consumes it.
	// Deleting an absent cart is a no-op.
	Delete(ctx context.Context, customerID kernel.UUID) error
}
