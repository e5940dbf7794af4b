// Package memory provides an in-process cart store for guest sessions.
// Guest carts are ephemeral: they live for the lifetime of the process and
// are keyed by the caller's guest token, never written to postgres.
package memory

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// CartStore is a concurrency-safe in-memory implementation of
// ports.CartRepository. Aggregates are deep-copied on the way in and out so
// callers never share mutable state with the store.
type CartStore struct {
	mu    sync.RWMutex
	carts map[kernel.UUID][]*cart.Line
}

// NewCartStore creates an empty guest cart store.
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[kernel.UUID][]*cart.Line),
	}
}

// Get retrieves the guest's cart.
// Returns an ObjectNotFoundError when the guest has no cart yet.
func (s *CartStore) Get(_ context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	lines, ok := s.carts[customerID]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("cart", customerID.String())
	}

	copied, err := copyLines(lines)
	if err != nil {
		return nil, err
	}

	return cart.RestoreCart(customerID, copied)
}

// Save stores the cart's current lines, replacing any previous state.
func (s *CartStore) Save(_ context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	copied, err := copyLines(aggregate.Lines())
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.carts[aggregate.CustomerID()] = copied
	s.mu.Unlock()

	return nil
}

// Delete removes the guest's cart. Absent carts are a no-op.
func (s *CartStore) Delete(_ context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.carts, customerID)
	s.mu.Unlock()

	return nil
}

func copyLines(lines []*cart.Line) ([]*cart.Line, error) {
	copied := make([]*cart.Line, 0, len(lines))
	for _, l := range lines {
		line, err := cart.NewLine(l.ItemID(), l.Name(), l.UnitPrice(), l.Quantity())
		if err != nil {
			return nil, err
		}
		copied = append(copied, line)
	}
	return copied, nil
}
