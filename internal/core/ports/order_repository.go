package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly converted order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and completion changes of an existing order.
	// Line items and totals never change after conversion.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInCreatedStatus retrieves the oldest order awaiting courier
	// assignment. Used by the dispatcher job.
	GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error)
}
