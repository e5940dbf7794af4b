package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for the courier roster.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists availability changes of an existing courier.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetFirstActive retrieves any courier currently eligible for assignment.
	// Used by the dispatcher job.
	GetFirstActive(ctx context.Context) (*courier.Courier, error)
}
