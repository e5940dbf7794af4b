package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/proof"
)

// ProofRepository defines the persistence contract for the proof ledger.
// The ledger is append-only: records are added and listed, never updated
// or removed.
type ProofRepository interface {
	// Add appends a new proof record.
	Add(ctx context.Context, aggregate *proof.ProofRecord) error

	// ListByOrder returns the order's proof records oldest first.
	// Repeated calls return the same sequence until a new record is added.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*proof.ProofRecord, error)
}
