package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderProofsQueryHandler reads an order's proof ledger from the database.
type GetOrderProofsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderProofsQueryHandler creates a handler for proof ledger queries.
func NewGetOrderProofsQueryHandler(db *gorm.DB) GetOrderProofsQueryHandler {
	return GetOrderProofsQueryHandler{db: db}
}

// Handle executes the proof ledger query.
// Records come back in insertion order; repeated reads of an unchanged
// ledger return the identical sequence.
func (h GetOrderProofsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProofsQuery,
) ([]ProofResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	proofs := make([]ProofResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			image_ref,
			created_at
		FROM proofs
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var imageRef string
		var createdAt time.Time

		if err = rows.Scan(&id, &imageRef, &createdAt); err != nil {
			return nil, err
		}

		proofID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		proofs = append(proofs, ProofResponse{
			ID:        proofID,
			ImageRef:  imageRef,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return proofs, nil
}
