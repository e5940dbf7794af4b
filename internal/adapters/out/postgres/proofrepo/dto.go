// Package proofrepo provides data transfer objects and mapping functions for the proof ledger.
// The ledger is append-only, so the repository exposes only Add and ListByOrder.
package proofrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/proof"

	"github.com/google/uuid"
)

// ProofDTO represents one persisted proof ledger record.
type ProofDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageRef  string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for proof entities.
func (ProofDTO) TableName() string {
	return "proofs"
}

// fromDomain converts a proof record to its database representation.
func fromDomain(record *proof.ProofRecord) ProofDTO {
	return ProofDTO{
		ID:        record.ID().Bytes(),
		OrderID:   record.OrderID().Bytes(),
		ImageRef:  record.ImageRef(),
		CreatedAt: record.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a proof record.
func toDomain(dto ProofDTO) (*proof.ProofRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return proof.NewProofRecord(id, orderID, dto.ImageRef, dto.CreatedAt)
}
