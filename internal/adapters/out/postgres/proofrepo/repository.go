package proofrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/proof"

	"gorm.io/gorm"
)

// GormProofRepository implements ProofRepository using GORM.
type GormProofRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProofRepository creates a new GORM proof repository.
func NewGormProofRepository(db *gorm.DB, tracker aggregateTracker) *GormProofRepository {
	return &GormProofRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a proof record to the ledger.
func (r *GormProofRepository) Add(ctx context.Context, record *proof.ProofRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// ListByOrder returns the order's proof records oldest first.
func (r *GormProofRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*proof.ProofRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProofDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*proof.ProofRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}
