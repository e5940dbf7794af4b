// Package proof implements the append-only ledger of delivery evidence.
// A ProofRecord is an opaque reference to an uploaded photo attached to an
// order. Records are only ever added; nothing edits or removes them, so the
// ledger stays a faithful history of the handoff.
package proof

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for proof records.
var (
	// ErrImageRefIsRequired is returned when attaching a proof without an image reference.
	ErrImageRefIsRequired = errs.NewValueIsRequiredError("imageRef")
	// ErrProofRecordIsNotConstructed is returned for a ProofRecord not created via a constructor.
	ErrProofRecordIsNotConstructed = errors.New("ProofRecord must be created via NewProofRecord constructor")
)

// ProofRecord is one piece of delivery evidence: an opaque image reference
// bound to an order with a creation timestamp. Immutable once created.
type ProofRecord struct {
	id        kernel.UUID
	orderID   kernel.UUID
	imageRef  string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewProofRecord creates a proof record for the given order.
func NewProofRecord(id, orderID kernel.UUID, imageRef string, createdAt time.Time) (*ProofRecord, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if imageRef == "" {
		return nil, ErrImageRefIsRequired
	}

	return &ProofRecord{
		id:        id,
		orderID:   orderID,
		imageRef:  imageRef,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through the constructor.
func (p *ProofRecord) Validate() error {
	if p == nil {
		return ErrProofRecordIsNotConstructed
	}
	return p.guard.Validate(ErrProofRecordIsNotConstructed)
}

// ID returns the record identifier.
func (p *ProofRecord) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the evidence belongs to.
func (p *ProofRecord) OrderID() kernel.UUID {
	return p.orderID
}

// ImageRef returns the opaque reference to the uploaded image.
func (p *ProofRecord) ImageRef() string {
	return p.imageRef
}

// CreatedAt returns when the evidence was attached.
func (p *ProofRecord) CreatedAt() time.Time {
	return p.createdAt
}
