package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/proof"
)

// AttachProofCommandHandler appends delivery photos to an order's proof ledger.
type AttachProofCommandHandler struct {
	uowFactory ProofUoWFactory
}

// NewAttachProofCommandHandler creates a handler for proof attachment.
func NewAttachProofCommandHandler(uowFactory ProofUoWFactory) AttachProofCommandHandler {
	return AttachProofCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attach proof command.
// The order must exist; beyond that any status is acceptable, since couriers
// capture photos both at pickup and at the door.
func (h AttachProofCommandHandler) Handle(ctx context.Context, command AttachProofCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, command.OrderID()); err != nil {
		return err
	}

	record, err := proof.NewProofRecord(
		kernel.NewUUID(),
		command.OrderID(),
		command.ImageRef(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProofRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
