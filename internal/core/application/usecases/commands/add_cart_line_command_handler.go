package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/pkg/errs"
)

// AddCartLineCommandHandler handles the business logic for adding cart lines.
// Creates the cart on first use, then merges the requested item into it.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartLineCommandHandler creates a handler for cart line addition.
// Requires a CartUoWFactory for transactional persistence.
func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add cart line command.
// Loads the customer's cart, creating an empty one if none exists yet,
// merges the item, and persists the result in a single transaction.
func (h AddCartLineCommandHandler) Handle(ctx context.Context, command AddCartLineCommand) error {
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

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.Get(ctx, command.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		aggregate, err = cart.NewCart(command.CustomerID())
	}
	if err != nil {
		return err
	}

	if err = aggregate.AddLine(
		command.ItemID(),
		command.Name(),
		command.UnitPrice(),
		command.Quantity(),
	); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
