package commands

import (
	"context"
)

// UpdateCartLineCommandHandler handles quantity changes on existing cart lines.
type UpdateCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartLineCommandHandler creates a handler for cart line updates.
func NewUpdateCartLineCommandHandler(uowFactory CartUoWFactory) UpdateCartLineCommandHandler {
	return UpdateCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update cart line command.
// Returns cart.ErrLineNotFound when the item is not in the cart and an
// ObjectNotFoundError when the customer has no cart at all.
func (h UpdateCartLineCommandHandler) Handle(ctx context.Context, command UpdateCartLineCommand) error {
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
	if err != nil {
		return err
	}

	if err = aggregate.UpdateLine(command.ItemID(), command.Quantity()); err != nil {
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
