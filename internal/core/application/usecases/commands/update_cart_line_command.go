package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateCartLineCommandIsNotConstructed = errors.New(
	"UpdateCartLineCommand must be created via NewUpdateCartLineCommand constructor",
)

// UpdateCartLineCommand represents a request to change a cart line's quantity.
// A quantity below one removes the line from the cart.
type UpdateCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartLineCommand creates a command to set a cart line's quantity.
// Zero and negative quantities are accepted here; the cart interprets them
// as removal.
func NewUpdateCartLineCommand(customerID, itemID kernel.UUID, quantity int) (UpdateCartLineCommand, error) {
	command := UpdateCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setItemID(itemID),
	); err != nil {
		return UpdateCartLineCommand{}, err
	}

	command.quantity = quantity
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartLineCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c UpdateCartLineCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the catalog item identifier.
func (c UpdateCartLineCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the requested quantity.
func (c UpdateCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartLineCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartLineCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
