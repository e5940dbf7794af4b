package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand represents a request to drop an item from a cart.
// Removing an item that is not in the cart succeeds without effect.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a command to remove an item from a cart.
func NewRemoveCartLineCommand(customerID, itemID kernel.UUID) (RemoveCartLineCommand, error) {
	command := RemoveCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setItemID(itemID),
	); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveCartLineCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the catalog item identifier.
func (c RemoveCartLineCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveCartLineCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveCartLineCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
