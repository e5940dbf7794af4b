package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddCartLineCommandIsNotConstructed = errors.New(
		"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// AddCartLineCommand represents a request to add an item to a customer's cart.
// Adding an item that is already in the cart increments its quantity instead
// of creating a second line.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("600.00")
//	cmd, err := NewAddCartLineCommand(customerID, itemID, "Wireless Mouse", price, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart line: %w", err)
//	}
//
//	handler := NewAddCartLineCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add cart line: %w", err)
//	}
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand creates a command to add an item to a cart.
// Validates identifiers, requires a non-empty item name and a positive quantity.
func NewAddCartLineCommand(
	customerID kernel.UUID,
	itemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
) (AddCartLineCommand, error) {
	command := AddCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setItemID(itemID),
		command.setName(name),
		command.setUnitPrice(unitPrice),
		command.setQuantity(quantity),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddCartLineCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the catalog item identifier.
func (c AddCartLineCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item's display name.
func (c AddCartLineCommand) Name() string {
	return c.name
}

// UnitPrice returns the item's price per unit.
func (c AddCartLineCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// Quantity returns the number of units to add.
func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartLineCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartLineCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddCartLineCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCartLineCommand) setUnitPrice(unitPrice kernel.Money) error {
	c.unitPrice = unitPrice
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
