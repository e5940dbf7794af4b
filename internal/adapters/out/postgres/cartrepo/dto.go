// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// Carts for authenticated customers are stored in postgres; guest carts use the
// in-process store in adapters/out/memory behind the same port.
package cartrepo

import (
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The cart itself carries no state beyond its owner; the lines hold everything.
type CartDTO struct {
	CustomerID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Lines      []CartLineDTO `gorm:"foreignKey:CartCustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents one line of a stored cart.
// Position preserves the insertion order the cart guarantees.
type CartLineDTO struct {
	CartCustomerID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position       int             `gorm:"type:int;not null"`
	Name           string          `gorm:"type:varchar(255);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Quantity       int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	customerID := aggregate.CustomerID().Bytes()
	cartLines := aggregate.Lines()

	lines := make([]CartLineDTO, 0, len(cartLines))
	for i, l := range cartLines {
		lines = append(lines, CartLineDTO{
			CartCustomerID: customerID,
			ItemID:         l.ItemID().Bytes(),
			Position:       i,
			Name:           l.Name(),
			UnitPrice:      l.UnitPrice().Amount(),
			Quantity:       l.Quantity(),
		})
	}

	return CartDTO{
		CustomerID: customerID,
		Lines:      lines,
	}
}

// toDomain converts a database DTO to a cart domain aggregate using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(customerID, lines)
}

func lineToDomain(dto CartLineDTO) (*cart.Line, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return cart.NewLine(itemID, dto.Name, unitPrice, dto.Quantity)
}
