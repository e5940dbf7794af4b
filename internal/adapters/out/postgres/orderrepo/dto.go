// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery details and pricing are denormalized into the orders table;
// line items live in their own table keyed by order ID.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID     *uuid.UUID `gorm:"type:uuid;index"`
	Status        int        `gorm:"type:int;not null;index"`
	PaymentMethod int        `gorm:"type:int;not null"`

	Recipient string  `gorm:"type:varchar(255)"`
	Address   string  `gorm:"type:varchar(512);not null"`
	Phone     string  `gorm:"type:varchar(32);not null"`
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`

	Subtotal  decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Tax       decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Shipping  decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Total     decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	CodAmount decimal.Decimal `gorm:"type:numeric(14,4);not null"`

	DeliveryOtp   string           `gorm:"type:varchar(16)"`
	CashCollected *decimal.Decimal `gorm:"type:numeric(14,4)"`
	DeliveredAt   *time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one snapshotted line item of an order.
// Lines never change after conversion, so there is no update path for them.
type OrderLineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Quantity  int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var cashCollected *decimal.Decimal
	if cash := aggregate.CashCollected(); cash != nil {
		raw := cash.Amount()
		cashCollected = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   orderID,
			ItemID:    l.ItemID().Bytes(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice().Amount(),
			Quantity:  l.Quantity(),
		})
	}

	info := aggregate.DeliveryInfo()
	pricing := aggregate.Pricing()

	return OrderDTO{
		ID:            orderID,
		CustomerID:    aggregate.CustomerID().Bytes(),
		CourierID:     courierID,
		Status:        int(aggregate.Status()),
		PaymentMethod: int(aggregate.PaymentMethod()),
		Recipient:     info.Recipient(),
		Address:       info.Address(),
		Phone:         info.Phone(),
		Latitude:      info.Location().Latitude(),
		Longitude:     info.Location().Longitude(),
		Subtotal:      pricing.Subtotal.Amount(),
		Tax:           pricing.Tax.Amount(),
		Shipping:      pricing.Shipping.Amount(),
		Total:         pricing.Total.Amount(),
		CodAmount:     aggregate.CodAmount().Amount(),
		DeliveryOtp:   aggregate.DeliveryOtp(),
		CashCollected: cashCollected,
		DeliveredAt:   aggregate.DeliveredAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including assignment and completion
// stamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	info, err := order.NewDeliveryInfo(dto.Recipient, dto.Address, dto.Phone, location)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	pricing, err := pricingToDomain(dto)
	if err != nil {
		return nil, err
	}

	codAmount, err := kernel.NewMoney(dto.CodAmount)
	if err != nil {
		return nil, err
	}

	var cashCollected *kernel.Money
	if dto.CashCollected != nil {
		cash, cashErr := kernel.NewMoney(*dto.CashCollected)
		if cashErr != nil {
			return nil, cashErr
		}
		cashCollected = &cash
	}

	return order.RestoreOrder(
		id,
		customerID,
		courierID,
		lines,
		pricing,
		order.PaymentMethod(dto.PaymentMethod),
		info,
		codAmount,
		dto.DeliveryOtp,
		cashCollected,
		order.Status(dto.Status),
		dto.DeliveredAt,
	)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(itemID, dto.Name, unitPrice, dto.Quantity)
}

func pricingToDomain(dto OrderDTO) (order.Pricing, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Pricing{}, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return order.Pricing{}, err
	}
	shipping, err := kernel.NewMoney(dto.Shipping)
	if err != nil {
		return order.Pricing{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.Pricing{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    total,
	}, nil
}
