package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for delivery details.
var (
	// ErrIncompleteDeliveryInfo is returned when the recipient address or phone is missing.
	ErrIncompleteDeliveryInfo = errors.New("delivery info is incomplete")
	// ErrDeliveryInfoIsNotConstructed is returned for a DeliveryInfo not created via NewDeliveryInfo.
	ErrDeliveryInfoIsNotConstructed = errors.New("DeliveryInfo must be created via NewDeliveryInfo constructor")
)

// DeliveryInfo is an immutable value object describing where and to whom an
// order is delivered: recipient name, street address, phone number, and
// destination geocoordinates.
type DeliveryInfo struct {
	recipient string
	address   string
	phone     string
	location  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewDeliveryInfo creates delivery details.
// Address and phone are mandatory; an order cannot be fulfilled without them.
// The recipient name is optional (the address holder receives by default).
func NewDeliveryInfo(recipient, address, phone string, location kernel.GeoPoint) (DeliveryInfo, error) {
	if err := errors.Join(
		requireField("address", address),
		requireField("phone", phone),
		location.Validate(),
	); err != nil {
		return DeliveryInfo{}, err
	}

	return DeliveryInfo{
		recipient: recipient,
		address:   address,
		phone:     phone,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the delivery info was created through the constructor.
func (d DeliveryInfo) Validate() error {
	return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
}

// Recipient returns the recipient name, possibly empty.
func (d DeliveryInfo) Recipient() string {
	return d.recipient
}

// Address returns the street address.
func (d DeliveryInfo) Address() string {
	return d.address
}

// Phone returns the contact phone number.
func (d DeliveryInfo) Phone() string {
	return d.phone
}

// Location returns the destination geocoordinates.
func (d DeliveryInfo) Location() kernel.GeoPoint {
	return d.location
}

func requireField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is missing", ErrIncompleteDeliveryInfo, name)
	}
	return nil
}
