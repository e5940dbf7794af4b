package commands_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testDeliveryInfo(t *testing.T) order.DeliveryInfo {
	t.Helper()
	location, err := kernel.NewGeoPoint(48.85, 2.35)
	require.NoError(t, err)
	info, err := order.NewDeliveryInfo("Jane Doe", "12 Elm St", "+15550123", location)
	require.NoError(t, err)
	return info
}

func testCartWithItem(t *testing.T, customerID kernel.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, c.AddLine(kernel.NewUUID(), "Wireless Mouse", testMoney(t, "600.00"), 2))
	return c
}

// testOrderInStatus builds an order assigned to the given courier and walks
// it forward until it reaches the target status.
func testOrderInStatus(
	t *testing.T,
	courierID kernel.UUID,
	method order.PaymentMethod,
	otp string,
	target order.Status,
) *order.Order {
	t.Helper()

	line, err := order.NewLine(kernel.NewUUID(), "Wireless Mouse", testMoney(t, "600.00"), 2)
	require.NoError(t, err)

	pricing := order.Pricing{
		Subtotal: testMoney(t, "1200.00"),
		Tax:      testMoney(t, "216.00"),
		Shipping: testMoney(t, "0.00"),
		Total:    testMoney(t, "1416.00"),
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Line{line},
		pricing,
		method,
		testDeliveryInfo(t),
		otp,
	)
	require.NoError(t, err)

	if target == order.StatusCreated {
		return o
	}
	require.NoError(t, o.Assign(courierID))
	if target == order.StatusAssigned {
		return o
	}
	require.NoError(t, o.Accept())
	if target == order.StatusPickedUp {
		return o
	}
	require.NoError(t, o.Advance())
	require.Equal(t, order.StatusOutForDelivery, o.Status())
	return o
}
