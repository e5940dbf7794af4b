package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func validDeliveryInfo(t *testing.T) order.DeliveryInfo {
	t.Helper()
	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	info, err := order.NewDeliveryInfo("Asha", "42 MG Road", "+91-99000-11223", point)
	require.NoError(t, err)
	return info
}

func validLines(t *testing.T) []order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Keyboard", mustMoney(t, "600"), 2)
	require.NoError(t, err)
	return []order.Line{line}
}

func validPricing(t *testing.T) order.Pricing {
	t.Helper()
	return order.Pricing{
		Subtotal: mustMoney(t, "1200"),
		Tax:      mustMoney(t, "216"),
		Shipping: mustMoney(t, "0"),
		Total:    mustMoney(t, "1416"),
	}
}

func newTestOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		validLines(t), validPricing(t),
		method, validDeliveryInfo(t), "4821",
	)
	require.NoError(t, err)
	return o
}

func orderInStatus(t *testing.T, target order.Status) *order.Order {
	t.Helper()
	o := newTestOrder(t, order.PaymentMethodCashOnDelivery)

	if target == order.StatusCreated {
		return o
	}
	require.NoError(t, o.Assign(kernel.NewUUID()))
	if target == order.StatusAssigned {
		return o
	}

	switch target {
	case order.StatusRejected:
		require.NoError(t, o.Decline())
	case order.StatusCancelled:
		require.NoError(t, o.Cancel())
	case order.StatusPickedUp:
		require.NoError(t, o.Accept())
	case order.StatusOutForDelivery:
		require.NoError(t, o.Accept())
		require.NoError(t, o.Advance())
	case order.StatusDelivered:
		require.NoError(t, o.Accept())
		require.NoError(t, o.Advance())
		require.NoError(t, o.Complete(o.CodAmount(), time.Now()))
	default:
		t.Fatalf("cannot build order in status %s", target)
	}
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in Created status", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentMethodCard)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusCreated, o.Status())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.CashCollected())
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, "4821", o.DeliveryOtp())
	})

	t.Run("card order carries zero cod amount", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentMethodCard)

		assert.True(t, o.CodAmount().IsZero())
	})

	t.Run("cod order owes the full total", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentMethodCashOnDelivery)

		assert.Equal(t, "1416", o.CodAmount().String())
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			nil, validPricing(t),
			order.PaymentMethodCard, validDeliveryInfo(t), "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lines")
	})

	t.Run("rejects inconsistent pricing", func(t *testing.T) {
		pricing := validPricing(t)
		pricing.Total = mustMoney(t, "9999")

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			validLines(t), pricing,
			order.PaymentMethodCard, validDeliveryInfo(t), "",
		)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrPricingMismatch)
	})

	t.Run("rejects unconstructed delivery info", func(t *testing.T) {
		var info order.DeliveryInfo

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			validLines(t), validPricing(t),
			order.PaymentMethodCard, info, "",
		)

		require.Error(t, err)
	})

	t.Run("snapshot is isolated from caller mutations", func(t *testing.T) {
		lines := validLines(t)
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			lines, validPricing(t),
			order.PaymentMethodCard, validDeliveryInfo(t), "",
		)
		require.NoError(t, err)

		replacement, err := order.NewLine(kernel.NewUUID(), "Cheaper", mustMoney(t, "1"), 1)
		require.NoError(t, err)
		lines[0] = replacement

		assert.Equal(t, "Keyboard", o.Lines()[0].Name())
		assert.Equal(t, "600", o.Lines()[0].UnitPrice().String())
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("binds courier and moves to Assigned", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentMethodCard)
		courierID := kernel.NewUUID()

		err := o.Assign(courierID)

		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("rejects invalid courier ID", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentMethodCard)
		var courierID kernel.UUID

		err := o.Assign(courierID)

		require.Error(t, err)
		assert.Equal(t, order.StatusCreated, o.Status())
	})

	t.Run("cannot assign twice", func(t *testing.T) {
		o := orderInStatus(t, order.StatusAssigned)

		err := o.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.StatusAssigned, o.Status())
	})
}

func TestOrder_CourierFlow(t *testing.T) {
	t.Run("accept then advance then complete", func(t *testing.T) {
		o := orderInStatus(t, order.StatusAssigned)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.StatusPickedUp, o.Status())

		require.NoError(t, o.Advance())
		assert.Equal(t, order.StatusOutForDelivery, o.Status())

		deliveredAt := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
		require.NoError(t, o.Complete(o.CodAmount(), deliveredAt))
		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.CashCollected())
		assert.Equal(t, "1416", o.CashCollected().String())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("decline moves to Rejected", func(t *testing.T) {
		o := orderInStatus(t, order.StatusAssigned)

		require.NoError(t, o.Decline())

		assert.Equal(t, order.StatusRejected, o.Status())
	})

	t.Run("failed complete leaves no partial stamps", func(t *testing.T) {
		o := orderInStatus(t, order.StatusPickedUp)

		err := o.Complete(o.CodAmount(), time.Now())

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.StatusPickedUp, o.Status())
		assert.Nil(t, o.CashCollected())
		assert.Nil(t, o.DeliveredAt())
	})
}

func TestOrder_Cancel(t *testing.T) {
	cancellable := []order.Status{
		order.StatusCreated,
		order.StatusAssigned,
		order.StatusPickedUp,
		order.StatusOutForDelivery,
	}

	for _, from := range cancellable {
		t.Run("from "+from.String(), func(t *testing.T) {
			o := orderInStatus(t, from)

			require.NoError(t, o.Cancel())
			assert.Equal(t, order.StatusCancelled, o.Status())
		})
	}

	t.Run("cannot cancel delivered order", func(t *testing.T) {
		o := orderInStatus(t, order.StatusDelivered)

		err := o.Cancel()

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trips completion stamps", func(t *testing.T) {
		courierID := kernel.NewUUID()
		cash := mustMoney(t, "1416")
		deliveredAt := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), &courierID,
			validLines(t), validPricing(t),
			order.PaymentMethodCashOnDelivery, validDeliveryInfo(t),
			mustMoney(t, "1416"), "4821", &cash,
			order.StatusDelivered, &deliveredAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.CashCollected())
		assert.Equal(t, "1416", o.CashCollected().String())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			validLines(t), validPricing(t),
			order.PaymentMethodCard, validDeliveryInfo(t),
			kernel.ZeroMoney(), "", nil,
			order.Status(99), nil,
		)

		require.Error(t, err)
	})
}

func TestNewDeliveryInfo(t *testing.T) {
	point, _ := kernel.NewGeoPoint(1, 2)

	t.Run("requires address", func(t *testing.T) {
		_, err := order.NewDeliveryInfo("Asha", "", "+91-99000-11223", point)

		require.ErrorIs(t, err, order.ErrIncompleteDeliveryInfo)
	})

	t.Run("requires phone", func(t *testing.T) {
		_, err := order.NewDeliveryInfo("Asha", "42 MG Road", "", point)

		require.ErrorIs(t, err, order.ErrIncompleteDeliveryInfo)
	})

	t.Run("recipient name is optional", func(t *testing.T) {
		info, err := order.NewDeliveryInfo("", "42 MG Road", "+91-99000-11223", point)

		require.NoError(t, err)
		assert.Empty(t, info.Recipient())
	})
}

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("parses known methods", func(t *testing.T) {
		card, err := order.PaymentMethodFromString("card")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethodCard, card)

		cod, err := order.PaymentMethodFromString("cod")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethodCashOnDelivery, cod)
	})

	t.Run("rejects unknown methods", func(t *testing.T) {
		_, err := order.PaymentMethodFromString("barter")

		require.Error(t, err)
	})
}
