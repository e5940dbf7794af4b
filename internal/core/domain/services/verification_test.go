package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func buildOrder(t *testing.T, method order.PaymentMethod, otp string, total string) *order.Order {
	t.Helper()
	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	info, err := order.NewDeliveryInfo("Asha", "42 MG Road", "+91-99000-11223", point)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), "Monitor", mustMoney(t, total), 1)
	require.NoError(t, err)

	pricing := order.Pricing{
		Subtotal: mustMoney(t, total),
		Tax:      kernel.ZeroMoney(),
		Shipping: kernel.ZeroMoney(),
		Total:    mustMoney(t, total),
	}

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{line}, pricing, method, info, otp)
	require.NoError(t, err)
	return o
}

func TestVerificationGateway_Verify(t *testing.T) {
	gateway := services.NewVerificationGateway()

	t.Run("passes when neither check applies", func(t *testing.T) {
		o := buildOrder(t, order.PaymentMethodCard, "", "500")

		err := gateway.Verify(o, "", kernel.ZeroMoney())

		require.NoError(t, err)
	})

	t.Run("exact OTP match passes", func(t *testing.T) {
		o := buildOrder(t, order.PaymentMethodCard, "4821", "500")

		err := gateway.Verify(o, "4821", kernel.ZeroMoney())

		require.NoError(t, err)
	})

	t.Run("wrong OTP fails without state change", func(t *testing.T) {
		o := buildOrder(t, order.PaymentMethodCard, "4821", "500")

		err := gateway.Verify(o, "4820", kernel.ZeroMoney())

		require.ErrorIs(t, err, services.ErrOtpMismatch)
		assert.Equal(t, order.StatusCreated, o.Status())
	})

	t.Run("OTP comparison is exact string equality", func(t *testing.T) {
		o := buildOrder(t, order.PaymentMethodCard, "4821", "500")

		require.Error(t, gateway.Verify(o, " 4821", kernel.ZeroMoney()))
		require.Error(t, gateway.Verify(o, "04821", kernel.ZeroMoney()))
	})

	t.Run("cod underpayment fails with both amounts", func(t *testing.T) {
		o := buildOrder(t, order.PaymentMethodCashOnDelivery, "", "500")

		err := gateway.Verify(o, "", mustMoney(t, "450"))

		require.ErrorIs(t, err, services.ErrCashAmountMismatch)

		var mismatch *services.CashAmountMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "500", mismatch.Expected.String())
		assert.Equal(t, "450", mismatch.Submitted.String())
	})

	t.Run("cod overpayment fails too", func(t *testing.T) {
		o := buildOrder(t, order.PaymentMethodCashOnDelivery, "", "500")

		err := gateway.Verify(o, "", mustMoney(t, "550"))

		require.ErrorIs(t, err, services.ErrCashAmountMismatch)
	})

	t.Run("exact cod amount passes", func(t *testing.T) {
		o := buildOrder(t, order.PaymentMethodCashOnDelivery, "", "500")

		err := gateway.Verify(o, "", mustMoney(t, "500"))

		require.NoError(t, err)
	})

	t.Run("both checks must pass together", func(t *testing.T) {
		o := buildOrder(t, order.PaymentMethodCashOnDelivery, "4821", "500")

		require.ErrorIs(t, gateway.Verify(o, "4820", mustMoney(t, "500")), services.ErrOtpMismatch)
		require.ErrorIs(t, gateway.Verify(o, "4821", mustMoney(t, "450")), services.ErrCashAmountMismatch)
		require.NoError(t, gateway.Verify(o, "4821", mustMoney(t, "500")))
	})
}
