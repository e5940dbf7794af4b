package courier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("creates active courier", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, "Ravi")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Ravi", c.Name())
		assert.True(t, c.IsActive())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Equal(t, courier.ErrNameIsRequired, err)
	})

	t.Run("requires a valid ID", func(t *testing.T) {
		var id kernel.UUID

		_, err := courier.NewCourier(id, "Ravi")

		require.Error(t, err)
	})

	t.Run("nil courier fails validation", func(t *testing.T) {
		var c *courier.Courier

		require.Error(t, c.Validate())
	})
}

func TestCourier_Availability(t *testing.T) {
	t.Run("deactivate and activate toggle eligibility", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Ravi")
		require.NoError(t, err)

		c.Deactivate()
		assert.False(t, c.IsActive())

		c.Activate()
		assert.True(t, c.IsActive())
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("preserves stored availability", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Ravi", false)

		require.NoError(t, err)
		assert.False(t, c.IsActive())
	})
}
