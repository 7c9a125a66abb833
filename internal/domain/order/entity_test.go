//go:build unit

package order_test

import (
	"testing"

	"merchstore/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		productID := uuid.New()
		itemIDs := []uuid.UUID{uuid.New(), uuid.New()}

		o, err := order.NewOrder(productID, "buyer@example.com", 9000, "4242", itemIDs)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, productID, o.ProductID())
		assert.Equal(t, "buyer@example.com", o.Email())
		assert.Equal(t, int64(9000), o.AmountCents())
		assert.Equal(t, "4242", o.CardLastFour())
		assert.Equal(t, 2, o.Quantity())
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := order.NewOrder(uuid.New(), "buyer@example.com", 0, "4242", nil)
		assert.ErrorIs(t, err, order.ErrNoItems)
	})
}
