//go:build unit

package inventory_test

import (
	"testing"

	"merchstore/internal/domain/inventory"
	"merchstore/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_Reserve(t *testing.T) {
	t.Run("stamps price and flips status", func(t *testing.T) {
		item := builder.NewItemBuilder().BuildDomain()
		require.True(t, item.IsAvailable())
		require.Nil(t, item.PriceCents())

		require.NoError(t, item.Reserve(4500))
		assert.Equal(t, inventory.StatusReserved, item.Status())
		require.NotNil(t, item.PriceCents())
		assert.Equal(t, int64(4500), *item.PriceCents())
	})

	t.Run("reserving twice fails and keeps the first stamp", func(t *testing.T) {
		item := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, item.Reserve(4500))

		err := item.Reserve(9900)
		assert.ErrorIs(t, err, inventory.ErrAlreadyReserved)
		assert.Equal(t, int64(4500), *item.PriceCents())
	})
}

func TestItem_Release(t *testing.T) {
	t.Run("clears the stamped price", func(t *testing.T) {
		item := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, item.Reserve(4500))

		require.NoError(t, item.Release())
		assert.True(t, item.IsAvailable())
		assert.Nil(t, item.PriceCents())
	})

	t.Run("available item cannot be released", func(t *testing.T) {
		item := builder.NewItemBuilder().BuildDomain()
		assert.ErrorIs(t, item.Release(), inventory.ErrNotReserved)
	})

	t.Run("sold item cannot be released", func(t *testing.T) {
		item := builder.NewItemBuilder().AsReserved(4500).WithOrderID(uuid.New()).BuildDomain()
		assert.ErrorIs(t, item.Release(), inventory.ErrItemAttached)
	})
}

func TestItem_AttachOrder(t *testing.T) {
	t.Run("attaches to a reserved item", func(t *testing.T) {
		item := builder.NewItemBuilder().AsReserved(4500).BuildDomain()
		orderID := uuid.New()

		require.NoError(t, item.AttachOrder(orderID))
		require.NotNil(t, item.OrderID())
		assert.Equal(t, orderID, *item.OrderID())
	})

	t.Run("available item cannot be attached", func(t *testing.T) {
		item := builder.NewItemBuilder().BuildDomain()
		assert.ErrorIs(t, item.AttachOrder(uuid.New()), inventory.ErrNotReserved)
	})
}

func TestReservation(t *testing.T) {
	t.Run("totals the stamped prices", func(t *testing.T) {
		items := builder.NewItemBuilder().BuildDomainSet(3)
		for _, item := range items {
			require.NoError(t, item.Reserve(4500))
		}

		r := inventory.NewReservation("buyer@example.com", items)
		assert.Equal(t, "buyer@example.com", r.Email())
		assert.Equal(t, 3, r.Quantity())
		assert.Equal(t, int64(13500), r.TotalCents())
		assert.Len(t, r.ItemIDs(), 3)
	})

	t.Run("item ids preserve claim order", func(t *testing.T) {
		items := builder.NewItemBuilder().BuildDomainSet(2)
		for _, item := range items {
			require.NoError(t, item.Reserve(100))
		}

		r := inventory.NewReservation("buyer@example.com", items)
		ids := r.ItemIDs()
		assert.Equal(t, items[0].ID(), ids[0])
		assert.Equal(t, items[1].ID(), ids[1])
	})
}
