//go:build unit || e2e

package builder

import (
	"time"

	"merchstore/internal/domain/inventory"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	Status     inventory.Status
	PriceCents *int64
	OrderID    *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewItemBuilder() *ItemBuilder {
	now := time.Now()
	return &ItemBuilder{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Status:    inventory.StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ItemBuilder) BuildDomain() *inventory.Item {
	return inventory.ReconstructItem(b.ID, b.ProductID, b.Status, b.PriceCents, b.OrderID, b.CreatedAt, b.UpdatedAt)
}

// BuildDomainSet returns n available items for the same product.
func (b *ItemBuilder) BuildDomainSet(n int) []*inventory.Item {
	items := make([]*inventory.Item, n)
	for i := range items {
		items[i] = inventory.ReconstructItem(uuid.New(), b.ProductID, b.Status, b.PriceCents, b.OrderID, b.CreatedAt, b.UpdatedAt)
	}
	return items
}

func (b *ItemBuilder) WithProductID(productID uuid.UUID) *ItemBuilder {
	b.ProductID = productID
	return b
}

func (b *ItemBuilder) AsReserved(priceCents int64) *ItemBuilder {
	b.Status = inventory.StatusReserved
	b.PriceCents = &priceCents
	return b
}

func (b *ItemBuilder) WithOrderID(orderID uuid.UUID) *ItemBuilder {
	b.OrderID = &orderID
	return b
}
