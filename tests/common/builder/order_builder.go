//go:build unit || e2e

package builder

import (
	"time"

	"merchstore/internal/domain/order"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	Email        string
	AmountCents  int64
	CardLastFour string
	ItemIDs      []uuid.UUID
	CreatedAt    time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:           uuid.New(),
		ProductID:    uuid.New(),
		Email:        "buyer@example.com",
		AmountCents:  9000,
		CardLastFour: "4242",
		ItemIDs:      []uuid.UUID{uuid.New(), uuid.New()},
		CreatedAt:    time.Now(),
	}
}

func (b *OrderBuilder) Build() *order.Order {
	return order.ReconstructOrder(b.ID, b.ProductID, b.Email, b.AmountCents, b.CardLastFour, b.ItemIDs, b.CreatedAt)
}

func (b *OrderBuilder) WithProductID(productID uuid.UUID) *OrderBuilder {
	b.ProductID = productID
	return b
}

func (b *OrderBuilder) WithItemIDs(itemIDs []uuid.UUID) *OrderBuilder {
	b.ItemIDs = itemIDs
	return b
}

func (b *OrderBuilder) WithAmountCents(amountCents int64) *OrderBuilder {
	b.AmountCents = amountCents
	return b
}
