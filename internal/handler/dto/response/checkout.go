package response

import (
	"time"

	"merchstore/internal/domain/order"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID           uuid.UUID   `json:"id"`
	ProductID    uuid.UUID   `json:"productId"`
	Email        string      `json:"email"`
	Quantity     int         `json:"quantity"`
	AmountCents  int64       `json:"amountCents"`
	CardLastFour string      `json:"cardLastFour"`
	ItemIDs      []uuid.UUID `json:"itemIds"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:           o.ID(),
		ProductID:    o.ProductID(),
		Email:        o.Email(),
		Quantity:     o.Quantity(),
		AmountCents:  o.AmountCents(),
		CardLastFour: o.CardLastFour(),
		ItemIDs:      o.ItemIDs(),
		CreatedAt:    o.CreatedAt(),
	}
}
