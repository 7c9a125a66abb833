package repository

import (
	"context"

	"merchstore/internal/domain/order"
	"merchstore/internal/infra"
	"merchstore/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, product_id, email, amount_cents, card_last_four)
		VALUES ($1, $2, $3, $4, $5)`,
		o.ID(), o.ProductID(), o.Email(), o.AmountCents(), o.CardLastFour())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return o.ID(), nil
}
