package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoItems = errors.New("order must reference at least one item")

// Order records a completed checkout: which units were sold, to whom, and the
// charge that paid for them. Item linkage happens after the reservation engine
// returns, in this caller-owned flow.
type Order struct {
	id           uuid.UUID
	productID    uuid.UUID
	email        string
	amountCents  int64
	cardLastFour string
	itemIDs      []uuid.UUID
	createdAt    time.Time
}

func NewOrder(productID uuid.UUID, email string, amountCents int64, cardLastFour string, itemIDs []uuid.UUID) (*Order, error) {
	if len(itemIDs) == 0 {
		return nil, ErrNoItems
	}
	return &Order{
		id:           uuid.New(),
		productID:    productID,
		email:        email,
		amountCents:  amountCents,
		cardLastFour: cardLastFour,
		itemIDs:      itemIDs,
	}, nil
}

func ReconstructOrder(
	id, productID uuid.UUID,
	email string,
	amountCents int64,
	cardLastFour string,
	itemIDs []uuid.UUID,
	createdAt time.Time,
) *Order {
	return &Order{
		id:           id,
		productID:    productID,
		email:        email,
		amountCents:  amountCents,
		cardLastFour: cardLastFour,
		itemIDs:      itemIDs,
		createdAt:    createdAt,
	}
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) ProductID() uuid.UUID { return o.productID }
func (o *Order) Email() string        { return o.email }
func (o *Order) AmountCents() int64   { return o.amountCents }
func (o *Order) CardLastFour() string { return o.cardLastFour }
func (o *Order) ItemIDs() []uuid.UUID { return o.itemIDs }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Quantity() int        { return len(o.itemIDs) }
