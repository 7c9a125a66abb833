package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyReserved = errors.New("item is already reserved")
	ErrNotReserved     = errors.New("item is not reserved")
	ErrItemAttached    = errors.New("item is attached to an order")
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
)

// Item is one individually tracked unit of stock. The price is unset while
// available and stamped exactly once when a reservation claims the unit.
type Item struct {
	id         uuid.UUID
	productID  uuid.UUID
	status     Status
	priceCents *int64
	orderID    *uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructItem(
	id, productID uuid.UUID,
	status Status,
	priceCents *int64,
	orderID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:         id,
		productID:  productID,
		status:     status,
		priceCents: priceCents,
		orderID:    orderID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Reserve stamps the claiming price and flips the unit to reserved.
func (i *Item) Reserve(priceCents int64) error {
	if i.status != StatusAvailable {
		return ErrAlreadyReserved
	}
	i.priceCents = &priceCents
	i.status = StatusReserved
	return nil
}

// Release returns a reserved unit to the pool, clearing the stamped price.
// Units already attached to an order are no longer releasable.
func (i *Item) Release() error {
	if i.status != StatusReserved {
		return ErrNotReserved
	}
	if i.orderID != nil {
		return ErrItemAttached
	}
	i.priceCents = nil
	i.status = StatusAvailable
	return nil
}

func (i *Item) AttachOrder(orderID uuid.UUID) error {
	if i.status != StatusReserved {
		return ErrNotReserved
	}
	i.orderID = &orderID
	return nil
}

func (i *Item) IsAvailable() bool { return i.status == StatusAvailable }

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) ProductID() uuid.UUID { return i.productID }
func (i *Item) Status() Status       { return i.status }
func (i *Item) PriceCents() *int64   { return i.priceCents }
func (i *Item) OrderID() *uuid.UUID  { return i.orderID }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
