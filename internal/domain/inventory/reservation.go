package inventory

import "github.com/google/uuid"

// Reservation is the transient result of claiming units for one checkout
// attempt. It is never persisted on its own; the caller consumes it to build
// an order, or releases the items if the downstream charge fails.
type Reservation struct {
	email string
	items []*Item
}

func NewReservation(email string, items []*Item) *Reservation {
	return &Reservation{
		email: email,
		items: items,
	}
}

func (r *Reservation) Email() string  { return r.email }
func (r *Reservation) Items() []*Item { return r.items }
func (r *Reservation) Quantity() int  { return len(r.items) }

func (r *Reservation) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.items))
	for i, item := range r.items {
		ids[i] = item.ID()
	}
	return ids
}

// TotalCents is the sum of the prices stamped on the claimed units. All units
// of one reservation share the same snapshot price, so this equals
// quantity * unit price at claim time.
func (r *Reservation) TotalCents() int64 {
	var total int64
	for _, item := range r.items {
		if item.PriceCents() != nil {
			total += *item.PriceCents()
		}
	}
	return total
}
