package shared

import (
	"time"

	"github.com/google/uuid"
)

// ProductSnapshot is the minimal product view command flows need: the publish
// guard and the price captured once per reservation.
type ProductSnapshot struct {
	ID          uuid.UUID
	BrandID     uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	Published   bool
	DeletedAt   *time.Time
}

func (s *ProductSnapshot) AcceptsReservations() bool {
	return s.Published && s.DeletedAt == nil
}
