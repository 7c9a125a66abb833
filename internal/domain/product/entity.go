package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBlankName      = errors.New("product name cannot be blank")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrAlreadyDeleted = errors.New("product is already deleted")
)

// Product is a sellable catalog entry. Its price is the live asking price;
// units already reserved keep the price stamped at reservation time.
type Product struct {
	id          uuid.UUID
	brandID     uuid.UUID
	name        string
	description string
	priceCents  int64
	published   bool
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

func NewProduct(brandID uuid.UUID, name, description string, priceCents int64, published bool) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:          uuid.New(),
		brandID:     brandID,
		name:        name,
		description: description,
		priceCents:  priceCents,
		published:   published,
	}, nil
}

func ReconstructProduct(
	id, brandID uuid.UUID,
	name, description string,
	priceCents int64,
	published bool,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Product {
	return &Product{
		id:          id,
		brandID:     brandID,
		name:        name,
		description: description,
		priceCents:  priceCents,
		published:   published,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}
}

func (p *Product) ChangePrice(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativePrice
	}
	p.priceCents = priceCents
	return nil
}

func (p *Product) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	p.name = name
	p.description = description
	return nil
}

func (p *Product) Publish()   { p.published = true }
func (p *Product) Unpublish() { p.published = false }

// SoftDelete withdraws the product from sale while keeping the row for
// historical orders that still reference its items.
func (p *Product) SoftDelete(now time.Time) error {
	if p.deletedAt != nil {
		return ErrAlreadyDeleted
	}
	p.published = false
	p.deletedAt = &now
	return nil
}

func (p *Product) IsDeleted() bool {
	return p.deletedAt != nil
}

// AcceptsReservations reports whether the reservation engine may claim units.
func (p *Product) AcceptsReservations() bool {
	return p.published && p.deletedAt == nil
}

func (p *Product) ID() uuid.UUID         { return p.id }
func (p *Product) BrandID() uuid.UUID    { return p.brandID }
func (p *Product) Name() string          { return p.name }
func (p *Product) Description() string   { return p.description }
func (p *Product) PriceCents() int64     { return p.priceCents }
func (p *Product) Published() bool       { return p.published }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }
func (p *Product) DeletedAt() *time.Time { return p.deletedAt }
