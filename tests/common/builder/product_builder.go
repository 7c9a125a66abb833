//go:build unit || e2e

package builder

import (
	"time"

	domproduct "merchstore/internal/domain/product"
	reqdto "merchstore/internal/handler/dto/request"
	"merchstore/internal/usecase/queries"
	"merchstore/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID             uuid.UUID
	BrandID        uuid.UUID
	Name           string
	Description    string
	PriceCents     int64
	Published      bool
	ItemsAvailable int64
	ItemsSold      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Now()
	return &ProductBuilder{
		ID:             uuid.New(),
		BrandID:        uuid.New(),
		Name:           "Tour Hoodie",
		Description:    "Limited tour merchandise",
		PriceCents:     4500,
		Published:      true,
		ItemsAvailable: 10,
		ItemsSold:      0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Build methods
func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(b.BrandID, b.Name, b.Description, b.PriceCents, b.Published)
}

func (b *ProductBuilder) BuildSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:          b.ID,
		BrandID:     b.BrandID,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Published:   b.Published,
		DeletedAt:   b.DeletedAt,
	}
}

func (b *ProductBuilder) BuildViewQuery() *queries.ProductView {
	return &queries.ProductView{
		ID:             b.ID,
		BrandID:        b.BrandID,
		Name:           b.Name,
		Description:    b.Description,
		PriceCents:     b.PriceCents,
		Published:      b.Published,
		ItemsAvailable: b.ItemsAvailable,
		ItemsSold:      b.ItemsSold,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		Published:       b.Published,
		InitialQuantity: int(b.ItemsAvailable),
	}
}

func (b *ProductBuilder) BuildUpdateRequestDTO() reqdto.UpdateProductRequest {
	return reqdto.UpdateProductRequest{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Published:   b.Published,
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithBrandID(brandID uuid.UUID) *ProductBuilder {
	b.BrandID = brandID
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPriceCents(priceCents int64) *ProductBuilder {
	b.PriceCents = priceCents
	return b
}

func (b *ProductBuilder) WithPublished(published bool) *ProductBuilder {
	b.Published = published
	return b
}

func (b *ProductBuilder) WithItemsAvailable(n int64) *ProductBuilder {
	b.ItemsAvailable = n
	return b
}

func (b *ProductBuilder) WithDeletedAt(t time.Time) *ProductBuilder {
	b.DeletedAt = &t
	return b
}

func (b *ProductBuilder) AsUnpublished() *ProductBuilder {
	b.Published = false
	return b
}

func (b *ProductBuilder) AsSoldOut() *ProductBuilder {
	b.ItemsAvailable = 0
	return b
}
