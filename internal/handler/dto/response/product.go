package response

import (
	"time"

	"merchstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID             uuid.UUID `json:"id"`
	BrandID        uuid.UUID `json:"brandId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PriceCents     int64     `json:"priceCents"`
	Published      bool      `json:"published"`
	ItemsAvailable int64     `json:"itemsAvailable"`
	ItemsSold      int64     `json:"itemsSold"`
	SoldOut        bool      `json:"soldOut"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:             v.ID,
		BrandID:        v.BrandID,
		Name:           v.Name,
		Description:    v.Description,
		PriceCents:     v.PriceCents,
		Published:      v.Published,
		ItemsAvailable: v.ItemsAvailable,
		ItemsSold:      v.ItemsSold,
		SoldOut:        v.SoldOut(),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}
