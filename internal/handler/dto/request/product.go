package request

type CreateProductRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
	Published       bool   `json:"published"`
	InitialQuantity int    `json:"item_quantity" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	Published   bool   `json:"published"`
}
