package response

import "github.com/google/uuid"

type InventoryResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	ItemsAvailable int64     `json:"itemsAvailable"`
	ItemsSold      int64     `json:"itemsSold"`
}
