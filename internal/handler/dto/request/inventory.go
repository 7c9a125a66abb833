package request

type SetInventoryRequest struct {
	// Target available count; reserved/sold units are never touched.
	ItemsRemaining int `json:"items_remaining" binding:"min=0"`
}

type AddItemsRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
