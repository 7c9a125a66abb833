package request

type PurchaseRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	PaymentToken string `json:"payment_token" binding:"required"`
}
