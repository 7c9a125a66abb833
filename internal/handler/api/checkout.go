package api

import (
	"errors"
	"net/http"

	reqdto "merchstore/internal/handler/dto/request"
	resdto "merchstore/internal/handler/dto/response"
	"merchstore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkoutCommands: checkoutCommands}
}

func (h *CheckoutHandler) Purchase(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.PurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ord, err := h.checkoutCommands.Purchase(c.Request.Context(), commands.PurchaseParams{
		ProductID:    productID,
		Quantity:     req.Quantity,
		Email:        req.Email,
		PaymentToken: req.PaymentToken,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound),
			errors.Is(err, commands.ErrUnpublishedProduct):
			// Unpublished products look like missing ones to buyers.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, commands.ErrInsufficientInventory):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Not enough items remaining",
			})
		case errors.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid quantity",
			})
		case errors.Is(err, commands.ErrPaymentFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(ord))
}
