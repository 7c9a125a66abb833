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

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands) *InventoryHandler {
	return &InventoryHandler{inventoryCommands: inventoryCommands}
}

// SetInventory is the administrative resize endpoint; it converges available
// stock to the requested count without touching reserved units.
func (h *InventoryHandler) SetInventory(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.SetInventoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.inventoryCommands.SetAvailable(c.Request.Context(), productID, req.ItemsRemaining); err != nil {
		h.respondInventoryError(c, err)
		return
	}

	h.respondCounts(c, productID)
}

func (h *InventoryHandler) AddItems(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.AddItemsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.inventoryCommands.AddItems(c.Request.Context(), productID, req.Quantity); err != nil {
		h.respondInventoryError(c, err)
		return
	}

	h.respondCounts(c, productID)
}

func (h *InventoryHandler) GetInventory(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	h.respondCounts(c, productID)
}

func (h *InventoryHandler) respondCounts(c *gin.Context, productID uuid.UUID) {
	available, err := h.inventoryCommands.CountAvailable(c.Request.Context(), productID)
	if err != nil {
		h.respondInventoryError(c, err)
		return
	}
	sold, err := h.inventoryCommands.CountSold(c.Request.Context(), productID)
	if err != nil {
		h.respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.InventoryResponse{
		ProductID:      productID,
		ItemsAvailable: available,
		ItemsSold:      sold,
	})
}

func (h *InventoryHandler) respondInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, commands.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quantity",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
