// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopstack/storefront-backend/internal/services"
	"github.com/shopstack/storefront-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /cart
func (h *CartHandler) ViewCart(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	view, err := h.cartService.View(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"cart": view})
}

// POST /cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		handleServiceError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{"cart": cart})
}

// PUT /cart/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, c.Param("productId"), req.Quantity)
	if err != nil {
		handleServiceError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"cart": cart})
}

// DELETE /cart/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), userID, c.Param("productId"))
	if err != nil {
		handleServiceError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"cart": cart})
}
