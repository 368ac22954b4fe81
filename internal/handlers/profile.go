// internal/handlers/profile.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopstack/storefront-backend/internal/services"
	"github.com/shopstack/storefront-backend/internal/utils"
)

type ProfileHandler struct {
	userService *services.UserService
}

func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	claimsValue, exists := c.Get("claims")
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	claims, ok := claimsValue.(*utils.JWTClaims)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), claims)
	if err != nil {
		handleServiceError(c, err, "profile")
		return
	}

	utils.SuccessResponse(c, gin.H{"profile": profile})
}

// PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "profile")
		return
	}

	utils.SuccessResponse(c, gin.H{"profile": profile})
}
