// internal/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shopstack/storefront-backend/internal/services"
	"github.com/shopstack/storefront-backend/internal/utils"
)

// handleServiceError maps the service failure taxonomy onto stable HTTP
// responses. Unknown errors are logged and surfaced as 500 without
// leaking storage detail.
func handleServiceError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrEmptyCart):
		utils.BadRequestResponse(c, "Cart is empty", nil)
	case errors.Is(err, services.ErrInvalidQuantity):
		utils.BadRequestResponse(c, "Quantity must be at least 1", nil)
	case errors.Is(err, services.ErrInvalidStatus):
		utils.BadRequestResponse(c, "Invalid status transition", nil)
	case errors.Is(err, services.ErrPaymentCompleted):
		utils.BadRequestResponse(c, "Payment already completed for this order", nil)
	case errors.Is(err, services.ErrAlreadySeeded):
		utils.ErrorResponse(c, http.StatusConflict, "CONFLICT", "Catalog already seeded", nil)
	default:
		logrus.WithError(err).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}
