// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopstack/storefront-backend/internal/services"
	"github.com/shopstack/storefront-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// GET /admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.ComputeStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "stats")
		return
	}

	utils.SuccessResponse(c, gin.H{"stats": stats})
}

// POST /admin/seed
func (h *AdminHandler) SeedCatalog(c *gin.Context) {
	if err := h.adminService.Seed(c.Request.Context()); err != nil {
		handleServiceError(c, err, "catalog")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Catalog seeded successfully"})
}
