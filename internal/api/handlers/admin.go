package handlers

import (
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles HTTP requests for the admin dashboard
type AdminHandler struct {
	adminService service.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// DashboardCounts handles GET /admin/dashboard
// @Summary Get portal-wide counts for the admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) DashboardCounts(c *gin.Context) {
	counts, err := h.adminService.GetDashboardCounts()
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, counts)
}
