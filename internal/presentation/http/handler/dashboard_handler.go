package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/application/service"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/response"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/middleware"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns company-wide stats and the most recent sales
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	data, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", data)
}
