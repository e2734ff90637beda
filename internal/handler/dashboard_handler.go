package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard handles GET /api/v1/dashboard
// @Summary Get dashboard
// @Description Summary for the logged-in student: room, rent, payment status, today's menu and notifications.
// @Description Without a session the empty dashboard is returned and no backend call is made.
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardView} "Dashboard retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	view, err := h.dashboardService.Load(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load dashboard")
		utils.AppErrorResponse(c, err, "Failed to load dashboard")
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved successfully", view)
}
