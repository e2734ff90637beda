package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// RefreshLogHandler handles refresh history HTTP requests
type RefreshLogHandler struct {
	refreshLogService service.RefreshLogService
	logger            *logger.Logger
}

// NewRefreshLogHandler creates a new refresh log handler
func NewRefreshLogHandler(refreshLogService service.RefreshLogService, logger *logger.Logger) *RefreshLogHandler {
	return &RefreshLogHandler{
		refreshLogService: refreshLogService,
		logger:            logger,
	}
}

// GetRefreshLogs handles GET /api/v1/refresh-logs
// @Summary Scheduled refresh history
// @Description Newest first. Empty unless SESSION_STORE=postgres.
// @Tags refresh-logs
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {object} utils.APIResponse{data=[]models.RefreshLog} "Refresh logs retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/refresh-logs [get]
func (h *RefreshLogHandler) GetRefreshLogs(c *gin.Context) {
	limit := utils.GetIntQuery(c, "limit", 20)

	logs, err := h.refreshLogService.GetRecent(c.Request.Context(), limit)
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to get refresh logs")
		return
	}

	utils.SuccessResponse(c, "Refresh logs retrieved successfully", logs)
}
