package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// RoomHandler handles room details HTTP requests
type RoomHandler struct {
	roomDetailsService service.RoomDetailsService
	logger             *logger.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomDetailsService service.RoomDetailsService, logger *logger.Logger) *RoomHandler {
	return &RoomHandler{
		roomDetailsService: roomDetailsService,
		logger:             logger,
	}
}

// GetRoomDetails handles GET /api/v1/room
// @Summary Get assigned room
// @Description Room and booking of the logged-in student. A failed lookup is reported in message.
// @Tags room
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.RoomDetailsView} "Room details retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/room [get]
func (h *RoomHandler) GetRoomDetails(c *gin.Context) {
	view, err := h.roomDetailsService.Load(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load room details")
		utils.AppErrorResponse(c, err, "Failed to load room details")
		return
	}

	utils.SuccessResponse(c, "Room details retrieved successfully", view)
}
