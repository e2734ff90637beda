package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile handles GET /api/v1/profile
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.ProfileView} "Profile retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	view, err := h.profileService.Load(c.Request.Context(), nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load profile")
		utils.AppErrorResponse(c, err, "Failed to load profile")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved successfully", view)
}
