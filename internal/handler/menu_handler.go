package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// FoodMenuHandler handles food menu HTTP requests
type FoodMenuHandler struct {
	foodMenuService service.FoodMenuService
	logger          *logger.Logger
}

// NewFoodMenuHandler creates a new food menu handler
func NewFoodMenuHandler(foodMenuService service.FoodMenuService, logger *logger.Logger) *FoodMenuHandler {
	return &FoodMenuHandler{
		foodMenuService: foodMenuService,
		logger:          logger,
	}
}

// GetFoodMenu handles GET /api/v1/food-menu
// @Summary Get weekly food menu
// @Description Full menu filtered by search on every column and cut to entries rows
// @Tags food-menu
// @Produce json
// @Param search query string false "Case-insensitive search term"
// @Param entries query int false "Entries per page" default(10)
// @Success 200 {object} utils.APIResponse{data=response.FoodMenuPage} "Menu retrieved successfully"
// @Failure 422 {object} utils.APIResponse "Rejected by the hostel API"
// @Failure 502 {object} utils.APIResponse "Hostel API unreachable"
// @Router /api/v1/food-menu [get]
func (h *FoodMenuHandler) GetFoodMenu(c *gin.Context) {
	search := utils.GetTrimmedQuery(c, "search")
	entries := utils.GetIntQuery(c, "entries", service.DefaultMenuPageSize)

	page, err := h.foodMenuService.Page(c.Request.Context(), search, entries)
	if err != nil {
		utils.AppErrorResponse(c, err, "Error fetching menu")
		return
	}

	utils.SuccessResponse(c, "Menu retrieved successfully", page)
}
