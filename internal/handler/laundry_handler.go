package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// maxUploadBytes bounds the multipart body held in memory
const maxUploadBytes = 8 << 20

// LaundryHandler handles laundry HTTP requests
type LaundryHandler struct {
	laundryService service.LaundryService
	logger         *logger.Logger
}

// NewLaundryHandler creates a new laundry handler
func NewLaundryHandler(laundryService service.LaundryService, logger *logger.Logger) *LaundryHandler {
	return &LaundryHandler{
		laundryService: laundryService,
		logger:         logger,
	}
}

// GetForm handles GET /api/v1/laundry/form
// @Summary Get prefilled laundry form
// @Tags laundry
// @Produce json
// @Success 200 {object} utils.APIResponse{data=models.LaundryForm} "Form retrieved successfully"
// @Router /api/v1/laundry/form [get]
func (h *LaundryHandler) GetForm(c *gin.Context) {
	form, err := h.laundryService.Prefill(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to prefill laundry form")
		return
	}

	utils.SuccessResponse(c, "Form retrieved successfully", form)
}

// ListRequests handles GET /api/v1/laundry
// @Summary List laundry requests by phone
// @Description Backend failures return an empty list with a message
// @Tags laundry
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} utils.APIResponse{data=response.LaundryListView} "Requests retrieved"
// @Failure 400 {object} utils.APIResponse "Phone number missing"
// @Router /api/v1/laundry [get]
func (h *LaundryHandler) ListRequests(c *gin.Context) {
	listing, err := h.laundryService.List(c.Request.Context(), utils.GetTrimmedQuery(c, "phone"))
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to list laundry requests")
		return
	}

	utils.SuccessResponse(c, "Requests retrieved", listing)
}

// SubmitRequest handles POST /api/v1/laundry
// @Summary Submit a laundry request
// @Tags laundry
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param phone formData string true "Phone"
// @Param given_cloth formData string true "Number of clothes given"
// @Param room_no formData string true "Room number"
// @Param date formData string false "Date (YYYY-MM-DD), defaults to today"
// @Param cloth_image formData file false "Photo of the clothes"
// @Success 201 {object} utils.APIResponse{data=response.SubmissionResult} "Request submitted"
// @Failure 400 {object} utils.APIResponse "Required field missing"
// @Failure 422 {object} utils.APIResponse "Rejected by the hostel API"
// @Failure 502 {object} utils.APIResponse "Hostel API unreachable"
// @Router /api/v1/laundry [post]
func (h *LaundryHandler) SubmitRequest(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	var form models.LaundryForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.WithError(err).Error("Invalid laundry request body")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	var upload *models.Upload
	fileHeader, err := c.FormFile("cloth_image")
	switch {
	case err == nil:
		file, err := fileHeader.Open()
		if err != nil {
			utils.BadRequestResponse(c, "Unreadable cloth image", err)
			return
		}
		defer file.Close()
		upload = &models.Upload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Body:        file,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		utils.BadRequestResponse(c, "Invalid cloth image", err)
		return
	}

	result, err := h.laundryService.Submit(c.Request.Context(), form, upload)
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to submit laundry request")
		return
	}

	utils.CreatedResponse(c, result.Message, result)
}
