package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// ComplaintHandler handles complaint HTTP requests
type ComplaintHandler struct {
	complaintService service.ComplaintService
	logger           *logger.Logger
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService service.ComplaintService, logger *logger.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		logger:           logger,
	}
}

// GetForm handles GET /api/v1/complaints/form
// @Summary Get prefilled complaint form
// @Tags complaints
// @Produce json
// @Success 200 {object} utils.APIResponse{data=models.ComplaintForm} "Form retrieved successfully"
// @Router /api/v1/complaints/form [get]
func (h *ComplaintHandler) GetForm(c *gin.Context) {
	form, err := h.complaintService.Prefill(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to prefill complaint form")
		return
	}

	utils.SuccessResponse(c, "Form retrieved successfully", form)
}

// ListComplaints handles GET /api/v1/complaints
// @Summary List complaints by phone
// @Description Backend failures return an empty list with a message
// @Tags complaints
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} utils.APIResponse{data=response.ComplaintListView} "Complaints retrieved"
// @Failure 400 {object} utils.APIResponse "Phone number missing"
// @Router /api/v1/complaints [get]
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	listing, err := h.complaintService.List(c.Request.Context(), utils.GetTrimmedQuery(c, "phone"))
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to list complaints")
		return
	}

	utils.SuccessResponse(c, "Complaints retrieved", listing)
}

// SubmitComplaint handles POST /api/v1/complaints
// @Summary Submit a complaint
// @Description Accepts JSON or form data. date defaults to today.
// @Tags complaints
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Param request body models.ComplaintForm true "Complaint"
// @Success 201 {object} utils.APIResponse{data=response.SubmissionResult} "Complaint submitted"
// @Failure 400 {object} utils.APIResponse "Required field missing"
// @Failure 422 {object} utils.APIResponse "Rejected by the hostel API"
// @Failure 502 {object} utils.APIResponse "Hostel API unreachable"
// @Router /api/v1/complaints [post]
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var form models.ComplaintForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.WithError(err).Error("Invalid complaint request body")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	result, err := h.complaintService.Submit(c.Request.Context(), form)
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to submit complaint")
		return
	}

	utils.CreatedResponse(c, result.Message, result)
}
