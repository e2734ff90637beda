package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hostel-be-svc/pkg/errors"
)

// APIResponse represents the standard API response envelope
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Operation completed successfully"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse sends a 200 response with data
func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse sends a 201 response with data
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BadRequestResponse sends a 400 response
func BadRequestResponse(c *gin.Context, message string, err error) {
	errorResponse(c, http.StatusBadRequest, message, err)
}

// UnauthorizedResponse sends a 401 response
func UnauthorizedResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusUnauthorized, message, nil)
}

// NotFoundResponse sends a 404 response
func NotFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message, nil)
}

// UnprocessableResponse sends a 422 response
func UnprocessableResponse(c *gin.Context, message string, err error) {
	errorResponse(c, http.StatusUnprocessableEntity, message, err)
}

// BadGatewayResponse sends a 502 response
func BadGatewayResponse(c *gin.Context, message string, err error) {
	errorResponse(c, http.StatusBadGateway, message, err)
}

// InternalServerErrorResponse sends a 500 response
func InternalServerErrorResponse(c *gin.Context, message string, err error) {
	errorResponse(c, http.StatusInternalServerError, message, err)
}

// AppErrorResponse maps an AppError type onto the matching HTTP status.
// The message shown is the error's own message, or fallback when it has none.
func AppErrorResponse(c *gin.Context, err error, fallback string) {
	message := apperrors.MessageOf(err, fallback)

	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		BadRequestResponse(c, message, err)
	case apperrors.ErrorTypeNoSession:
		UnauthorizedResponse(c, message)
	case apperrors.ErrorTypeApplication:
		UnprocessableResponse(c, message, err)
	case apperrors.ErrorTypeTransport:
		BadGatewayResponse(c, message, err)
	default:
		InternalServerErrorResponse(c, fallback, err)
	}
}

func errorResponse(c *gin.Context, status int, message string, err error) {
	response := APIResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}
	c.JSON(status, response)
}
