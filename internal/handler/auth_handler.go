package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
	"hostel-be-svc/pkg/utils"
)

// AuthHandler handles login and session HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" example:"student@example.com"`
	Password string `json:"password" example:"secret"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Authenticate against the hostel API and cache the returned user (password removed)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=object} "Logged in"
// @Failure 400 {object} utils.APIResponse "Missing email or password"
// @Failure 422 {object} utils.APIResponse "Rejected by the hostel API"
// @Failure 502 {object} utils.APIResponse "Hostel API unreachable"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid login request body")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.AppErrorResponse(c, err, "Network/server error")
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", user)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Clear the cached session user
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse "Logged out"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.logger.WithError(err).Error("Failed to log out")
		utils.AppErrorResponse(c, err, "Failed to log out")
		return
	}

	utils.SuccessResponse(c, "Logged out successfully", nil)
}

// Session handles GET /api/v1/session
// @Summary Current session user
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=object} "Session user"
// @Failure 401 {object} utils.APIResponse "No user logged in"
// @Router /api/v1/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	user, err := h.authService.Current(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to read session")
		return
	}

	utils.SuccessResponse(c, "Session retrieved successfully", user)
}
