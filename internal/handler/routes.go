package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hostel-be-svc/internal/service"
	"hostel-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	dashboardService service.DashboardService,
	profileService service.ProfileService,
	roomDetailsService service.RoomDetailsService,
	foodMenuService service.FoodMenuService,
	complaintService service.ComplaintService,
	laundryService service.LaundryService,
	refreshLogService service.RefreshLogService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	profileHandler := NewProfileHandler(profileService, logger)
	roomHandler := NewRoomHandler(roomDetailsService, logger)
	foodMenuHandler := NewFoodMenuHandler(foodMenuService, logger)
	complaintHandler := NewComplaintHandler(complaintService, logger)
	laundryHandler := NewLaundryHandler(laundryService, logger)
	refreshLogHandler := NewRefreshLogHandler(refreshLogService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}
		v1.GET("/session", authHandler.Session)

		// Views backed by the cached session user
		v1.GET("/dashboard", dashboardHandler.GetDashboard)
		v1.GET("/profile", profileHandler.GetProfile)
		v1.GET("/room", roomHandler.GetRoomDetails)
		v1.GET("/food-menu", foodMenuHandler.GetFoodMenu)

		// Complaint routes
		complaints := v1.Group("/complaints")
		{
			complaints.GET("/form", complaintHandler.GetForm)
			complaints.GET("", complaintHandler.ListComplaints)
			complaints.POST("", complaintHandler.SubmitComplaint)
		}

		// Laundry routes
		laundry := v1.Group("/laundry")
		{
			laundry.GET("/form", laundryHandler.GetForm)
			laundry.GET("", laundryHandler.ListRequests)
			laundry.POST("", laundryHandler.SubmitRequest)
		}

		// Scheduled refresh history
		v1.GET("/refresh-logs", refreshLogHandler.GetRefreshLogs)
	}
}

// HealthCheck handles GET /api/v1/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Hostel Backend Service",
	})
}
