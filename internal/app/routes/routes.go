package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/app/controllers"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	updateController *controllers.UpdateController,
	cutoffController *controllers.CutoffController,
	predictorController *controllers.PredictorController,
	guideController *controllers.GuideController,
	bookingController *controllers.BookingController,
	authMiddleware *middleware.AuthMiddleware,
	publicWriteLimiter *middleware.TokenBucket,
) {
	// Root endpoint map
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name": "MHT CET Advisor API",
			"endpoints": gin.H{
				"updates":  "/api/updates",
				"cutoffs":  "/api/cutoffs",
				"predict":  "/api/predict",
				"guides":   "/api/guides",
				"bookings": "/api/bookings",
				"admin":    "/api/admin",
				"health":   "/api/health",
			},
		})
	})

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// --- Public routes ---
	api.GET("/updates", updateController.GetUpdates)
	api.GET("/cutoffs", cutoffController.GetCutoffs)
	api.POST("/predict", predictorController.Predict)

	guides := api.Group("/guides")
	{
		guides.GET("", guideController.GetGuides)
		guides.POST("/download", publicWriteLimiter.GinMiddleware(), guideController.DownloadGuide)
	}

	api.POST("/bookings", publicWriteLimiter.GinMiddleware(), bookingController.CreateBooking)

	// --- Admin routes ---
	admin := api.Group("/admin")
	admin.POST("/login", authController.Login)

	protected := admin.Group("")
	protected.Use(authMiddleware.JWTAuth())
	{
		protected.POST("/updates", updateController.CreateUpdate)
		protected.PUT("/updates/:id", updateController.EditUpdate)
		protected.DELETE("/updates/:id", updateController.DeleteUpdate)

		protected.POST("/cutoffs", cutoffController.BulkInsertCutoffs)

		protected.POST("/guides", guideController.CreateGuide)

		protected.GET("/bookings", bookingController.GetBookings)
		protected.GET("/bookings/:id", bookingController.GetBooking)
		protected.PATCH("/bookings/:id/status", bookingController.UpdateBookingStatus)
		protected.DELETE("/bookings/:id", bookingController.DeleteBooking)
	}
}
