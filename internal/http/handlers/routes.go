package handlers

import (
	"studyscape/internal/app"
	"studyscape/internal/http/middleware"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	authHandler := NewAuthHandler(services.AuthService)
	spotHandler := NewSpotHandler(services.SpotService, services.StorageService)
	reviewHandler := NewReviewHandler(services.ReviewService)
	openNowHandler := NewOpenNowHandler(services.SpotService)

	// Auth routes (no authentication required)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Public spot browsing
	api.GET("/spots", spotHandler.List)
	api.GET("/spots/open-now", openNowHandler.List)
	api.GET("/spots/:id", spotHandler.GetByID)
	api.GET("/spots/:id/reviews", reviewHandler.ListBySpot)

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(services.AuthService))

	protected.GET("/auth/me", authHandler.Me)

	protected.POST("/spots", spotHandler.Create)
	protected.PUT("/spots/:id", spotHandler.Update)
	protected.POST("/spots/:id/photo", spotHandler.UploadPhoto)
	protected.POST("/spots/:id/reviews", reviewHandler.Create)
	protected.DELETE("/reviews/:id", reviewHandler.Delete)

	// Admin-only routes
	admin := protected.Group("")
	admin.Use(middleware.AdminOnly())
	admin.DELETE("/spots/:id", spotHandler.Delete)
}
