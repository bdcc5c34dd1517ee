package router

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/adapter/api/handler"
	"qrstudio/internal/adapter/api/middleware"
)

func SetupAdRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	adHandler := handler.GetAdHandler()

	// Public routes: pages read the slots they render
	ads := e.Group("/v1/ads")
	ads.GET("", adHandler.GetPlacements)
	ads.GET("/:position", adHandler.GetPlacement)

	// Admin routes
	admin := e.Group("/v1/admin/ads")
	admin.Use(authMiddleware.RequireSession)

	admin.PUT("/:position", adHandler.PutPlacement)
	admin.DELETE("/:position", adHandler.DeletePlacement)
}
