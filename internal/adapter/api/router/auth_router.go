package router

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/adapter/api/handler"
	"qrstudio/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authMiddleware.RequireSession)
	auth.GET("/session", authHandler.Session, authMiddleware.RequireSession)
}
