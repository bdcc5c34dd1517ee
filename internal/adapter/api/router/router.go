package router

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware, rateLimitMiddleware)
	SetupTicketRouter(e, authMiddleware, rateLimitMiddleware)
	SetupAdRouter(e, authMiddleware)
	SetupCodeRouter(e, rateLimitMiddleware)
	SetupHealthRouter(e)
}
