package router

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/store-health", healthHandler.CheckStoreHealth)
}
