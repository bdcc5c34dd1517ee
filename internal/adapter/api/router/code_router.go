package router

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/adapter/api/handler"
	"qrstudio/internal/adapter/api/middleware"
)

func SetupCodeRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	codeHandler := handler.GetCodeHandler()

	codes := e.Group("/v1/codes")
	codes.Use(rateLimitMiddleware.Limit("generate_code"))

	codes.POST("/qr", codeHandler.GenerateQR)
	codes.POST("/barcode", codeHandler.GenerateBarcode)
	codes.POST("/datamatrix", codeHandler.GenerateDataMatrix)
	codes.POST("/aztec", codeHandler.GenerateAztec)
}
