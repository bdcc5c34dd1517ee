package router

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/adapter/api/handler"
	"qrstudio/internal/adapter/api/middleware"
)

func SetupTicketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	ticketHandler := handler.GetTicketHandler()

	// Public routes: submitters create tickets and follow up by id
	tickets := e.Group("/v1/tickets")
	tickets.POST("", ticketHandler.CreateTicket, rateLimitMiddleware.Limit("create_ticket"))
	tickets.GET("/:ticketId", ticketHandler.GetTicket)
	tickets.POST("/:ticketId/messages", ticketHandler.AddUserMessage, rateLimitMiddleware.Limit("add_message"))

	// Admin routes
	admin := e.Group("/v1/admin/tickets")
	admin.Use(authMiddleware.RequireSession)

	admin.GET("", ticketHandler.ListTickets)
	admin.PATCH("/:ticketId/status", ticketHandler.SetStatus)
	admin.POST("/:ticketId/messages", ticketHandler.AddAdminMessage)
	admin.DELETE("/:ticketId", ticketHandler.DeleteTicket)
}
