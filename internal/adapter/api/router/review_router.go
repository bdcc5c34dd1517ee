package router

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/adapter/api/handler"
	"qrstudio/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	// Public routes
	reviews := e.Group("/v1/reviews")
	reviews.GET("", reviewHandler.GetApprovedReviews)
	reviews.POST("", reviewHandler.SubmitReview, rateLimitMiddleware.Limit("submit_review"))

	// Admin moderation routes
	admin := e.Group("/v1/admin/reviews")
	admin.Use(authMiddleware.RequireSession)

	admin.GET("", reviewHandler.GetReviewsByStatus)
	admin.POST("/:reviewId/approve", reviewHandler.ApproveReview)
	admin.POST("/:reviewId/reject", reviewHandler.RejectReview)
	admin.POST("/:reviewId/reply", reviewHandler.AddReply)
	admin.DELETE("/:reviewId/reply", reviewHandler.RemoveReply)
	admin.DELETE("/:reviewId", reviewHandler.DeleteReview)
}
