package handler

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/usecase"
	"qrstudio/pkg/errors"
	"qrstudio/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type submitReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Submit(c.Request().Context(), usecase.SubmitReviewInput{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
		Email:   req.Email,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

// GetApprovedReviews is the public listing shown on the landing page.
func (h *ReviewHandler) GetApprovedReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListApproved(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

// GetReviewsByStatus is the admin moderation view.
func (h *ReviewHandler) GetReviewsByStatus(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = string(entity.ReviewStatusPending)
	}

	reviews, err := h.reviewUseCase.ListByStatus(c.Request().Context(), entity.ReviewStatus(status))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

func (h *ReviewHandler) ApproveReview(c echo.Context) error {
	review, err := h.reviewUseCase.Approve(c.Request().Context(), c.Param("reviewId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, review)
}

func (h *ReviewHandler) RejectReview(c echo.Context) error {
	review, err := h.reviewUseCase.Reject(c.Request().Context(), c.Param("reviewId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, review)
}

type replyRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *ReviewHandler) AddReply(c echo.Context) error {
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.AddReply(c.Request().Context(), c.Param("reviewId"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, review)
}

func (h *ReviewHandler) RemoveReply(c echo.Context) error {
	review, err := h.reviewUseCase.RemoveReply(c.Request().Context(), c.Param("reviewId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	if err := h.reviewUseCase.Delete(c.Request().Context(), c.Param("reviewId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}
