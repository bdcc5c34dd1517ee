package handler

import (
	"github.com/labstack/echo/v4"

	"qrstudio/internal/usecase"
	"qrstudio/pkg/errors"
	"qrstudio/pkg/response"
)

type AdHandler struct {
	adUseCase *usecase.AdUseCase
}

func NewAdHandler(adUseCase *usecase.AdUseCase) *AdHandler {
	return &AdHandler{
		adUseCase: adUseCase,
	}
}

func (h *AdHandler) GetPlacements(c echo.Context) error {
	placements, err := h.adUseCase.GetAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, placements)
}

func (h *AdHandler) GetPlacement(c echo.Context) error {
	html, err := h.adUseCase.Get(c.Request().Context(), c.Param("position"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"position": c.Param("position"),
		"html":     html,
	})
}

type putPlacementRequest struct {
	HTML string `json:"html" validate:"required"`
}

func (h *AdHandler) PutPlacement(c echo.Context) error {
	var req putPlacementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.adUseCase.Put(c.Request().Context(), c.Param("position"), req.HTML); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"position": c.Param("position")})
}

func (h *AdHandler) DeletePlacement(c echo.Context) error {
	if err := h.adUseCase.Remove(c.Request().Context(), c.Param("position")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"deleted": true})
}
