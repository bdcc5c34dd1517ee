package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/usecase"
	"qrstudio/pkg/errors"
	"qrstudio/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.authUseCase.Login(c.Request().Context(), req.Username, req.Password, c.Request().UserAgent())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUseCase.Logout(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"loggedOut": true})
}

// Session is the validity probe admin views call before rendering. It
// only answers behind RequireSession, so reaching it means the session
// held up.
func (h *AuthHandler) Session(c echo.Context) error {
	session, ok := c.Get("session").(*entity.AdminSession)
	if !ok {
		return response.Error(c, errors.Unauthorized("Invalid or expired session", nil))
	}

	return response.Success(c, sessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}
