package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"qrstudio/internal/usecase"
)

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// RequireSession gates the admin surface. The bearer token must match the
// stored session and the request's User-Agent must match the fingerprint
// recorded at login.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		session, err := m.authUseCase.Validate(c.Request().Context(), parts[1], c.Request().UserAgent())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session")
		}

		c.Set("session", session)
		return next(c)
	}
}
