package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"qrstudio/internal/adapter/repository"
	"qrstudio/internal/infrastructure/localstore"
)

type HealthHandler struct {
	store *localstore.Store
}

var healthHandler *HealthHandler

func NewHealthHandler(store *localstore.Store) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

func SetupHealthHandler(store *localstore.Store) {
	healthHandler = NewHealthHandler(store)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckStoreHealth(c echo.Context) error {
	var reviews []interface{}
	if err := h.store.Get(repository.ReviewsKey, &reviews); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Store is not readable",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Store is readable",
	})
}
