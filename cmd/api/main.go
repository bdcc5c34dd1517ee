package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"qrstudio/internal/adapter/api"
	"qrstudio/internal/adapter/api/handler"
	apimiddleware "qrstudio/internal/adapter/api/middleware"
	"qrstudio/internal/adapter/api/router"
	"qrstudio/internal/adapter/repository"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/infrastructure/localstore"
	"qrstudio/internal/infrastructure/ratelimit"
	"qrstudio/internal/infrastructure/websocket"
	"qrstudio/internal/usecase"
	"qrstudio/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := localstore.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}

	reviewRepo := repository.NewLocalstoreReviewRepository(store)
	ticketRepo := repository.NewLocalstoreTicketRepository(store)
	adRepo := repository.NewLocalstoreAdRepository(store)
	authRepo := repository.NewLocalstoreAuthRepository(store)

	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	ticketUseCase := usecase.NewTicketUseCase(ticketRepo)
	adUseCase := usecase.NewAdUseCase(adRepo)
	authUseCase := usecase.NewAuthUseCase(authRepo, cfg.SessionTTL)
	codeUseCase := usecase.NewCodeUseCase(service.NewSymbologyService())

	if err := authUseCase.EnsureCredentials(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin credentials: %v", err)
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	store.Watch(wsManager.NotifyStorageChanged)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	handler.Setup(reviewUseCase, ticketUseCase, adUseCase, authUseCase, codeUseCase)
	handler.SetupHealthHandler(store)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	wsHandler := handler.NewWebSocketHandler(wsManager)

	router.Setup(e, authMiddleware, rateLimitMiddleware)
	router.SetupWebSocketRouter(e, wsHandler, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
