package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diarioalimentar/backend/config"
	"github.com/diarioalimentar/backend/internal/api"
	"github.com/diarioalimentar/backend/internal/database"
	"github.com/diarioalimentar/backend/internal/middleware"
	"github.com/diarioalimentar/backend/internal/router"
	"github.com/diarioalimentar/backend/internal/server"
	"github.com/diarioalimentar/backend/internal/service"
)

func main() {
	// Initialize configuration; missing provider keys abort startup.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis only backs rate limiting; run without it if unreachable.
	var providerLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
	} else {
		providerLimiter = middleware.NewProviderRateLimiter(redisClient)
	}

	diaryService := service.NewDiaryService(db)
	translationService := service.NewTranslationService(cfg)
	recipeService := service.NewRecipeService(cfg, translationService)

	engine := router.SetupRouter(
		api.NewDiaryHandler(diaryService),
		api.NewRecipeHandler(recipeService),
		api.NewTranslationHandler(translationService, cfg.SourceLocale, cfg.ProviderLocale),
		providerLimiter,
	)

	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
