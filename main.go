package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/isandov/storefront-be/internal/api"
	"github.com/isandov/storefront-be/internal/config"
	"github.com/isandov/storefront-be/internal/database"
	"github.com/isandov/storefront-be/internal/logger"
	"github.com/isandov/storefront-be/internal/services"
)

func main() {
	// Load .env before anything reads the environment.
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.AppEnv)
	if dotenvErr != nil {
		log.Warn().Msg("No .env file found, relying on system environment variables")
	}

	ctx := context.Background()

	// Set up the process-wide connection pool. It lives for the process
	// lifetime and is shared by every handler.
	pool, err := database.New(ctx, cfg.DatabaseURL, cfg.DBTLSSkipVerify)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}

	// Set up services
	userService := services.NewUserService(pool)
	productService := services.NewProductService(pool)
	healthService := services.NewHealthService(pool)

	// Set up router
	router := api.NewRouter(userService, productService, healthService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
