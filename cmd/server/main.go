package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/freightline/tms-backend/internal/api"
	"github.com/freightline/tms-backend/internal/core/service"
	"github.com/freightline/tms-backend/internal/infrastructure/config"
	"github.com/freightline/tms-backend/internal/infrastructure/memory"
	"github.com/freightline/tms-backend/internal/infrastructure/seed"
	"github.com/freightline/tms-backend/pkg/logger"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	users, err := seed.Users()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed users")
	}
	userStore := memory.NewUserStore(users)

	shipmentStore := memory.NewShipmentStore()
	if cfg.SeedDemoData {
		if err := seed.Shipments(ctx, shipmentStore); err != nil {
			log.Fatal().Err(err).Msg("failed to seed shipments")
		}
		log.Info().Int("count", shipmentStore.Len()).Msg("demo shipments loaded")
	}

	authService := service.NewAuthService(userStore, cfg.JWTSecret, cfg.TokenTTL, log)
	shipmentService := service.NewShipmentService(shipmentStore, log)

	e := api.NewRouter(api.RouterConfig{FrontendDir: cfg.FrontendDir}, authService, shipmentService, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("TMS backend listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
