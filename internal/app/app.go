package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/arbpulse/config"
	"github.com/guttosm/arbpulse/internal/api"
	"github.com/guttosm/arbpulse/internal/service"
	"github.com/guttosm/arbpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL (with bounded startup retry) using InitPostgres().
//   - Wires repositories -> services -> handlers -> router.
//   - Registers service and probe endpoints (/, /health, /healthz, /readyz).
//   - Returns a cleanup function that closes the database handle.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	snapshots := service.NewSnapshotService(storage.NewSnapshotsRepository(db))
	liquidity := service.NewLiquidityService(storage.NewLiquidityRepository(db))

	handler := api.NewHandler(snapshots, liquidity)
	router := api.NewRouter(handler, api.RouterOptions{
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
