package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/arbpulse/internal/middleware"
)

// RouterOptions carries the tunables of NewRouter. The zero value disables
// both the request timeout and rate limiting.
type RouterOptions struct {
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Metrics, Recovery, ErrorHandler, RateLimiter, Timeout).
//   - Exposes Prometheus metrics (/metrics) and Swagger docs (/swagger/*any).
//   - Configures the API routes (/api).
//
// Note:
//   - Service, health and readiness endpoints (/, /health, /healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Observability ────────────────────────────
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API ──────────────────────────────────────
	api := router.Group("/api")
	{
		api.GET("/snapshots", handler.ListSnapshots)
		api.GET("/snapshot/:id", handler.GetSnapshot)
		api.GET("/latest-snapshot", handler.LatestSnapshot)

		liquidity := api.Group("/liquidity")
		liquidity.GET("/heatmap", handler.Heatmap)
		liquidity.GET("/top-pairs", handler.TopPairs)
		liquidity.GET("/timeseries", handler.Timeseries)
		liquidity.GET("/stats", handler.Stats)
	}

	return router
}
