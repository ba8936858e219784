package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/arbpulse/internal/domain/dto"
)

// Version is reported by GET / and the Swagger document.
const Version = "1.0"

// readyTimeout bounds the database ping of /readyz.
const readyTimeout = 2 * time.Second

// HealthHandler provides the service descriptor, health and readiness endpoints.
//
// Responsibilities:
//   - /: Service name, version and endpoint map.
//   - /health, /healthz: Liveness probes (always 200 OK).
//   - /readyz: Readiness probe (depends on database connectivity).
type HealthHandler struct {
	dbPing func(ctx context.Context) error
	now    func() time.Time
}

// NewHealthHandler constructs a HealthHandler. dbPing is typically (*sql.DB).PingContext;
// nil means readiness does not depend on a database.
func NewHealthHandler(dbPing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing, now: time.Now}
}

// Register mounts the endpoints into the provided Gin router.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)
}

// Root godoc
// @Summary      Service descriptor
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.ServiceDescriptor
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceDescriptor{
		Service:     "arbpulse",
		Version:     Version,
		Description: "Read-only analytics over arbitrage price snapshots and liquidity observations",
		Endpoints: map[string]string{
			"health":               "/health",
			"snapshots":            "/api/snapshots?limit=5&offset=0",
			"snapshot":             "/api/snapshot/{id}",
			"latest_snapshot":      "/api/latest-snapshot",
			"liquidity_heatmap":    "/api/liquidity/heatmap?hours=24&min_observations=3",
			"liquidity_top_pairs":  "/api/liquidity/top-pairs?limit=20&sort=avg_liquidity&hours=24",
			"liquidity_timeseries": "/api/liquidity/timeseries?source={avatar}&target={avatar}&hours=24",
			"liquidity_stats":      "/api/liquidity/stats?hours=24",
			"metrics":              "/metrics",
			"docs":                 "/swagger/index.html",
		},
	})
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Timestamp: h.now().UTC()})
}

// Liveness godoc
// @Summary      Liveness probe
// @Description  Always returns OK if the service is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness godoc
// @Summary      Readiness probe
// @Description  Returns ready if the database answers a ping
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.dbPing != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := h.dbPing(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
