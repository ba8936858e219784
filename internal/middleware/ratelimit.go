package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/arbpulse/internal/domain/dto"
)

const (
	visitorIdleTTL = 3 * time.Minute
	sweepInterval  = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP with a token bucket refilled at rps
// tokens per second and holding at most burst tokens. rps <= 0 disables it.
//
// Idle clients are forgotten after a few minutes. State is per process.
//
// Response when the bucket is empty:
//
//	HTTP/1.1 429 Too Many Requests
//	{"error": "rate limit exceeded", "timestamp": "..."}
func RateLimiter(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}

	var (
		mu        sync.Mutex
		visitors  = make(map[string]*visitor)
		lastSweep = time.Now()
	)

	get := func(ip string, now time.Time) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if now.Sub(lastSweep) > sweepInterval {
			for k, v := range visitors {
				if now.Sub(v.lastSeen) > visitorIdleTTL {
					delete(visitors, k)
				}
			}
			lastSweep = now
		}

		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			visitors[ip] = v
		}
		v.lastSeen = now
		return v.limiter
	}

	return func(c *gin.Context) {
		if !get(c.ClientIP(), time.Now()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
