package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/arbpulse/internal/logger"
)

// RequestLogger is a Gin middleware that writes one structured line per request:
// method, route, path, status, latency and request id (when RequestID runs first).
//
// 5xx responses log at error level, 4xx at warn, everything else at info.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = logger.L().Error()
		case status >= 400:
			ev = logger.L().Warn()
		default:
			ev = logger.L().Info()
		}

		ev.Str("request_id", GetRequestID(c)).
			Str("method", method).
			Str("route", c.FullPath()).
			Str("path", path).
			Str("query", rawQuery).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Int("bytes", c.Writer.Size()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}
