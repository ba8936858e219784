package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key holding the request id.
	RequestIDKey = "request_id"
	// RequestIDHeader carries the id in both directions.
	RequestIDHeader = "X-Request-ID"
)

// maxRequestIDLen bounds ids accepted from clients so they cannot bloat logs.
const maxRequestIDLen = 128

// RequestID is a Gin middleware that tags every request with an identifier.
//
// Behavior:
//   - Reuses a well-formed X-Request-ID sent by the client (e.g. a proxy).
//   - Otherwise generates a new UUID (v4).
//   - Stores it in the Gin context under "request_id" and echoes it in the response header.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the id stored by RequestID, or "" outside of it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
