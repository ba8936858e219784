package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/arbpulse/internal/domain/dto"
	"github.com/guttosm/arbpulse/internal/logger"
)

// RecoveryMiddleware recovers from panics in later handlers, logs the value and
// stack trace, and answers 500 with a generic error body. The panic value never
// reaches the client.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
			}
		}()

		c.Next()
	}
}
