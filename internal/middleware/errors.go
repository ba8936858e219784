package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/arbpulse/internal/domain/dto"
	"github.com/guttosm/arbpulse/internal/logger"
)

// ErrorHandler logs every error attached to the context with c.Error and, when
// no handler has written a response yet, answers 500 with a generic body.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	status := c.Writer.Status()
	for _, e := range c.Errors {
		logger.L().Error().
			Err(e.Err).
			Str("request_id", GetRequestID(c)).
			Str("route", c.FullPath()).
			Int("status", status).
			Msg("request failed")
	}

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
	}
}

// AbortWithError records err for ErrorHandler and responds with status and a
// client-facing message. The error text is only exposed as details for 4xx
// responses; 5xx bodies carry the message alone.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	var details error
	if status < http.StatusInternalServerError {
		details = err
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, details))
}
