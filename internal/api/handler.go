package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/arbpulse/internal/domain/apperr"
	"github.com/guttosm/arbpulse/internal/middleware"
	"github.com/guttosm/arbpulse/internal/service"
)

// Handler provides the HTTP handlers of the snapshot and liquidity endpoints.
//
// Every handler follows the same steps: parse and coerce query parameters,
// call the service with the request context, format the result into a DTO,
// and respond. Failures are mapped to status codes by respondError.
type Handler struct {
	snapshots service.SnapshotService
	liquidity service.LiquidityService
}

// NewHandler constructs a Handler from its services.
func NewHandler(snapshots service.SnapshotService, liquidity service.LiquidityService) *Handler {
	return &Handler{snapshots: snapshots, liquidity: liquidity}
}

// respondError maps err onto the error taxonomy:
//   - apperr.ErrInvalidInput -> 400 with details
//   - apperr.ErrNotFound     -> 404 with notFoundMsg
//   - anything else          -> 500 with the fixed internalMsg; the cause is only logged
func respondError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		middleware.AbortWithError(c, http.StatusBadRequest, "Invalid request", err)
	case errors.Is(err, apperr.ErrNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, internalMsg, err)
	}
}
