package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/arbpulse/internal/format"
	"github.com/guttosm/arbpulse/internal/middleware"
	"github.com/guttosm/arbpulse/internal/query"
)

const (
	msgSnapshotNotFound  = "Snapshot not found"
	msgNoSnapshots       = "No snapshots found"
	msgFetchSnapshots    = "Failed to fetch snapshots"
	msgFetchSnapshot     = "Failed to fetch snapshot"
	msgFetchLatest       = "Failed to fetch latest snapshot"
	msgInvalidSnapshotID = "Invalid snapshot id"
	snapshotPathPrefix   = "/api/snapshot/"
)

// ListSnapshots handles GET /api/snapshots.
//
// ListSnapshots godoc
// @Summary      List price snapshots
// @Description  Pages through snapshots, newest first. Invalid or negative limit/offset fall back to their defaults.
// @Tags         snapshots
// @Produce      json
// @Param        limit   query     int  false  "Page size"  default(5)
// @Param        offset  query     int  false  "Page offset" default(0)
// @Success      200     {object}  dto.SnapshotListResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/snapshots [get]
func (h *Handler) ListSnapshots(c *gin.Context) {
	limit := query.ParseLimit(c.Query("limit"), query.DefaultSnapshotLimit)
	offset := query.ParseOffset(c.Query("offset"))

	page, err := h.snapshots.ListSnapshots(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err, msgNoSnapshots, msgFetchSnapshots)
		return
	}

	c.JSON(http.StatusOK, format.SnapshotList(page, limit, offset))
}

// GetSnapshot handles GET /api/snapshot/:id.
//
// GetSnapshot godoc
// @Summary      Get one snapshot
// @Description  Returns every token row of the snapshot with prices converted from 18-decimal fixed point, plus avg/max/min/median statistics.
// @Tags         snapshots
// @Produce      json
// @Param        id   path      int  true  "Snapshot id"
// @Success      200  {object}  dto.SnapshotDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/snapshot/{id} [get]
func (h *Handler) GetSnapshot(c *gin.Context) {
	id, ok := query.ParseSnapshotID(c.Param("id"))
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, msgInvalidSnapshotID,
			fmt.Errorf("snapshot id %q is not an integer", c.Param("id")))
		return
	}

	detail, err := h.snapshots.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgSnapshotNotFound, msgFetchSnapshot)
		return
	}

	c.JSON(http.StatusOK, format.SnapshotDetail(detail))
}

// LatestSnapshot handles GET /api/latest-snapshot by redirecting to the newest snapshot.
//
// LatestSnapshot godoc
// @Summary      Redirect to the latest snapshot
// @Tags         snapshots
// @Produce      json
// @Success      302  {string}  string  "Redirect to the latest snapshot"
// @Header       302  {string}  Location  "/api/snapshot/{id}"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/latest-snapshot [get]
func (h *Handler) LatestSnapshot(c *gin.Context) {
	id, err := h.snapshots.LatestSnapshotID(c.Request.Context())
	if err != nil {
		respondError(c, err, msgNoSnapshots, msgFetchLatest)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s%d", snapshotPathPrefix, id))
}
