package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/arbpulse/internal/format"
	"github.com/guttosm/arbpulse/internal/middleware"
	"github.com/guttosm/arbpulse/internal/query"
)

const (
	msgPairNotFound      = "No observations found"
	msgFetchHeatmap      = "Failed to fetch liquidity heatmap"
	msgFetchTopPairs     = "Failed to fetch top pairs"
	msgFetchTimeseries   = "Failed to fetch liquidity timeseries"
	msgFetchStats        = "Failed to fetch liquidity stats"
	msgMissingPairParams = "source and target query parameters are required"
)

// Heatmap handles GET /api/liquidity/heatmap.
//
// Heatmap godoc
// @Summary      Liquidity heatmap
// @Description  Per directed pair aggregates over the window, for pairs with at least min_observations observations.
// @Tags         liquidity
// @Produce      json
// @Param        hours             query     int  false  "Window in hours"            default(24)
// @Param        min_observations  query     int  false  "Minimum observations per pair" default(3)
// @Success      200               {object}  dto.HeatmapResponse
// @Failure      500               {object}  dto.ErrorResponse
// @Router       /api/liquidity/heatmap [get]
func (h *Handler) Heatmap(c *gin.Context) {
	hours := query.ParseHours(c.Query("hours"))
	minObs := query.ParseMinObservations(c.Query("min_observations"))

	pairs, err := h.liquidity.Heatmap(c.Request.Context(), hours, minObs)
	if err != nil {
		respondError(c, err, msgPairNotFound, msgFetchHeatmap)
		return
	}

	c.JSON(http.StatusOK, format.Heatmap(pairs, hours, minObs))
}

// TopPairs handles GET /api/liquidity/top-pairs.
//
// TopPairs godoc
// @Summary      Top liquidity pairs
// @Description  Pairs with at least 3 observations ranked by an allow-listed column. Unknown sort values fall back to avg_liquidity.
// @Tags         liquidity
// @Produce      json
// @Param        limit  query     int     false  "Maximum pairs"     default(20)
// @Param        sort   query     string  false  "Ranking column"    Enums(avg_liquidity, success_rate, observation_count, max_liquidity) default(avg_liquidity)
// @Param        hours  query     int     false  "Window in hours"   default(24)
// @Success      200    {object}  dto.TopPairsResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/liquidity/top-pairs [get]
func (h *Handler) TopPairs(c *gin.Context) {
	limit := query.ParseLimit(c.Query("limit"), query.DefaultTopPairsLimit)
	sort := query.ParseSortField(c.Query("sort"))
	hours := query.ParseHours(c.Query("hours"))

	pairs, err := h.liquidity.TopPairs(c.Request.Context(), sort, limit, hours)
	if err != nil {
		respondError(c, err, msgPairNotFound, msgFetchTopPairs)
		return
	}

	c.JSON(http.StatusOK, format.TopPairs(pairs, sort, limit, hours))
}

// Timeseries handles GET /api/liquidity/timeseries.
//
// Timeseries godoc
// @Summary      Liquidity timeseries of one pair
// @Description  Chronological observations of source -> target with a trailing 10-point moving average and the source/target price ratio. Avatars match case-insensitively.
// @Tags         liquidity
// @Produce      json
// @Param        source  query     string  true   "Source avatar address"
// @Param        target  query     string  true   "Target avatar address"
// @Param        hours   query     int     false  "Window in hours" default(24)
// @Success      200     {object}  dto.TimeseriesResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/liquidity/timeseries [get]
func (h *Handler) Timeseries(c *gin.Context) {
	source := query.NormalizeAvatar(c.Query("source"))
	target := query.NormalizeAvatar(c.Query("target"))
	if source == "" || target == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, msgMissingPairParams, errors.New("missing source or target"))
		return
	}
	hours := query.ParseHours(c.Query("hours"))

	points, err := h.liquidity.Timeseries(c.Request.Context(), source, target, hours)
	if err != nil {
		respondError(c, err, msgPairNotFound, msgFetchTimeseries)
		return
	}

	c.JSON(http.StatusOK, format.Timeseries(points, source, target, hours))
}

// Stats handles GET /api/liquidity/stats.
//
// Stats godoc
// @Summary      Liquidity statistics
// @Description  Window-wide totals, liquidity distribution, success rate and the five most frequent failure reasons.
// @Tags         liquidity
// @Produce      json
// @Param        hours  query     int  false  "Window in hours" default(24)
// @Success      200    {object}  dto.LiquidityStatsResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/liquidity/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	hours := query.ParseHours(c.Query("hours"))

	s, err := h.liquidity.Stats(c.Request.Context(), hours)
	if err != nil {
		respondError(c, err, msgPairNotFound, msgFetchStats)
		return
	}

	c.JSON(http.StatusOK, format.LiquidityStats(s, hours))
}
