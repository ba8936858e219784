// Package format maps domain models into response DTOs.
//
// It owns the unit conversion of stored fixed-point prices and guarantees that
// list fields serialize as [] rather than null.
package format

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/arbpulse/internal/domain/dto"
	"github.com/guttosm/arbpulse/internal/domain/models"
	"github.com/guttosm/arbpulse/internal/query"
)

// PriceScale is the number of decimal places of stored prices (wei-style fixed point).
const PriceScale = 18

// PriceDisplayPlaces is the precision of the formatted price string.
const PriceDisplayPlaces = 6

// ConvertPrice divides a stored price by 10^18 and returns the float value
// together with its fixed 6-decimal string. The float loses precision beyond
// float64; PriceRaw keeps the exact value.
func ConvertPrice(raw decimal.Decimal) (float64, string) {
	d := raw.Shift(-PriceScale)
	return d.InexactFloat64(), d.StringFixed(PriceDisplayPlaces)
}

// PriceValue is ConvertPrice without the string.
func PriceValue(raw decimal.Decimal) float64 {
	v, _ := ConvertPrice(raw)
	return v
}

// SnapshotList builds the GET /api/snapshots body.
func SnapshotList(page *models.SnapshotPage, limit, offset int) dto.SnapshotListResponse {
	resp := dto.SnapshotListResponse{
		Snapshots: make([]dto.SnapshotSummary, 0),
		Limit:     limit,
		Offset:    offset,
	}
	if page == nil {
		return resp
	}
	resp.Total = page.Total
	for _, s := range page.Snapshots {
		resp.Snapshots = append(resp.Snapshots, dto.SnapshotSummary{
			SnapshotID: s.SnapshotID,
			Timestamp:  s.Timestamp,
			TokenCount: s.TokenCount,
		})
	}
	return resp
}

// SnapshotDetail builds the GET /api/snapshot/{id} body.
func SnapshotDetail(d *models.SnapshotDetail) dto.SnapshotDetailResponse {
	resp := dto.SnapshotDetailResponse{
		SnapshotID: d.SnapshotID,
		Timestamp:  d.Timestamp,
		TokenCount: len(d.Tokens),
		Statistics: dto.PriceStatistics{
			Avg:    d.Stats.Avg,
			Max:    d.Stats.Max,
			Min:    d.Stats.Min,
			Median: d.Stats.Median,
		},
		Tokens: make([]dto.SnapshotToken, 0, len(d.Tokens)),
	}
	for _, row := range d.Tokens {
		price, formatted := ConvertPrice(row.Price)
		resp.Tokens = append(resp.Tokens, dto.SnapshotToken{
			Token:          row.Token,
			PoolID:         row.PoolID,
			PoolType:       row.PoolType,
			Price:          price,
			PriceFormatted: formatted,
			PriceRaw:       row.Price.String(),
			RefToken:       row.RefToken,
			SwapAmount:     row.SwapAmount.InexactFloat64(),
			Timestamp:      row.Timestamp,
		})
	}
	return resp
}

func pairs(in []models.PairLiquidity) []dto.PairLiquidity {
	out := make([]dto.PairLiquidity, 0, len(in))
	for _, p := range in {
		out = append(out, dto.PairLiquidity{
			SourceAvatar:     p.SourceAvatar,
			TargetAvatar:     p.TargetAvatar,
			ObservationCount: p.ObservationCount,
			AvgLiquidity:     p.AvgLiquidity,
			MaxLiquidity:     p.MaxLiquidity,
			MinLiquidity:     p.MinLiquidity,
			LiquidityStddev:  p.LiquidityStddev,
			SuccessRate:      p.SuccessRate,
			AvgEdgeScore:     p.AvgEdgeScore,
			LastObserved:     p.LastObserved,
		})
	}
	return out
}

// Heatmap builds the GET /api/liquidity/heatmap body.
func Heatmap(in []models.PairLiquidity, hours query.Hours, minObs int) dto.HeatmapResponse {
	out := pairs(in)
	return dto.HeatmapResponse{
		TimeRangeHours:  hours.Int(),
		MinObservations: minObs,
		PairCount:       len(out),
		Pairs:           out,
	}
}

// TopPairs builds the GET /api/liquidity/top-pairs body.
func TopPairs(in []models.PairLiquidity, sort query.SortField, limit int, hours query.Hours) dto.TopPairsResponse {
	return dto.TopPairsResponse{
		SortBy:         string(sort),
		Limit:          limit,
		TimeRangeHours: hours.Int(),
		Pairs:          pairs(in),
	}
}

// Timeseries builds the GET /api/liquidity/timeseries body.
func Timeseries(points []models.TimeseriesPoint, source, target string, hours query.Hours) dto.TimeseriesResponse {
	out := make([]dto.TimeseriesPoint, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TimeseriesPoint{
			Timestamp:         p.Timestamp,
			MeasuredLiquidity: p.MeasuredLiquidity,
			RequiredAmount:    p.RequiredAmount,
			Success:           p.Success,
			EdgeID:            p.EdgeID,
			EdgeScore:         p.EdgeScore,
			SourceTokenPrice:  p.SourceTokenPrice,
			TargetTokenPrice:  p.TargetTokenPrice,
			PriceRatio:        p.PriceRatio,
			MovingAvg10:       p.MovingAvg10,
			FailureReason:     p.FailureReason,
			ExecutionTimeMs:   p.ExecutionTimeMs,
		})
	}
	return dto.TimeseriesResponse{
		SourceAvatar:     source,
		TargetAvatar:     target,
		TimeRangeHours:   hours.Int(),
		ObservationCount: len(out),
		Observations:     out,
	}
}

// LiquidityStats builds the GET /api/liquidity/stats body.
func LiquidityStats(s *models.LiquidityStats, hours query.Hours) dto.LiquidityStatsResponse {
	stats := dto.LiquidityStats{TopFailureReasons: make([]dto.FailureReason, 0)}
	if s != nil {
		stats.TotalObservations = s.TotalObservations
		stats.UniquePairs = s.UniquePairs
		stats.SuccessfulObservations = s.SuccessfulObservations
		stats.SuccessRate = s.SuccessRate
		stats.AvgLiquidity = s.AvgLiquidity
		stats.StddevLiquidity = s.StddevLiquidity
		stats.MinLiquidity = s.MinLiquidity
		stats.MaxLiquidity = s.MaxLiquidity
		stats.TotalLiquidity = s.TotalLiquidity
		stats.AvgExecutionTimeMs = s.AvgExecutionTimeMs
		stats.AvgEdgeScore = s.AvgEdgeScore
		for _, r := range s.TopFailureReasons {
			stats.TopFailureReasons = append(stats.TopFailureReasons, dto.FailureReason{
				Reason:      r.Reason,
				Occurrences: r.Occurrences,
			})
		}
	}
	return dto.LiquidityStatsResponse{TimeRangeHours: hours.Int(), Stats: stats}
}
