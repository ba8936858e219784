package storage

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/guttosm/arbpulse/internal/domain/models"
	"github.com/guttosm/arbpulse/internal/query"
)

// LiquidityRepository defines read access to liquidity_observations.
type LiquidityRepository interface {
	Heatmap(ctx context.Context, hours query.Hours, minObs int) ([]models.PairLiquidity, error)
	TopPairs(ctx context.Context, sort query.SortField, limit int, hours query.Hours) ([]models.PairLiquidity, error)
	// Observations expects lower-cased avatars.
	Observations(ctx context.Context, source, target string, hours query.Hours) ([]models.LiquidityObservation, error)
	Stats(ctx context.Context, hours query.Hours) (*models.LiquidityStats, error)
	FailureReasons(ctx context.Context, hours query.Hours, limit int) ([]models.FailureReasonCount, error)
}

type liquidityRepository struct {
	db *sql.DB
}

// NewLiquidityRepository returns a LiquidityRepository backed by db.
func NewLiquidityRepository(db *sql.DB) LiquidityRepository {
	return &liquidityRepository{db: db}
}

// Heatmap returns the per-pair aggregates of the window.
func (r *liquidityRepository) Heatmap(ctx context.Context, hours query.Hours, minObs int) ([]models.PairLiquidity, error) {
	return r.pairs(ctx, "heatmap", query.Heatmap(hours, minObs))
}

// TopPairs returns pairs ranked by an allow-listed column.
func (r *liquidityRepository) TopPairs(ctx context.Context, sort query.SortField, limit int, hours query.Hours) ([]models.PairLiquidity, error) {
	return r.pairs(ctx, "top pairs", query.TopPairs(sort, limit, hours))
}

func (r *liquidityRepository) pairs(ctx context.Context, op string, q query.Query) ([]models.PairLiquidity, error) {
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, upstream(op, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.PairLiquidity, 0)
	for rows.Next() {
		var (
			p                          models.PairLiquidity
			avgLiq, maxLiq, minLiq     decimal.Decimal
			stddev, rate, avgEdgeScore decimal.NullDecimal
		)
		if err := rows.Scan(
			&p.SourceAvatar,
			&p.TargetAvatar,
			&p.ObservationCount,
			&avgLiq,
			&maxLiq,
			&minLiq,
			&stddev,
			&rate,
			&avgEdgeScore,
			&p.LastObserved,
		); err != nil {
			return nil, upstream(op+": scan", err)
		}
		p.AvgLiquidity = floatOf(avgLiq)
		p.MaxLiquidity = floatOf(maxLiq)
		p.MinLiquidity = floatOf(minLiq)
		p.LiquidityStddev = floatOrZero(stddev)
		p.SuccessRate = floatOrZero(rate)
		p.AvgEdgeScore = floatPtr(avgEdgeScore)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, upstream(op+": iterate", err)
	}
	return out, nil
}

// Observations returns the chronological observations of one directed pair.
func (r *liquidityRepository) Observations(ctx context.Context, source, target string, hours query.Hours) ([]models.LiquidityObservation, error) {
	q := query.Timeseries(source, target, hours)
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, upstream("timeseries", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.LiquidityObservation, 0)
	for rows.Next() {
		var (
			o                               models.LiquidityObservation
			measured, required              decimal.Decimal
			edgeScore, srcPrice, tgtPrice   decimal.NullDecimal
			edgeID, refToken, failureReason sql.NullString
			execMs                          sql.NullInt64
		)
		if err := rows.Scan(
			&o.Timestamp,
			&measured,
			&required,
			&o.Success,
			&edgeID,
			&edgeScore,
			&srcPrice,
			&tgtPrice,
			&refToken,
			&failureReason,
			&execMs,
		); err != nil {
			return nil, upstream("timeseries: scan", err)
		}
		o.MeasuredLiquidity = floatOf(measured)
		o.RequiredAmount = floatOf(required)
		o.EdgeID = stringPtr(edgeID)
		o.EdgeScore = floatPtr(edgeScore)
		o.SourceTokenPrice = floatPtr(srcPrice)
		o.TargetTokenPrice = floatPtr(tgtPrice)
		o.RefToken = stringPtr(refToken)
		o.FailureReason = stringPtr(failureReason)
		o.ExecutionTimeMs = int64Ptr(execMs)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, upstream("timeseries: iterate", err)
	}
	return out, nil
}

// Stats returns the window-wide aggregates. SuccessRate and TopFailureReasons
// are left for the service layer.
func (r *liquidityRepository) Stats(ctx context.Context, hours query.Hours) (*models.LiquidityStats, error) {
	q := query.LiquidityStats(hours)
	var (
		s                                                models.LiquidityStats
		avg, stddev, minLiq, maxLiq, total, execMs, edge decimal.NullDecimal
	)
	err := r.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(
		&s.TotalObservations,
		&s.UniquePairs,
		&s.SuccessfulObservations,
		&avg,
		&stddev,
		&minLiq,
		&maxLiq,
		&total,
		&execMs,
		&edge,
	)
	if err != nil {
		return nil, upstream("liquidity stats", err)
	}
	s.AvgLiquidity = floatPtr(avg)
	s.StddevLiquidity = floatPtr(stddev)
	s.MinLiquidity = floatPtr(minLiq)
	s.MaxLiquidity = floatPtr(maxLiq)
	s.TotalLiquidity = floatPtr(total)
	s.AvgExecutionTimeMs = floatPtr(execMs)
	s.AvgEdgeScore = floatPtr(edge)
	return &s, nil
}

// FailureReasons returns the most frequent failure reasons of the window.
func (r *liquidityRepository) FailureReasons(ctx context.Context, hours query.Hours, limit int) ([]models.FailureReasonCount, error) {
	q := query.FailureReasons(hours, limit)
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, upstream("failure reasons", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.FailureReasonCount, 0)
	for rows.Next() {
		var fr models.FailureReasonCount
		if err := rows.Scan(&fr.Reason, &fr.Occurrences); err != nil {
			return nil, upstream("failure reasons: scan", err)
		}
		out = append(out, fr)
	}
	if err := rows.Err(); err != nil {
		return nil, upstream("failure reasons: iterate", err)
	}
	return out, nil
}
