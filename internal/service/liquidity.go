package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/arbpulse/internal/domain/models"
	"github.com/guttosm/arbpulse/internal/query"
	"github.com/guttosm/arbpulse/internal/stats"
	"github.com/guttosm/arbpulse/internal/storage"
)

// TopFailureReasons is how many failure reasons the stats endpoint reports.
const TopFailureReasons = 5

// LiquidityService defines the read operations over liquidity observations.
type LiquidityService interface {
	Heatmap(ctx context.Context, hours query.Hours, minObs int) ([]models.PairLiquidity, error)
	TopPairs(ctx context.Context, sort query.SortField, limit int, hours query.Hours) ([]models.PairLiquidity, error)
	// Timeseries expects trimmed, lower-cased avatars.
	Timeseries(ctx context.Context, source, target string, hours query.Hours) ([]models.TimeseriesPoint, error)
	Stats(ctx context.Context, hours query.Hours) (*models.LiquidityStats, error)
}

type liquidityService struct {
	repo storage.LiquidityRepository
}

func NewLiquidityService(repo storage.LiquidityRepository) LiquidityService {
	return &liquidityService{repo: repo}
}

func (s *liquidityService) Heatmap(ctx context.Context, hours query.Hours, minObs int) ([]models.PairLiquidity, error) {
	return s.repo.Heatmap(ctx, hours, minObs)
}

func (s *liquidityService) TopPairs(ctx context.Context, sort query.SortField, limit int, hours query.Hours) ([]models.PairLiquidity, error) {
	return s.repo.TopPairs(ctx, sort, limit, hours)
}

// Timeseries decorates each observation with the trailing MA10 of measured
// liquidity and the source/target price ratio.
func (s *liquidityService) Timeseries(ctx context.Context, source, target string, hours query.Hours) ([]models.TimeseriesPoint, error) {
	obs, err := s.repo.Observations(ctx, source, target, hours)
	if err != nil {
		return nil, err
	}

	liquidity := make([]float64, len(obs))
	for i, o := range obs {
		liquidity[i] = o.MeasuredLiquidity
	}
	ma := stats.TrailingMovingAverage(liquidity, stats.DefaultMovingAverageWindow)

	out := make([]models.TimeseriesPoint, len(obs))
	for i, o := range obs {
		out[i] = models.TimeseriesPoint{
			LiquidityObservation: o,
			MovingAvg10:          ma[i],
			PriceRatio:           stats.PriceRatio(o.SourceTokenPrice, o.TargetTokenPrice),
		}
	}
	return out, nil
}

// Stats fetches the window aggregates and the top failure reasons concurrently.
func (s *liquidityService) Stats(ctx context.Context, hours query.Hours) (*models.LiquidityStats, error) {
	var (
		agg     *models.LiquidityStats
		reasons []models.FailureReasonCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		agg, err = s.repo.Stats(gctx, hours)
		return err
	})
	g.Go(func() (err error) {
		reasons, err = s.repo.FailureReasons(gctx, hours, TopFailureReasons)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg.SuccessRate = stats.SuccessRate(agg.SuccessfulObservations, agg.TotalObservations)
	if reasons == nil {
		reasons = []models.FailureReasonCount{}
	}
	agg.TopFailureReasons = reasons
	return agg, nil
}
