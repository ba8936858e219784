package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/arbpulse/internal/domain/apperr"
	"github.com/guttosm/arbpulse/internal/domain/models"
	"github.com/guttosm/arbpulse/internal/format"
	"github.com/guttosm/arbpulse/internal/stats"
	"github.com/guttosm/arbpulse/internal/storage"
)

// SnapshotService defines the read operations over price snapshots.
type SnapshotService interface {
	ListSnapshots(ctx context.Context, limit, offset int) (*models.SnapshotPage, error)
	GetSnapshot(ctx context.Context, id int64) (*models.SnapshotDetail, error)
	LatestSnapshotID(ctx context.Context) (int64, error)
}

type snapshotService struct {
	repo storage.SnapshotsRepository
}

func NewSnapshotService(repo storage.SnapshotsRepository) SnapshotService {
	return &snapshotService{repo: repo}
}

// ListSnapshots fetches the total and the requested page concurrently.
func (s *snapshotService) ListSnapshots(ctx context.Context, limit, offset int) (*models.SnapshotPage, error) {
	var page models.SnapshotPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.repo.CountSnapshots(gctx)
		page.Total = total
		return err
	})
	g.Go(func() error {
		list, err := s.repo.ListSnapshots(gctx, limit, offset)
		page.Snapshots = list
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetSnapshot returns every row of the snapshot and the statistics over its converted prices.
func (s *snapshotService) GetSnapshot(ctx context.Context, id int64) (*models.SnapshotDetail, error) {
	rows, err := s.repo.GetSnapshotRows(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("snapshot %d: %w", id, apperr.ErrNotFound)
	}

	prices := make([]float64, 0, len(rows))
	for _, r := range rows {
		prices = append(prices, format.PriceValue(r.Price))
	}
	sum, err := stats.Summarize(prices)
	if err != nil {
		return nil, err
	}

	return &models.SnapshotDetail{
		SnapshotID: id,
		Timestamp:  rows[0].Timestamp,
		Tokens:     rows,
		Stats: models.PriceStats{
			Avg:    sum.Avg,
			Max:    sum.Max,
			Min:    sum.Min,
			Median: sum.Median,
		},
	}, nil
}

func (s *snapshotService) LatestSnapshotID(ctx context.Context) (int64, error) {
	id, ok, err := s.repo.LatestSnapshotID(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("latest snapshot: %w", apperr.ErrNotFound)
	}
	return id, nil
}
