package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guttosm/arbpulse/internal/domain/models"
	"github.com/guttosm/arbpulse/internal/query"
)

// SnapshotsRepository defines read access to price_snapshots.
type SnapshotsRepository interface {
	CountSnapshots(ctx context.Context) (int64, error)
	ListSnapshots(ctx context.Context, limit, offset int) ([]models.SnapshotSummary, error)
	GetSnapshotRows(ctx context.Context, id int64) ([]models.PriceSnapshot, error)
	// LatestSnapshotID reports false when the table is empty.
	LatestSnapshotID(ctx context.Context) (int64, bool, error)
}

type snapshotsRepository struct {
	db *sql.DB
}

// NewSnapshotsRepository returns a SnapshotsRepository backed by db.
func NewSnapshotsRepository(db *sql.DB) SnapshotsRepository {
	return &snapshotsRepository{db: db}
}

// CountSnapshots returns the number of distinct snapshot ids.
func (r *snapshotsRepository) CountSnapshots(ctx context.Context) (int64, error) {
	q := query.CountSnapshots()
	var total int64
	if err := r.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&total); err != nil {
		return 0, upstream("count snapshots", err)
	}
	return total, nil
}

// ListSnapshots returns one summary per snapshot id, newest first.
func (r *snapshotsRepository) ListSnapshots(ctx context.Context, limit, offset int) ([]models.SnapshotSummary, error) {
	q := query.ListSnapshots(limit, offset)
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, upstream("list snapshots", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.SnapshotSummary, 0)
	for rows.Next() {
		var s models.SnapshotSummary
		if err := rows.Scan(&s.SnapshotID, &s.Timestamp, &s.TokenCount); err != nil {
			return nil, upstream("scan snapshot summary", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, upstream("iterate snapshots", err)
	}
	return out, nil
}

// GetSnapshotRows returns every row of a snapshot. An unknown id yields an empty slice.
func (r *snapshotsRepository) GetSnapshotRows(ctx context.Context, id int64) ([]models.PriceSnapshot, error) {
	q := query.SnapshotRows(id)
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, upstream("get snapshot", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.PriceSnapshot
	for rows.Next() {
		var (
			s        models.PriceSnapshot
			rawPrice string
		)
		if err := rows.Scan(&s.SnapshotID, &s.Token, &s.PoolID, &s.PoolType, &rawPrice, &s.RefToken, &s.SwapAmount, &s.Timestamp); err != nil {
			return nil, upstream("scan snapshot row", err)
		}
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return nil, upstream("decode price", fmt.Errorf("snapshot %d token %s: %w", id, s.Token, err))
		}
		s.Price = price
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, upstream("iterate snapshot rows", err)
	}
	return out, nil
}

// LatestSnapshotID returns the highest snapshot id.
func (r *snapshotsRepository) LatestSnapshotID(ctx context.Context) (int64, bool, error) {
	q := query.LatestSnapshotID()
	var id sql.NullInt64
	if err := r.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&id); err != nil {
		return 0, false, upstream("latest snapshot", err)
	}
	return id.Int64, id.Valid, nil
}
