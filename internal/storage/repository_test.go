package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/guttosm/arbpulse/internal/domain/apperr"
	"github.com/guttosm/arbpulse/internal/query"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

func newMock(t *testing.T) (sqlmock.Sqlmock, *snapshotsRepository, *liquidityRepository, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	cleanup := func() { _ = db.Close() }
	return mock, &snapshotsRepository{db: db}, &liquidityRepository{db: db}, cleanup
}

func TestNewRepositories_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if NewSnapshotsRepository(db) == nil || NewLiquidityRepository(db) == nil {
		t.Fatalf("expected non-nil repositories")
	}
}

func TestSnapshots_CountAndList(t *testing.T) {
	mock, repo, _, done := newMock(t)
	defer done()
	ctx := context.Background()
	ts := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT snapshot_id) FROM price_snapshots")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT snapshot_id, MIN\(timestamp\) AS timestamp, COUNT\(\*\) AS token_count\s+FROM price_snapshots`).
		WithArgs(5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"snapshot_id", "timestamp", "token_count"}).
			AddRow(int64(11), ts, int64(30)).
			AddRow(int64(10), ts.Add(-time.Hour), int64(29)))

	total, err := repo.CountSnapshots(ctx)
	if err != nil || total != 2 {
		t.Fatalf("CountSnapshots: total=%d err=%v", total, err)
	}
	list, err := repo.ListSnapshots(ctx, 5, 0)
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(list) != 2 || list[0].SnapshotID != 11 || list[1].TokenCount != 29 {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshots_ListEmptyIsNotNil(t *testing.T) {
	mock, repo, _, done := newMock(t)
	defer done()

	mock.ExpectQuery(`FROM price_snapshots\s+GROUP BY snapshot_id`).
		WithArgs(5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"snapshot_id", "timestamp", "token_count"}))

	list, err := repo.ListSnapshots(context.Background(), 5, 0)
	if err != nil || list == nil || len(list) != 0 {
		t.Fatalf("want empty non-nil list, got %v err=%v", list, err)
	}
}

func TestSnapshots_GetRows_DecodesPrices(t *testing.T) {
	mock, repo, _, done := newMock(t)
	defer done()
	ts := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)

	cols := []string{"snapshot_id", "token", "pool_id", "pool_type", "price", "ref_token", "swap_amount", "timestamp"}
	mock.ExpectQuery(`FROM price_snapshots\s+WHERE snapshot_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(7), "0xa", "p1", "uniswap_v3", "1000000000000000000", "0xref", "100", ts).
			AddRow(int64(7), "0xb", "p2", "balancer_v2", []byte("2500000000000000000"), "0xref", "12.5", ts))

	rows, err := repo.GetSnapshotRows(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetSnapshotRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0].Price.String() != "1000000000000000000" || rows[1].Price.String() != "2500000000000000000" {
		t.Fatalf("unexpected prices: %s %s", rows[0].Price, rows[1].Price)
	}
	if rows[1].SwapAmount.String() != "12.5" {
		t.Fatalf("unexpected swap amount: %s", rows[1].SwapAmount)
	}
}

func TestSnapshots_GetRows_BadPriceIsUpstream(t *testing.T) {
	mock, repo, _, done := newMock(t)
	defer done()

	cols := []string{"snapshot_id", "token", "pool_id", "pool_type", "price", "ref_token", "swap_amount", "timestamp"}
	mock.ExpectQuery(`FROM price_snapshots`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "0xa", "p", "t", "not-a-number", "0xref", "1", time.Now()))

	_, err := repo.GetSnapshotRows(context.Background(), 1)
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("want upstream error, got %v", err)
	}
}

func TestSnapshots_Latest(t *testing.T) {
	cases := []struct {
		name   string
		value  any
		wantID int64
		wantOK bool
	}{
		{name: "has snapshots", value: int64(42), wantID: 42, wantOK: true},
		{name: "empty table", value: nil, wantID: 0, wantOK: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock, repo, _, done := newMock(t)
			defer done()
			mock.ExpectQuery(regexp.QuoteMeta("SELECT MAX(snapshot_id) FROM price_snapshots")).
				WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(tc.value))

			id, ok, err := repo.LatestSnapshotID(context.Background())
			if err != nil || id != tc.wantID || ok != tc.wantOK {
				t.Fatalf("got id=%d ok=%v err=%v", id, ok, err)
			}
		})
	}
}

func TestSnapshots_QueryErrorsAreUpstream(t *testing.T) {
	mock, repo, _, done := newMock(t)
	defer done()
	ctx := context.Background()

	mock.ExpectQuery(`COUNT\(DISTINCT snapshot_id\)`).WillReturnError(dummyErr{})
	mock.ExpectQuery(`GROUP BY snapshot_id`).WillReturnError(dummyErr{})
	mock.ExpectQuery(`WHERE snapshot_id = \$1`).WillReturnError(dummyErr{})
	mock.ExpectQuery(`MAX\(snapshot_id\)`).WillReturnError(dummyErr{})

	if _, err := repo.CountSnapshots(ctx); !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("count: %v", err)
	}
	if _, err := repo.ListSnapshots(ctx, 5, 0); !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("list: %v", err)
	}
	if _, err := repo.GetSnapshotRows(ctx, 1); !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("rows: %v", err)
	}
	if _, _, err := repo.LatestSnapshotID(ctx); !errors.Is(err, apperr.ErrUpstream) || !errors.Is(err, dummyErr{}) {
		t.Fatalf("latest: %v", err)
	}
}

var pairCols = []string{
	"source_avatar", "target_avatar", "observation_count", "avg_liquidity", "max_liquidity",
	"min_liquidity", "liquidity_stddev", "success_rate", "avg_edge_score", "last_observed",
}

func TestLiquidity_HeatmapAndTopPairs(t *testing.T) {
	ts := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		expect func(mock sqlmock.Sqlmock, rows *sqlmock.Rows)
		call   func(r *liquidityRepository) error
	}{
		{
			name: "heatmap",
			expect: func(mock sqlmock.Sqlmock, rows *sqlmock.Rows) {
				mock.ExpectQuery(`HAVING COUNT\(\*\) >= \$2\s+ORDER BY avg_liquidity DESC`).
					WithArgs(24, 3).WillReturnRows(rows)
			},
			call: func(r *liquidityRepository) error {
				out, err := r.Heatmap(context.Background(), query.Hours(24), 3)
				if err == nil && (len(out) != 1 || out[0].AvgLiquidity != 512.25 || out[0].AvgEdgeScore != nil) {
					t.Fatalf("unexpected heatmap: %+v", out)
				}
				return err
			},
		},
		{
			name: "top pairs by success rate",
			expect: func(mock sqlmock.Sqlmock, rows *sqlmock.Rows) {
				mock.ExpectQuery(`HAVING COUNT\(\*\) >= 3\s+ORDER BY success_rate DESC, source_avatar ASC, target_avatar ASC\s+LIMIT \$2`).
					WithArgs(48, 10).WillReturnRows(rows)
			},
			call: func(r *liquidityRepository) error {
				out, err := r.TopPairs(context.Background(), query.SortSuccessRate, 10, query.Hours(48))
				if err == nil && (len(out) != 1 || out[0].SuccessRate != 0.75 || out[0].ObservationCount != 4) {
					t.Fatalf("unexpected top pairs: %+v", out)
				}
				return err
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock, _, repo, done := newMock(t)
			defer done()
			rows := sqlmock.NewRows(pairCols).
				AddRow("0xa", "0xb", int64(4), "512.25", "900", "100", "10.5", "0.75000000000000000000", nil, ts)
			tc.expect(mock, rows)
			if err := tc.call(repo); err != nil {
				t.Fatalf("call: %v", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestLiquidity_Observations(t *testing.T) {
	mock, _, repo, done := newMock(t)
	defer done()
	ts := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)

	cols := []string{
		"timestamp", "measured_liquidity", "required_amount", "success", "edge_id", "edge_score",
		"source_token_price", "target_token_price", "ref_token", "failure_reason", "execution_time_ms",
	}
	mock.ExpectQuery(`WHERE LOWER\(source_avatar\) = \$1\s+AND LOWER\(target_avatar\) = \$2`).
		WithArgs("0xabc", "0xdef", 24).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(ts, "100.5", "50", true, "e-1", "0.9", "2", "4", "0xref", nil, int64(120)).
			AddRow(ts.Add(time.Minute), []byte("80"), "50", false, nil, nil, nil, nil, nil, "slippage", nil))

	out, err := repo.Observations(context.Background(), "0xabc", "0xdef", query.Hours(24))
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 observations, got %d", len(out))
	}
	first, second := out[0], out[1]
	if first.MeasuredLiquidity != 100.5 || *first.EdgeID != "e-1" || *first.SourceTokenPrice != 2 || *first.ExecutionTimeMs != 120 || first.FailureReason != nil {
		t.Fatalf("unexpected first observation: %+v", first)
	}
	if second.MeasuredLiquidity != 80 || second.EdgeScore != nil || second.ExecutionTimeMs != nil || *second.FailureReason != "slippage" {
		t.Fatalf("unexpected second observation: %+v", second)
	}
}

func TestLiquidity_StatsAndFailureReasons(t *testing.T) {
	mock, _, repo, done := newMock(t)
	defer done()
	ctx := context.Background()

	statCols := []string{
		"total_observations", "unique_pairs", "successful_observations", "avg_liquidity", "stddev_liquidity",
		"min_liquidity", "max_liquidity", "total_liquidity", "avg_execution_time_ms", "avg_edge_score",
	}
	mock.ExpectQuery(`COUNT\(\*\) FILTER \(WHERE success\)`).
		WithArgs(24).
		WillReturnRows(sqlmock.NewRows(statCols).
			AddRow(int64(4), int64(2), int64(3), "25", "5", "20", "30", "100", "110.5", nil))
	mock.ExpectQuery(`GROUP BY failure_reason`).
		WithArgs(24, 5).
		WillReturnRows(sqlmock.NewRows([]string{"failure_reason", "occurrences"}).AddRow("slippage", int64(1)))

	s, err := repo.Stats(ctx, query.Hours(24))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.TotalObservations != 4 || s.UniquePairs != 2 || *s.AvgLiquidity != 25 || *s.TotalLiquidity != 100 || s.AvgEdgeScore != nil {
		t.Fatalf("unexpected stats: %+v", s)
	}

	reasons, err := repo.FailureReasons(ctx, query.Hours(24), 5)
	if err != nil || len(reasons) != 1 || reasons[0].Occurrences != 1 {
		t.Fatalf("unexpected reasons: %+v err=%v", reasons, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLiquidity_StatsEmptyWindow(t *testing.T) {
	mock, _, repo, done := newMock(t)
	defer done()

	statCols := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	mock.ExpectQuery(`FROM liquidity_observations`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(statCols).AddRow(int64(0), int64(0), int64(0), nil, nil, nil, nil, nil, nil, nil))

	s, err := repo.Stats(context.Background(), query.Hours(1))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.TotalObservations != 0 || s.AvgLiquidity != nil || s.MaxLiquidity != nil {
		t.Fatalf("want empty aggregates, got %+v", s)
	}
}

func TestLiquidity_QueryErrorsAreUpstream(t *testing.T) {
	mock, _, repo, done := newMock(t)
	defer done()
	ctx := context.Background()

	mock.ExpectQuery(`.*`).WillReturnError(dummyErr{})
	mock.ExpectQuery(`.*`).WillReturnError(dummyErr{})
	mock.ExpectQuery(`.*`).WillReturnError(dummyErr{})
	mock.ExpectQuery(`.*`).WillReturnError(dummyErr{})
	mock.ExpectQuery(`.*`).WillReturnError(dummyErr{})

	checks := []error{}
	_, err := repo.Heatmap(ctx, query.Hours(24), 3)
	checks = append(checks, err)
	_, err = repo.TopPairs(ctx, query.SortAvgLiquidity, 20, query.Hours(24))
	checks = append(checks, err)
	_, err = repo.Observations(ctx, "0xa", "0xb", query.Hours(24))
	checks = append(checks, err)
	_, err = repo.Stats(ctx, query.Hours(24))
	checks = append(checks, err)
	_, err = repo.FailureReasons(ctx, query.Hours(24), 5)
	checks = append(checks, err)

	for i, err := range checks {
		if !errors.Is(err, apperr.ErrUpstream) {
			t.Fatalf("call %d: want upstream error, got %v", i, err)
		}
	}
}
