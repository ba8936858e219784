package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/arbpulse/internal/domain/apperr"
	"github.com/guttosm/arbpulse/internal/domain/models"
	"github.com/guttosm/arbpulse/internal/query"
	"github.com/guttosm/arbpulse/internal/service"
)

type mockSnapshotService struct {
	page     *models.SnapshotPage
	detail   *models.SnapshotDetail
	latestID int64
	err      error

	calls     int
	gotLimit  int
	gotOffset int
	gotID     int64
}

func (m *mockSnapshotService) ListSnapshots(_ context.Context, limit, offset int) (*models.SnapshotPage, error) {
	m.calls++
	m.gotLimit, m.gotOffset = limit, offset
	return m.page, m.err
}

func (m *mockSnapshotService) GetSnapshot(_ context.Context, id int64) (*models.SnapshotDetail, error) {
	m.calls++
	m.gotID = id
	return m.detail, m.err
}

func (m *mockSnapshotService) LatestSnapshotID(_ context.Context) (int64, error) {
	m.calls++
	return m.latestID, m.err
}

type mockLiquidityService struct {
	pairs  []models.PairLiquidity
	points []models.TimeseriesPoint
	stats  *models.LiquidityStats
	err    error

	calls     int
	gotHours  query.Hours
	gotMinObs int
	gotSort   query.SortField
	gotLimit  int
	gotSource string
	gotTarget string
}

func (m *mockLiquidityService) Heatmap(_ context.Context, hours query.Hours, minObs int) ([]models.PairLiquidity, error) {
	m.calls++
	m.gotHours, m.gotMinObs = hours, minObs
	return m.pairs, m.err
}

func (m *mockLiquidityService) TopPairs(_ context.Context, sort query.SortField, limit int, hours query.Hours) ([]models.PairLiquidity, error) {
	m.calls++
	m.gotSort, m.gotLimit, m.gotHours = sort, limit, hours
	return m.pairs, m.err
}

func (m *mockLiquidityService) Timeseries(_ context.Context, source, target string, hours query.Hours) ([]models.TimeseriesPoint, error) {
	m.calls++
	m.gotSource, m.gotTarget, m.gotHours = source, target, hours
	return m.points, m.err
}

func (m *mockLiquidityService) Stats(_ context.Context, hours query.Hours) (*models.LiquidityStats, error) {
	m.calls++
	m.gotHours = hours
	return m.stats, m.err
}

var (
	_ service.SnapshotService  = (*mockSnapshotService)(nil)
	_ service.LiquidityService = (*mockLiquidityService)(nil)
)

func setupRouterWithMocks(s service.SnapshotService, l service.LiquidityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(s, l), RouterOptions{})
}

func do(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json %q: %v", body, err)
	}
	return out
}

var errDB = fmt.Errorf("list snapshots: %w: %w", apperr.ErrUpstream, errors.New("connection reset by peer"))

func TestListSnapshots_TableDriven(t *testing.T) {
	ts := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		name       string
		svc        *mockSnapshotService
		path       string
		status     int
		wantLimit  int
		wantOffset int
		assert     func(t *testing.T, body []byte)
	}{
		{
			name:       "defaults",
			svc:        &mockSnapshotService{page: &models.SnapshotPage{Total: 1, Snapshots: []models.SnapshotSummary{{SnapshotID: 9, Timestamp: ts, TokenCount: 30}}}},
			path:       "/api/snapshots",
			status:     http.StatusOK,
			wantLimit:  5,
			wantOffset: 0,
			assert: func(t *testing.T, body []byte) {
				out := decode(t, body)
				if out["total"].(float64) != 1 || len(out["snapshots"].([]any)) != 1 {
					t.Fatalf("unexpected body: %v", out)
				}
			},
		},
		{
			name:       "offset past the end renders an empty page",
			svc:        &mockSnapshotService{page: &models.SnapshotPage{Total: 3}},
			path:       "/api/snapshots?limit=5&offset=100",
			status:     http.StatusOK,
			wantLimit:  5,
			wantOffset: 100,
			assert: func(t *testing.T, body []byte) {
				want := `{"snapshots":[],"total":3,"limit":5,"offset":100}`
				if strings.TrimSpace(string(body)) != want {
					t.Fatalf("body=%s want %s", body, want)
				}
			},
		},
		{
			name:       "invalid params fall back to defaults",
			svc:        &mockSnapshotService{page: &models.SnapshotPage{}},
			path:       "/api/snapshots?limit=abc&offset=-4",
			status:     http.StatusOK,
			wantLimit:  5,
			wantOffset: 0,
		},
		{
			name:   "database failure hides the cause",
			svc:    &mockSnapshotService{err: errDB},
			path:   "/api/snapshots",
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, body []byte) {
				out := decode(t, body)
				if out["error"] != "Failed to fetch snapshots" {
					t.Fatalf("error=%v", out["error"])
				}
				if strings.Contains(string(body), "connection reset") {
					t.Fatalf("cause leaked: %s", body)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(setupRouterWithMocks(tc.svc, &mockLiquidityService{}), tc.path)
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.status, w.Body.String())
			}
			if tc.status == http.StatusOK && (tc.svc.gotLimit != tc.wantLimit || tc.svc.gotOffset != tc.wantOffset) {
				t.Fatalf("limit/offset=%d/%d want %d/%d", tc.svc.gotLimit, tc.svc.gotOffset, tc.wantLimit, tc.wantOffset)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetSnapshot_TableDriven(t *testing.T) {
	ts := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
	detail := &models.SnapshotDetail{
		SnapshotID: 42,
		Timestamp:  ts,
		Stats:      models.PriceStats{Avg: 1.5, Max: 2, Min: 1, Median: 1.5},
		Tokens: []models.PriceSnapshot{
			{SnapshotID: 42, Token: "0xa", Price: decimal.RequireFromString("1000000000000000000"), SwapAmount: decimal.NewFromInt(1), Timestamp: ts},
			{SnapshotID: 42, Token: "0xb", Price: decimal.RequireFromString("2000000000000000000"), SwapAmount: decimal.NewFromInt(1), Timestamp: ts},
		},
	}

	cases := []struct {
		name      string
		svc       *mockSnapshotService
		path      string
		status    int
		wantCalls int
		assert    func(t *testing.T, body []byte)
	}{
		{
			name:      "found",
			svc:       &mockSnapshotService{detail: detail},
			path:      "/api/snapshot/42",
			status:    http.StatusOK,
			wantCalls: 1,
			assert: func(t *testing.T, body []byte) {
				out := decode(t, body)
				if out["snapshot_id"].(float64) != 42 || out["token_count"].(float64) != 2 {
					t.Fatalf("unexpected body: %v", out)
				}
				stats := out["statistics"].(map[string]any)
				if stats["median"].(float64) != 1.5 {
					t.Fatalf("statistics=%v", stats)
				}
				tok := out["tokens"].([]any)[0].(map[string]any)
				if tok["price_formatted"] != "1.000000" || tok["price"].(float64) != 1 {
					t.Fatalf("token=%v", tok)
				}
			},
		},
		{
			name:   "non-integer id",
			svc:    &mockSnapshotService{},
			path:   "/api/snapshot/abc",
			status: http.StatusBadRequest,
		},
		{
			name:      "unknown id",
			svc:       &mockSnapshotService{err: fmt.Errorf("snapshot 99: %w", apperr.ErrNotFound)},
			path:      "/api/snapshot/99",
			status:    http.StatusNotFound,
			wantCalls: 1,
		},
		{
			name:      "database failure",
			svc:       &mockSnapshotService{err: errDB},
			path:      "/api/snapshot/1",
			status:    http.StatusInternalServerError,
			wantCalls: 1,
			assert: func(t *testing.T, body []byte) {
				if decode(t, body)["error"] != "Failed to fetch snapshot" {
					t.Fatalf("body=%s", body)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(setupRouterWithMocks(tc.svc, &mockLiquidityService{}), tc.path)
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.status, w.Body.String())
			}
			if tc.svc.calls != tc.wantCalls {
				t.Fatalf("service calls=%d want %d", tc.svc.calls, tc.wantCalls)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestLatestSnapshot(t *testing.T) {
	cases := []struct {
		name     string
		svc      *mockSnapshotService
		status   int
		location string
	}{
		{name: "redirects to newest", svc: &mockSnapshotService{latestID: 17}, status: http.StatusFound, location: "/api/snapshot/17"},
		{name: "empty table", svc: &mockSnapshotService{err: fmt.Errorf("latest: %w", apperr.ErrNotFound)}, status: http.StatusNotFound},
		{name: "database failure", svc: &mockSnapshotService{err: errDB}, status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(setupRouterWithMocks(tc.svc, &mockLiquidityService{}), "/api/latest-snapshot")
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d", w.Code, tc.status)
			}
			if got := w.Header().Get("Location"); got != tc.location {
				t.Fatalf("location=%q want %q", got, tc.location)
			}
		})
	}
}

func TestHeatmap(t *testing.T) {
	liq := &mockLiquidityService{pairs: []models.PairLiquidity{{SourceAvatar: "0xa", TargetAvatar: "0xb", ObservationCount: 5}}}
	w := do(setupRouterWithMocks(&mockSnapshotService{}, liq), "/api/liquidity/heatmap?hours=6&min_observations=10")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if liq.gotHours != query.Hours(6) || liq.gotMinObs != 10 {
		t.Fatalf("params hours=%d min=%d", liq.gotHours, liq.gotMinObs)
	}
	out := decode(t, w.Body.Bytes())
	if out["time_range_hours"].(float64) != 6 || out["pair_count"].(float64) != 1 {
		t.Fatalf("unexpected body: %v", out)
	}

	liq = &mockLiquidityService{}
	w = do(setupRouterWithMocks(&mockSnapshotService{}, liq), "/api/liquidity/heatmap?hours=abc")
	if w.Code != http.StatusOK || liq.gotHours != query.Hours(query.DefaultHours) || liq.gotMinObs != query.DefaultMinObservations {
		t.Fatalf("defaults not applied: status=%d hours=%d min=%d", w.Code, liq.gotHours, liq.gotMinObs)
	}
	if !strings.Contains(w.Body.String(), `"pairs":[]`) {
		t.Fatalf("empty pairs must render []: %s", w.Body.String())
	}
}

func TestTopPairs_SortAllowList(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		wantSort query.SortField
	}{
		{name: "allowed column", path: "/api/liquidity/top-pairs?sort=success_rate", wantSort: query.SortSuccessRate},
		{name: "injection attempt", path: "/api/liquidity/top-pairs?sort=DROP%20TABLE", wantSort: query.SortAvgLiquidity},
		{name: "missing", path: "/api/liquidity/top-pairs", wantSort: query.SortAvgLiquidity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			liq := &mockLiquidityService{}
			w := do(setupRouterWithMocks(&mockSnapshotService{}, liq), tc.path)
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d", w.Code)
			}
			if liq.gotSort != tc.wantSort || liq.gotLimit != query.DefaultTopPairsLimit {
				t.Fatalf("sort=%s limit=%d", liq.gotSort, liq.gotLimit)
			}
			if decode(t, w.Body.Bytes())["sort_by"] != string(tc.wantSort) {
				t.Fatalf("sort_by mismatch: %s", w.Body.String())
			}
		})
	}
}

func TestTimeseries(t *testing.T) {
	ratio := 2.0
	points := []models.TimeseriesPoint{{
		LiquidityObservation: models.LiquidityObservation{MeasuredLiquidity: 10, Success: true},
		MovingAvg10:          10,
		PriceRatio:           &ratio,
	}}

	cases := []struct {
		name      string
		path      string
		status    int
		wantCalls int
	}{
		{name: "lower-case", path: "/api/liquidity/timeseries?source=0xabc&target=0xdef", status: http.StatusOK, wantCalls: 1},
		{name: "mixed case is normalized", path: "/api/liquidity/timeseries?source=%200xABC&target=0xDeF%20", status: http.StatusOK, wantCalls: 1},
		{name: "missing target", path: "/api/liquidity/timeseries?source=0xabc", status: http.StatusBadRequest},
		{name: "blank source", path: "/api/liquidity/timeseries?source=%20&target=0xdef", status: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			liq := &mockLiquidityService{points: points}
			w := do(setupRouterWithMocks(&mockSnapshotService{}, liq), tc.path)
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d", w.Code, tc.status)
			}
			if liq.calls != tc.wantCalls {
				t.Fatalf("calls=%d want %d", liq.calls, tc.wantCalls)
			}
			if tc.status != http.StatusOK {
				return
			}
			if liq.gotSource != "0xabc" || liq.gotTarget != "0xdef" {
				t.Fatalf("avatars not normalized: %q %q", liq.gotSource, liq.gotTarget)
			}
			out := decode(t, w.Body.Bytes())
			if out["observation_count"].(float64) != 1 || out["source_avatar"] != "0xabc" {
				t.Fatalf("unexpected body: %v", out)
			}
			obs := out["observations"].([]any)[0].(map[string]any)
			if obs["moving_avg_10"].(float64) != 10 || obs["price_ratio"].(float64) != 2 {
				t.Fatalf("unexpected observation: %v", obs)
			}
		})
	}
}

func TestStats(t *testing.T) {
	avg := 25.0
	liq := &mockLiquidityService{stats: &models.LiquidityStats{
		TotalObservations:      4,
		SuccessfulObservations: 3,
		SuccessRate:            0.75,
		AvgLiquidity:           &avg,
		TopFailureReasons:      []models.FailureReasonCount{{Reason: "slippage", Occurrences: 1}},
	}}
	w := do(setupRouterWithMocks(&mockSnapshotService{}, liq), "/api/liquidity/stats?hours=-5")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if liq.gotHours != query.Hours(query.DefaultHours) {
		t.Fatalf("negative hours must fall back to default, got %d", liq.gotHours)
	}
	stats := decode(t, w.Body.Bytes())["stats"].(map[string]any)
	if stats["success_rate"].(float64) != 0.75 || stats["total_observations"].(float64) != 4 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}

func TestLiquidityEndpoints_InternalErrors(t *testing.T) {
	cases := []struct {
		path string
		msg  string
	}{
		{path: "/api/liquidity/heatmap", msg: "Failed to fetch liquidity heatmap"},
		{path: "/api/liquidity/top-pairs", msg: "Failed to fetch top pairs"},
		{path: "/api/liquidity/timeseries?source=a&target=b", msg: "Failed to fetch liquidity timeseries"},
		{path: "/api/liquidity/stats", msg: "Failed to fetch liquidity stats"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := do(setupRouterWithMocks(&mockSnapshotService{}, &mockLiquidityService{err: errDB}), tc.path)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status=%d", w.Code)
			}
			out := decode(t, w.Body.Bytes())
			if out["error"] != tc.msg {
				t.Fatalf("error=%v want %q", out["error"], tc.msg)
			}
			if _, ok := out["details"]; ok {
				t.Fatalf("500 must not carry details: %v", out)
			}
		})
	}
}

func TestRespondError_InvalidInput(t *testing.T) {
	liq := &mockLiquidityService{err: fmt.Errorf("window: %w", apperr.ErrInvalidInput)}
	w := do(setupRouterWithMocks(&mockSnapshotService{}, liq), "/api/liquidity/stats")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}
