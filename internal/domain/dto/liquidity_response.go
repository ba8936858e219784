package dto

import "time"

// PairLiquidity is one directed avatar pair in the heatmap and top-pairs bodies.
type PairLiquidity struct {
	SourceAvatar     string    `json:"source_avatar" example:"0x42cedde51198d1773590311e2a340dc06b24cb37"`
	TargetAvatar     string    `json:"target_avatar" example:"0xde374ece6fa50e781e81aac78e811b33d16912c7"`
	ObservationCount int64     `json:"observation_count" example:"14"`
	AvgLiquidity     float64   `json:"avg_liquidity" example:"512.4"`
	MaxLiquidity     float64   `json:"max_liquidity" example:"900"`
	MinLiquidity     float64   `json:"min_liquidity" example:"12.5"`
	LiquidityStddev  float64   `json:"liquidity_stddev" example:"88.1"`
	SuccessRate      float64   `json:"success_rate" example:"0.85"`
	AvgEdgeScore     *float64  `json:"avg_edge_score" example:"0.42"`
	LastObserved     time.Time `json:"last_observed" example:"2025-09-12T10:00:00Z"`
}

// HeatmapResponse is the body of GET /api/liquidity/heatmap.
type HeatmapResponse struct {
	TimeRangeHours  int             `json:"time_range_hours" example:"24"`
	MinObservations int             `json:"min_observations" example:"3"`
	PairCount       int             `json:"pair_count" example:"2"`
	Pairs           []PairLiquidity `json:"pairs"`
}

// TopPairsResponse is the body of GET /api/liquidity/top-pairs.
type TopPairsResponse struct {
	SortBy         string          `json:"sort_by" example:"avg_liquidity"`
	Limit          int             `json:"limit" example:"20"`
	TimeRangeHours int             `json:"time_range_hours" example:"24"`
	Pairs          []PairLiquidity `json:"pairs"`
}

// TimeseriesPoint is one observation of GET /api/liquidity/timeseries.
type TimeseriesPoint struct {
	Timestamp         time.Time `json:"timestamp" example:"2025-09-12T10:00:00Z"`
	MeasuredLiquidity float64   `json:"measured_liquidity" example:"512.4"`
	RequiredAmount    float64   `json:"required_amount" example:"100"`
	Success           bool      `json:"success" example:"true"`
	EdgeID            *string   `json:"edge_id"`
	EdgeScore         *float64  `json:"edge_score"`
	SourceTokenPrice  *float64  `json:"source_token_price"`
	TargetTokenPrice  *float64  `json:"target_token_price"`
	PriceRatio        *float64  `json:"price_ratio"`
	MovingAvg10       float64   `json:"moving_avg_10" example:"498.2"`
	FailureReason     *string   `json:"failure_reason"`
	ExecutionTimeMs   *int64    `json:"execution_time_ms"`
}

// TimeseriesResponse is the body of GET /api/liquidity/timeseries.
type TimeseriesResponse struct {
	SourceAvatar     string            `json:"source_avatar"`
	TargetAvatar     string            `json:"target_avatar"`
	TimeRangeHours   int               `json:"time_range_hours" example:"24"`
	ObservationCount int               `json:"observation_count" example:"42"`
	Observations     []TimeseriesPoint `json:"observations"`
}

// FailureReason counts one failure reason.
type FailureReason struct {
	Reason      string `json:"reason" example:"insufficient liquidity"`
	Occurrences int64  `json:"occurrences" example:"7"`
}

// LiquidityStats are the window-wide aggregates. Nullable aggregates are null
// when the window holds no observations.
type LiquidityStats struct {
	TotalObservations      int64           `json:"total_observations" example:"1200"`
	UniquePairs            int64           `json:"unique_pairs" example:"85"`
	SuccessfulObservations int64           `json:"successful_observations" example:"1010"`
	SuccessRate            float64         `json:"success_rate" example:"0.8417"`
	AvgLiquidity           *float64        `json:"avg_liquidity"`
	StddevLiquidity        *float64        `json:"stddev_liquidity"`
	MinLiquidity           *float64        `json:"min_liquidity"`
	MaxLiquidity           *float64        `json:"max_liquidity"`
	TotalLiquidity         *float64        `json:"total_liquidity"`
	AvgExecutionTimeMs     *float64        `json:"avg_execution_time_ms"`
	AvgEdgeScore           *float64        `json:"avg_edge_score"`
	TopFailureReasons      []FailureReason `json:"top_failure_reasons"`
}

// LiquidityStatsResponse is the body of GET /api/liquidity/stats.
type LiquidityStatsResponse struct {
	TimeRangeHours int            `json:"time_range_hours" example:"24"`
	Stats          LiquidityStats `json:"stats"`
}
