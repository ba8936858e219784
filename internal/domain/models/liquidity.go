package models

import "time"

// LiquidityObservation is one decoded row of liquidity_observations.
//
// Numeric columns have already been coerced to float64 at the storage
// boundary; optional columns are nil when NULL.
type LiquidityObservation struct {
	Timestamp         time.Time
	MeasuredLiquidity float64
	RequiredAmount    float64
	Success           bool
	EdgeID            *string
	EdgeScore         *float64
	SourceTokenPrice  *float64
	TargetTokenPrice  *float64
	RefToken          *string
	FailureReason     *string
	ExecutionTimeMs   *int64
}

// TimeseriesPoint is an observation enriched with the derived series values.
type TimeseriesPoint struct {
	LiquidityObservation
	MovingAvg10 float64
	PriceRatio  *float64
}

// PairLiquidity aggregates the observations of one directed avatar pair.
// Avatars are lower-case.
type PairLiquidity struct {
	SourceAvatar     string
	TargetAvatar     string
	ObservationCount int64
	AvgLiquidity     float64
	MaxLiquidity     float64
	MinLiquidity     float64
	LiquidityStddev  float64
	SuccessRate      float64
	AvgEdgeScore     *float64
	LastObserved     time.Time
}

// FailureReasonCount is how often a failure reason occurred in a window.
type FailureReasonCount struct {
	Reason      string
	Occurrences int64
}

// LiquidityStats summarizes every observation of a time window.
// Aggregates are nil when the window holds no observations.
type LiquidityStats struct {
	TotalObservations      int64
	UniquePairs            int64
	SuccessfulObservations int64
	SuccessRate            float64
	AvgLiquidity           *float64
	StddevLiquidity        *float64
	MinLiquidity           *float64
	MaxLiquidity           *float64
	TotalLiquidity         *float64
	AvgExecutionTimeMs     *float64
	AvgEdgeScore           *float64
	TopFailureReasons      []FailureReasonCount
}
