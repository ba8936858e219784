package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSnapshot is one row of the price_snapshots table.
//
// All rows sharing a SnapshotID were captured in the same round. Price is the
// raw fixed-point value as stored (scaled by 10^18); it must go through
// format.ConvertPrice before any arithmetic.
type PriceSnapshot struct {
	SnapshotID int64
	Token      string
	PoolID     string
	PoolType   string
	Price      decimal.Decimal
	RefToken   string
	SwapAmount decimal.Decimal
	Timestamp  time.Time
}

// SnapshotSummary is one entry of the paginated snapshot list.
type SnapshotSummary struct {
	SnapshotID int64
	Timestamp  time.Time
	TokenCount int64
}

// SnapshotPage is a page of summaries plus the total number of snapshots.
type SnapshotPage struct {
	Snapshots []SnapshotSummary
	Total     int64
}

// PriceStats holds the statistics over the converted prices of one snapshot.
type PriceStats struct {
	Avg    float64
	Max    float64
	Min    float64
	Median float64
}

// SnapshotDetail is a full snapshot: its rows and the statistics over their prices.
type SnapshotDetail struct {
	SnapshotID int64
	Timestamp  time.Time
	Tokens     []PriceSnapshot
	Stats      PriceStats
}
