package dto

import "time"

// SnapshotSummary is one entry of GET /api/snapshots.
type SnapshotSummary struct {
	SnapshotID int64     `json:"snapshot_id" example:"1042"`
	Timestamp  time.Time `json:"timestamp" example:"2025-09-12T10:00:00Z"`
	TokenCount int64     `json:"token_count" example:"37"`
}

// SnapshotListResponse is the body of GET /api/snapshots.
// total, limit and offset are always present, even for an empty page.
type SnapshotListResponse struct {
	Snapshots []SnapshotSummary `json:"snapshots"`
	Total     int64             `json:"total" example:"120"`
	Limit     int               `json:"limit" example:"5"`
	Offset    int               `json:"offset" example:"0"`
}

// PriceStatistics are computed over the converted (unscaled) prices.
type PriceStatistics struct {
	Avg    float64 `json:"avg" example:"1.0213"`
	Max    float64 `json:"max" example:"1.25"`
	Min    float64 `json:"min" example:"0.83"`
	Median float64 `json:"median" example:"1.01"`
}

// SnapshotToken is one token row of a snapshot.
type SnapshotToken struct {
	Token          string    `json:"token" example:"0x5a0b..."`
	PoolID         string    `json:"pool_id" example:"0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640"`
	PoolType       string    `json:"pool_type" example:"balancer_v2"`
	Price          float64   `json:"price" example:"1.000000"`
	PriceFormatted string    `json:"price_formatted" example:"1.000000"`
	PriceRaw       string    `json:"price_raw" example:"1000000000000000000"`
	RefToken       string    `json:"ref_token" example:"0x6b17..."`
	SwapAmount     float64   `json:"swap_amount" example:"100"`
	Timestamp      time.Time `json:"timestamp" example:"2025-09-12T10:00:00Z"`
}

// SnapshotDetailResponse is the body of GET /api/snapshot/{id}.
type SnapshotDetailResponse struct {
	SnapshotID int64           `json:"snapshot_id" example:"1042"`
	Timestamp  time.Time       `json:"timestamp" example:"2025-09-12T10:00:00Z"`
	TokenCount int             `json:"token_count" example:"37"`
	Statistics PriceStatistics `json:"statistics"`
	Tokens     []SnapshotToken `json:"tokens"`
}
