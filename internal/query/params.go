package query

import (
	"strconv"
	"strings"
)

// Parameter defaults applied when a query-string value is absent or unusable.
const (
	DefaultHours           = 24
	DefaultSnapshotLimit   = 5
	DefaultOffset          = 0
	DefaultTopPairsLimit   = 20
	DefaultMinObservations = 3

	// TopPairsMinObservations is the hard floor applied by the top-pairs query.
	TopPairsMinObservations = 3
)

// Hours is a time window in whole hours. Keeping it a distinct integer type
// guarantees the window reaches SQL as a typed value, never as raw client text.
type Hours int

// Int returns the window as a plain int.
func (h Hours) Int() int { return int(h) }

// SortField is a column name accepted by the top-pairs ordering.
type SortField string

// Allowed sort columns for top pairs.
const (
	SortAvgLiquidity     SortField = "avg_liquidity"
	SortSuccessRate      SortField = "success_rate"
	SortObservationCount SortField = "observation_count"
	SortMaxLiquidity     SortField = "max_liquidity"
)

var sortFields = map[SortField]struct{}{
	SortAvgLiquidity:     {},
	SortSuccessRate:      {},
	SortObservationCount: {},
	SortMaxLiquidity:     {},
}

// ParseSortField returns raw as a SortField when it is on the allow-list and
// falls back to avg_liquidity for anything else. No error is ever reported.
func ParseSortField(raw string) SortField {
	f := SortField(strings.TrimSpace(raw))
	if _, ok := sortFields[f]; ok {
		return f
	}
	return SortAvgLiquidity
}

// ParseHours coerces raw into a positive hour window, defaulting to 24.
func ParseHours(raw string) Hours {
	h := parsePositive(raw, DefaultHours)
	return Hours(h)
}

// ParseLimit coerces raw into a non-negative limit, falling back to def.
func ParseLimit(raw string, def int) int {
	return parseNonNegative(raw, def)
}

// ParseOffset coerces raw into a non-negative offset, defaulting to 0.
func ParseOffset(raw string) int {
	return parseNonNegative(raw, DefaultOffset)
}

// ParseMinObservations coerces raw into a non-negative threshold, defaulting to 3.
func ParseMinObservations(raw string) int {
	return parseNonNegative(raw, DefaultMinObservations)
}

// ParseSnapshotID parses a path id. Unlike the query-string helpers it reports
// failure so that the caller can answer 400.
func ParseSnapshotID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// NormalizeAvatar trims and lower-cases an avatar address.
func NormalizeAvatar(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func parseNonNegative(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func parsePositive(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
