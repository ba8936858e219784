// Package stats implements the small numeric reductions applied to query results
// after they leave the database: mean, min, max, median, trailing moving average,
// price ratio and success rate.
//
// Population standard deviation is not computed here; the SQL layer delegates it
// to STDDEV_POP.
package stats

import (
	"fmt"
	"sort"

	"github.com/guttosm/arbpulse/internal/domain/apperr"
)

// DefaultMovingAverageWindow is the window used for the MA10 series.
const DefaultMovingAverageWindow = 10

// ErrEmptyInput is returned by reductions that are undefined for an empty sequence.
var ErrEmptyInput = fmt.Errorf("%w: empty sequence", apperr.ErrInvalidInput)

// Summary bundles the per-snapshot price statistics.
type Summary struct {
	Avg    float64
	Max    float64
	Min    float64
	Median float64
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// Max returns the largest element of xs.
func Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m, nil
}

// Min returns the smallest element of xs.
func Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m, nil
}

// Median sorts a copy of xs ascending and returns the central element, or the
// mean of the two central elements when len(xs) is even. xs is not modified.
func Median(xs []float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Summarize computes avg, max, min and median of xs in one call.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmptyInput
	}
	// The remaining reductions cannot fail once xs is non-empty.
	avg, _ := Mean(xs)
	maxV, _ := Max(xs)
	minV, _ := Min(xs)
	med, _ := Median(xs)
	return Summary{Avg: avg, Max: maxV, Min: minV, Median: med}, nil
}

// TrailingMovingAverage returns, for every position i, the mean of
// xs[max(0, i-window+1) .. i]. The window grows from one element at the start
// until it reaches its full size. Output has the same length and order as xs.
//
// A window smaller than 1 is treated as 1. The series is computed in a single
// pass keeping a running sum of the elements currently inside the window.
func TrailingMovingAverage(xs []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(xs))
	sum := 0.0
	for i, x := range xs {
		sum += x
		if i >= window {
			sum -= xs[i-window]
		}
		size := i + 1
		if size > window {
			size = window
		}
		out[i] = sum / float64(size)
	}
	return out
}

// PriceRatio returns a/b when both values are present and b is non-zero, nil otherwise.
func PriceRatio(a, b *float64) *float64 {
	if a == nil || b == nil || *b == 0 {
		return nil
	}
	r := *a / *b
	return &r
}

// SuccessRate returns successes/total, or 0 when there is nothing to rate.
func SuccessRate(successes, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(successes) / float64(total)
}
