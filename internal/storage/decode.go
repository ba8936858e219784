package storage

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Typed decoding helpers applied right after Scan.
//
// NUMERIC columns reach database/sql as text ([]byte) through lib/pq, so they
// are scanned into decimal.Decimal / decimal.NullDecimal and only then turned
// into float64. Count columns (bigint) scan into int64 directly.

func floatOf(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func floatPtr(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.InexactFloat64()
	return &v
}

func floatOrZero(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
