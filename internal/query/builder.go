// Package query builds the parameterized SQL used by the repositories.
//
// Every client-supplied value that filters rows travels as a positional
// argument. The only interpolated fragment is the ORDER BY column of the
// top-pairs query, and it always comes from the SortField allow-list.
package query

import "fmt"

// Query is a SQL statement plus its positional arguments.
type Query struct {
	SQL  string
	Args []any
}

const (
	snapshotsTable   = "price_snapshots"
	observationTable = "liquidity_observations"
)

// windowClause returns the time-window predicate bound to placeholder n.
func windowClause(n int) string {
	return fmt.Sprintf("timestamp >= NOW() - ($%d::int * INTERVAL '1 hour')", n)
}

// CountSnapshots counts distinct snapshot ids.
func CountSnapshots() Query {
	return Query{SQL: `SELECT COUNT(DISTINCT snapshot_id) FROM ` + snapshotsTable}
}

// ListSnapshots pages through snapshots, newest id first.
func ListSnapshots(limit, offset int) Query {
	return Query{
		SQL: `
		SELECT snapshot_id, MIN(timestamp) AS timestamp, COUNT(*) AS token_count
		FROM ` + snapshotsTable + `
		GROUP BY snapshot_id
		ORDER BY snapshot_id DESC
		LIMIT $1 OFFSET $2`,
		Args: []any{limit, offset},
	}
}

// SnapshotRows returns every token row captured under one snapshot id.
// price is read as text so both TEXT and NUMERIC storage decode the same way.
func SnapshotRows(id int64) Query {
	return Query{
		SQL: `
		SELECT snapshot_id, token, pool_id, pool_type, price::text AS price, ref_token, swap_amount, timestamp
		FROM ` + snapshotsTable + `
		WHERE snapshot_id = $1
		ORDER BY token ASC, pool_id ASC`,
		Args: []any{id},
	}
}

// LatestSnapshotID returns the highest snapshot id (NULL on an empty table).
func LatestSnapshotID() Query {
	return Query{SQL: `SELECT MAX(snapshot_id) FROM ` + snapshotsTable}
}

// pairColumns is shared by Heatmap and TopPairs so both decode with one scanner.
const pairColumns = `
		SELECT
			LOWER(source_avatar) AS source_avatar,
			LOWER(target_avatar) AS target_avatar,
			COUNT(*) AS observation_count,
			AVG(measured_liquidity) AS avg_liquidity,
			MAX(measured_liquidity) AS max_liquidity,
			MIN(measured_liquidity) AS min_liquidity,
			STDDEV_POP(measured_liquidity) AS liquidity_stddev,
			AVG(CASE WHEN success THEN 1.0 ELSE 0.0 END) AS success_rate,
			AVG(edge_score) AS avg_edge_score,
			MAX(timestamp) AS last_observed
		FROM ` + observationTable

// Heatmap aggregates every directed pair observed at least minObs times in the window.
func Heatmap(hours Hours, minObs int) Query {
	return Query{
		SQL: pairColumns + `
		WHERE ` + windowClause(1) + `
		GROUP BY LOWER(source_avatar), LOWER(target_avatar)
		HAVING COUNT(*) >= $2
		ORDER BY avg_liquidity DESC, source_avatar ASC, target_avatar ASC`,
		Args: []any{hours.Int(), minObs},
	}
}

// TopPairs ranks pairs by an allow-listed column. Pairs with fewer than
// TopPairsMinObservations observations are always excluded.
func TopPairs(sort SortField, limit int, hours Hours) Query {
	// re-validate so a SortField built by conversion still cannot inject
	sort = ParseSortField(string(sort))
	return Query{
		SQL: pairColumns + `
		WHERE ` + windowClause(1) + `
		GROUP BY LOWER(source_avatar), LOWER(target_avatar)
		HAVING COUNT(*) >= ` + fmt.Sprint(TopPairsMinObservations) + `
		ORDER BY ` + string(sort) + ` DESC, source_avatar ASC, target_avatar ASC
		LIMIT $2`,
		Args: []any{hours.Int(), limit},
	}
}

// Timeseries returns the chronological observations of one directed pair.
// source and target must already be lower-cased.
func Timeseries(source, target string, hours Hours) Query {
	return Query{
		SQL: `
		SELECT timestamp, measured_liquidity, required_amount, success, edge_id, edge_score,
			source_token_price, target_token_price, ref_token, failure_reason, execution_time_ms
		FROM ` + observationTable + `
		WHERE LOWER(source_avatar) = $1
			AND LOWER(target_avatar) = $2
			AND ` + windowClause(3) + `
		ORDER BY timestamp ASC, id ASC`,
		Args: []any{source, target, hours.Int()},
	}
}

// LiquidityStats aggregates the whole observation window into one row.
func LiquidityStats(hours Hours) Query {
	return Query{
		SQL: `
		SELECT
			COUNT(*) AS total_observations,
			COUNT(DISTINCT (LOWER(source_avatar), LOWER(target_avatar))) AS unique_pairs,
			COUNT(*) FILTER (WHERE success) AS successful_observations,
			AVG(measured_liquidity) AS avg_liquidity,
			STDDEV_POP(measured_liquidity) AS stddev_liquidity,
			MIN(measured_liquidity) AS min_liquidity,
			MAX(measured_liquidity) AS max_liquidity,
			SUM(measured_liquidity) AS total_liquidity,
			AVG(execution_time_ms) AS avg_execution_time_ms,
			AVG(edge_score) AS avg_edge_score
		FROM ` + observationTable + `
		WHERE ` + windowClause(1),
		Args: []any{hours.Int()},
	}
}

// FailureReasons counts the most frequent failure reasons in the window.
func FailureReasons(hours Hours, limit int) Query {
	return Query{
		SQL: `
		SELECT failure_reason, COUNT(*) AS occurrences
		FROM ` + observationTable + `
		WHERE NOT success
			AND failure_reason IS NOT NULL
			AND ` + windowClause(1) + `
		GROUP BY failure_reason
		ORDER BY occurrences DESC, failure_reason ASC
		LIMIT $2`,
		Args: []any{hours.Int(), limit},
	}
}
