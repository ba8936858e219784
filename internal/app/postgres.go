package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
	"github.com/sethvargo/go-retry"

	"github.com/guttosm/arbpulse/config"
	"github.com/guttosm/arbpulse/internal/logger"
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// minBackoff keeps the constant backoff valid when the configured delay is zero.
const minBackoff = 10 * time.Millisecond

// InitPostgres opens the PostgreSQL handle described by cfg.Postgres and waits
// until it answers a ping.
//
// Behavior:
//   - Caps the pool at cfg.Postgres.MaxOpenConns (1 by default: one shared connection).
//   - Pings once, then retries up to cfg.Postgres.ConnectRetries more times with a
//     fixed cfg.Postgres.ConnectBackoff delay between attempts.
//   - Closes the handle and returns the last error when every attempt fails or ctx ends.
//
// Example usage:
//
//	db, err := app.InitPostgres(ctx, config.AppConfig)
//	if err != nil {
//	    logger.L().Fatal().Err(err).Msg("postgres unavailable")
//	}
//	defer db.Close()
func InitPostgres(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	pg := cfg.Postgres
	dsn := pg.URL
	if dsn == "" {
		dsn = pg.DSN()
	}

	// sql.Open does not connect; the ping below does
	db, err := sqlOpener("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	maxConns := pg.MaxOpenConns
	if maxConns < 1 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	retries := pg.ConnectRetries
	if retries < 0 {
		retries = 0
	}
	backoff := pg.ConnectBackoff
	if backoff < minBackoff {
		backoff = minBackoff
	}

	attempt := 0
	err = retry.Do(ctx, retry.WithMaxRetries(uint64(retries), retry.NewConstant(backoff)), func(ctx context.Context) error {
		attempt++
		if perr := db.PingContext(ctx); perr != nil {
			logger.L().Warn().
				Err(perr).
				Int("attempt", attempt).
				Int("max_attempts", retries+1).
				Str("host", pg.Host).
				Msg("postgres not reachable")
			return retry.RetryableError(perr)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres after %d attempts: %w", attempt, err)
	}

	logger.L().Info().
		Str("host", pg.Host).
		Str("db", pg.DBName).
		Str("sslmode", pg.EffectiveSSLMode()).
		Int("attempts", attempt).
		Msg("postgres connected")
	return db, nil
}

// postgresOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
