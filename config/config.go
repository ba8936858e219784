package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	SERVER_REQUEST_TIMEOUT=0s
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=bot
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=arbpulse
//	POSTGRES_SSL=true
//	LOG_LEVEL=info
//	RATE_LIMIT_RPS=10
type Config struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
	// RequestTimeout bounds each request context; zero disables it.
	RequestTimeout time.Duration
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - SSL: TLS flag; true maps to sslmode=require, false to sslmode=disable.
//   - SSLMode: explicit libpq sslmode, overrides SSL when set (e.g. "verify-full").
//   - MaxOpenConns: size of the connection pool; 1 keeps a single shared connection.
//   - ConnectRetries / ConnectBackoff: bounded startup retry with a fixed delay.
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSL            bool
	SSLMode        string
	MaxOpenConns   int
	ConnectRetries int
	ConnectBackoff time.Duration
	URL            string
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// RateLimitConfig controls the per-client token bucket. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// AppConfig is the globally accessible configuration instance, populated once
// by LoadConfig.
var AppConfig Config

// LoadConfig initializes the global AppConfig from defaults, an optional .env
// file and the environment (in increasing precedence). It returns an error
// naming every required variable left empty.
func LoadConfig() error {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_REQUEST_TIMEOUT", "0s")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "arbpulse")
	v.SetDefault("POSTGRES_SSL", true)
	v.SetDefault("POSTGRES_SSLMODE", "")
	v.SetDefault("POSTGRES_MAX_OPEN_CONNS", 1)
	v.SetDefault("POSTGRES_CONNECT_RETRIES", 5)
	v.SetDefault("POSTGRES_CONNECT_BACKOFF", "2s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	// optional, common in local dev
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			RequestTimeout: v.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		Postgres: PostgresConfig{
			Host:           v.GetString("POSTGRES_HOST"),
			Port:           v.GetInt("POSTGRES_PORT"),
			User:           v.GetString("POSTGRES_USER"),
			Password:       v.GetString("POSTGRES_PASSWORD"),
			DBName:         v.GetString("POSTGRES_DB"),
			SSL:            v.GetBool("POSTGRES_SSL"),
			SSLMode:        v.GetString("POSTGRES_SSLMODE"),
			MaxOpenConns:   v.GetInt("POSTGRES_MAX_OPEN_CONNS"),
			ConnectRetries: v.GetInt("POSTGRES_CONNECT_RETRIES"),
			ConnectBackoff: v.GetDuration("POSTGRES_CONNECT_BACKOFF"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}
	cfg.Postgres.URL = cfg.Postgres.DSN()

	if err := validateConfig(&cfg); err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// EffectiveSSLMode returns the libpq sslmode derived from SSL unless SSLMode overrides it.
func (p PostgresConfig) EffectiveSSLMode() string {
	if p.SSLMode != "" {
		return p.SSLMode
	}
	if p.SSL {
		return "require"
	}
	return "disable"
}

// DSN builds the postgres:// connection URL. Credentials are escaped.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     p.Host + ":" + strconv.Itoa(p.Port),
		Path:     "/" + p.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(p.EffectiveSSLMode()),
	}
	return u.String()
}

// validateConfig collects every missing or invalid required setting into one error.
func validateConfig(cfg *Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port <= 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.Postgres.MaxOpenConns < 1 {
		return fmt.Errorf("POSTGRES_MAX_OPEN_CONNS must be at least 1, got %d", cfg.Postgres.MaxOpenConns)
	}
	if cfg.Postgres.ConnectRetries < 0 {
		return fmt.Errorf("POSTGRES_CONNECT_RETRIES must not be negative, got %d", cfg.Postgres.ConnectRetries)
	}
	return nil
}
