// Package logger holds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "arbpulse"

var (
	mu    sync.RWMutex
	base  zerolog.Logger
	ready bool
)

// Init configures the global JSON logger. pretty switches to a human-readable
// console writer for local development.
func Init(level string, pretty bool) {
	InitWithWriter(os.Stdout, level, pretty)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(out io.Writer, level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).With().Timestamp().Str("service", serviceName).Logger().Level(parseLevel(level))

	mu.Lock()
	base, ready = l, true
	mu.Unlock()
}

// initFromEnv covers code paths (tests, tools) that log before config is loaded.
func initFromEnv() {
	Init(getenv("LOG_LEVEL", "info"), strings.EqualFold(getenv("LOG_PRETTY", "false"), "true"))
}

// L returns the global logger, initializing it from the environment on first use.
func L() *zerolog.Logger {
	mu.RLock()
	ok := ready
	mu.RUnlock()
	if !ok {
		initFromEnv()
	}

	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
