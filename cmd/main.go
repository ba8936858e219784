package main

//
//  @title           arbpulse API
//  @version         1.0
//  @description     Read-only analytics over arbitrage price snapshots and liquidity observations.
//  @termsOfService  https://github.com/guttosm/arbpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/arbpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        snapshots
//  @tag.description Price snapshots with converted prices and statistics
//
//  @tag.name        liquidity
//  @tag.description Liquidity observations aggregated per directed pair
//
//  @tag.name        health
//  @tag.description Service descriptor, liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/arbpulse/config"
	_ "github.com/guttosm/arbpulse/docs" // swagger docs
	"github.com/guttosm/arbpulse/internal/app"
	"github.com/guttosm/arbpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and cleans up resources once an
// OS interrupt signal (SIGINT, SIGTERM) is received. In-flight requests get a
// bounded grace period.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the arbpulse API.
//
// Flags:
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	if err := config.LoadConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger.Init(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty)
	gin.SetMode(gin.ReleaseMode)

	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	// cancelled by a signal received while the startup retry is still running
	startCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	router, cleanup, err := app.InitializeApp(startCtx)
	stop()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *port)
	gracefulShutdown(context.Background(), server, cleanup)
}
