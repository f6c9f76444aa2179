// Package main runs the smoke-test client against a CRUD service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abgdnv/crudapi/internal/client"
	"github.com/abgdnv/crudapi/pkg/bootstrap"
)

func main() {
	var (
		baseURL  string
		timeout  time.Duration
		logLevel string
	)
	flag.StringVar(&baseURL, "url", client.DefaultBaseURL, "Base URL of the CRUD service")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "Per-request timeout (e.g., 5s, 1m)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := bootstrap.NewLogger(logLevel)
	slog.SetDefault(logger)

	// Failures are logged by Run; the exit code stays 0.
	report := client.New(baseURL, timeout, logger).Run(ctx)
	logger.Info("Fetch finished",
		slog.Int("users", len(report.Users)),
		slog.Int("products", len(report.Products)),
		slog.Bool("notFoundCheck", report.NotFoundCheck))
}
