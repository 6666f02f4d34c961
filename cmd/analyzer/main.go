package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fantasy-league-history/internal/config"
	"fantasy-league-history/internal/logging"
	"fantasy-league-history/internal/runner"
)

const (
	appName    = "fantasy-league-history"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_ANALYZER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load configuration:", err)
		return exitCode(err)
	}

	out, closeOutput, err := logging.OpenOutput(cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log file:", err)
		return 1
	}
	defer closeOutput()

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
		Output:  out,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.New(cfg, logger).Run(ctx); err != nil {
		return exitCode(err)
	}
	return 0
}

// exitCode maps configuration problems to 2 and every other failure to 1.
func exitCode(err error) int {
	if config.IsConfigurationError(err) {
		return 2
	}
	return 1
}
