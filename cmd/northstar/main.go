// Package main provides the northstar CLI entry point.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/forgo/northstar/internal/config"
	"github.com/forgo/northstar/internal/metrics"
	"github.com/forgo/northstar/internal/service"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	cfg        *config.Config
	logger     *slog.Logger
	registry   *prometheus.Registry
	metricsOut string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		// SilenceErrors is set, so cobra errors are printed here
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "northstar",
	Short: "Validation and constraint tooling for the northstar planner",
	Long: `northstar exercises the planner's validation engine from the command line.

Payloads are read as JSON from --file or stdin and results are written as JSON
to stdout. Logs go to stderr.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if metricsOut == "" {
			return nil
		}
		return prometheus.WriteToTextfile(metricsOut, registry)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this file on exit")
	rootCmd.Version = Version
}

// setup loads configuration and installs the JSON logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return &exitError{code: ExitConfigError, err: fmt.Errorf("invalid configuration: %w", err)}
	}
	cfg = c

	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	registry = prometheus.NewRegistry()
	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// newInvariants builds the invariant checker from the loaded configuration.
func newInvariants(c *config.Config, log *slog.Logger, reg prometheus.Registerer) *service.Invariants {
	return service.NewInvariants(service.InvariantsConfig{
		Limits: &service.Limits{
			ActiveGoals:   c.Limits.ActiveGoalCap,
			WeeklyTasks:   c.Limits.WeeklyTaskCap,
			WeeklyTaskMin: c.Limits.WeeklyTaskMin,
		},
		Logger:  log,
		Metrics: metrics.New(reg),
	})
}
