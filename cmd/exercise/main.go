// Command exercise pushes a numbered sequence through every ring queue
// strategy with random interleaved pulls and checks that it comes back out
// in order.
//
// Usage:
//
//	go run ./cmd/exercise -capacity 4 -n 100
//	go run ./cmd/exercise -strategies sentinel,backward-sentinel -log-level debug
//	go run ./cmd/exercise -config run.yaml -metrics
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/randomizedcoder/ring-queues/internal/exercise"
	"github.com/randomizedcoder/ring-queues/internal/ring"
	"github.com/randomizedcoder/ring-queues/internal/ringmetrics"
)

const appName = "exercise"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("exercise failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cli, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if err := validateFlags(cli); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := setupLogger(stdout, cli.LogLevel, cli.LogFormat)
	slog.SetDefault(logger)

	cfg, err := buildConfig(cli)
	if err != nil {
		return err
	}

	var reg *prometheus.Registry
	var decorate exercise.Decorator
	if cli.Metrics {
		reg = prometheus.NewRegistry()
		decorate = func(k ring.Kind, q ring.RingQueue[int]) (ring.Queue[int], error) {
			return ringmetrics.Wrap[int](q, reg, k.String(), k.String())
		}
	}

	logger.Info("starting exercise",
		"strategies", cfg.Strategies,
		"capacity", cfg.Capacity,
		"items", cfg.Items,
		"self_check", cfg.SelfCheck)

	reports, err := exercise.RunAll(cfg, logger, decorate)
	if err != nil {
		return err
	}

	for _, rep := range reports {
		_, _ = fmt.Fprintf(stdout, "%-20s cap=%d pushes=%d pulls=%d full=%d empty=%d max_len=%d\n",
			rep.Strategy, rep.Capacity, rep.Pushes, rep.Pulls, rep.FullHits, rep.EmptyHits, rep.MaxLen)
	}

	if reg != nil {
		return logMetrics(logger, reg)
	}
	return nil
}

// buildConfig loads the run file, if any, and lets explicit flags override
// it. Without a run file every flag value applies.
func buildConfig(cli *CLIConfig) (exercise.Config, error) {
	cfg := exercise.DefaultConfig()
	fromFile := cli.ConfigPath != ""
	if fromFile {
		var err error
		if cfg, err = exercise.LoadConfig(cli.ConfigPath); err != nil {
			return cfg, err
		}
	}

	override := func(name string) bool { return !fromFile || cli.set[name] }
	if override("strategies") {
		cfg.Strategies = splitList(cli.Strategies)
	}
	if override("capacity") {
		cfg.Capacity = cli.Capacity
	}
	if override("n") {
		cfg.Items = cli.Items
	}
	if override("seed") {
		cfg.Seed = cli.Seed
	}
	if override("self-check") {
		cfg.SelfCheck = cli.SelfCheck
	}

	return cfg, cfg.Validate()
}

func logMetrics(logger *slog.Logger, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName(), "value", metricValue(mf.GetType(), m)}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logger.Info("metric", attrs...)
		}
	}
	return nil
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return 0
	}
}
