// Package main implements the FifoKit demo harness. It drives a fixed-capacity
// FIFO queue through the classic put/dump/get workload: stamp entries with a
// monotonic clock, saturate the queue, optionally hex-dump its memory, then
// drain it and report timings.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/c360/fifokit/config"
	"github.com/c360/fifokit/errors"
	"github.com/c360/fifokit/fifo"
	"github.com/c360/fifokit/metric"
	"github.com/c360/fifokit/pkg/hexdump"
	"github.com/c360/fifokit/pkg/retry"
	"github.com/c360/fifokit/pkg/timestamp"
)

// Build information constants
const (
	Version   = "0.1.1"
	BuildTime = "dev"
	appName   = "fifodemo"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Demo failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	cfg, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, cliCfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	runID := uuid.NewString()
	slog.Info("Starting FIFO demo",
		"version", Version,
		"run_id", runID,
		"capacity", cfg.Demo.Capacity,
		"items", cfg.Demo.Items)

	registry := metric.NewMetricsRegistry()

	ctx := context.Background()
	g, gctx := errgroup.WithContext(ctx)

	var metricsServer *metric.Server
	if cfg.Metrics.Port > 0 {
		metricsServer = metric.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, registry)
		g.Go(metricsServer.Start)
		slog.Info("Metrics server listening", "address", metricsServer.Address())
	}

	g.Go(func() error {
		defer func() {
			if metricsServer != nil {
				_ = metricsServer.Stop()
			}
		}()
		return runDemo(gctx, cfg, registry, runID)
	})

	return g.Wait()
}

// runDemo executes the put/dump/get workload against a freshly built queue.
func runDemo(ctx context.Context, cfg *config.Config, registry *metric.MetricsRegistry, runID string) error {
	q, err := fifo.New[fifo.Entry](cfg.Demo.Capacity,
		fifo.WithMetrics[fifo.Entry](registry, "demo"),
		fifo.WithEncoder[fifo.Entry](fifo.Entry.AppendBinary),
	)
	if err != nil {
		return err
	}

	clk := timestamp.New() // reference time set here

	var limiter *rate.Limiter
	if cfg.Demo.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Demo.Rate), 1)
	}

	// Put phase
	for i := 0; i < cfg.Demo.Items; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return errors.WrapTransient(err, "Demo", "runDemo", "rate limit wait")
			}
		}

		id := uint32(i + 1)
		entry := fifo.Entry{
			ID:        id,
			Name:      fifo.NewName(fmt.Sprintf(cfg.Demo.NameTemplate, id)),
			Timestamp: clk.Ticks(),
		}

		slog.Debug("Created entry",
			"id", entry.ID,
			"name", entry.Name.String(),
			"elapsed", timestamp.Format(entry.Timestamp))

		start := clk.Ticks()
		err := putEntry(ctx, cfg, q, entry)
		switch {
		case err == nil:
			slog.Info("Put successful",
				"id", entry.ID,
				"latency", timestamp.Between(start, clk.Ticks()),
				"state", q.State().String())
		case errors.IsFull(err):
			slog.Warn("Put rejected, queue full", "id", entry.ID)
		default:
			return err
		}
	}

	// Dump phase
	if cfg.Demo.Dump {
		label := fmt.Sprintf("queue snapshot (run %s)", runID)
		fmt.Print(hexdump.Dump(label, q.Snapshot()))
	}

	// Get phase
	for i := 0; i < cfg.Demo.Items; i++ {
		entry, err := q.Get()
		switch {
		case err == nil:
			slog.Info("Got entry",
				"id", entry.ID,
				"name", entry.Name.String(),
				"age", timestamp.Between(entry.Timestamp, clk.Ticks()))
		case errors.IsEmpty(err):
			slog.Warn("Get rejected, queue empty")
		default:
			return err
		}
	}

	summary := q.Stats().Summary()
	slog.Info("Demo complete",
		"run_id", runID,
		"puts", summary.Puts,
		"gets", summary.Gets,
		"full_rejections", summary.FullRejections,
		"empty_rejections", summary.EmptyRejections,
		"max_size", summary.MaxSize,
		"elapsed", clk.Elapsed().Round(time.Microsecond))

	return nil
}

// putEntry performs one put, optionally displacing the oldest entry and
// retrying when the queue is saturated. The queue itself never retries;
// this policy lives here, in the caller.
func putEntry(ctx context.Context, cfg *config.Config, q *fifo.Fifo[fifo.Entry], entry fifo.Entry) error {
	if !cfg.Demo.RetryFull {
		return q.Put(entry)
	}

	return retry.Do(ctx, retry.Quick(), func() error {
		err := q.Put(entry)
		if errors.IsFull(err) {
			if displaced, derr := q.Get(); derr == nil {
				slog.Warn("Queue full, displaced oldest entry",
					"displaced_id", displaced.ID,
					"incoming_id", entry.ID)
			}
		}
		return err
	})
}
