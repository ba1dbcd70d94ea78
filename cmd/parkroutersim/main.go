// Command parkroutersim runs a single batch of arrival and restriction
// orders against a park configuration and writes the resulting trace to
// stdout, per spec.md §6. It wires rtconfig -> ioformat -> park/compile ->
// scheduler -> ioformat.LineSink, the way mpisat-qumo/cmd/qumo-relay/main.go
// wires loadConfig -> relay.Server, scaled down to a batch run: no signal
// handling, since spec.md §5 names this a single-threaded, deterministic
// core with no long-lived server loop of its own.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/ioformat"
	"github.com/gridpark/parkrouter/obsmetrics"
	"github.com/gridpark/parkrouter/park"
	"github.com/gridpark/parkrouter/pathfind"
	"github.com/gridpark/parkrouter/rtconfig"
	"github.com/gridpark/parkrouter/scheduler"
)

const usage = "Usage: parkroutersim [-config rtconfig.yaml] <park.cfg> <park.inp> [park.res]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main's testable body: it takes argv (without argv[0]) and the
// streams to write to, and returns the process exit code spec.md §6 names
// (0 success, 1 bad usage, 2 configuration-file error); a scheduler run
// that fails also returns 1.
func run(argv []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("parkroutersim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a rtconfig YAML file (optional)")
	if err := fs.Parse(argv); err != nil {
		return 1
	}

	args := fs.Args()
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	cfg := rtconfig.Default()
	if *configPath != "" {
		loaded, err := rtconfig.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "loading runtime config: %v\n", err)
			return 2
		}
		cfg = loaded
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}))
	logger = logger.With("run_id", uuid.NewString())

	cfgGrid, err := loadGrid(args[0])
	if err != nil {
		logger.Error("loading park configuration", "error", err)
		return 2
	}
	arrivals, err := loadOrders(args[1])
	if err != nil {
		logger.Error("loading arrival orders", "error", err)
		return 2
	}
	var restrictions []scheduler.RestrictionOrder
	if len(args) == 3 {
		restrictions, err = loadRestrictions(args[2])
		if err != nil {
			logger.Error("loading restriction orders", "error", err)
			return 2
		}
	}

	var metrics *obsmetrics.Set
	if cfg.Metrics.Enabled {
		metrics = obsmetrics.New()
		go serveMetrics(cfg.Metrics.Addr, metrics, logger)
	}

	p := park.New(cfgGrid)
	p.Compile()

	var engine *pathfind.Engine
	if metrics != nil {
		engine = pathfind.NewEngineWithMetrics(cfgGrid, p.Dims(), p.Graph(), metrics)
	} else {
		engine = pathfind.NewEngine(cfgGrid, p.Dims(), p.Graph())
	}

	sink := ioformat.LineSink{W: stdout}
	sched := scheduler.New(p, engine, sink,
		scheduler.WithLogger(logger),
		scheduler.WithMetrics(metricsOrNil(metrics)),
		scheduler.WithStrictUnknownVehicle(cfg.Scheduler.StrictUnknownVehicle),
	)

	if err := sched.Run(arrivals, restrictions); err != nil {
		logger.Error("run failed", "error", err)
		return 1
	}
	return 0
}

// metricsOrNil converts a possibly-nil *obsmetrics.Set into a
// scheduler.Metrics that is the true untyped nil when m is nil — a bare
// *obsmetrics.Set(nil) passed as an interface would otherwise compare
// non-nil to scheduler's "metric != nil" checks.
func metricsOrNil(m *obsmetrics.Set) scheduler.Metrics {
	if m == nil {
		return nil
	}
	return m
}

func loadGrid(path string) (*grid.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ioformat.ParseConfig(file)
}

func loadOrders(path string) ([]scheduler.ArrivalOrder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ioformat.ParseOrders(file)
}

func loadRestrictions(path string) ([]scheduler.RestrictionOrder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ioformat.ParseRestrictions(file)
}

func serveMetrics(addr string, m *obsmetrics.Set, logger *slog.Logger) {
	if addr == "" {
		addr = ":9090"
	}
	logger.Info("serving metrics", "addr", addr)
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics server stopped", "error", err)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
