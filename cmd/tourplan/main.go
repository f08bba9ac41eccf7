// SPDX-License-Identifier: MIT

// Command tourplan reads a settlements CSV, plans a visiting tour with
// nearest-neighbor construction plus 2-opt refinement, and writes the
// route, per-leg distances and run metadata into an output directory.
//
// Usage:
//
//	tourplan -input settlements.csv -out results -time-limit 30s
//	tourplan -config run.yaml
//
// Flags override values from the YAML config file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/katalvlaran/tourplan/distcache"
	"github.com/katalvlaran/tourplan/distmat"
	"github.com/katalvlaran/tourplan/export"
	"github.com/katalvlaran/tourplan/loader"
	"github.com/katalvlaran/tourplan/tsp"
)

func main() {
	if err := run(); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "YAML config file (flags override it)")
		inputPath  = flag.String("input", "", "settlements CSV path")
		outDir     = flag.String("out", "", "output directory")
		method     = flag.String("method", "", "solver method: nearest-neighbor or nearest-neighbor+2opt")
		start      = flag.Int("start", -2, "start settlement index (-1 = config default)")
		maxIters   = flag.Int("max-iters", 0, "2-opt improvement pass cap")
		timeLimit  = flag.Duration("time-limit", 0, "optimization budget, e.g. 30s (0 = unlimited)")
		cachePath  = flag.String("cache", "", "SQLite distance cache path")
		workbook   = flag.Bool("xlsx", false, "also write a solution.xlsx workbook")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = ReadConfig(*configPath); err != nil {
			return err
		}
	}
	applyFlags(&cfg, *inputPath, *outDir, *method, *start, *maxIters, *timeLimit, *cachePath, *workbook)

	if cfg.Input.Path == "" {
		flag.Usage()

		return fmt.Errorf("no input file (use -input or a config file)")
	}

	table, err := loadTable(cfg)
	if err != nil {
		return err
	}
	logger.Info("settlements loaded", "path", cfg.Input.Path, "rows", table.Len())

	in, D, err := prepareInput(cfg, table, logger)
	if err != nil {
		return err
	}

	opts := solverOptions(cfg)
	res, err := solveWithProgress(in, opts, logger)
	if err != nil {
		return err
	}
	logger.Info("solved",
		"method", res.Meta.Method,
		"n", res.Meta.N,
		"open_length", res.Meta.BestOpenLength,
		"closed_length", res.Meta.BestClosedLength,
		"seconds", res.Meta.ElapsedSeconds,
	)

	if D == nil {
		// Points went straight into the solver; rebuild the matrix once
		// for the per-leg artifacts.
		if D, err = distmat.Build(table.Points); err != nil {
			return err
		}
	}
	if err = export.SaveAll(cfg.Output.Dir, res, D, table.IDs); err != nil {
		return err
	}
	if cfg.Output.Workbook {
		path := filepath.Join(cfg.Output.Dir, export.WorkbookFileName)
		if err = export.WriteWorkbook(path, res, D, table.IDs); err != nil {
			return err
		}
	}
	logger.Info("artifacts written", "dir", cfg.Output.Dir, "workbook", cfg.Output.Workbook)

	return nil
}

// applyFlags lays explicitly set flags over the config file values.
// Sentinel defaults (-2, 0, "") mark flags the user did not touch.
func applyFlags(cfg *Config, input, out, method string, start, maxIters int, limit time.Duration, cache string, workbook bool) {
	if input != "" {
		cfg.Input.Path = input
	}
	if out != "" {
		cfg.Output.Dir = out
	}
	if method != "" {
		cfg.Solver.Method = method
	}
	if start != -2 {
		cfg.Solver.Start = start
	}
	if maxIters != 0 {
		cfg.Solver.MaxIters = maxIters
	}
	if limit != 0 {
		cfg.Solver.TimeLimitSeconds = limit.Seconds()
	}
	if cache != "" {
		cfg.CachePath = cache
	}
	if workbook {
		cfg.Output.Workbook = true
	}
}

func loadTable(cfg Config) (*loader.Table, error) {
	opts := loader.DefaultOptions()
	if cfg.Input.Delimiter != "" {
		opts.Delimiter = rune(cfg.Input.Delimiter[0])
	}
	opts.IDColumn = cfg.Input.IDColumn
	opts.LatColumn = cfg.Input.LatColumn
	opts.LonColumn = cfg.Input.LonColumn
	opts.ConvertToDegrees = cfg.Input.ConvertToDegrees
	if opts.IDColumn != "" || opts.LatColumn != "" || opts.LonColumn != "" {
		// Custom columns replace the whole required set.
		opts = withRequired(opts)
	}

	return loader.Load(cfg.Input.Path, opts)
}

// withRequired rebuilds the required-column set around custom column names.
func withRequired(opts loader.Options) loader.Options {
	id, lat, lon := opts.IDColumn, opts.LatColumn, opts.LonColumn
	if id == "" {
		id = "id"
	}
	if lat == "" {
		lat = "latitude_dd"
	}
	if lon == "" {
		lon = "longitude_dd"
	}
	opts.RequiredColumns = []string{id, lat, lon}

	return opts
}

// prepareInput resolves the solver input: through the SQLite distance
// cache when one is configured, as raw points otherwise. The returned
// matrix is nil in the raw-points case.
func prepareInput(cfg Config, table *loader.Table, logger *slog.Logger) (tsp.Input, *distmat.Dense, error) {
	if cfg.CachePath == "" {
		return tsp.Input{Points: table.Points}, nil, nil
	}

	store, err := distcache.Open(cfg.CachePath)
	if err != nil {
		return tsp.Input{}, nil, err
	}
	defer store.Close()

	started := time.Now()
	D, err := store.Matrix(context.Background(), table.Points)
	if err != nil {
		return tsp.Input{}, nil, err
	}
	logger.Debug("matrix ready", "cache", cfg.CachePath, "seconds", time.Since(started).Seconds())

	return tsp.Input{Matrix: D}, D, nil
}

func solverOptions(cfg Config) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Method = tsp.Method(cfg.Solver.Method)
	opts.Start = cfg.Solver.Start
	opts.DefaultStart = cfg.Solver.DefaultStart
	if cfg.Solver.MaxIters > 0 {
		opts.MaxIters = cfg.Solver.MaxIters
	}
	if cfg.Solver.Eps > 0 {
		opts.Eps = cfg.Solver.Eps
	}
	if cfg.Solver.TimeLimitSeconds >= 0 {
		opts.TimeLimit = time.Duration(cfg.Solver.TimeLimitSeconds * float64(time.Second))
	}

	return opts
}

// solveWithProgress runs the solver on a worker goroutine and drains
// progress snapshots on the caller's goroutine. Ctrl-C is advisory: the
// optimizer only yields at its per-row deadline check, so the first
// interrupt is logged and a second one aborts the process.
func solveWithProgress(in tsp.Input, opts tsp.Options, logger *slog.Logger) (tsp.Result, error) {
	progress := make(chan tsp.Progress, 64)
	opts.Sink = tsp.ProgressFunc(func(p tsp.Progress) {
		select {
		case progress <- p:
		default: // never block the optimizer on a slow drain
		}
	})

	type outcome struct {
		res tsp.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := tsp.Solve(in, opts)
		close(progress)
		done <- outcome{res: res, err: err}
	}()

	interrupts := make(chan os.Signal, 2)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	var warned bool
	for {
		select {
		case p, ok := <-progress:
			if !ok {
				out := <-done

				return out.res, out.err
			}
			logger.Debug("progress",
				"closed_length", p.ClosedLength,
				"open_length", p.OpenLength,
				"seconds", p.ElapsedSeconds,
			)
		case <-interrupts:
			if warned {
				logger.Error("second interrupt, aborting")
				os.Exit(130)
			}
			warned = true
			logger.Warn("interrupt received; waiting for the optimizer's next deadline check (interrupt again to abort)")
		}
	}
}
