package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"pkg.jsn.cam/hitgen/internal/config"
	"pkg.jsn.cam/hitgen/internal/logger"
	"pkg.jsn.cam/hitgen/internal/runlog"
	"pkg.jsn.cam/hitgen/internal/synth"
)

/*generates a CSV of synthetic web-analytics hits for loading into a warehouse table*/

var errRunsNeedsRunLog = errors.New("-runs requires -runlog (or run_log in the config file)")

type options struct {
	cfg      config.Config
	listRuns bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("hitgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Optional YAML config file; flags override its values")
	count := fs.Int("count", config.DefaultCount, "Number of records to generate")
	output := fs.String("output", config.DefaultOutput, "Output CSV file path")
	seed := fs.Uint64("seed", 0, "Random seed for reproducible output (default: a new seed every run)")
	logLevel := fs.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	runLog := fs.String("runlog", "", "bbolt file that records every run")
	listRuns := fs.Bool("runs", false, "Print the runs recorded in -runlog and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return options{}, err
		}
	}

	// Only flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Count = *count
		case "output":
			cfg.Output = *output
		case "seed":
			s := *seed
			cfg.Seed = &s
		case "log-level":
			cfg.LogLevel = *logLevel
		case "runlog":
			cfg.RunLog = *runLog
		}
	})

	if *listRuns && cfg.RunLog == "" {
		return options{}, errRunsNeedsRunLog
	}

	return options{cfg: cfg, listRuns: *listRuns}, cfg.Validate()
}

func openRunLog(path string) (runlog.Store, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create run log directory: %w", err)
	}
	return runlog.NewBoltStore(path)
}

// generate writes one dataset. A nil store skips the ledger; a ledger
// failure is logged and does not fail a run whose file was written.
func generate(cfg config.Config, now time.Time, log logger.Logger, store runlog.Store) (runlog.Run, error) {
	seed := rand.Uint64()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	run := runlog.NewRun(now, seed, cfg.Count, cfg.Output)
	log = log.With(logger.String("run_id", run.ID))
	log.Info("generating hits",
		logger.Int("count", cfg.Count),
		logger.String("output", cfg.Output),
		logger.Uint64("seed", seed))

	began := time.Now()
	res, err := synth.WriteFile(cfg.Output, synth.NewSeeded(now, seed), cfg.Count)
	run.Rows, run.Bytes = res.Rows, res.Bytes
	run.Duration = time.Since(began)
	if err != nil {
		return run, fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	log.Info("hits written",
		logger.Int("rows", run.Rows),
		logger.Int64("bytes", run.Bytes),
		logger.Duration("duration", run.Duration))

	if store != nil {
		if err := store.Record(run); err != nil {
			log.Warn("failed to record run", logger.Err(err))
		}
	}

	return run, nil
}

func printRuns(w io.Writer, store runlog.Store) error {
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return nil
	}

	fmt.Fprintf(w, "%-36s %-19s %-20s %8s %s\n", "RUN ID", "STARTED", "SEED", "ROWS", "OUTPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%-36s %-19s %-20d %8d %s\n",
			run.ID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Rows,
			run.Output)
	}
	return nil
}

func realMain(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "hitgen: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Config{Level: opts.cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(stderr, "hitgen: %v\n", err)
		return 1
	}
	defer log.Sync()

	store, err := openRunLog(opts.cfg.RunLog)
	if err != nil {
		log.Error("failed to open run log", logger.String("path", opts.cfg.RunLog), logger.Err(err))
		return 1
	}
	if store != nil {
		defer store.Close()
	}

	if opts.listRuns {
		if err := printRuns(stdout, store); err != nil {
			log.Error("failed to list runs", logger.Err(err))
			return 1
		}
		return 0
	}

	if _, err := generate(opts.cfg, time.Now(), log, store); err != nil {
		log.Error("generation failed", logger.Err(err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}
