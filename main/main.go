// Command strbufprof runs each strbuf operation in a loop and reports how many
// allocations and nanoseconds it costs, optionally writing a heap profile or
// serving pprof while it runs.
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var Version = "dev"

func main() {
	app := &cli.App{
		Name:    "strbufprof",
		Usage:   "measure allocations and latency of bounded string buffer operations",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "iterations",
				Aliases: []string{"n"},
				Value:   10000,
				Usage:   "number of runs per operation",
			},
			&cli.StringFlag{
				Name:  "memprofile",
				Usage: "write a heap profile to `FILE` after the runs",
			},
			&cli.StringFlag{
				Name:  "pprof",
				Usage: "serve net/http/pprof on `ADDR` and wait for an interrupt",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "zerolog level (trace, debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit JSON log lines instead of console output",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "strbufprof: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string, json bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	var logger zerolog.Logger
	if json {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return logger.Level(lvl).With().Timestamp().Logger(), nil
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.String("log-level"), c.Bool("json"))
	if err != nil {
		return err
	}
	iterations := c.Int("iterations")
	if iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	addr := c.String("pprof")
	if addr != "" {
		go func() {
			logger.Info().Str("addr", addr).Msg("serving pprof")
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Error().Err(err).Msg("pprof server stopped")
			}
		}()
	}
	memprofile := c.String("memprofile")
	if memprofile != "" {
		runtime.MemProfileRate = 1
	}

	for _, o := range operations() {
		r := measure(o.fn, iterations)
		level := zerolog.InfoLevel
		if r.allocs > o.budget {
			level = zerolog.WarnLevel
		}
		logger.WithLevel(level).
			Str("op", o.name).
			Float64("budget", o.budget).
			Int("runs", iterations).
			Float64("allocs_per_op", r.allocs).
			Int64("ns_per_op", r.nsPerOp).
			Msg("measured")
	}

	if memprofile != "" {
		if err := writeHeapProfile(memprofile); err != nil {
			return err
		}
		logger.Info().Str("file", memprofile).Msg("heap profile written")
	}

	if addr != "" {
		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()
		logger.Info().Msg("waiting for interrupt")
		<-ctx.Done()
	}
	return nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
