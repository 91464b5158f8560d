// SPDX-License-Identifier: EPL-2.0

// Command wdfinfo decodes WDF files and prints their header, blocks and,
// optionally, a summary of every spectrum.
//
// Usage:
//
//	wdfinfo [-format text|yaml|json|msgpack] [-j N] [-spectra] [-v] file...
//
// Files ending in .zst are decompressed before decoding. One document is
// written per file, in argument order. Files that fail to decode are
// logged and make the command exit with status 1.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
)

type config struct {
	format  string
	jobs    int
	spectra bool
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wdfinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wdfinfo [flags] file...")
		fs.PrintDefaults()
	}

	var cfg config
	fs.StringVar(&cfg.format, "format", "text", "output format: text, yaml, json or msgpack")
	fs.IntVar(&cfg.jobs, "j", runtime.NumCPU(), "number of files decoded in parallel")
	fs.BoolVar(&cfg.spectra, "spectra", false, "summarize every spectrum")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug messages")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	if cfg.jobs < 1 {
		cfg.jobs = 1
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	enc, err := newEncoder(cfg.format, stdout)
	if err != nil {
		logger.Error("bad flags", "err", err)
		return 2
	}

	results := decodeAll(ctx, logger, fs.Args(), cfg)

	code := 0
	for _, res := range results {
		if res.err != nil {
			logger.Error("decode failed", "path", res.path, "err", res.err)
			code = 1
			continue
		}
		if err := enc.Encode(res.report); err != nil {
			logger.Error("write failed", "path", res.path, "err", err)
			return 1
		}
	}
	if err := enc.Close(); err != nil {
		logger.Error("write failed", "err", err)
		return 1
	}
	return code
}
