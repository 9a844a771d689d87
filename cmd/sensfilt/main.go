// SPDX-License-Identifier: EPL-2.0

// Command sensfilt applies a left/right impulse-response pair to a mono or
// stereo 16-bit recording and writes the filtered stereo WAV next to it.
//
// Usage:
//
//	sensfilt [flags] <audio-file> [filter-dir left-ir right-ir]
//
// The filter triple may come from the configuration file instead of the
// command line. Exit status is 0 on success, 1 for usage or configuration
// errors, 2 when the input format is rejected and 3 for I/O failures.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/sensfilt"
	"github.com/ik5/sensfilt/audio"
	"github.com/ik5/sensfilt/convolve"
	"github.com/ik5/sensfilt/impulse"
	"github.com/ik5/sensfilt/internal/config"
)

const (
	exitOK       = 0
	exitUsage    = 1
	exitRejected = 2
	exitIO       = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	fs := flag.NewFlagSet("sensfilt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sensfilt [flags] <audio-file> [filter-dir left-ir right-ir]")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "path to a YAML configuration file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	suffix := fs.String("suffix", "", "tag appended to the output file name")
	label := fs.String("label", "", "extra tag appended after the suffix")
	byteOrder := fs.String("byte-order", "", "impulse-response byte order: little, big")
	method := fs.String("method", "", "convolution method: direct, fft, auto")
	overflow := fs.String("overflow", "", "16-bit overflow policy: wrap, saturate")
	parallel := fs.Bool("parallel", true, "convolve left and right concurrently")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	// ── Load configuration ────────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "sensfilt: %v\n", err)
			return exitUsage
		}
	}

	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = config.LogLevel(*logLevel)
		case "suffix":
			cfg.Output.Suffix = *suffix
		case "label":
			cfg.Output.Label = *label
		case "byte-order":
			cfg.Filter.ByteOrder = impulse.ByteOrder(*byteOrder)
		case "method":
			cfg.Convolution.Method = convolve.Method(*method)
		case "overflow":
			cfg.Convolution.Overflow = convolve.Overflow(*overflow)
		case "parallel":
			cfg.Convolution.Parallel = *parallel
		}
	})

	var input string
	switch pos := fs.Args(); len(pos) {
	case 1:
		input = pos[0]
	case 4:
		input = pos[0]
		cfg.Filter.Dir, cfg.Filter.Left, cfg.Filter.Right = pos[1], pos[2], pos[3]
	default:
		fs.Usage()
		return exitUsage
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "sensfilt: %v\n", err)
		return exitUsage
	}
	if cfg.Filter.Left == "" {
		fmt.Fprintln(stderr, "sensfilt: no impulse responses given on the command line or in the config file")
		return exitUsage
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	logger := newLogger(stderr, cfg.LogLevel)

	res, err := sensfilt.FilterFile(input, cfg.Filter.Dir, cfg.Filter.Left, cfg.Filter.Right,
		sensfilt.WithSuffix(cfg.Output.Suffix),
		sensfilt.WithLabel(cfg.Output.Label),
		sensfilt.WithByteOrder(cfg.Filter.ByteOrder),
		sensfilt.WithMethod(cfg.Convolution.Method),
		sensfilt.WithOverflow(cfg.Convolution.Overflow),
		sensfilt.WithParallel(cfg.Convolution.Parallel),
		sensfilt.WithLogger(logger),
	)
	if err != nil {
		logger.Error("filtering failed", "input", input, "err", err)
		return exitCode(err)
	}

	fmt.Fprintln(stderr, "Wrote:", res.Output)
	return exitOK
}

// exitCode maps a pipeline failure to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, audio.ErrUnsupportedEncoding),
		errors.Is(err, audio.ErrUnsupportedChannelLayout):
		return exitRejected
	case errors.Is(err, impulse.ErrRead),
		errors.Is(err, sensfilt.ErrAudioDecode),
		errors.Is(err, sensfilt.ErrAudioEncode):
		return exitIO
	}
	return exitUsage
}

func newLogger(w io.Writer, level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
