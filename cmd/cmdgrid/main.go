package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cmdgrid/cmdgrid/engine"
	"github.com/cmdgrid/cmdgrid/internal/cli"
	"github.com/cmdgrid/cmdgrid/internal/ctxlog"
	"github.com/cmdgrid/cmdgrid/manifest"
	"github.com/cmdgrid/cmdgrid/usage"
)

// main is the entrypoint for the cmdgrid binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	ctx := context.Background()

	cfg, shouldExit, err := cli.Parse(ctx, args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	tree, err := manifest.Load(ctx, cfg.ManifestPath)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	outcome, err := engine.Parse(ctx, tree, cfg.Argv)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	switch outcome.Status {
	case engine.StatusHelp:
		usage.Write(outW, outcome.Origin)
	case engine.StatusVersion:
		usage.WriteVersion(outW, outcome.Origin)
	default:
		printResult(outW, outcome.Result, "")
	}
	return nil
}
