package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cmdgrid/cmdgrid/command"
	"github.com/cmdgrid/cmdgrid/engine"
	"github.com/cmdgrid/cmdgrid/usage"
)

// Version is the binary's version string, answered by --version.
const Version = "0.1.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the validated configuration the binary runs with.
type Config struct {
	ManifestPath string
	LogFormat    string
	LogLevel     string

	// Argv is the token vector handed to the loaded command tree. Its first
	// token is the target command's name.
	Argv []string
}

// NewConfig validates a raw configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if len(cfg.Argv) == 0 {
		return nil, errors.New("Argv must carry at least the target command name")
	}
	return &cfg, nil
}

// toolCommand declares the binary's own interface with the library it ships.
func toolCommand() *command.Command {
	manifestDefault := "command.hcl"
	levelDefault := "info"
	formatDefault := "text"

	tool := command.New("cmdgrid", "Parse a token vector against a declarative command manifest.", Version)

	// The builder only fails on invariant violations, which here would be a
	// programming error in this function.
	must := func(err error) {
		if err != nil {
			panic(fmt.Sprintf("cli: building tool command: %v", err))
		}
	}
	must(tool.AddOption(command.OptionSpec{
		Name: "--manifest", Short: 'm', Default: &manifestDefault,
		Help: "path to the command manifest",
	}))
	must(tool.AddOption(command.OptionSpec{
		Name: "--log-level", Default: &levelDefault,
		Help: "logging level: 'debug', 'info', 'warn' or 'error'",
	}))
	must(tool.AddOption(command.OptionSpec{
		Name: "--log-format", Default: &formatDefault,
		Help: "log output format: 'text' or 'json'",
	}))
	must(tool.AddPositional(command.PositionalSpec{
		Name: "argv", Multiple: true,
		Help: "token vector to parse, starting with the target command name",
	}))

	return tool
}

// Parse processes the binary's arguments. It returns a validated Config, a
// boolean indicating the program should exit cleanly (help, version, or no
// input), or an ExitError.
func Parse(ctx context.Context, args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")

	tool := toolCommand()
	argv := append([]string{tool.Name()}, args...)

	outcome, err := engine.Parse(ctx, tool, argv)
	if err != nil {
		var parseErr *engine.Error
		if errors.As(err, &parseErr) && parseErr.Kind == engine.MissingPositional {
			// Invoked without a token vector: print usage and exit cleanly.
			usage.Write(output, tool)
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	switch outcome.Status {
	case engine.StatusHelp:
		usage.Write(output, outcome.Origin)
		return nil, true, nil
	case engine.StatusVersion:
		usage.WriteVersion(output, outcome.Origin)
		return nil, true, nil
	}
	res := outcome.Result
	slog.Debug("Arguments parsed successfully.")

	manifestPath, err := res.ValueOf("--manifest")
	if err != nil {
		return nil, false, err
	}
	levelPtr, err := res.ValueOf("--log-level")
	if err != nil {
		return nil, false, err
	}
	formatPtr, err := res.ValueOf("--log-format")
	if err != nil {
		return nil, false, err
	}
	argvTokens, err := res.ValuesOf("argv")
	if err != nil {
		return nil, false, err
	}

	logFormat := strings.ToLower(*formatPtr)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*levelPtr)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := NewConfig(Config{
		ManifestPath: *manifestPath,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Argv:         argvTokens,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "manifest", config.ManifestPath)
	return config, false, nil
}
