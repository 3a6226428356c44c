// Command ippinterp interprets an IPPcode24 program given in its XML or
// YAML representation.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/ippcode/api"
	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/program"
)

func main() {
	atexit.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.ParseArgs(args, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return int(core.CodeOf(err))
	}

	if cfg.Help {
		return 0
	}

	setupLogging(cfg)

	format, _ := program.ParseFormat(cfg.Format)
	if format == program.FormatAuto {
		format = program.FormatForPath(cfg.Source)
	}

	source, err := open(cfg.Source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return int(core.InputFileError)
	}
	atexit.Register(func() { source.Close() })

	if cfg.Lint {
		return lint(cfg, source, format)
	}

	input, err := open(cfg.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return int(core.InputFileError)
	}
	atexit.Register(func() { input.Close() })

	driver := api.MakeBuilder().
		WithOutput(os.Stdout).
		WithDiagnostics(os.Stderr).
		WithInput(core.NewLineInput(input)).
		WithLogger(slog.Default()).
		WithBreakTables(cfg.BreakTables).
		Build("Interp")

	slog.Debug("Start", "run", driver.RunID(), "config", cfg.String())

	// A load error is reported again, with its code, by Run.
	_ = driver.LoadProgram(source, format)

	return driver.Run()
}

func lint(cfg config.Config, source io.Reader, format program.Format) int {
	driver := api.MakeBuilder().
		WithDiagnostics(os.Stderr).
		WithLogger(slog.Default()).
		Build("Lint")

	name := cfg.Source
	if name == "" {
		name = "<stdin>"
	}

	report, err := driver.Lint(name, source, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return int(core.CodeOf(err))
	}

	report.WriteReport(os.Stdout)

	return int(report.ExitCode())
}

func setupLogging(cfg config.Config) {
	level, _ := config.ParseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// open returns the named file, or standard input when name is empty.
func open(name string) (io.ReadCloser, error) {
	if name == "" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", name, err)
	}

	return f, nil
}
