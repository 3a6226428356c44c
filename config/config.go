// Package config gathers the interpreter settings from defaults, an
// optional TOML file and the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/program"
)

// Config holds the settings of one interpreter run. Empty Source or Input
// means standard input.
type Config struct {
	Source      string `toml:"source"`
	Input       string `toml:"input"`
	Format      string `toml:"format"`
	LogLevel    string `toml:"log-level"`
	LogFormat   string `toml:"log-format"`
	BreakTables bool   `toml:"break-tables"`
	Lint        bool   `toml:"lint"`

	// Help is set when the command line asked for usage only.
	Help bool `toml:"-"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Format:      string(program.FormatAuto),
		LogLevel:    "warn",
		LogFormat:   "text",
		BreakTables: true,
	}
}

// LoadFile overlays the settings found in a TOML file on cfg.
func LoadFile(path string, cfg Config) (Config, error) {
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, core.Errorf(core.InputFileError, "cannot load config %s: %v", path, err)
	}
	return cfg, nil
}

// ParseArgs builds a Config from command-line arguments, without the
// program name. Flags override values from the --config file.
func ParseArgs(args []string, usage io.Writer) (Config, error) {
	fs := flag.NewFlagSet("ippinterp", flag.ContinueOnError)
	fs.SetOutput(usage)

	def := Default()
	var (
		configPath  = fs.String("config", "", "TOML file with default settings")
		source      = fs.String("source", def.Source, "program file (XML or YAML), stdin if empty")
		input       = fs.String("input", def.Input, "file read by READ, stdin if empty")
		format      = fs.String("format", def.Format, "program format: xml, yaml or auto")
		logLevel    = fs.String("log-level", def.LogLevel, "trace, debug, info, warn or error")
		logFormat   = fs.String("log-format", def.LogFormat, "text or json")
		breakTables = fs.Bool("break-tables", def.BreakTables, "render BREAK state as tables")
		lint        = fs.Bool("lint", def.Lint, "print a verification report instead of running")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if len(args) > 1 {
				return def, core.Errorf(core.ParameterError, "--help cannot be combined with other parameters")
			}
			return Config{Help: true}, nil
		}
		return def, core.Errorf(core.ParameterError, "%v", err)
	}

	if fs.NArg() > 0 {
		return def, core.Errorf(core.ParameterError, "unexpected arguments %v", fs.Args())
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = LoadFile(*configPath, cfg); err != nil {
			return def, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = *source
		case "input":
			cfg.Input = *input
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "break-tables":
			cfg.BreakTables = *breakTables
		case "lint":
			cfg.Lint = *lint
		}
	})

	if err := cfg.Validate(); err != nil {
		return def, err
	}

	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Source == "" && c.Input == "" {
		return core.Errorf(core.ParameterError, "at least one of --source and --input is required")
	}

	if _, err := program.ParseFormat(c.Format); err != nil {
		return err
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return core.Errorf(core.ParameterError, "unknown log format %q", c.LogFormat)
	}

	return nil
}

// ParseLevel maps a level name to a slog level. "trace" is
// core.LevelTrace.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, core.Errorf(core.ParameterError, "unknown log level %q", name)
	}
}

func (c Config) String() string {
	return fmt.Sprintf("source=%q input=%q format=%s log=%s/%s", c.Source, c.Input,
		c.Format, c.LogLevel, c.LogFormat)
}
