package api

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/sarchlab/ippcode/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	out         io.Writer
	diag        io.Writer
	input       core.Input
	logger      *slog.Logger
	breakTables bool
}

// MakeBuilder creates a builder with discarded streams and table BREAK
// dumps.
func MakeBuilder() DriverBuilder {
	return DriverBuilder{
		out:         io.Discard,
		diag:        io.Discard,
		breakTables: true,
	}
}

// WithOutput sets the standard output of the program.
func (b DriverBuilder) WithOutput(w io.Writer) DriverBuilder {
	b.out = w
	return b
}

// WithDiagnostics sets the stream for DPRINT, BREAK and error messages.
func (b DriverBuilder) WithDiagnostics(w io.Writer) DriverBuilder {
	b.diag = w
	return b
}

// WithInput sets the stream READ consumes.
func (b DriverBuilder) WithInput(in core.Input) DriverBuilder {
	b.input = in
	return b
}

// WithLogger sets the logger.
func (b DriverBuilder) WithLogger(logger *slog.Logger) DriverBuilder {
	b.logger = logger
	return b
}

// WithBreakTables selects table rendering for BREAK.
func (b DriverBuilder) WithBreakTables(enabled bool) DriverBuilder {
	b.breakTables = enabled
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	out := bufio.NewWriter(b.out)

	m := core.NewBuilder().
		WithOutput(out).
		WithDiagnostics(b.diag).
		WithInput(b.input).
		WithLogger(b.logger).
		WithBreakTables(b.breakTables).
		Build(name + ".Machine")

	return newDriver(name, m, out, b.diag, b.logger)
}
