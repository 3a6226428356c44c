package core

import (
	"io"
	"log/slog"
)

// Builder can create new machines.
type Builder struct {
	out         io.Writer
	diag        io.Writer
	input       Input
	logger      *slog.Logger
	breakTables bool
}

// NewBuilder creates a builder that discards output and renders BREAK
// dumps as tables.
func NewBuilder() Builder {
	return Builder{
		out:         io.Discard,
		diag:        io.Discard,
		breakTables: true,
	}
}

// WithOutput sets the stream WRITE prints to.
func (b Builder) WithOutput(w io.Writer) Builder {
	b.out = w
	return b
}

// WithDiagnostics sets the stream DPRINT and BREAK print to.
func (b Builder) WithDiagnostics(w io.Writer) Builder {
	b.diag = w
	return b
}

// WithInput sets the source READ pulls values from.
func (b Builder) WithInput(in Input) Builder {
	b.input = in
	return b
}

// WithLogger sets the logger that receives trace records.
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

// WithBreakTables selects table rendering for BREAK dumps.
func (b Builder) WithBreakTables(enabled bool) Builder {
	b.breakTables = enabled
	return b
}

// Build creates a machine.
func (b Builder) Build(name string) *Machine {
	m := &Machine{
		name:   name,
		logger: b.logger,
	}

	if m.logger == nil {
		m.logger = slog.Default()
	}

	m.state = machineState{
		Frames:      NewFrameStore(),
		Out:         b.out,
		Diag:        b.diag,
		In:          b.input,
		BreakTables: b.breakTables,
		Log:         m.logger,
	}

	return m
}
