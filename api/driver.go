// Package api defines the driver API that loads, checks and runs an
// IPPcode24 program.
package api

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/program"
	"github.com/sarchlab/ippcode/verify"
)

// Driver provides the interface to control an interpreter run.
type Driver interface {
	// LoadProgram reads, validates and maps a program. A failure is also
	// remembered and reported by Run.
	LoadProgram(r io.Reader, format program.Format) error

	// Lint reads a program and returns its verification report without
	// mapping it.
	Lint(name string, r io.Reader, format program.Format) (*verify.VerificationReport, error)

	// Run executes the loaded program and returns the process exit code.
	// Diagnostics for load errors and traps go to the diagnostic stream.
	Run() int

	// RunID identifies this run in log records.
	RunID() string
}

// machine is the part of core.Machine the driver uses.
type machine interface {
	MapProgram(prog core.Program) error
	Run() (int, error)
	Executed() int
}

type driverImpl struct {
	name    string
	runID   string
	logger  *slog.Logger
	machine machine

	out  *bufio.Writer
	diag io.Writer

	loaded  bool
	loadErr error
}

func newDriver(name string, m machine, out *bufio.Writer, diag io.Writer, logger *slog.Logger) *driverImpl {
	d := &driverImpl{
		name:    name,
		runID:   uuid.New().String(),
		machine: m,
		out:     out,
		diag:    diag,
	}

	if logger == nil {
		logger = slog.Default()
	}
	d.logger = logger.With("run", d.runID)

	return d
}

func (d *driverImpl) RunID() string {
	return d.runID
}

func (d *driverImpl) LoadProgram(r io.Reader, format program.Format) error {
	d.loaded = true
	d.loadErr = d.load(r, format)

	if d.loadErr != nil {
		d.logger.Debug("LoadFailed", "Driver", d.name, "Error", d.loadErr.Error())
	}

	return d.loadErr
}

func (d *driverImpl) load(r io.Reader, format program.Format) error {
	insts, err := program.Load(r, format)
	if err != nil {
		return err
	}

	prog, err := verify.Validate(insts)
	if err != nil {
		return err
	}

	if err := d.machine.MapProgram(prog); err != nil {
		return err
	}

	d.logger.Info("ProgramLoaded",
		"Driver", d.name,
		"Instructions", len(prog),
	)

	return nil
}

func (d *driverImpl) Lint(name string, r io.Reader, format program.Format) (*verify.VerificationReport, error) {
	insts, err := program.Load(r, format)
	if err != nil {
		return nil, err
	}

	report := verify.GenerateReport(name, insts)
	d.logger.Info("Lint",
		"Driver", d.name,
		"Issues", len(report.LintIssues),
		"ExitCode", int(report.ExitCode()),
	)

	return report, nil
}

func (d *driverImpl) Run() int {
	defer d.flush()

	if !d.loaded {
		return d.fail(core.Errorf(core.InternalError, "no program loaded"))
	}

	if d.loadErr != nil {
		return d.fail(d.loadErr)
	}

	code, err := d.machine.Run()
	if err != nil {
		return d.fail(err)
	}

	d.logger.Info("RunFinished",
		"Driver", d.name,
		"Executed", d.machine.Executed(),
		"ExitCode", code,
	)

	return code
}

// fail reports err on the diagnostic stream and returns its exit code.
// Output written before the failure is still flushed.
func (d *driverImpl) fail(err error) int {
	code := core.CodeOf(err)

	d.flush()
	fmt.Fprintf(d.diag, "ERROR: %v\n", err)

	d.logger.Warn("RunFailed",
		"Driver", d.name,
		"Code", int(code),
		"Error", err.Error(),
	)

	return int(code)
}

func (d *driverImpl) flush() {
	if err := d.out.Flush(); err != nil {
		d.logger.Error("FlushFailed", "Driver", d.name, "Error", err.Error())
	}
}
