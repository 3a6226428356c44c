// Package core implements the IPPcode24 machine: values, frames, the
// label table and the instruction emulator.
package core

import (
	"context"
	"io"
	"log/slog"
)

type machineState struct {
	PC       int
	Code     Program
	Labels   LabelTable
	Executed int

	Frames    *FrameStore
	CallStack []int
	DataStack []Value

	Halted   bool
	ExitCode int

	Out         io.Writer
	Diag        io.Writer
	In          Input
	BreakTables bool
	Log         *slog.Logger
}

// Machine executes one validated program. A machine is not reusable
// across runs; build a new one for each program.
type Machine struct {
	name   string
	logger *slog.Logger

	state machineState
	emu   instEmulator
}

// Name returns the name given to the builder.
func (m *Machine) Name() string {
	return m.name
}

// PC returns the index of the next instruction to execute.
func (m *Machine) PC() int {
	return m.state.PC
}

// Executed returns the number of instructions executed so far.
func (m *Machine) Executed() int {
	return m.state.Executed
}

// Frames exposes the variable frames of the machine.
func (m *Machine) Frames() *FrameStore {
	return m.state.Frames
}

// DataStack returns a copy of the data stack, bottom first.
func (m *Machine) DataStack() []Value {
	return append([]Value(nil), m.state.DataStack...)
}

// CallStack returns a copy of the call stack, bottom first.
func (m *Machine) CallStack() []int {
	return append([]int(nil), m.state.CallStack...)
}

// MapProgram sets the program that the machine runs and indexes its
// labels. Duplicate labels are reported here, before anything executes.
func (m *Machine) MapProgram(prog Program) error {
	labels, err := BuildLabelTable(prog)
	if err != nil {
		return err
	}

	m.state.Code = prog
	m.state.Labels = labels
	m.state.PC = 0
	m.state.Executed = 0
	m.state.Halted = false
	m.state.ExitCode = 0

	return nil
}

// Run executes the mapped program until it falls off the end, executes
// EXIT, or traps. It returns the exit status of the program; on a trap
// the status is the error's return code and the error is returned too.
func (m *Machine) Run() (int, error) {
	s := &m.state
	ctx := context.Background()
	tracing := m.logger.Enabled(ctx, LevelTrace)

	for !s.Halted && s.PC >= 0 && s.PC < len(s.Code) {
		pc := s.PC
		inst := s.Code[pc]

		if tracing {
			m.logger.Log(ctx, LevelTrace, "Inst",
				"Machine", m.name,
				"PC", pc,
				"Order", inst.Order,
				"Inst", inst.String(),
			)
		}

		if err := m.emu.RunInst(inst, s); err != nil {
			err = trapAt(err, pc, inst)
			m.logger.Debug("Trap",
				"Machine", m.name,
				"PC", pc,
				"Order", inst.Order,
				"Error", err.Error(),
			)
			return int(CodeOf(err)), err
		}

		s.Executed++
	}

	m.logger.Debug("Halt",
		"Machine", m.name,
		"Executed", s.Executed,
		"ExitCode", s.ExitCode,
	)

	return s.ExitCode, nil
}
