package core

import (
	"fmt"
	"io"
	"strings"
)

// writeEscapes are the escape sequences WRITE expands in its output.
var writeEscapes = strings.NewReplacer(`\032`, " ", `\010`, "\n")

func (i instEmulator) runRead(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	*dst = readValue(state.In, inst.Args[1].Type)
	state.PC++

	return nil
}

func (i instEmulator) runWrite(inst Inst, state *machineState) error {
	v, err := i.readOperand(inst.Args[0], state)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(state.Out, writeEscapes.Replace(v.String())); err != nil {
		return Errorf(InternalError, "write failed: %v", err)
	}

	state.PC++

	return nil
}

func (i instEmulator) runDPrint(inst Inst, state *machineState) error {
	v, err := i.readOperand(inst.Args[0], state)
	if err != nil {
		return err
	}

	fmt.Fprintln(state.Diag, v.String())
	state.PC++

	return nil
}

func (i instEmulator) runExit(inst Inst, state *machineState) error {
	v, err := i.readOperand(inst.Args[0], state)
	if err != nil {
		return err
	}

	if v.Kind() != KindInt {
		return Errorf(OperandTypeError, "EXIT expects an int operand, got %s", v.TypeName())
	}

	code := v.AsInt()
	if code < 0 || code > 9 {
		return Errorf(OperandValueError, "exit code %d out of range [0, 9]", code)
	}

	state.Halted = true
	state.ExitCode = int(code)
	state.PC++

	return nil
}

// runType stores the type name of its source. A source that cannot be
// resolved yields an empty string rather than an error.
func (i instEmulator) runType(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	name := ""
	src := inst.Args[1]
	switch src.Kind {
	case ArgConst:
		name = src.Const.TypeName()
	case ArgVar:
		if slot, err := state.Frames.lookup(src.Var); err == nil {
			name = slot.TypeName()
		}
	}

	*dst = Str(name)
	state.PC++

	return nil
}

func (i instEmulator) runBreak(_ Inst, state *machineState) error {
	logState(state.Log, state)
	printState(state.Diag, state)
	state.PC++

	return nil
}
