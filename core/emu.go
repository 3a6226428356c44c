package core

type instFunc func(instEmulator, Inst, *machineState) error

var instFuncs = [numOpcodes]instFunc{
	OpMove:        instEmulator.runMove,
	OpCreateFrame: instEmulator.runCreateFrame,
	OpPushFrame:   instEmulator.runPushFrame,
	OpPopFrame:    instEmulator.runPopFrame,
	OpDefVar:      instEmulator.runDefVar,
	OpCall:        instEmulator.runCall,
	OpReturn:      instEmulator.runReturn,
	OpPushS:       instEmulator.runPushS,
	OpPopS:        instEmulator.runPopS,
	OpAdd:         instEmulator.runArith,
	OpSub:         instEmulator.runArith,
	OpMul:         instEmulator.runArith,
	OpIDiv:        instEmulator.runArith,
	OpLT:          instEmulator.runRelational,
	OpGT:          instEmulator.runRelational,
	OpEQ:          instEmulator.runRelational,
	OpAnd:         instEmulator.runLogic,
	OpOr:          instEmulator.runLogic,
	OpNot:         instEmulator.runNot,
	OpInt2Char:    instEmulator.runInt2Char,
	OpStri2Int:    instEmulator.runStri2Int,
	OpRead:        instEmulator.runRead,
	OpWrite:       instEmulator.runWrite,
	OpConcat:      instEmulator.runConcat,
	OpStrLen:      instEmulator.runStrLen,
	OpGetChar:     instEmulator.runGetChar,
	OpSetChar:     instEmulator.runSetChar,
	OpType:        instEmulator.runType,
	OpLabel:       instEmulator.runLabel,
	OpJump:        instEmulator.runJump,
	OpJumpIfEQ:    instEmulator.runJumpIf,
	OpJumpIfNEQ:   instEmulator.runJumpIf,
	OpExit:        instEmulator.runExit,
	OpDPrint:      instEmulator.runDPrint,
	OpBreak:       instEmulator.runBreak,
}

type instEmulator struct {
}

// RunInst executes one instruction. Every handler advances state.PC,
// either to the next instruction or to a jump target.
func (i instEmulator) RunInst(inst Inst, state *machineState) error {
	if inst.Op >= numOpcodes || instFuncs[inst.Op] == nil {
		return Errorf(InternalError, "no handler for opcode %s", inst.Op)
	}

	return instFuncs[inst.Op](i, inst, state)
}

// readOperand resolves a symbol argument to its value.
func (i instEmulator) readOperand(arg Arg, state *machineState) (Value, error) {
	switch arg.Kind {
	case ArgConst:
		return arg.Const, nil
	case ArgVar:
		return state.Frames.Read(arg.Var)
	default:
		return Value{}, Errorf(InternalError, "argument %s is not a symbol", arg)
	}
}

func (i instEmulator) readOperands(a, b Arg, state *machineState) (Value, Value, error) {
	v1, err := i.readOperand(a, state)
	if err != nil {
		return Value{}, Value{}, err
	}

	v2, err := i.readOperand(b, state)
	if err != nil {
		return Value{}, Value{}, err
	}

	return v1, v2, nil
}

// target returns the slot of a declared destination variable. It is
// looked up before the sources so that a bad destination is reported
// first.
func (i instEmulator) target(arg Arg, state *machineState) (*Value, error) {
	if arg.Kind != ArgVar {
		return nil, Errorf(InternalError, "argument %s is not a variable", arg)
	}
	return state.Frames.lookup(arg.Var)
}

func (i instEmulator) jump(label string, state *machineState) error {
	idx, err := state.Labels.Resolve(label)
	if err != nil {
		return err
	}

	state.PC = idx

	return nil
}

func (i instEmulator) runMove(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	val, err := i.readOperand(inst.Args[1], state)
	if err != nil {
		return err
	}

	*dst = val
	state.PC++

	return nil
}

func (i instEmulator) runCreateFrame(_ Inst, state *machineState) error {
	state.Frames.CreateFrame()
	state.PC++

	return nil
}

func (i instEmulator) runPushFrame(_ Inst, state *machineState) error {
	if err := state.Frames.PushFrame(); err != nil {
		return err
	}

	state.PC++

	return nil
}

func (i instEmulator) runPopFrame(_ Inst, state *machineState) error {
	if err := state.Frames.PopFrame(); err != nil {
		return err
	}

	state.PC++

	return nil
}

func (i instEmulator) runDefVar(inst Inst, state *machineState) error {
	if err := state.Frames.Declare(inst.Args[0].Var); err != nil {
		return err
	}

	state.PC++

	return nil
}

func (i instEmulator) runLabel(_ Inst, state *machineState) error {
	state.PC++

	return nil
}

func (i instEmulator) runJump(inst Inst, state *machineState) error {
	return i.jump(inst.Args[0].Label, state)
}

// runJumpIf handles JUMPIFEQ and JUMPIFNEQ. The label is resolved before
// the operands are compared.
func (i instEmulator) runJumpIf(inst Inst, state *machineState) error {
	if _, err := state.Labels.Resolve(inst.Args[0].Label); err != nil {
		return err
	}

	v1, v2, err := i.readOperands(inst.Args[1], inst.Args[2], state)
	if err != nil {
		return err
	}

	eq, err := v1.Equal(v2)
	if err != nil {
		return err
	}

	if eq == (inst.Op == OpJumpIfEQ) {
		return i.jump(inst.Args[0].Label, state)
	}

	state.PC++

	return nil
}

func (i instEmulator) runCall(inst Inst, state *machineState) error {
	ret := state.PC + 1

	if err := i.jump(inst.Args[0].Label, state); err != nil {
		return err
	}

	state.CallStack = append(state.CallStack, ret)

	return nil
}

func (i instEmulator) runReturn(_ Inst, state *machineState) error {
	if len(state.CallStack) == 0 {
		return Errorf(ValueError, "call stack is empty")
	}

	last := len(state.CallStack) - 1
	state.PC = state.CallStack[last]
	state.CallStack = state.CallStack[:last]

	return nil
}

func (i instEmulator) runPushS(inst Inst, state *machineState) error {
	val, err := i.readOperand(inst.Args[0], state)
	if err != nil {
		return err
	}

	state.DataStack = append(state.DataStack, val)
	state.PC++

	return nil
}

func (i instEmulator) runPopS(inst Inst, state *machineState) error {
	if len(state.DataStack) == 0 {
		return Errorf(ValueError, "data stack is empty")
	}

	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	last := len(state.DataStack) - 1
	*dst = state.DataStack[last]
	state.DataStack = state.DataStack[:last]
	state.PC++

	return nil
}
