package core

// runArith handles ADD, SUB, MUL and IDIV on two integers.
func (i instEmulator) runArith(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v1, v2, err := i.readOperands(inst.Args[1], inst.Args[2], state)
	if err != nil {
		return err
	}

	if v1.Kind() != KindInt || v2.Kind() != KindInt {
		return Errorf(OperandTypeError, "%s expects int operands, got %s and %s",
			inst.Op, v1.TypeName(), v2.TypeName())
	}

	a, b := v1.AsInt(), v2.AsInt()

	var res int64
	switch inst.Op {
	case OpAdd:
		res = a + b
	case OpSub:
		res = a - b
	case OpMul:
		res = a * b
	case OpIDiv:
		if b == 0 {
			return Errorf(OperandValueError, "division by zero")
		}
		res = a / b
	}

	*dst = Int(res)
	state.PC++

	return nil
}

// runRelational handles LT, GT and EQ. Only EQ accepts a nil operand.
func (i instEmulator) runRelational(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v1, v2, err := i.readOperands(inst.Args[1], inst.Args[2], state)
	if err != nil {
		return err
	}

	var res bool
	if inst.Op == OpEQ {
		res, err = v1.Equal(v2)
	} else {
		var cmp int
		cmp, err = Compare(v1, v2)
		res = (inst.Op == OpLT && cmp < 0) || (inst.Op == OpGT && cmp > 0)
	}
	if err != nil {
		return err
	}

	*dst = Bool(res)
	state.PC++

	return nil
}

// runLogic handles AND and OR.
func (i instEmulator) runLogic(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v1, v2, err := i.readOperands(inst.Args[1], inst.Args[2], state)
	if err != nil {
		return err
	}

	if v1.Kind() != KindBool || v2.Kind() != KindBool {
		return Errorf(OperandTypeError, "%s expects bool operands, got %s and %s",
			inst.Op, v1.TypeName(), v2.TypeName())
	}

	if inst.Op == OpAnd {
		*dst = Bool(v1.AsBool() && v2.AsBool())
	} else {
		*dst = Bool(v1.AsBool() || v2.AsBool())
	}
	state.PC++

	return nil
}

func (i instEmulator) runNot(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v, err := i.readOperand(inst.Args[1], state)
	if err != nil {
		return err
	}

	if v.Kind() != KindBool {
		return Errorf(OperandTypeError, "NOT expects a bool operand, got %s", v.TypeName())
	}

	*dst = Bool(!v.AsBool())
	state.PC++

	return nil
}
