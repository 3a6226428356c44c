package core

import "unicode/utf8"

func (i instEmulator) runConcat(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v1, v2, err := i.readOperands(inst.Args[1], inst.Args[2], state)
	if err != nil {
		return err
	}

	if v1.Kind() != KindString || v2.Kind() != KindString {
		return Errorf(OperandTypeError, "CONCAT expects string operands, got %s and %s",
			v1.TypeName(), v2.TypeName())
	}

	*dst = Str(v1.AsString() + v2.AsString())
	state.PC++

	return nil
}

func (i instEmulator) runStrLen(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v, err := i.readOperand(inst.Args[1], state)
	if err != nil {
		return err
	}

	if v.Kind() != KindString {
		return Errorf(OperandTypeError, "STRLEN expects a string operand, got %s", v.TypeName())
	}

	*dst = Int(int64(v.Len()))
	state.PC++

	return nil
}

// indexString checks a string/index operand pair and returns the runes
// of the string and the index.
func (i instEmulator) indexString(op Opcode, s, idx Value) ([]rune, int, error) {
	if s.Kind() != KindString || idx.Kind() != KindInt {
		return nil, 0, Errorf(OperandTypeError, "%s expects string and int operands, got %s and %s",
			op, s.TypeName(), idx.TypeName())
	}

	runes := []rune(s.AsString())
	n := idx.AsInt()
	if n < 0 || n >= int64(len(runes)) {
		return nil, 0, Errorf(StringOperationError, "index %d out of range [0, %d)", n, len(runes))
	}

	return runes, int(n), nil
}

func (i instEmulator) runGetChar(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v1, v2, err := i.readOperands(inst.Args[1], inst.Args[2], state)
	if err != nil {
		return err
	}

	runes, idx, err := i.indexString(inst.Op, v1, v2)
	if err != nil {
		return err
	}

	*dst = Str(string(runes[idx]))
	state.PC++

	return nil
}

func (i instEmulator) runStri2Int(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v1, v2, err := i.readOperands(inst.Args[1], inst.Args[2], state)
	if err != nil {
		return err
	}

	runes, idx, err := i.indexString(inst.Op, v1, v2)
	if err != nil {
		return err
	}

	*dst = Int(int64(runes[idx]))
	state.PC++

	return nil
}

// runSetChar replaces one character of the string held by the target
// variable with the first character of the replacement.
func (i instEmulator) runSetChar(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	idx, repl, err := i.readOperands(inst.Args[1], inst.Args[2], state)
	if err != nil {
		return err
	}

	if idx.Kind() != KindInt || repl.Kind() != KindString {
		return Errorf(OperandTypeError, "SETCHAR expects int and string operands, got %s and %s",
			idx.TypeName(), repl.TypeName())
	}

	if !dst.IsDefined() {
		return Errorf(ValueError, "variable %s is not initialized", inst.Args[0].Var)
	}
	if dst.Kind() != KindString {
		return Errorf(OperandTypeError, "SETCHAR target holds %s, not string", dst.TypeName())
	}

	runes := []rune(dst.AsString())
	n := idx.AsInt()
	if n < 0 || n >= int64(len(runes)) {
		return Errorf(StringOperationError, "index %d out of range [0, %d)", n, len(runes))
	}

	r, size := utf8.DecodeRuneInString(repl.AsString())
	if size == 0 {
		return Errorf(StringOperationError, "SETCHAR replacement is empty")
	}

	runes[n] = r
	*dst = Str(string(runes))
	state.PC++

	return nil
}

func (i instEmulator) runInt2Char(inst Inst, state *machineState) error {
	dst, err := i.target(inst.Args[0], state)
	if err != nil {
		return err
	}

	v, err := i.readOperand(inst.Args[1], state)
	if err != nil {
		return err
	}

	if v.Kind() != KindInt {
		return Errorf(OperandTypeError, "INT2CHAR expects an int operand, got %s", v.TypeName())
	}

	code := v.AsInt()
	if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
		return Errorf(StringOperationError, "%d is not a valid code point", code)
	}

	*dst = Str(string(rune(code)))
	state.PC++

	return nil
}
