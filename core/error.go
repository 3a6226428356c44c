package core

import (
	"errors"
	"fmt"
)

// ReturnCode is the process exit status that classifies how a run ended.
type ReturnCode int

// List of return codes.
const (
	OK                     ReturnCode = 0
	ParameterError         ReturnCode = 10
	InputFileError         ReturnCode = 11
	InvalidSourceFormat    ReturnCode = 31
	InvalidSourceStructure ReturnCode = 32
	SemanticError          ReturnCode = 52
	OperandTypeError       ReturnCode = 53
	VariableAccessError    ReturnCode = 54
	FrameAccessError       ReturnCode = 55
	ValueError             ReturnCode = 56
	OperandValueError      ReturnCode = 57
	StringOperationError   ReturnCode = 58
	InternalError          ReturnCode = 99
)

var strReturnCode = map[ReturnCode]string{
	OK:                     "ok",
	ParameterError:         "invalid parameters",
	InputFileError:         "cannot open input file",
	InvalidSourceFormat:    "invalid source format",
	InvalidSourceStructure: "invalid source structure",
	SemanticError:          "semantic error",
	OperandTypeError:       "wrong operand type",
	VariableAccessError:    "undeclared variable",
	FrameAccessError:       "frame does not exist",
	ValueError:             "missing value",
	OperandValueError:      "wrong operand value",
	StringOperationError:   "invalid string operation",
	InternalError:          "internal error",
}

func (c ReturnCode) String() string {
	if s, ok := strReturnCode[c]; ok {
		return s
	}
	return fmt.Sprintf("return code %d", int(c))
}

// Error describes a classified failure and, when raised by the machine,
// the instruction that raised it.
type Error struct {
	Code  ReturnCode
	Msg   string
	PC    int    // program counter at the trap, -1 outside execution
	Order int    // order of the trapping instruction, 0 if unknown
	Op    Opcode // opcode of the trapping instruction
}

func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Order > 0 {
		msg += fmt.Sprintf(" (%s, order %d)", e.Op, e.Order)
	}
	return msg
}

// Errorf creates an Error with the given code and a formatted message.
func Errorf(code ReturnCode, format string, args ...any) *Error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
		PC:   -1,
	}
}

// CodeOf maps an error to the return code the process should exit with.
// Unclassified errors map to InternalError.
func CodeOf(err error) ReturnCode {
	if err == nil {
		return OK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return InternalError
}

// trapAt attaches the instruction context to an error raised while
// executing inst.
func trapAt(err error, pc int, inst Inst) error {
	var e *Error
	if !errors.As(err, &e) {
		return &Error{
			Code:  InternalError,
			Msg:   err.Error(),
			PC:    pc,
			Order: inst.Order,
			Op:    inst.Op,
		}
	}

	if e.Order == 0 {
		e.PC = pc
		e.Order = inst.Order
		e.Op = inst.Op
	}

	return e
}
