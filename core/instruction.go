package core

import (
	"fmt"
	"strings"
)

// Opcode represents the operation code for an instruction
type Opcode uint8

// The fixed instruction set.
const (
	OpInvalid Opcode = iota

	OpMove
	OpCreateFrame
	OpPushFrame
	OpPopFrame
	OpDefVar
	OpCall
	OpReturn

	OpPushS
	OpPopS

	OpAdd
	OpSub
	OpMul
	OpIDiv
	OpLT
	OpGT
	OpEQ
	OpAnd
	OpOr
	OpNot
	OpInt2Char
	OpStri2Int

	OpRead
	OpWrite

	OpConcat
	OpStrLen
	OpGetChar
	OpSetChar

	OpType

	OpLabel
	OpJump
	OpJumpIfEQ
	OpJumpIfNEQ
	OpExit

	OpDPrint
	OpBreak

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpInvalid:     "INVALID",
	OpMove:        "MOVE",
	OpCreateFrame: "CREATEFRAME",
	OpPushFrame:   "PUSHFRAME",
	OpPopFrame:    "POPFRAME",
	OpDefVar:      "DEFVAR",
	OpCall:        "CALL",
	OpReturn:      "RETURN",
	OpPushS:       "PUSHS",
	OpPopS:        "POPS",
	OpAdd:         "ADD",
	OpSub:         "SUB",
	OpMul:         "MUL",
	OpIDiv:        "IDIV",
	OpLT:          "LT",
	OpGT:          "GT",
	OpEQ:          "EQ",
	OpAnd:         "AND",
	OpOr:          "OR",
	OpNot:         "NOT",
	OpInt2Char:    "INT2CHAR",
	OpStri2Int:    "STRI2INT",
	OpRead:        "READ",
	OpWrite:       "WRITE",
	OpConcat:      "CONCAT",
	OpStrLen:      "STRLEN",
	OpGetChar:     "GETCHAR",
	OpSetChar:     "SETCHAR",
	OpType:        "TYPE",
	OpLabel:       "LABEL",
	OpJump:        "JUMP",
	OpJumpIfEQ:    "JUMPIFEQ",
	OpJumpIfNEQ:   "JUMPIFNEQ",
	OpExit:        "EXIT",
	OpDPrint:      "DPRINT",
	OpBreak:       "BREAK",
}

var opcodeByName = func() map[string]Opcode {
	m := make(map[string]Opcode, numOpcodes)
	for op := OpMove; op < numOpcodes; op++ {
		m[opcodeNames[op]] = op
	}
	return m
}()

func (op Opcode) String() string {
	if op < numOpcodes {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// ParseOpcode looks an opcode up by name, ignoring case.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodeByName[strings.ToUpper(strings.TrimSpace(name))]
	return op, ok
}

// Opcodes lists every valid opcode.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, numOpcodes-1)
	for op := OpMove; op < numOpcodes; op++ {
		ops = append(ops, op)
	}
	return ops
}

// Scope selects one of the three variable frames.
type Scope uint8

// List of scopes.
const (
	GlobalScope Scope = iota
	LocalScope
	TempScope
)

func (s Scope) String() string {
	switch s {
	case GlobalScope:
		return "GF"
	case LocalScope:
		return "LF"
	case TempScope:
		return "TF"
	default:
		return fmt.Sprintf("Scope(%d)", uint8(s))
	}
}

// VarRef names a variable slot.
type VarRef struct {
	Scope Scope
	Name  string
}

func (r VarRef) String() string {
	return r.Scope.String() + "@" + r.Name
}

// ParseVarRef decodes the "GF@name" notation.
func ParseVarRef(raw string) (VarRef, error) {
	prefix, name, found := strings.Cut(strings.TrimSpace(raw), "@")
	if !found || name == "" {
		return VarRef{}, Errorf(InvalidSourceStructure, "invalid variable %q", raw)
	}

	var scope Scope
	switch prefix {
	case "GF":
		scope = GlobalScope
	case "LF":
		scope = LocalScope
	case "TF":
		scope = TempScope
	default:
		return VarRef{}, Errorf(InvalidSourceStructure, "invalid frame in variable %q", raw)
	}

	return VarRef{Scope: scope, Name: name}, nil
}

// ArgKind is the decoded shape of an instruction argument.
type ArgKind uint8

// List of argument kinds.
const (
	ArgVar ArgKind = iota + 1
	ArgConst
	ArgLabel
	ArgType
)

// Arg is a decoded instruction argument. Only the field selected by Kind
// is meaningful.
type Arg struct {
	Kind  ArgKind
	Var   VarRef
	Const Value
	Label string
	Type  ValueKind
}

// VarArg creates a variable argument.
func VarArg(scope Scope, name string) Arg {
	return Arg{Kind: ArgVar, Var: VarRef{Scope: scope, Name: name}}
}

// ConstArg creates a literal argument.
func ConstArg(v Value) Arg {
	return Arg{Kind: ArgConst, Const: v}
}

// LabelArg creates a label argument.
func LabelArg(name string) Arg {
	return Arg{Kind: ArgLabel, Label: name}
}

// TypeArg creates a type argument.
func TypeArg(kind ValueKind) Arg {
	return Arg{Kind: ArgType, Type: kind}
}

func (a Arg) String() string {
	switch a.Kind {
	case ArgVar:
		return a.Var.String()
	case ArgConst:
		return a.Const.GoString()
	case ArgLabel:
		return "label@" + a.Label
	case ArgType:
		return "type@" + a.Type.String()
	default:
		return "?"
	}
}

// Inst is an instruction whose arguments have been decoded and checked
// against the opcode's shape.
type Inst struct {
	Op    Opcode
	Order int
	Args  []Arg
}

func (i Inst) String() string {
	var sb strings.Builder
	sb.WriteString(i.Op.String())
	for _, a := range i.Args {
		sb.WriteString(" ")
		sb.WriteString(a.String())
	}
	return sb.String()
}

// Program is a list of decoded instructions sorted by ascending order.
type Program []Inst
