package program

import (
	"sort"

	"github.com/sarchlab/ippcode/core"
)

// OperandClass is the set of operand kinds an instruction accepts at one
// argument position.
type OperandClass uint8

// List of operand classes.
const (
	ClassVar   OperandClass = iota + 1 // a variable
	ClassLabel                         // a label name
	ClassSymb                          // a variable or a literal
	ClassType                          // a type name
)

func (c OperandClass) String() string {
	switch c {
	case ClassVar:
		return "var"
	case ClassLabel:
		return "label"
	case ClassSymb:
		return "symb"
	case ClassType:
		return "type"
	default:
		return "?"
	}
}

// Accepts reports whether an operand of kind k belongs to the class.
func (c OperandClass) Accepts(k Kind) bool {
	switch c {
	case ClassVar:
		return k == KindVar
	case ClassLabel:
		return k == KindLabel
	case ClassType:
		return k == KindType
	case ClassSymb:
		return k == KindVar || k.IsLiteral()
	default:
		return false
	}
}

// Signature lists the operand class of each argument position. Its
// length is the arity of the instruction.
type Signature []OperandClass

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from opcode to the operand shape of the instruction.
	signatures map[core.Opcode]Signature
}

// NewISA creates an empty instruction set.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:    name,
		signatures: make(map[core.Opcode]Signature),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// registerNewInst adds an instruction to the ISA.
func (isa *ISA) registerNewInst(op core.Opcode, sig ...OperandClass) {
	isa.signatures[op] = Signature(sig)
}

// Lookup returns the signature of an opcode.
func (isa *ISA) Lookup(op core.Opcode) (Signature, bool) {
	sig, ok := isa.signatures[op]
	return sig, ok
}

// Opcodes lists the registered opcodes in ascending order.
func (isa *ISA) Opcodes() []core.Opcode {
	ops := make([]core.Opcode, 0, len(isa.signatures))
	for op := range isa.signatures {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
