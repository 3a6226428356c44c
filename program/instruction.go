// Package program loads IPPcode24 programs from their XML or YAML source
// representation and describes the instruction set.
package program

import (
	"fmt"
	"strings"
)

// Kind is the syntactic tag of an operand, fixed at load time.
type Kind string

// List of operand kinds.
const (
	KindVar    Kind = "var"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindNil    Kind = "nil"
	KindLabel  Kind = "label"
	KindType   Kind = "type"
)

// ParseKindName checks an operand type attribute against the closed set
// of kinds.
func ParseKindName(name string) (Kind, bool) {
	switch k := Kind(name); k {
	case KindVar, KindInt, KindBool, KindString, KindNil, KindLabel, KindType:
		return k, true
	default:
		return "", false
	}
}

// IsLiteral reports whether the kind is a constant.
func (k Kind) IsLiteral() bool {
	switch k {
	case KindInt, KindBool, KindString, KindNil:
		return true
	default:
		return false
	}
}

// Operand is a raw instruction argument.
type Operand struct {
	Kind  Kind
	Value string
}

func (o Operand) String() string {
	return string(o.Kind) + "@" + o.Value
}

// Instruction is a raw instruction as read from the source. Opcode is not
// yet checked against the instruction set.
type Instruction struct {
	Opcode string
	Order  int
	Args   []Operand
}

func (i Instruction) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d: %s", i.Order, i.Opcode)
	for _, a := range i.Args {
		sb.WriteString(" ")
		sb.WriteString(a.String())
	}
	return sb.String()
}
