package program

import "github.com/sarchlab/ippcode/core"

// Language is the language tag a program source must carry.
const Language = "IPPcode24"

var defaultISA = newDefaultISA()

// DefaultISA returns the IPPcode24 instruction set.
func DefaultISA() *ISA {
	return defaultISA
}

func newDefaultISA() *ISA {
	isa := NewISA(Language)

	for _, op := range []core.Opcode{
		core.OpCreateFrame, core.OpPushFrame, core.OpPopFrame,
		core.OpReturn, core.OpBreak,
	} {
		isa.registerNewInst(op)
	}

	isa.registerNewInst(core.OpDefVar, ClassVar)
	isa.registerNewInst(core.OpPopS, ClassVar)

	isa.registerNewInst(core.OpCall, ClassLabel)
	isa.registerNewInst(core.OpLabel, ClassLabel)
	isa.registerNewInst(core.OpJump, ClassLabel)

	isa.registerNewInst(core.OpPushS, ClassSymb)
	isa.registerNewInst(core.OpWrite, ClassSymb)
	isa.registerNewInst(core.OpExit, ClassSymb)
	isa.registerNewInst(core.OpDPrint, ClassSymb)

	for _, op := range []core.Opcode{
		core.OpMove, core.OpInt2Char, core.OpStrLen, core.OpType, core.OpNot,
	} {
		isa.registerNewInst(op, ClassVar, ClassSymb)
	}
	isa.registerNewInst(core.OpRead, ClassVar, ClassType)

	for _, op := range []core.Opcode{
		core.OpAdd, core.OpSub, core.OpMul, core.OpIDiv,
		core.OpLT, core.OpGT, core.OpEQ,
		core.OpAnd, core.OpOr,
		core.OpStri2Int, core.OpConcat, core.OpGetChar, core.OpSetChar,
	} {
		isa.registerNewInst(op, ClassVar, ClassSymb, ClassSymb)
	}

	isa.registerNewInst(core.OpJumpIfEQ, ClassLabel, ClassSymb, ClassSymb)
	isa.registerNewInst(core.OpJumpIfNEQ, ClassLabel, ClassSymb, ClassSymb)

	return isa
}
