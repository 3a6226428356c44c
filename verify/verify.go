// Package verify checks loaded IPPcode24 programs before they run.
//
// This package implements two complementary stages:
//
// 1. Validation (Validate): the mandatory structural check
//   - every opcode is known and matches its arity
//   - every operand belongs to the class its position requires
//   - literals, variable names and type names are well formed
//   - orders are positive and unique
//
// The first structural problem fails the load with return code 32. On
// success the instructions are decoded into a core.Program sorted by
// order, ready for core.Machine.MapProgram.
//
// 2. Static Lint (lint.go): an optional report of everything found
//   - STRUCT issues: the same checks as Validate, all of them at once
//   - FLOW issues: duplicate labels, jumps to labels that do not exist,
//     EXIT with a literal outside 0..9
//
// FLOW issues are not fatal at load time. A duplicate label still fails
// the run with return code 52 when the machine maps the program; an
// undefined jump target only fails when the jump executes.
//
// # Usage Example
//
//	insts, err := program.Load(src, program.FormatAuto)
//	if err != nil {
//	    return err
//	}
//
//	issues := verify.RunLint(insts, program.DefaultISA())
//	for _, issue := range issues {
//	    log.Printf("[%s] order=%d: %s", issue.Type, issue.Order, issue.Message)
//	}
//
//	prog, err := verify.Validate(insts)
//	if err != nil {
//	    return err
//	}
package verify

import (
	"fmt"
	"sort"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/program"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct IssueType = "STRUCT" // Malformed instruction or operand
	IssueFlow   IssueType = "FLOW"   // Label and control flow problem
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // STRUCT or FLOW
	Code    core.ReturnCode        // Return code the problem maps to
	Order   int                    // Instruction order (-1 if not applicable)
	OpID    int                    // Index in the sorted program or -1
	Opcode  string                 // Opcode as written in the source
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] order=%d %s: %s", i.Type, i.Order, i.Opcode, i.Message)
}

// Validate checks instructions for structural problems and decodes them
// into a program sorted by ascending order.
func Validate(insts []program.Instruction) (core.Program, error) {
	return validateWith(insts, program.DefaultISA())
}

func validateWith(insts []program.Instruction, isa *program.ISA) (core.Program, error) {
	sorted := sortByOrder(insts)

	seen := make(map[int]bool, len(sorted))
	prog := make(core.Program, 0, len(sorted))

	for _, raw := range sorted {
		if raw.Order <= 0 {
			return nil, core.Errorf(core.InvalidSourceStructure,
				"instruction %s has non-positive order %d", raw.Opcode, raw.Order)
		}
		if seen[raw.Order] {
			return nil, core.Errorf(core.InvalidSourceStructure, "duplicate order %d", raw.Order)
		}
		seen[raw.Order] = true

		inst, issue := decodeInstruction(raw, isa)
		if issue != nil {
			return nil, core.Errorf(core.InvalidSourceStructure,
				"%s (%s, order %d)", issue.Message, raw.Opcode, raw.Order)
		}

		prog = append(prog, inst)
	}

	core.Trace("Validate", "Instructions", len(prog))

	return prog, nil
}

func sortByOrder(insts []program.Instruction) []program.Instruction {
	sorted := make([]program.Instruction, len(insts))
	copy(sorted, insts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// decodeInstruction checks a raw instruction against the ISA and decodes
// its operands.
func decodeInstruction(raw program.Instruction, isa *program.ISA) (core.Inst, *Issue) {
	op, ok := core.ParseOpcode(raw.Opcode)
	if !ok {
		return core.Inst{}, structIssue(raw, "unknown opcode %q", raw.Opcode)
	}

	sig, ok := isa.Lookup(op)
	if !ok {
		return core.Inst{}, structIssue(raw, "opcode %s is not part of %s", op, isa.Name())
	}

	if len(raw.Args) != len(sig) {
		issue := structIssue(raw, "%s takes %d arguments, got %d", op, len(sig), len(raw.Args))
		issue.Details["want"] = len(sig)
		issue.Details["got"] = len(raw.Args)
		return core.Inst{}, issue
	}

	inst := core.Inst{
		Op:    op,
		Order: raw.Order,
		Args:  make([]core.Arg, len(sig)),
	}

	for idx, class := range sig {
		operand := raw.Args[idx]
		if !class.Accepts(operand.Kind) {
			issue := structIssue(raw, "arg%d of %s must be %s, got %s", idx+1, op, class, operand.Kind)
			issue.Details["arg"] = idx + 1
			return core.Inst{}, issue
		}

		arg, err := decodeOperand(operand)
		if err != nil {
			issue := structIssue(raw, "arg%d: %s", idx+1, err.Msg)
			issue.Details["arg"] = idx + 1
			return core.Inst{}, issue
		}
		inst.Args[idx] = arg
	}

	return inst, nil
}

func decodeOperand(operand program.Operand) (core.Arg, *core.Error) {
	switch operand.Kind {
	case program.KindVar:
		ref, err := core.ParseVarRef(operand.Value)
		if err != nil {
			return core.Arg{}, asCoreError(err)
		}
		return core.Arg{Kind: core.ArgVar, Var: ref}, nil

	case program.KindLabel:
		if operand.Value == "" {
			return core.Arg{}, core.Errorf(core.InvalidSourceStructure, "empty label name")
		}
		return core.LabelArg(operand.Value), nil

	case program.KindType:
		kind, ok := core.ParseKind(operand.Value)
		if !ok || kind == core.KindNil {
			return core.Arg{}, core.Errorf(core.InvalidSourceStructure,
				"invalid type name %q", operand.Value)
		}
		return core.TypeArg(kind), nil

	default:
		kind, ok := core.ParseKind(string(operand.Kind))
		if !ok {
			return core.Arg{}, core.Errorf(core.InvalidSourceStructure,
				"invalid operand kind %q", operand.Kind)
		}

		v, err := core.ParseValue(kind, operand.Value)
		if err != nil {
			return core.Arg{}, asCoreError(err)
		}
		return core.ConstArg(v), nil
	}
}

func asCoreError(err error) *core.Error {
	if e, ok := err.(*core.Error); ok {
		return e
	}
	return core.Errorf(core.InvalidSourceStructure, "%v", err)
}

func structIssue(raw program.Instruction, format string, args ...any) *Issue {
	return &Issue{
		Type:    IssueStruct,
		Code:    core.InvalidSourceStructure,
		Order:   raw.Order,
		OpID:    -1,
		Opcode:  raw.Opcode,
		Message: fmt.Sprintf(format, args...),
		Details: map[string]interface{}{},
	}
}
