package verify

import (
	"fmt"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/program"
)

// RunLint performs static lint checks on a loaded program.
// It validates structure (STRUCT) and label usage (FLOW). Unlike Validate
// it does not stop at the first problem.
// Returns a list of issues found, or empty list if no issues.
func RunLint(insts []program.Instruction, isa *program.ISA) []Issue {
	var issues []Issue

	sorted := sortByOrder(insts)

	// STRUCT: orders must be positive and unique
	firstAt := make(map[int]int, len(sorted))
	for idx, raw := range sorted {
		if raw.Order <= 0 {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Code:    core.InvalidSourceStructure,
				Order:   raw.Order,
				OpID:    idx,
				Opcode:  raw.Opcode,
				Message: fmt.Sprintf("Non-positive order %d", raw.Order),
			})
			continue
		}

		if prev, exists := firstAt[raw.Order]; exists {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Code:    core.InvalidSourceStructure,
				Order:   raw.Order,
				OpID:    idx,
				Opcode:  raw.Opcode,
				Message: fmt.Sprintf("Order %d used by op %d and op %d", raw.Order, prev, idx),
				Details: map[string]interface{}{
					"opIdx":  idx,
					"prevOp": prev,
				},
			})
			continue
		}
		firstAt[raw.Order] = idx
	}

	// STRUCT: opcode and operands of every instruction
	decoded := make([]core.Inst, 0, len(sorted))
	decodedIdx := make([]int, 0, len(sorted))
	for idx, raw := range sorted {
		inst, issue := decodeInstruction(raw, isa)
		if issue != nil {
			issue.OpID = idx
			issues = append(issues, *issue)
			continue
		}
		decoded = append(decoded, inst)
		decodedIdx = append(decodedIdx, idx)
	}

	// FLOW: labels and jumps, on the instructions that decoded cleanly
	issues = append(issues, checkFlow(decoded, decodedIdx)...)

	return issues
}

// checkFlow reports duplicate labels, jumps to labels that are never
// defined and EXIT codes outside 0..9.
func checkFlow(prog []core.Inst, opIDs []int) []Issue {
	var issues []Issue

	labels := make(map[string]int)
	for i, inst := range prog {
		if inst.Op != core.OpLabel {
			continue
		}

		name := inst.Args[0].Label
		if first, exists := labels[name]; exists {
			issues = append(issues, Issue{
				Type:    IssueFlow,
				Code:    core.SemanticError,
				Order:   inst.Order,
				OpID:    opIDs[i],
				Opcode:  inst.Op.String(),
				Message: fmt.Sprintf("Label %s defined twice (first at order %d)", name, first),
				Details: map[string]interface{}{
					"label": name,
					"first": first,
				},
			})
			continue
		}
		labels[name] = inst.Order
	}

	for i, inst := range prog {
		switch inst.Op {
		case core.OpJump, core.OpCall, core.OpJumpIfEQ, core.OpJumpIfNEQ:
			name := inst.Args[0].Label
			if _, exists := labels[name]; !exists {
				issues = append(issues, Issue{
					Type:    IssueFlow,
					Code:    core.SemanticError,
					Order:   inst.Order,
					OpID:    opIDs[i],
					Opcode:  inst.Op.String(),
					Message: fmt.Sprintf("Jump to undefined label %s", name),
					Details: map[string]interface{}{"label": name},
				})
			}

		case core.OpExit:
			arg := inst.Args[0]
			if arg.Kind != core.ArgConst {
				continue
			}

			issue := Issue{
				Type:    IssueFlow,
				Order:   inst.Order,
				OpID:    opIDs[i],
				Opcode:  inst.Op.String(),
				Details: map[string]interface{}{"value": arg.Const.GoString()},
			}
			switch {
			case arg.Const.Kind() != core.KindInt:
				issue.Code = core.OperandTypeError
				issue.Message = fmt.Sprintf("EXIT with non-int literal %s", arg.Const.GoString())
				issues = append(issues, issue)
			case arg.Const.AsInt() < 0 || arg.Const.AsInt() > 9:
				issue.Code = core.OperandValueError
				issue.Message = fmt.Sprintf("EXIT code %d outside 0..9", arg.Const.AsInt())
				issues = append(issues, issue)
			}
		}
	}

	return issues
}
