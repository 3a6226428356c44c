package core

import "fmt"

// LabelTable maps label names to instruction indices.
type LabelTable map[string]int

// BuildLabelTable indexes every LABEL instruction of a sorted program.
// A label defined twice is a semantic error.
func BuildLabelTable(prog Program) (LabelTable, error) {
	labels := make(LabelTable)

	for i, inst := range prog {
		if inst.Op != OpLabel {
			continue
		}

		name := inst.Args[0].Label
		if prev, exists := labels[name]; exists {
			return nil, &Error{
				Code: SemanticError,
				Msg: fmt.Sprintf("label %s is defined twice (first at order %d)",
					name, prog[prev].Order),
				PC:    i,
				Order: inst.Order,
				Op:    inst.Op,
			}
		}

		labels[name] = i
	}

	return labels, nil
}

// Resolve returns the index of a label.
func (t LabelTable) Resolve(name string) (int, error) {
	idx, ok := t[name]
	if !ok {
		return 0, Errorf(SemanticError, "label %s is not defined", name)
	}
	return idx, nil
}
