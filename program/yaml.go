package program

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/ippcode/core"
)

type yamlProgram struct {
	Language     string            `yaml:"language"`
	Name         string            `yaml:"name,omitempty"`
	Description  string            `yaml:"description,omitempty"`
	Instructions []yamlInstruction `yaml:"instructions"`
}

type yamlInstruction struct {
	Order  string    `yaml:"order"`
	Opcode string    `yaml:"opcode"`
	Args   []yamlArg `yaml:"args,omitempty"`
}

type yamlArg struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// LoadYAML reads a program from its YAML representation:
//
//	language: IPPcode24
//	instructions:
//	  - order: 1
//	    opcode: WRITE
//	    args:
//	      - {type: string, value: hello}
//
// Unknown keys, a missing or wrong language and malformed YAML are
// InvalidSourceFormat. Problems inside an instruction are
// InvalidSourceStructure.
func LoadYAML(r io.Reader) ([]Instruction, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlProgram
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, core.Errorf(core.InvalidSourceFormat, "empty YAML document")
		}
		return nil, core.Errorf(core.InvalidSourceFormat, "malformed YAML: %v", err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, core.Errorf(core.InvalidSourceFormat, "more than one YAML document")
	}

	if !strings.EqualFold(strings.TrimSpace(doc.Language), Language) {
		return nil, core.Errorf(core.InvalidSourceFormat,
			"language is %q, want %q", doc.Language, Language)
	}

	insts := make([]Instruction, 0, len(doc.Instructions))
	orders := make(map[int]bool, len(doc.Instructions))

	for _, yi := range doc.Instructions {
		inst, err := yi.toInstruction()
		if err != nil {
			return nil, err
		}

		if orders[inst.Order] {
			return nil, core.Errorf(core.InvalidSourceStructure, "duplicate order %d", inst.Order)
		}
		orders[inst.Order] = true

		insts = append(insts, inst)
	}

	core.Trace("LoadYAML", "Instructions", len(insts))

	return insts, nil
}

func (yi yamlInstruction) toInstruction() (Instruction, error) {
	if strings.TrimSpace(yi.Opcode) == "" {
		return Instruction{}, core.Errorf(core.InvalidSourceStructure, "instruction without opcode")
	}

	order, err := parseOrder(yi.Order)
	if err != nil {
		return Instruction{}, err
	}

	if len(yi.Args) > 3 {
		return Instruction{}, core.Errorf(core.InvalidSourceStructure,
			"instruction %d has %d arguments", order, len(yi.Args))
	}

	args := make([]Operand, 0, len(yi.Args))
	for idx, ya := range yi.Args {
		kind, ok := ParseKindName(strings.TrimSpace(ya.Type))
		if !ok {
			return Instruction{}, core.Errorf(core.InvalidSourceStructure,
				"argument arg%d has invalid type %q", idx+1, ya.Type)
		}
		args = append(args, Operand{Kind: kind, Value: strings.TrimSpace(ya.Value)})
	}

	return Instruction{
		Opcode: strings.TrimSpace(yi.Opcode),
		Order:  order,
		Args:   args,
	}, nil
}
