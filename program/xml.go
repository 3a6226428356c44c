package program

import (
	"encoding/xml"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sarchlab/ippcode/core"
)

var rootAttributes = map[string]bool{
	"language":    true,
	"name":        true,
	"description": true,
}

type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// LoadXML reads a program from its XML representation. Document level
// problems (not well-formed, wrong root, language or root attributes)
// are InvalidSourceFormat; problems inside instruction elements are
// InvalidSourceStructure.
func LoadXML(r io.Reader) ([]Instruction, error) {
	dec := xml.NewDecoder(r)

	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		return nil, core.Errorf(core.InvalidSourceFormat, "malformed XML: %v", err)
	}

	if err := checkTrailing(dec); err != nil {
		return nil, err
	}

	if err := checkRoot(&root); err != nil {
		return nil, err
	}

	if strings.TrimSpace(root.Text) != "" {
		return nil, core.Errorf(core.InvalidSourceStructure, "unexpected text in program element")
	}

	insts := make([]Instruction, 0, len(root.Children))
	orders := make(map[int]bool, len(root.Children))

	for idx := range root.Children {
		inst, err := parseXMLInstruction(&root.Children[idx])
		if err != nil {
			return nil, err
		}

		if orders[inst.Order] {
			return nil, core.Errorf(core.InvalidSourceStructure, "duplicate order %d", inst.Order)
		}
		orders[inst.Order] = true

		insts = append(insts, inst)
	}

	core.Trace("LoadXML", "Instructions", len(insts))

	return insts, nil
}

func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return core.Errorf(core.InvalidSourceFormat, "malformed XML: %v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return core.Errorf(core.InvalidSourceFormat, "more than one root element")
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return core.Errorf(core.InvalidSourceFormat, "text after root element")
			}
		}
	}
}

func checkRoot(root *xmlNode) error {
	if root.XMLName.Local != "program" {
		return core.Errorf(core.InvalidSourceFormat,
			"root element is %q, want \"program\"", root.XMLName.Local)
	}

	lang, ok := root.attr("language")
	if !ok || !strings.EqualFold(strings.TrimSpace(lang), Language) {
		return core.Errorf(core.InvalidSourceFormat,
			"language is %q, want %q", lang, Language)
	}

	for _, a := range root.Attrs {
		if !rootAttributes[a.Name.Local] {
			return core.Errorf(core.InvalidSourceFormat,
				"attribute %q is not allowed on program", a.Name.Local)
		}
	}

	return nil
}

func parseXMLInstruction(node *xmlNode) (Instruction, error) {
	if node.XMLName.Local != "instruction" {
		return Instruction{}, core.Errorf(core.InvalidSourceStructure,
			"unexpected element %q in program", node.XMLName.Local)
	}

	if strings.TrimSpace(node.Text) != "" {
		return Instruction{}, core.Errorf(core.InvalidSourceStructure,
			"unexpected text in instruction element")
	}

	opcode, ok := node.attr("opcode")
	if !ok || strings.TrimSpace(opcode) == "" {
		return Instruction{}, core.Errorf(core.InvalidSourceStructure, "instruction without opcode")
	}

	rawOrder, ok := node.attr("order")
	if !ok {
		return Instruction{}, core.Errorf(core.InvalidSourceStructure, "instruction without order")
	}

	order, err := parseOrder(rawOrder)
	if err != nil {
		return Instruction{}, err
	}

	args, err := parseXMLArgs(node.Children)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Opcode: strings.TrimSpace(opcode),
		Order:  order,
		Args:   args,
	}, nil
}

func parseOrder(raw string) (int, error) {
	order, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || order <= 0 {
		return 0, core.Errorf(core.InvalidSourceStructure, "invalid order %q", raw)
	}
	return order, nil
}

// parseXMLArgs sorts argument elements by position and requires them to
// be exactly arg1..argN.
func parseXMLArgs(nodes []xmlNode) ([]Operand, error) {
	byPos := make(map[int]*xmlNode, len(nodes))

	for idx := range nodes {
		n := &nodes[idx]
		pos, ok := argPosition(n.XMLName.Local)
		if !ok {
			return nil, core.Errorf(core.InvalidSourceStructure,
				"unexpected element %q in instruction", n.XMLName.Local)
		}
		if _, dup := byPos[pos]; dup {
			return nil, core.Errorf(core.InvalidSourceStructure,
				"duplicate argument %q", n.XMLName.Local)
		}
		byPos[pos] = n
	}

	positions := make([]int, 0, len(byPos))
	for pos := range byPos {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	args := make([]Operand, 0, len(positions))
	for idx, pos := range positions {
		if pos != idx+1 {
			return nil, core.Errorf(core.InvalidSourceStructure, "missing argument arg%d", idx+1)
		}

		n := byPos[pos]
		if len(n.Children) != 0 {
			return nil, core.Errorf(core.InvalidSourceStructure, "argument arg%d has child elements", pos)
		}

		typ, _ := n.attr("type")
		kind, ok := ParseKindName(strings.TrimSpace(typ))
		if !ok {
			return nil, core.Errorf(core.InvalidSourceStructure,
				"argument arg%d has invalid type %q", pos, typ)
		}

		args = append(args, Operand{Kind: kind, Value: strings.TrimSpace(n.Text)})
	}

	return args, nil
}

func argPosition(name string) (int, bool) {
	switch name {
	case "arg1":
		return 1, true
	case "arg2":
		return 2, true
	case "arg3":
		return 3, true
	default:
		return 0, false
	}
}
