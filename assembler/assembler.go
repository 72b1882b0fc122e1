// Package assembler translates assembly source for the simulated
// instruction subset into the octal word stream the loader consumes.
// Numeric constants are octal, following the architecture's
// conventions.
package assembler

import (
	"fmt"
	"strings"

	"github.com/sampazdan/PDP11-Sim/cpu"
)

// nodeType defines the type of an assembly node.
type nodeType int

const (
	nodeInstruction nodeType = iota
	nodeLabel
	nodeData
)

// node represents one parsed element from the source.
type node struct {
	typ      nodeType
	label    string
	mnemonic string
	operands []string
	line     int
	size     uint16 // words emitted
}

// Assembler holds the state for the assembly process.
type Assembler struct {
	labels map[string]uint16
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		labels: make(map[string]uint16),
	}
}

// Assemble takes source text and returns the machine code as words,
// laid out from byte address 0.
func (asm *Assembler) Assemble(src string) ([]uint16, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	nodes, err := asm.parseLines(lines)
	if err != nil {
		return nil, err
	}

	// Pass 1: fix every node's size and record label addresses. All
	// instructions have a fixed size once parsed, so one pass
	// settles the layout.
	addr := uint16(0)
	for _, n := range nodes {
		if n.typ == nodeLabel {
			if _, dup := asm.labels[n.label]; dup {
				return nil, fmt.Errorf("line %d: duplicate label %q", n.line, n.label)
			}
			asm.labels[n.label] = addr
			continue
		}
		size, err := asm.sizeOf(n)
		if err != nil {
			return nil, err
		}
		n.size = size
		addr += size * 2
	}

	// Pass 2: emit code with branch targets resolved.
	var words []uint16
	addr = 0
	for _, n := range nodes {
		if n.typ == nodeLabel {
			continue
		}
		code, err := asm.encode(n, addr)
		if err != nil {
			return nil, err
		}
		words = append(words, code...)
		addr += uint16(len(code)) * 2
	}
	return words, nil
}

// parseLines converts raw source lines into nodes. Labels end with a
// colon and may share a line with an instruction; ';' starts a
// comment.
func (asm *Assembler) parseLines(lines []string) ([]*node, error) {
	var nodes []*node
	for i, line := range lines {
		lineNo := i + 1
		if ci := strings.IndexRune(line, ';'); ci != -1 {
			line = line[:ci]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if ci := strings.Index(line, ":"); ci != -1 {
			label := strings.TrimSpace(line[:ci])
			if label != "" && !strings.ContainsAny(label, " \t") {
				nodes = append(nodes, &node{
					typ:   nodeLabel,
					label: strings.ToLower(label),
					line:  lineNo,
				})
				line = strings.TrimSpace(line[ci+1:])
			}
		}
		if line == "" {
			continue
		}

		var mnemonic, operandStr string
		if fs := strings.IndexAny(line, " \t"); fs == -1 {
			mnemonic = line
		} else {
			mnemonic = line[:fs]
			operandStr = strings.TrimSpace(line[fs:])
		}
		mnemonic = strings.ToLower(mnemonic)

		n := &node{
			typ:      nodeInstruction,
			mnemonic: mnemonic,
			line:     lineNo,
		}
		if mnemonic == ".word" {
			n.typ = nodeData
		}
		if operandStr != "" {
			for _, op := range strings.Split(operandStr, ",") {
				n.operands = append(n.operands, strings.TrimSpace(op))
			}
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// sizeOf returns the number of words a node emits.
func (asm *Assembler) sizeOf(n *node) (uint16, error) {
	if n.typ == nodeData {
		return uint16(len(n.operands)), nil
	}

	switch n.mnemonic {
	case "halt", "br", "beq", "bne", "sob":
		return 1, nil
	case "asl", "asr":
		if len(n.operands) != 1 {
			return 0, fmt.Errorf("line %d: %s takes one operand", n.line, n.mnemonic)
		}
		op, err := parseOperand(n.operands[0], n.line)
		if err != nil {
			return 0, err
		}
		return 1 + op.extraWords(), nil
	case "mov", "cmp", "add", "sub":
		if len(n.operands) != 2 {
			return 0, fmt.Errorf("line %d: %s takes two operands", n.line, n.mnemonic)
		}
		size := uint16(1)
		for _, s := range n.operands {
			op, err := parseOperand(s, n.line)
			if err != nil {
				return 0, err
			}
			size += op.extraWords()
		}
		return size, nil
	}
	return 0, fmt.Errorf("line %d: unknown mnemonic %q", n.line, n.mnemonic)
}

// encode emits a node's words. addr is the node's own byte address,
// used to compute branch offsets relative to the following word.
func (asm *Assembler) encode(n *node, addr uint16) ([]uint16, error) {
	if n.typ == nodeData {
		var words []uint16
		for _, s := range n.operands {
			v, err := parseNumber(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad .word value %q", n.line, s)
			}
			words = append(words, v)
		}
		return words, nil
	}

	switch n.mnemonic {
	case "halt":
		return []uint16{0}, nil

	case "mov", "cmp", "add", "sub":
		var opcode uint16
		switch n.mnemonic {
		case "mov":
			opcode = cpu.OpMOV
		case "cmp":
			opcode = cpu.OpCMP
		case "add":
			opcode = cpu.OpADD
		case "sub":
			opcode = cpu.OpSUB
		}
		src, err := parseOperand(n.operands[0], n.line)
		if err != nil {
			return nil, err
		}
		dst, err := parseOperand(n.operands[1], n.line)
		if err != nil {
			return nil, err
		}
		word := opcode<<12 | src.mode<<9 | src.reg<<6 | dst.mode<<3 | dst.reg
		words := []uint16{word}
		words = append(words, src.extras()...)
		words = append(words, dst.extras()...)
		return words, nil

	case "asl", "asr":
		opcode := cpu.OpASL
		if n.mnemonic == "asr" {
			opcode = cpu.OpASR
		}
		dst, err := parseOperand(n.operands[0], n.line)
		if err != nil {
			return nil, err
		}
		word := opcode<<6 | dst.mode<<3 | dst.reg
		return append([]uint16{word}, dst.extras()...), nil

	case "br", "beq", "bne":
		if len(n.operands) != 1 {
			return nil, fmt.Errorf("line %d: %s takes one operand", n.line, n.mnemonic)
		}
		offset, err := asm.branchOffset(n, n.operands[0], addr)
		if err != nil {
			return nil, err
		}
		switch n.mnemonic {
		case "br":
			return []uint16{cpu.OpBR<<6 | offset}, nil
		case "beq":
			return []uint16{cpu.OpBEQ<<6 | offset}, nil
		default:
			return []uint16{cpu.OpBNE<<9 | offset}, nil
		}

	case "sob":
		if len(n.operands) != 2 {
			return nil, fmt.Errorf("line %d: sob takes a register and a target", n.line)
		}
		reg, ok := registers[strings.ToLower(n.operands[0])]
		if !ok {
			return nil, fmt.Errorf("line %d: sob needs a register, got %q", n.line, n.operands[0])
		}
		target, err := asm.target(n.operands[1], n.line)
		if err != nil {
			return nil, err
		}
		// SOB only reaches backward, in words, up to 63.
		back := int(addr) + 2 - int(target)
		if back < 0 || back > 63*2 || back%2 != 0 {
			return nil, fmt.Errorf("line %d: sob target out of range", n.line)
		}
		return []uint16{cpu.OpSOB<<9 | reg<<6 | uint16(back/2)}, nil
	}
	return nil, fmt.Errorf("line %d: unknown mnemonic %q", n.line, n.mnemonic)
}

// branchOffset computes and range-checks the word offset field for
// BR, BEQ and BNE at the given instruction address. BR and BEQ live
// in a 10-bit opcode field, leaving only 6 offset bits: an offset
// past 63 would spill into the opcode and no longer decode, so both
// reach forward only. BNE's 7-bit field keeps the full signed 8-bit
// offset.
func (asm *Assembler) branchOffset(n *node, operand string, addr uint16) (uint16, error) {
	target, err := asm.target(operand, n.line)
	if err != nil {
		return 0, err
	}
	delta := int(target) - (int(addr) + 2)
	if delta%2 != 0 {
		return 0, fmt.Errorf("line %d: branch target %06o is odd", n.line, target)
	}
	offset := delta / 2
	if n.mnemonic == "bne" {
		if offset < -128 || offset > 127 {
			return 0, fmt.Errorf("line %d: bne offset %d out of range", n.line, offset)
		}
	} else if offset < 0 || offset > 63 {
		return 0, fmt.Errorf("line %d: %s can only reach 0..63 words forward", n.line, n.mnemonic)
	}
	return uint16(offset) & 0377, nil
}

// target resolves a label or octal byte address.
func (asm *Assembler) target(s string, line int) (uint16, error) {
	if v, err := parseNumber(s); err == nil {
		return v, nil
	}
	if addr, ok := asm.labels[strings.ToLower(s)]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("line %d: undefined label %q", line, s)
}
