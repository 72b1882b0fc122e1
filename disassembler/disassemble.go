// Package disassembler renders a word stream as assembly for the
// simulated instruction subset.
package disassembler

import (
	"fmt"
	"strings"

	"github.com/sampazdan/PDP11-Sim/cpu"
)

// Instruction represents a single decoded instruction at a specific
// address. Words holds the instruction word plus any inline
// immediate or displacement words it consumed.
type Instruction struct {
	Address  uint16
	Words    []uint16
	Mnemonic string
	Operands string
}

// Text renders the instruction as assembly.
func (inst *Instruction) Text() string {
	if inst.Operands == "" {
		return inst.Mnemonic
	}
	return inst.Mnemonic + "\t" + inst.Operands
}

// Disassemble performs a linear sweep over the words and renders a
// listing: byte address, the raw words, and the assembly text.
func Disassemble(words []uint16) string {
	var out strings.Builder
	for _, inst := range Sweep(words) {
		raw := make([]string, len(inst.Words))
		for i, w := range inst.Words {
			raw[i] = fmt.Sprintf("%06o", w)
		}
		fmt.Fprintf(&out, "%06o\t%-14s\t%s\n",
			inst.Address, strings.Join(raw, " "), inst.Text())
	}
	return out.String()
}

// Sweep decodes every word in order, consuming inline operand words
// as it goes. Words that match no instruction family render as .word
// data.
func Sweep(words []uint16) []*Instruction {
	var out []*Instruction
	for i := 0; i < len(words); {
		inst := &Instruction{
			Address: uint16(i * 2),
			Words:   []uint16{words[i]},
		}
		used := decode(words, i, inst)
		for k := 1; k <= used && i+k < len(words); k++ {
			inst.Words = append(inst.Words, words[i+k])
		}
		i += 1 + used
		out = append(out, inst)
	}
	return out
}

// decode fills in the mnemonic and operand text for the word at
// index i, returning how many following words the operands consumed.
// The opcode field probing mirrors the execution engine: 4 bits,
// then 10, then 7.
func decode(words []uint16, i int, inst *Instruction) int {
	w := words[i]
	if w == 0 {
		inst.Mnemonic = "halt"
		return 0
	}

	srcMode, srcReg := (w>>9)&07, (w>>6)&07
	dstMode, dstReg := (w>>3)&07, w&07

	switch w >> 12 {
	case cpu.OpMOV, cpu.OpCMP, cpu.OpADD, cpu.OpSUB:
		switch w >> 12 {
		case cpu.OpMOV:
			inst.Mnemonic = "mov"
		case cpu.OpCMP:
			inst.Mnemonic = "cmp"
		case cpu.OpADD:
			inst.Mnemonic = "add"
		case cpu.OpSUB:
			inst.Mnemonic = "sub"
		}
		src, n1 := operandText(srcMode, srcReg, words, i+1)
		dst, n2 := operandText(dstMode, dstReg, words, i+1+n1)
		inst.Operands = src + ", " + dst
		return n1 + n2
	}

	pcNext := inst.Address + 2
	switch w >> 6 {
	case cpu.OpBR:
		inst.Mnemonic = "br"
		inst.Operands = branchTarget(pcNext, w&0377, false)
		return 0
	case cpu.OpBEQ:
		// BEQ offsets are unsigned; it only reaches forward.
		inst.Mnemonic = "beq"
		inst.Operands = fmt.Sprintf("%06o", pcNext+(w&0377)<<1)
		return 0
	case cpu.OpASR, cpu.OpASL:
		if w>>6 == cpu.OpASR {
			inst.Mnemonic = "asr"
		} else {
			inst.Mnemonic = "asl"
		}
		dst, n := operandText(dstMode, dstReg, words, i+1)
		inst.Operands = dst
		return n
	}

	switch w >> 9 {
	case cpu.OpSOB:
		inst.Mnemonic = "sob"
		inst.Operands = fmt.Sprintf("%s, %06o",
			regName(srcReg), pcNext-(w&077)<<1)
		return 0
	case cpu.OpBNE:
		inst.Mnemonic = "bne"
		inst.Operands = branchTarget(pcNext, w&0377, true)
		return 0
	}

	inst.Mnemonic = ".word"
	inst.Operands = fmt.Sprintf("%06o", w)
	return 0
}

// branchTarget renders the byte address a branch resolves to.
func branchTarget(pcNext, offset uint16, signed bool) string {
	target := pcNext + offset<<1
	if signed {
		target = pcNext + uint16(int16(int8(offset)))<<1
	}
	return fmt.Sprintf("%06o", target)
}
