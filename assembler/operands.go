package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sampazdan/PDP11-Sim/cpu"
)

var registers = map[string]uint16{
	"r0": 0, "r1": 1, "r2": 2, "r3": 3,
	"r4": 4, "r5": 5, "r6": 6, "r7": 7,
	"sp": cpu.SP, "pc": cpu.PC,
}

// operand is one parsed mode/register pair plus the inline word an
// immediate or index operand carries.
type operand struct {
	mode     uint16
	reg      uint16
	extra    uint16
	hasExtra bool
}

func (op *operand) extraWords() uint16 {
	if op.hasExtra {
		return 1
	}
	return 0
}

func (op *operand) extras() []uint16 {
	if op.hasExtra {
		return []uint16{op.extra}
	}
	return nil
}

// parseNumber parses an octal 16-bit constant.
func parseNumber(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 8, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// parseOperand parses one operand in assembly syntax: rN, (rN),
// (rN)+, @(rN)+, -(rN), @-(rN), X(rN), @X(rN) or #imm. An immediate
// is autoincrement on the PC, consuming the next instruction word.
func parseOperand(s string, line int) (*operand, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	bad := func() error {
		return fmt.Errorf("line %d: bad operand %q", line, s)
	}

	if v, ok := strings.CutPrefix(s, "#"); ok {
		imm, err := parseNumber(v)
		if err != nil {
			return nil, bad()
		}
		return &operand{mode: cpu.ModeAutoInc, reg: cpu.PC, extra: imm, hasExtra: true}, nil
	}

	deferred := uint16(0)
	if v, ok := strings.CutPrefix(s, "@"); ok {
		deferred = 1
		s = v
	}

	if reg, ok := registers[s]; ok {
		// @rN is register deferred, same as (rN).
		return &operand{mode: cpu.ModeReg + deferred, reg: reg}, nil
	}

	if v, ok := strings.CutPrefix(s, "-("); ok {
		reg, ok := registers[strings.TrimSuffix(v, ")")]
		if !ok || !strings.HasSuffix(v, ")") {
			return nil, bad()
		}
		return &operand{mode: cpu.ModeAutoDec + deferred, reg: reg}, nil
	}

	if v, ok := strings.CutPrefix(s, "("); ok {
		if r, ok := strings.CutSuffix(v, ")+"); ok {
			reg, ok := registers[r]
			if !ok {
				return nil, bad()
			}
			return &operand{mode: cpu.ModeAutoInc + deferred, reg: reg}, nil
		}
		if r, ok := strings.CutSuffix(v, ")"); ok {
			if deferred != 0 {
				return nil, bad()
			}
			reg, ok := registers[r]
			if !ok {
				return nil, bad()
			}
			return &operand{mode: cpu.ModeRegDef, reg: reg}, nil
		}
		return nil, bad()
	}

	// Index: X(rN)
	open := strings.Index(s, "(")
	if open > 0 && strings.HasSuffix(s, ")") {
		disp, err := parseNumber(s[:open])
		if err != nil {
			return nil, bad()
		}
		reg, ok := registers[s[open+1:len(s)-1]]
		if !ok {
			return nil, bad()
		}
		return &operand{mode: cpu.ModeIndex + deferred, reg: reg, extra: disp, hasExtra: true}, nil
	}

	return nil, bad()
}
