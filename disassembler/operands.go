package disassembler

import (
	"fmt"

	"github.com/sampazdan/PDP11-Sim/cpu"
)

var regNames = [8]string{"r0", "r1", "r2", "r3", "r4", "r5", "sp", "pc"}

func regName(reg uint16) string {
	return regNames[reg&07]
}

// operandText renders one mode/register pair, reading an inline word
// from the stream for immediate and index operands. It returns the
// text and how many stream words it consumed. A truncated stream
// renders the missing word as zero.
func operandText(mode, reg uint16, words []uint16, next int) (string, int) {
	inline := func() (uint16, int) {
		if next < len(words) {
			return words[next], 1
		}
		return 0, 0
	}

	switch mode {
	case cpu.ModeReg:
		return regName(reg), 0
	case cpu.ModeRegDef:
		return "(" + regName(reg) + ")", 0
	case cpu.ModeAutoInc:
		if reg == cpu.PC {
			v, n := inline()
			return fmt.Sprintf("#%o", v), n
		}
		return "(" + regName(reg) + ")+", 0
	case cpu.ModeAutoIncDef:
		return "@(" + regName(reg) + ")+", 0
	case cpu.ModeAutoDec:
		return "-(" + regName(reg) + ")", 0
	case cpu.ModeAutoDecDef:
		return "@-(" + regName(reg) + ")", 0
	case cpu.ModeIndex:
		v, n := inline()
		return fmt.Sprintf("%o(%s)", v, regName(reg)), n
	default: // cpu.ModeIndexDef
		v, n := inline()
		return fmt.Sprintf("@%o(%s)", v, regName(reg)), n
	}
}
