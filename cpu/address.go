package cpu

// Operand describes one addressing-mode resolution: the mode and
// register fields from the instruction word, plus the effective
// address and value the resolver filled in. One is built fresh for
// each operand reference and discarded after the instruction.
type Operand struct {
	Mode uint16
	Reg  uint16
	// Addr is the effective byte address. Only meaningful for modes
	// that go through memory.
	Addr  uint16
	Value uint16
}

// GetOperand resolves an operand's effective address and value,
// applying autoincrement/autodecrement side effects to the register
// file and charging the statistics counters.
//
// The counter accounting is deliberately uneven across modes: an
// autoincrement on the PC is an immediate operand and physically
// consumes the next instruction-stream word, so it charges the fetch
// counter rather than the data-read counter, and the index modes
// charge one fetch plus three data reads for the displacement
// arithmetic. Plain autoincrement on a data register charges nothing.
func (c *CPU) GetOperand(p *Operand) {
	switch p.Mode {
	case ModeReg:
		p.Value = c.R[p.Reg]
		p.Addr = 0

	case ModeRegDef:
		p.Addr = c.R[p.Reg]
		p.Value = c.ReadWord(p.Addr)
		c.Stats.WordsRead++

	case ModeAutoInc:
		// Reading the next instruction-stream slot counts as a fetch.
		if p.Reg == PC {
			c.Stats.InstrFetch++
		}
		p.Addr = c.R[p.Reg]
		p.Value = c.ReadWord(p.Addr)
		c.R[p.Reg] += 2

	case ModeAutoIncDef:
		c.Stats.WordsRead++
		p.Addr = c.ReadWord(c.R[p.Reg])
		p.Value = c.ReadWord(p.Addr)
		c.R[p.Reg] += 2

	case ModeAutoDec:
		c.Stats.WordsRead++
		c.R[p.Reg] -= 2
		p.Addr = c.R[p.Reg]
		p.Value = c.ReadWord(p.Addr)

	case ModeAutoDecDef:
		c.Stats.WordsRead++
		c.R[p.Reg] -= 2
		p.Addr = c.ReadWord(c.R[p.Reg])
		p.Value = c.ReadWord(p.Addr)

	case ModeIndex:
		c.Stats.InstrFetch++
		c.Stats.WordsRead += 3
		ind := c.ReadWord(c.R[PC])
		p.Addr = c.R[p.Reg] + ind
		c.R[PC] += 2
		p.Value = c.ReadWord(p.Addr)

	case ModeIndexDef:
		c.Stats.InstrFetch++
		c.Stats.WordsRead += 3
		ind := c.ReadWord(c.R[PC])
		p.Addr = c.R[p.Reg] + ind
		c.R[PC] += 2
		p.Addr = c.ReadWord(p.Addr)
		p.Value = c.ReadWord(p.Addr)
	}
}
