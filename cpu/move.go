package cpu

// opMOV handles the MOV instruction. The source value is copied to
// the destination register, or to memory when the destination uses
// autoincrement addressing — the one memory-writing destination mode
// in this subset. N and Z follow the source value, V clears, C is
// untouched.
func (c *CPU) opMOV(inst *DecodedInstruction) error {
	src := &Operand{Mode: inst.SrcMode, Reg: inst.SrcReg}
	dst := &Operand{Mode: inst.DstMode, Reg: inst.DstReg}
	c.GetOperand(src)
	c.GetOperand(dst)

	c.tracef("mov instruction sm %d, sr %d dm %d dr %d\n",
		src.Mode, src.Reg, dst.Mode, dst.Reg)
	c.printSrcVal(src)

	c.setNZ(src.Value)
	c.V = 0

	c.printBits()

	if dst.Mode == ModeAutoInc {
		c.WriteWord(dst.Addr, src.Value)
		c.verbosef("  value 0%06o is written to 0%06o\n", src.Value, dst.Addr)
		c.Stats.WordsWritten++
	} else {
		c.R[dst.Reg] = src.Value
	}
	return nil
}
