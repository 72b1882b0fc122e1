package cpu

// Branch instructions. Every branch charges the executed counter;
// only a branch that changes the PC charges the taken counter.
// Offsets are word counts: the byte displacement is offset doubled.

// opBR branches unconditionally by a sign-extended 8-bit offset.
func (c *CPU) opBR(inst *DecodedInstruction) error {
	c.Stats.BranchExec++
	c.Stats.BranchTaken++

	offset := signExtend8(inst.Offset)
	c.R[PC] += uint16(offset) << 1

	c.tracef("br instruction with offset %04o\n", inst.Offset)
	return nil
}

// opBEQ branches when Z is set. The offset is taken as unsigned, so
// BEQ only reaches forward; BR and BNE sign-extend theirs. Preserved
// as observed in the reference behavior.
func (c *CPU) opBEQ(inst *DecodedInstruction) error {
	c.Stats.BranchExec++

	newPC := c.R[PC] + inst.Offset<<1
	if c.Z != 0 {
		c.R[PC] = newPC
		c.Stats.BranchTaken++
	}

	c.tracef("beq instruction with offset %04o\n", inst.Offset)
	return nil
}

// opBNE branches by a sign-extended 8-bit offset when Z is clear.
func (c *CPU) opBNE(inst *DecodedInstruction) error {
	c.Stats.BranchExec++

	c.tracef("bne instruction with offset %04o\n", inst.Offset)

	offset := signExtend8(inst.Offset)
	newPC := c.R[PC] + uint16(offset)<<1
	if c.Z == 0 {
		c.Stats.BranchTaken++
		c.R[PC] = newPC
	}
	return nil
}

// opSOB decrements its register and branches backward by the 6-bit
// offset while the register is nonzero. The operand always resolves
// in register mode regardless of the mode field bits.
func (c *CPU) opSOB(inst *DecodedInstruction) error {
	c.Stats.BranchExec++

	src := &Operand{Mode: ModeReg, Reg: inst.SrcReg}
	c.GetOperand(src)

	c.R[src.Reg]--
	if c.R[src.Reg] != 0 {
		c.Stats.BranchTaken++
		c.R[PC] -= inst.Offset << 1
	}

	c.tracef("sob instruction reg %d with offset %03o\n", src.Reg, inst.Offset)
	return nil
}
