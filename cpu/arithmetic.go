package cpu

// opCMP handles the CMP instruction: source minus destination,
// setting all four flags and discarding the result.
func (c *CPU) opCMP(inst *DecodedInstruction) error {
	src := &Operand{Mode: inst.SrcMode, Reg: inst.SrcReg}
	dst := &Operand{Mode: inst.DstMode, Reg: inst.DstReg}
	c.GetOperand(src)
	c.GetOperand(dst)

	c.tracef("cmp instruction sm %d, sr %d dm %d dr %d\n",
		src.Mode, src.Reg, dst.Mode, dst.Reg)
	c.printSrcVal(src)
	c.printDstVal(dst)

	diff := uint32(src.Value) - uint32(dst.Value)
	result := c.setSubFlags(src.Value, dst.Value, diff)

	c.printResult(result)
	c.printBits()
	return nil
}

// opADD handles the ADD instruction. The sum always lands in the
// destination register. C is the carry out of bit 15, V the
// same-signs-in, different-sign-out overflow rule.
func (c *CPU) opADD(inst *DecodedInstruction) error {
	src := &Operand{Mode: inst.SrcMode, Reg: inst.SrcReg}
	dst := &Operand{Mode: inst.DstMode, Reg: inst.DstReg}
	c.GetOperand(src)
	c.GetOperand(dst)

	c.tracef("add instruction sm %d, sr %d dm %d dr %d\n",
		src.Mode, src.Reg, dst.Mode, dst.Reg)
	c.printSrcVal(src)
	c.printDstVal(dst)

	sum := uint32(src.Value) + uint32(dst.Value)
	result := uint16(sum)

	c.V = 0
	if signBit(src.Value) == signBit(dst.Value) && signBit(src.Value) != signBit(result) {
		c.V = 1
	}
	c.C = 0
	if uint32(result) < sum {
		c.C = 1
	}
	c.setNZ(result)

	c.printResult(result)
	c.printBits()
	c.R[dst.Reg] = result
	return nil
}

// opSUB handles the SUB instruction: destination minus source, into
// the destination register.
func (c *CPU) opSUB(inst *DecodedInstruction) error {
	src := &Operand{Mode: inst.SrcMode, Reg: inst.SrcReg}
	dst := &Operand{Mode: inst.DstMode, Reg: inst.DstReg}
	c.GetOperand(src)
	c.GetOperand(dst)

	c.tracef("sub instruction sm %d, sr %d dm %d dr %d\n",
		src.Mode, src.Reg, dst.Mode, dst.Reg)
	c.printSrcVal(src)
	c.printDstVal(dst)

	diff := uint32(dst.Value) - uint32(src.Value)
	result := c.setSubFlags(src.Value, dst.Value, diff)

	c.printResult(result)
	c.printBits()
	c.R[dst.Reg] = result
	return nil
}
