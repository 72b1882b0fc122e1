package cpu

// opASL handles arithmetic shift left by one on the destination
// register. C takes the bit shifted out (old bit 15) and V = C xor N.
func (c *CPU) opASL(inst *DecodedInstruction) error {
	dst := &Operand{Mode: inst.DstMode, Reg: inst.DstReg}
	c.GetOperand(dst)

	c.tracef("asl instruction dm %d dr %d\n", dst.Mode, dst.Reg)
	c.printDstVal(dst)

	result := c.R[dst.Reg] << 1
	c.printResult(result)

	c.setNZ(result)
	c.C = signBit(dst.Value)
	c.V = c.C ^ c.N

	c.printBits()
	c.R[dst.Reg] = result
	return nil
}

// opASR handles arithmetic shift right by one on the destination
// register, sign-extending from bit 15. C takes the bit shifted out
// (old bit 0) and V = C xor N.
func (c *CPU) opASR(inst *DecodedInstruction) error {
	dst := &Operand{Mode: inst.DstMode, Reg: inst.DstReg}
	c.GetOperand(dst)

	c.tracef("asr instruction dm %d dr %d\n", dst.Mode, dst.Reg)
	c.printDstVal(dst)

	result := uint16(int16(c.R[dst.Reg]) >> 1)

	c.setNZ(result)
	c.C = dst.Value & 1
	c.V = c.C ^ c.N

	c.printResult(result)
	c.printBits()
	c.R[dst.Reg] = result
	return nil
}
