package cpu

// signBit returns bit 15 of a word as 0 or 1.
func signBit(v uint16) uint16 {
	return v >> 15
}

// setNZ updates the N and Z flags from a result word.
func (c *CPU) setNZ(result uint16) {
	c.N = signBit(result)
	if result == 0 {
		c.Z = 1
	} else {
		c.Z = 0
	}
}

// setSubFlags sets C, N, Z and V for a subtraction carried out in 32
// bits, and returns the masked 16-bit result. C is the borrow out of
// bit 15. The overflow rule is the reference one: V is set when the
// source and destination signs differ and the result took the
// source's sign. CMP and SUB use the same rule with the same operand
// roles, whichever way the subtraction ran.
func (c *CPU) setSubFlags(srcVal, dstVal uint16, diff uint32) uint16 {
	c.C = uint16(diff>>16) & 1
	result := uint16(diff)
	c.setNZ(result)
	c.V = 0
	if signBit(srcVal) != signBit(dstVal) && signBit(srcVal) == signBit(result) {
		c.V = 1
	}
	return result
}

// signExtend8 sign-extends the low 8 bits of a word.
func signExtend8(v uint16) int16 {
	return int16(int8(v))
}
