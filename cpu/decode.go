package cpu

// DecodedInstruction holds the parsed details of one instruction
// word: the handler to run plus the operand specifier fields. Branch
// instructions carry their raw offset field in Offset.
type DecodedInstruction struct {
	Handler func(*CPU, *DecodedInstruction) error
	Name    string
	SrcMode uint16
	SrcReg  uint16
	DstMode uint16
	DstReg  uint16
	Offset  uint16
}

// Decode classifies a nonzero instruction word by probing opcode
// fields from the top of the word: 4 bits for the double-operand
// family, then 10 bits for branch/shift, then 7 bits for SOB/BNE.
// The probe order matters; words like 001500-001777 have no 10-bit
// match and classify as BNE at 7 bits. The zero (halt) word is
// handled by the engine before decode.
func (c *CPU) Decode(word uint16) (*DecodedInstruction, error) {
	inst := &DecodedInstruction{
		SrcMode: (word >> 9) & 07,
		SrcReg:  (word >> 6) & 07,
		DstMode: (word >> 3) & 07,
		DstReg:  word & 07,
	}

	switch word >> 12 {
	case OpMOV:
		inst.Handler = (*CPU).opMOV
		inst.Name = "mov"
		return inst, nil
	case OpCMP:
		inst.Handler = (*CPU).opCMP
		inst.Name = "cmp"
		return inst, nil
	case OpADD:
		inst.Handler = (*CPU).opADD
		inst.Name = "add"
		return inst, nil
	case OpSUB:
		inst.Handler = (*CPU).opSUB
		inst.Name = "sub"
		return inst, nil
	}

	switch word >> 6 {
	case OpBR:
		inst.Handler = (*CPU).opBR
		inst.Name = "br"
		inst.Offset = word & 0377
		return inst, nil
	case OpBEQ:
		inst.Handler = (*CPU).opBEQ
		inst.Name = "beq"
		inst.Offset = word & 0377
		return inst, nil
	case OpASR:
		inst.Handler = (*CPU).opASR
		inst.Name = "asr"
		return inst, nil
	case OpASL:
		inst.Handler = (*CPU).opASL
		inst.Name = "asl"
		return inst, nil
	}

	switch word >> 9 {
	case OpSOB:
		inst.Handler = (*CPU).opSOB
		inst.Name = "sob"
		inst.Offset = word & 077
		return inst, nil
	case OpBNE:
		inst.Handler = (*CPU).opBNE
		inst.Name = "bne"
		inst.Offset = word & 0377
		return inst, nil
	}

	return nil, &BadInstructionError{Word: word}
}
