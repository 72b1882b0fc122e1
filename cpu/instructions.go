package cpu

// Opcode field values, by field width. The instruction set packs
// different instruction classes into different opcode widths, so the
// decoder probes these from widest class to narrowest: the 4-bit
// double-operand field first, then the 10-bit branch/shift field,
// then the 7-bit SOB/BNE field.

// Double-operand instructions, top 4 bits.
const (
	OpMOV uint16 = 001
	OpCMP uint16 = 002
	OpADD uint16 = 006
	OpSUB uint16 = 016
)

// Branch and shift instructions, top 10 bits.
const (
	OpBR  uint16 = 0004
	OpBEQ uint16 = 0014
	OpASR uint16 = 0062
	OpASL uint16 = 0063
)

// SOB and BNE, top 7 bits.
const (
	OpSOB uint16 = 0077
	OpBNE uint16 = 0001
)
