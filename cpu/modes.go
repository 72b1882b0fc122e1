package cpu

// Addressing mode constants (3-bit mode field + 3-bit register field)
const (
	// 000 — Register: Rn
	ModeReg uint16 = 0

	// 001 — Register Deferred: (Rn)
	ModeRegDef uint16 = 1

	// 010 — Autoincrement: (Rn)+. With Rn = PC this is an immediate
	// operand taken from the instruction stream.
	ModeAutoInc uint16 = 2

	// 011 — Autoincrement Deferred: @(Rn)+
	ModeAutoIncDef uint16 = 3

	// 100 — Autodecrement: -(Rn)
	ModeAutoDec uint16 = 4

	// 101 — Autodecrement Deferred: @-(Rn)
	ModeAutoDecDef uint16 = 5

	// 110 — Index: X(Rn), displacement word follows the instruction
	ModeIndex uint16 = 6

	// 111 — Index Deferred: @X(Rn)
	ModeIndexDef uint16 = 7
)

// Register numbers
const (
	R0 = 0
	R1 = 1
	R2 = 2
	R3 = 3
	R4 = 4
	R5 = 5
	R6 = 6 // stack pointer
	R7 = 7 // program counter
)

// SP and PC are the conventional names for R6 and R7. Both are
// ordinary registers as far as the resolver and engine are concerned.
const (
	SP = R6
	PC = R7
)
