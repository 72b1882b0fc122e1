package cpu

import (
	"io"
	"os"
)

// MemWords is the memory capacity in 16-bit words. Byte addresses are
// 16 bits wide and word-aligned, so 32K words covers the whole 64KB
// address space.
const MemWords = 32 * 1024

// State is the engine's run state.
type State int

const (
	// Running means the engine will execute the next instruction.
	Running State = iota
	// Halted means a zero word terminated execution normally.
	Halted
	// Faulted means an illegal instruction terminated execution.
	Faulted
)

// CPU holds the complete simulation context: registers, memory,
// condition codes, run state and execution statistics. All simulator
// state lives here; two CPUs share nothing.
type CPU struct {
	// R is the register file. R[6] is the stack pointer by
	// convention, R[7] the program counter.
	R [8]uint16
	// Mem is word-addressable memory. A byte address maps to the
	// word at addr>>1.
	Mem []uint16

	// Condition codes, each 0 or 1.
	N, Z, V, C uint16

	State State
	Stats Stats

	// Trace enables the per-instruction trace. Verbose additionally
	// prints registers, operand values, results and flag bits.
	Trace   bool
	Verbose bool
	// Out receives trace output. Defaults to stdout.
	Out io.Writer
}

// New creates a CPU with zeroed registers and memory, ready to run
// from address 0.
func New() *CPU {
	return &CPU{
		Mem: make([]uint16, MemWords),
		Out: os.Stdout,
	}
}

// LoadWords copies a program into memory starting at word index 0.
// Words beyond capacity are ignored.
func (c *CPU) LoadWords(words []uint16) {
	copy(c.Mem, words)
}

// ReadWord returns the memory word at the given byte address.
func (c *CPU) ReadWord(addr uint16) uint16 {
	return c.Mem[addr>>1]
}

// WriteWord stores a word at the given byte address.
func (c *CPU) WriteWord(addr, val uint16) {
	c.Mem[addr>>1] = val
}
