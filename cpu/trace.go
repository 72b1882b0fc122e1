package cpu

import "fmt"

// Trace and verbose printers. These are the only writers to c.Out;
// with both flags off the simulation is silent.

func (c *CPU) tracef(format string, args ...any) {
	if c.Trace {
		fmt.Fprintf(c.Out, format, args...)
	}
}

func (c *CPU) verbosef(format string, args ...any) {
	if c.Verbose {
		fmt.Fprintf(c.Out, format, args...)
	}
}

func (c *CPU) printRegs() {
	if !c.Verbose {
		return
	}
	fmt.Fprintf(c.Out, "  R0:0%06o  R2:0%06o  R4:0%06o  R6:0%06o\n",
		c.R[0], c.R[2], c.R[4], c.R[6])
	fmt.Fprintf(c.Out, "  R1:0%06o  R3:0%06o  R5:0%06o  R7:0%06o\n",
		c.R[1], c.R[3], c.R[5], c.R[7])
}

func (c *CPU) printSrcVal(src *Operand) {
	c.verbosef("  src.value = 0%06o\n", src.Value)
}

func (c *CPU) printDstVal(dst *Operand) {
	c.verbosef("  dst.value = 0%06o\n", dst.Value)
}

func (c *CPU) printResult(result uint16) {
	c.verbosef("  result    = 0%06o\n", result)
}

func (c *CPU) printBits() {
	c.verbosef("  nzvc bits = 4'b%d%d%d%d\n", c.N, c.Z, c.V, c.C)
}

// DumpMemory writes the first n words of memory, one per line, as
// byte address and octal contents.
func (c *CPU) DumpMemory(n int) {
	for i := 0; i < n; i++ {
		fmt.Fprintf(c.Out, "  0%04o: %06o\n", i*2, c.Mem[i])
	}
}
