package cpu

import (
	"fmt"
	"io"
)

// Stats holds the execution counters. All six only ever increase;
// they are reset only by starting from a fresh CPU.
type Stats struct {
	// InstrExec counts decoded instructions. The halt word is not an
	// instruction and is not counted here.
	InstrExec int
	// InstrFetch counts words consumed from the instruction stream:
	// every fetched word (halt included) plus inline immediate and
	// index displacement words.
	InstrFetch int
	// WordsRead and WordsWritten count data memory traffic.
	WordsRead    int
	WordsWritten int
	// BranchExec counts every branch instruction evaluated;
	// BranchTaken only those that changed the PC.
	BranchExec  int
	BranchTaken int
}

// Report writes the end-of-run statistics block. The percentage of
// branches taken is included once at least one branch has executed.
func (s *Stats) Report(w io.Writer) {
	fmt.Fprintf(w, "execution statistics (in decimal):\n")
	fmt.Fprintf(w, "  instructions executed     = %d\n", s.InstrExec)
	fmt.Fprintf(w, "  instruction words fetched = %d\n", s.InstrFetch)
	fmt.Fprintf(w, "  data words read           = %d\n", s.WordsRead)
	fmt.Fprintf(w, "  data words written        = %d\n", s.WordsWritten)
	fmt.Fprintf(w, "  branches executed         = %d\n", s.BranchExec)
	fmt.Fprintf(w, "  branches taken            = %d", s.BranchTaken)
	if s.BranchExec != 0 {
		perc := float64(s.BranchTaken) / float64(s.BranchExec) * 100
		fmt.Fprintf(w, " (%.1f%%)", perc)
	}
	fmt.Fprintf(w, "\n")
}
