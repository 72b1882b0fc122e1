package main

import (
	"fmt"
	"os"

	"github.com/sampazdan/PDP11-Sim/cpu"
	"github.com/sampazdan/PDP11-Sim/loader"
)

// pdp11 runs a pre-assembled program, read as octal words on stdin,
// and prints execution statistics. -t traces each instruction; -v
// additionally dumps registers, operand values and flags per step,
// echoes the loaded program and dumps memory after halt. Any other
// argument is ignored.
func main() {
	var trace, verbose bool
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-t":
			trace = true
		case "-v":
			trace = true
			verbose = true
		}
	}

	if verbose {
		fmt.Println("reading words in octal from stdin:")
	}
	words, err := loader.Load(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading program: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		for _, w := range words {
			fmt.Printf("  0%06o\n", w)
		}
	}

	c := cpu.New()
	c.Trace = trace
	c.Verbose = verbose
	c.LoadWords(words)

	if trace {
		fmt.Println("\ninstruction trace:")
	}

	if err := c.Run(); err != nil {
		if bad, ok := err.(*cpu.BadInstructionError); ok {
			fmt.Printf("\nBAD INSTRUCTION AT PC = %06o\n", bad.PC)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if trace || verbose {
		fmt.Println()
	}
	c.Stats.Report(os.Stdout)

	if verbose {
		fmt.Println("\nfirst 20 words of memory after execution halts:")
		c.DumpMemory(20)
	}
}
