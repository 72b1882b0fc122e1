package main

import (
	"fmt"
	"os"

	"github.com/sampazdan/PDP11-Sim/assembler"
)

// asm11 assembles a source file and writes the octal word stream the
// simulator loads, one word per line.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <sourcefile>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source file: %v\n", err)
		os.Exit(1)
	}

	asm := assembler.New()
	words, err := asm.Assemble(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range words {
		fmt.Printf("%06o\n", w)
	}
}
