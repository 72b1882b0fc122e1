package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/sampazdan/PDP11-Sim/disassembler"
	"github.com/sampazdan/PDP11-Sim/loader"
)

// dis11 disassembles an octal word stream, read from a file or
// stdin, and prints a listing. With -p it also pretty-prints the
// decoded instruction records for debugging.
func main() {
	var pretty bool
	var path string
	for _, arg := range os.Args[1:] {
		if arg == "-p" {
			pretty = true
			continue
		}
		path = arg
	}

	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	words, err := loader.Load(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading words: %v\n", err)
		os.Exit(1)
	}

	if pretty {
		for _, inst := range disassembler.Sweep(words) {
			pp.Println(inst)
		}
		return
	}
	fmt.Print(disassembler.Disassemble(words))
}
