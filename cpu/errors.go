package cpu

import "fmt"

// BadInstructionError reports a nonzero word that matched no
// instruction family. PC is the address the word was fetched from.
type BadInstructionError struct {
	PC   uint16
	Word uint16
}

func (e *BadInstructionError) Error() string {
	return fmt.Sprintf("bad instruction 0%06o at PC = %06o", e.Word, e.PC)
}
