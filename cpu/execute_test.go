package cpu_test

import (
	"errors"
	"testing"

	"github.com/sampazdan/PDP11-Sim/cpu"
)

// runWords loads a program and runs it to halt, failing the test on
// any fault.
func runWords(t *testing.T, words []uint16) *cpu.CPU {
	t.Helper()

	c := cpu.New()
	c.LoadWords(words)
	if err := c.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if c.State != cpu.Halted {
		t.Fatalf("expected Halted, got state %v", c.State)
	}
	return c
}

// mov #5, r0 / add #3, r0 / halt
func TestImmediateProgram(t *testing.T) {
	c := runWords(t, []uint16{012700, 000005, 062700, 000003, 0})

	if c.R[0] != 8 {
		t.Errorf("R0 = %o, want 10 (octal)", c.R[0])
	}
	if c.Stats.InstrExec != 2 {
		t.Errorf("instructions executed = %d, want 2 (halt not counted)", c.Stats.InstrExec)
	}
	// Two opcode fetches, two inline immediates, the halt word.
	if c.Stats.InstrFetch != 5 {
		t.Errorf("instruction words fetched = %d, want 5", c.Stats.InstrFetch)
	}
	if c.Stats.BranchExec != 0 || c.Stats.BranchTaken != 0 {
		t.Errorf("branches = %d/%d, want 0/0", c.Stats.BranchTaken, c.Stats.BranchExec)
	}
	if c.Stats.WordsRead != 0 || c.Stats.WordsWritten != 0 {
		t.Errorf("data words = %d read, %d written, want 0/0",
			c.Stats.WordsRead, c.Stats.WordsWritten)
	}
}

// An empty input stream halts on the implicit zero word.
func TestEmptyProgramHalts(t *testing.T) {
	c := runWords(t, nil)

	if c.Stats.InstrExec != 0 {
		t.Errorf("instructions executed = %d, want 0", c.Stats.InstrExec)
	}
	if c.R[cpu.PC] != 2 {
		t.Errorf("PC = %o, want 2", c.R[cpu.PC])
	}
}

func TestBadInstructionFaults(t *testing.T) {
	c := cpu.New()
	c.LoadWords([]uint16{012700, 000005, 0100000})

	err := c.Run()
	if err == nil {
		t.Fatal("expected a fault, got normal termination")
	}
	var bad *cpu.BadInstructionError
	if !errors.As(err, &bad) {
		t.Fatalf("expected BadInstructionError, got %v", err)
	}
	if bad.PC != 4 {
		t.Errorf("faulting PC = %o, want 4", bad.PC)
	}
	if c.State != cpu.Faulted {
		t.Errorf("expected Faulted, got state %v", c.State)
	}
}

func TestStepAfterHaltIsNoop(t *testing.T) {
	c := runWords(t, []uint16{0})

	pc := c.R[cpu.PC]
	fetched := c.Stats.InstrFetch
	if err := c.Step(); err != nil {
		t.Fatalf("step after halt: %v", err)
	}
	if c.R[cpu.PC] != pc || c.Stats.InstrFetch != fetched {
		t.Error("step after halt mutated the machine")
	}
}

// MOV to an autoincrement destination stores to memory; every other
// destination mode in the subset writes the register.
func TestMOVAutoIncStoresToMemory(t *testing.T) {
	c := cpu.New()
	c.R[2] = 01000
	c.C = 1 // MOV must leave C alone
	c.LoadWords([]uint16{012722, 000123, 0})
	if err := c.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got := c.ReadWord(01000); got != 0123 {
		t.Errorf("mem[1000] = %o, want 123", got)
	}
	if c.R[2] != 01002 {
		t.Errorf("R2 = %o, want 1002", c.R[2])
	}
	if c.Stats.WordsWritten != 1 {
		t.Errorf("data words written = %d, want 1", c.Stats.WordsWritten)
	}
	if c.C != 1 {
		t.Error("MOV changed the C flag")
	}
	if c.V != 0 || c.N != 0 || c.Z != 0 {
		t.Errorf("nzv = %d%d%d, want 000", c.N, c.Z, c.V)
	}
}
