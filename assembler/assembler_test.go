package assembler_test

import (
	"testing"

	"github.com/sampazdan/PDP11-Sim/assembler"
	"github.com/sampazdan/PDP11-Sim/cpu"
)

// assembleAndMatch assembles source and checks the emitted words.
func assembleAndMatch(t *testing.T, name, src string, want []uint16) {
	t.Helper()

	asm := assembler.New()
	words, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	if len(words) != len(want) {
		t.Fatalf("[%s] emitted %d words, want %d\ngot: %06o\nwant: %06o",
			name, len(words), len(want), words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("[%s] word %d = %06o, want %06o", name, i, words[i], want[i])
			break
		}
	}
}

func TestBasicEncodings(t *testing.T) {
	tests := []struct {
		name, src string
		words     []uint16
	}{
		{"MOV_Immediate", "mov #5, r0", []uint16{012700, 000005}},
		{"ADD_Immediate", "add #3, r0", []uint16{062700, 000003}},
		{"MOV_Registers", "mov r1, r2", []uint16{010102}},
		{"MOV_AutoInc", "mov r1, (r2)+", []uint16{010122}},
		{"CMP_DecDeferred", "cmp -(sp), @(r3)+", []uint16{024633}},
		{"SUB_RegDef", "sub (r4), r5", []uint16{0161405}},
		{"MOV_RegisterDeferredAt", "mov @r1, r0", []uint16{011100}},
		{"ADD_Index", "add 10(r2), r0", []uint16{066200, 000010}},
		{"MOV_IndexDeferred", "mov r0, @20(r3)", []uint16{010073, 000020}},
		{"ASL", "asl r2", []uint16{006302}},
		{"ASR_Index", "asr 10(r4)", []uint16{006264, 000010}},
		{"HALT", "halt", []uint16{000000}},
		{"WORD", ".word 123, 456", []uint16{000123, 000456}},
	}
	for _, tc := range tests {
		assembleAndMatch(t, tc.name, tc.src, tc.words)
	}
}

func TestBranchEncodings(t *testing.T) {
	tests := []struct {
		name, src string
		words     []uint16
	}{
		{
			"SOB_Self",
			"loop: sob r0, loop",
			[]uint16{077001},
		},
		{
			"BNE_Backward",
			"mov #2, r0\nloop: sub #1, r0\nbne loop\nhalt",
			[]uint16{012700, 000002, 0162700, 000001, 001375, 0},
		},
		{
			"BEQ_Forward",
			"cmp r0, r1\nbeq done\nhalt\ndone: halt",
			[]uint16{020001, 001401, 0, 0},
		},
		{
			"BR_Forward",
			"br skip\n.word 177777\nskip: halt",
			[]uint16{000401, 0177777, 0},
		},
	}
	for _, tc := range tests {
		assembleAndMatch(t, tc.name, tc.src, tc.words)
	}
}

func TestCommentsAndLabels(t *testing.T) {
	src := `
; counting loop
	mov	#2, r0		; counter
loop:	sob	r0, loop	; spin
	halt
`
	assembleAndMatch(t, "Commented", src, []uint16{012700, 000002, 077001, 0})
}

func TestErrors(t *testing.T) {
	tests := []struct{ name, src string }{
		{"UnknownMnemonic", "frob r0"},
		{"BadOperand", "mov #5, 5"},
		{"UndefinedLabel", "br nowhere"},
		{"BEQBackward", "top: halt\ncmp r0, r0\nbeq top"},
		{"BRBackward", "top: halt\nbr top"},
		{"SOBForward", "sob r0, fwd\nfwd: halt"},
		{"DuplicateLabel", "a: halt\na: halt"},
		{"TooFewOperands", "add r0"},
		{"BadWordValue", ".word 999"},
	}
	for _, tc := range tests {
		asm := assembler.New()
		if _, err := asm.Assemble(tc.src); err == nil {
			t.Errorf("[%s] expected an error for:\n%s", tc.name, tc.src)
		}
	}
}

// Assembled output runs on the simulator directly.
func TestAssembledLoopRuns(t *testing.T) {
	src := `
	mov	#5, r0
	mov	#3, r1
loop:	add	#2, r0
	sob	r1, loop
	halt
`
	asm := assembler.New()
	words, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	c := cpu.New()
	c.LoadWords(words)
	if err := c.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if c.R[0] != 013 {
		t.Errorf("R0 = %o, want 13", c.R[0])
	}
	if c.Stats.BranchExec != 3 || c.Stats.BranchTaken != 2 {
		t.Errorf("branches = %d/%d, want 2/3", c.Stats.BranchTaken, c.Stats.BranchExec)
	}
}
