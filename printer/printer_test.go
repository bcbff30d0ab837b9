package printer

import (
	"testing"

	"github.com/binarysweep/sim8086/decoder"
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

func decodeOne(t *testing.T, data []byte) decoder.Instruction {
	t.Helper()
	r := reader.New(data)
	inst, err := decoder.Decode(r)
	if err != nil {
		t.Fatalf("Decode(%v): %v", data, err)
	}
	return inst
}

// TestEndToEndScenarios exercises spec.md's literal decode+print examples.
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"mov reg,reg", []byte{0x89, 0xD9}, "mov cx, bx"},
		{"mov reg,imm16", []byte{0xB8, 0x34, 0x12}, "mov ax, 4660"},
		{"add sign-extended imm", []byte{0x83, 0xC3, 0x05}, "add bx, 5"},
		{"mov direct address", []byte{0xA1, 0x10, 0x00}, "mov ax, [16]"},
		{"jne zero displacement", []byte{0x75, 0xFE}, "jne $+0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Print(decodeOne(t, c.data))
			if got != c.want {
				t.Errorf("Print(%v) = %q, want %q", c.data, got, c.want)
			}
		})
	}
}

func TestRepMovsbConcatenation(t *testing.T) {
	r := reader.New([]byte{0xF3, 0xA4})
	rep, err := decoder.Decode(r)
	if err != nil {
		t.Fatal(err)
	}
	movsb, err := decoder.Decode(r)
	if err != nil {
		t.Fatal(err)
	}
	if !rep.NoNewline {
		t.Fatalf("rep prefix should request no newline")
	}
	got := Print(rep) + " " + Print(movsb)
	if got != "rep movsb" {
		t.Errorf("got %q", got)
	}
}

func TestUnknownOpcodeHexComment(t *testing.T) {
	got := Print(decoder.Instruction{Type: isa.Noop, RawByte: 0x64})
	if got != "; 64" {
		t.Errorf("got %q", got)
	}
}

func TestZeroDisplacementNoPlusZero(t *testing.T) {
	inst := decoder.Instruction{
		Type: isa.Mov, OperandCount: 2, Wide: true,
		Dest: decoder.RegisterOperand(isa.AX),
		Src:  decoder.Operand{Tag: decoder.Memory, ModField: isa.Mem8, RegMemIndex: 6},
	}
	got := Print(inst)
	if got != "mov ax, [bp]" {
		t.Errorf("got %q", got)
	}
}

func TestNegativeDisplacement(t *testing.T) {
	var disp int16 = -2
	inst := decoder.Instruction{
		Type: isa.Mov, OperandCount: 2, Wide: true,
		Dest: decoder.RegisterOperand(isa.AX),
		Src:  decoder.Operand{Tag: decoder.Memory, ModField: isa.Mem8, RegMemIndex: 6, Value: uint16(disp)},
	}
	got := Print(inst)
	if got != "mov ax, [bp - 2]" {
		t.Errorf("got %q", got)
	}
}

func TestShiftRotateNarrowSecondOperand(t *testing.T) {
	inst := decoder.Instruction{
		Type: isa.Shl, OperandCount: 2, Wide: true,
		Dest: decoder.RegisterOperand(isa.BX),
		Src:  decoder.RegisterOperand(isa.CL),
	}
	got := Print(inst)
	if got != "shl bx, cl" {
		t.Errorf("got %q", got)
	}
}

func TestInOutCustomOrdering(t *testing.T) {
	in := decoder.Instruction{
		Type: isa.In, OperandCount: 2, Wide: true,
		Dest: decoder.RegisterOperand(isa.AX),
		Src:  decoder.Operand{Tag: decoder.Register, RegMemIndex: isa.DX},
	}
	if got := Print(in); got != "in ax, dx" {
		t.Errorf("got %q", got)
	}

	out := decoder.Instruction{
		Type: isa.Out, OperandCount: 2, Wide: true,
		Dest: decoder.ImmediateOperand(0x42),
		Src:  decoder.RegisterOperand(isa.AX),
	}
	if got := Print(out); got != "out 66, ax" {
		t.Errorf("got %q", got)
	}
}

func TestWordBytePrefix(t *testing.T) {
	inst := decoder.Instruction{
		Type: isa.Mov, OperandCount: 2, Wide: true,
		Dest: decoder.Operand{Tag: decoder.Memory, ModField: isa.Mem0, RegMemIndex: 0},
		Src:  decoder.Operand{Tag: decoder.Immediate, Value: 5, OutputWidth: true},
	}
	got := Print(inst)
	if got != "mov [bx + si], word 5" {
		t.Errorf("got %q", got)
	}
}
