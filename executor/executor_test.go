package executor

import (
	"testing"

	"github.com/binarysweep/sim8086/decoder"
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// TestMovAddScenario reproduces spec.md's literal executor scenario:
// mov ax,1; mov bx,2; add ax,bx.
func TestMovAddScenario(t *testing.T) {
	r := reader.New([]byte{0xB8, 0x01, 0x00, 0xBB, 0x02, 0x00, 0x01, 0xD8})
	s := New()

	for !r.AtEOF() {
		inst, err := decoder.Decode(r)
		if err != nil {
			t.Fatal(err)
		}
		s.Step(inst)
	}

	if got := s.Reg16(isa.AX); got != 3 {
		t.Errorf("ax = %d, want 3", got)
	}
	if got := s.Reg16(isa.BX); got != 2 {
		t.Errorf("bx = %d, want 2", got)
	}
	if s.Flags.Zero {
		t.Errorf("zero flag set, want clear")
	}
	if s.Flags.Sign {
		t.Errorf("sign flag set, want clear")
	}
	if s.Flags.Parity {
		t.Errorf("parity flag set, want clear")
	}
}

func TestCmpDoesNotStore(t *testing.T) {
	s := New()
	s.SetReg16(isa.AX, 5)
	s.SetReg16(isa.BX, 5)

	inst := decoder.Instruction{
		Type: isa.Cmp, OperandCount: 2, Wide: true,
		Dest: decoder.RegisterOperand(isa.AX), Src: decoder.RegisterOperand(isa.BX),
	}
	s.Step(inst)

	if got := s.Reg16(isa.AX); got != 5 {
		t.Errorf("ax = %d, want unchanged 5", got)
	}
	if !s.Flags.Zero {
		t.Errorf("zero flag clear, want set (5-5=0)")
	}
}

func TestParityStubClearedOnlyForImmediateSource(t *testing.T) {
	s := New()
	s.Flags.Parity = true
	s.SetReg16(isa.AX, 10)

	inst := decoder.Instruction{
		Type: isa.Add, OperandCount: 2, Wide: true,
		Dest: decoder.RegisterOperand(isa.AX), Src: decoder.ImmediateOperand(1),
	}
	s.Step(inst)
	if s.Flags.Parity {
		t.Errorf("parity should clear after immediate-source add")
	}

	s.Flags.Parity = true
	s.SetReg16(isa.BX, 1)
	inst2 := decoder.Instruction{
		Type: isa.Add, OperandCount: 2, Wide: true,
		Dest: decoder.RegisterOperand(isa.AX), Src: decoder.RegisterOperand(isa.BX),
	}
	s.Step(inst2)
	if !s.Flags.Parity {
		t.Errorf("parity should be left untouched for register-source add")
	}
}

func TestUnsupportedInstructionReportsNotImplemented(t *testing.T) {
	s := New()
	inst := decoder.Instruction{Type: isa.Movsb}
	if got := s.Step(inst); got != "; not implemented" {
		t.Errorf("got %q", got)
	}
}

func TestNarrowByteArithmeticWraps(t *testing.T) {
	s := New()
	s.SetReg8(isa.AL, 0xFF)
	inst := decoder.Instruction{
		Type: isa.Add, OperandCount: 2, Wide: false,
		Dest: decoder.RegisterOperand(isa.AL), Src: decoder.ImmediateOperand(1),
	}
	s.Step(inst)
	if got := s.Reg8(isa.AL); got != 0 {
		t.Errorf("al = %d, want wraparound to 0", got)
	}
	if !s.Flags.Zero {
		t.Errorf("zero flag should be set after wraparound to 0")
	}
}
