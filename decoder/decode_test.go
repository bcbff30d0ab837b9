package decoder

import (
	"testing"

	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

func decodeAll(t *testing.T, data []byte) []Instruction {
	t.Helper()
	r := reader.New(data)
	var insts []Instruction
	for !r.AtEOF() {
		inst, err := Decode(r)
		if err != nil {
			t.Fatalf("Decode(%v): %v", data, err)
		}
		insts = append(insts, inst)
	}
	return insts
}

func TestDecodeMovRegReg(t *testing.T) {
	insts := decodeAll(t, []byte{0x89, 0xD9}) // mov cx, bx
	if len(insts) != 1 {
		t.Fatalf("want 1 instruction, got %d", len(insts))
	}
	inst := insts[0]
	if inst.Type != isa.Mov || !inst.Wide {
		t.Fatalf("got %+v", inst)
	}
	if inst.Dest.Tag != Register || inst.Dest.RegMemIndex != isa.CX {
		t.Fatalf("dest = %+v", inst.Dest)
	}
	if inst.Src.Tag != Register || inst.Src.RegMemIndex != isa.BX {
		t.Fatalf("src = %+v", inst.Src)
	}
}

func TestDecodeMovImmToReg(t *testing.T) {
	insts := decodeAll(t, []byte{0xB8, 0x34, 0x12}) // mov ax, 4660
	inst := insts[0]
	if inst.Type != isa.Mov || !inst.Wide {
		t.Fatalf("got %+v", inst)
	}
	if inst.Src.Tag != Immediate || inst.Src.Value != 0x1234 {
		t.Fatalf("src = %+v", inst.Src)
	}
}

func TestDecodeSignExtendedImmediate(t *testing.T) {
	insts := decodeAll(t, []byte{0x83, 0xC3, 0x05}) // add bx, 5
	inst := insts[0]
	if inst.Type != isa.Add || !inst.Wide {
		t.Fatalf("got %+v", inst)
	}
	if inst.Src.Value != 5 {
		t.Fatalf("src = %+v", inst.Src)
	}

	insts = decodeAll(t, []byte{0x83, 0xC3, 0xFB}) // add bx, -5
	inst = insts[0]
	if int16(inst.Src.Value) != -5 {
		t.Fatalf("want -5, got %d", int16(inst.Src.Value))
	}
}

func TestDecodeDirectAddress(t *testing.T) {
	insts := decodeAll(t, []byte{0xA1, 0x10, 0x00}) // mov ax, [16]
	inst := insts[0]
	if inst.Src.Tag != Memory || inst.Src.ModField != isa.Mem0 || inst.Src.RegMemIndex != isa.DirectAddressRM {
		t.Fatalf("src = %+v", inst.Src)
	}
	if inst.Src.Value != 16 {
		t.Fatalf("want address 16, got %d", inst.Src.Value)
	}

	// Direct address also reachable through a general ModRM-bearing
	// family (mov r/m, reg with mod=00, rm=110).
	insts = decodeAll(t, []byte{0x89, 0x06, 0x10, 0x00}) // mov [16], ax
	inst = insts[0]
	if inst.Dest.Tag != Memory || inst.Dest.RegMemIndex != isa.DirectAddressRM || inst.Dest.Value != 16 {
		t.Fatalf("dest = %+v", inst.Dest)
	}
}

func TestDecodeZeroDisplacementMod01(t *testing.T) {
	insts := decodeAll(t, []byte{0x8B, 0x46, 0x00}) // mov ax, [bp+0]
	inst := insts[0]
	if inst.Src.Tag != Memory || inst.Src.ModField != isa.Mem8 || inst.Src.Value != 0 {
		t.Fatalf("src = %+v", inst.Src)
	}
}

func TestDecodeShiftByCLVsOne(t *testing.T) {
	insts := decodeAll(t, []byte{0xD0, 0xE3}) // shl bl, 1
	inst := insts[0]
	if inst.Type != isa.Shl || inst.Wide {
		t.Fatalf("got %+v", inst)
	}
	if inst.Src.Tag != Immediate || inst.Src.Value != 1 {
		t.Fatalf("src = %+v", inst.Src)
	}

	insts = decodeAll(t, []byte{0xD2, 0xE3}) // shl bl, cl
	inst = insts[0]
	if inst.Src.Tag != Register || inst.Src.RegMemIndex != isa.CL {
		t.Fatalf("src = %+v", inst.Src)
	}
}

func TestDecodeRepMovsw(t *testing.T) {
	insts := decodeAll(t, []byte{0xF3, 0xA5}) // rep movsw
	if len(insts) != 2 {
		t.Fatalf("want 2 instructions, got %d", len(insts))
	}
	if insts[0].Type != isa.Rep || !insts[0].NoNewline {
		t.Fatalf("got %+v", insts[0])
	}
	if insts[1].Type != isa.Movsw {
		t.Fatalf("got %+v", insts[1])
	}
}

func TestDecodeLockXchg(t *testing.T) {
	insts := decodeAll(t, []byte{0xF0, 0x86, 0xD9}) // lock xchg cl, bl
	if len(insts) != 2 {
		t.Fatalf("want 2 instructions, got %d", len(insts))
	}
	if insts[0].Type != isa.Lock || !insts[0].NoNewline {
		t.Fatalf("got %+v", insts[0])
	}
	if insts[1].Type != isa.Xchg {
		t.Fatalf("got %+v", insts[1])
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	insts := decodeAll(t, []byte{0x64, 0x89, 0xD9}) // 0x64 is unclassified here, then a mov follows
	if len(insts) != 2 {
		t.Fatalf("want 2 instructions, got %d", len(insts))
	}
	if insts[0].Type != isa.Noop || insts[0].RawByte != 0x64 {
		t.Fatalf("got %+v", insts[0])
	}
	if insts[1].Type != isa.Mov {
		t.Fatalf("got %+v", insts[1])
	}
}

func TestDecodeConditionalJumpDisplacement(t *testing.T) {
	insts := decodeAll(t, []byte{0x75, 0xFE}) // jne $+0
	inst := insts[0]
	if inst.Type != isa.Jne {
		t.Fatalf("got %+v", inst)
	}
	if int16(inst.Dest.Value) != 0 {
		t.Fatalf("want displacement 0, got %d", int16(inst.Dest.Value))
	}
}

func TestDecodeInOutVariablePort(t *testing.T) {
	insts := decodeAll(t, []byte{0xEC}) // in al, dx
	inst := insts[0]
	if inst.Type != isa.In || inst.Wide {
		t.Fatalf("got %+v", inst)
	}
	if inst.Src.Tag != Register || inst.Src.RegMemIndex != isa.DX {
		t.Fatalf("src = %+v", inst.Src)
	}
}
