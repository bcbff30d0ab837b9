package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// zeroOperandRule is a single exact-byte, zero-operand opcode.
type zeroOperandRule struct {
	byte      byte
	kind      isa.Type
	noNewline bool
}

var zeroOperandTable = []zeroOperandRule{
	{isa.OpDAA, isa.Daa, false},
	{isa.OpDAS, isa.Das, false},
	{isa.OpAAA, isa.Aaa, false},
	{isa.OpAAS, isa.Aas, false},
	{isa.OpCBW, isa.Cbw, false},
	{isa.OpCWD, isa.Cwd, false},
	{isa.OpPUSHF, isa.Pushf, false},
	{isa.OpPOPF, isa.Popf, false},
	{isa.OpSAHF, isa.Sahf, false},
	{isa.OpLAHF, isa.Lahf, false},
	{isa.OpXLAT, isa.Xlat, false},
	{isa.OpINTO, isa.Into, false},
	{isa.OpIRET, isa.Iret, false},
	{isa.OpCLC, isa.Clc, false},
	{isa.OpCMC, isa.Cmc, false},
	{isa.OpSTC, isa.Stc, false},
	{isa.OpCLD, isa.Cld, false},
	{isa.OpSTD, isa.Std, false},
	{isa.OpCLI, isa.Cli, false},
	{isa.OpSTI, isa.Sti, false},
	{isa.OpHLT, isa.Hlt, false},
	{isa.OpWAIT, isa.Wait, false},
	{isa.OpLOCK, isa.Lock, true},
}

// zeroOperandRules expands zeroOperandTable into exact-byte decoder rules.
func zeroOperandRules() []rule {
	rs := make([]rule, 0, len(zeroOperandTable))
	for _, z := range zeroOperandTable {
		z := z
		rs = append(rs, rule{0xFF, z.byte, func(first byte, r *reader.Reader) (Instruction, error) {
			return Instruction{Type: z.kind, NoNewline: z.noNewline}, nil
		}})
	}
	return rs
}

// decodeInt3 handles `1100 1100`: INT with an implicit immediate of 3, no
// byte consumed.
func decodeInt3(first byte, r *reader.Reader) (Instruction, error) {
	return Instruction{Type: isa.Int, OperandCount: 1, Dest: ImmediateOperand(3)}, nil
}

// decodeIntImm8 handles `1100 1101`: INT with an explicit 8-bit immediate.
func decodeIntImm8(first byte, r *reader.Reader) (Instruction, error) {
	op, err := loadImmediateOperand(r, false, false)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Type: isa.Int, OperandCount: 1, Dest: op}, nil
}

// decodeAam and decodeAad read and discard the single trailing byte the
// source itself treats as anomalous (spec.md's open question: it expects
// 0b00001010 and never checks).
func decodeAam(first byte, r *reader.Reader) (Instruction, error) {
	if _, err := r.ReadU8(); err != nil {
		return Instruction{}, err
	}
	return Instruction{Type: isa.Aam}, nil
}

func decodeAad(first byte, r *reader.Reader) (Instruction, error) {
	if _, err := r.ReadU8(); err != nil {
		return Instruction{}, err
	}
	return Instruction{Type: isa.Aad}, nil
}

// decodeLeaLdsLes handles LEA/LDS/LES: always wide, register destination,
// memory source.
func decodeLeaLdsLes(first byte, r *reader.Reader) (Instruction, error) {
	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	src, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}

	var t isa.Type
	switch first {
	case isa.OpLEA:
		t = isa.Lea
	case isa.OpLDS:
		t = isa.Lds
	default:
		t = isa.Les
	}

	return Instruction{
		Type: t, OperandCount: 2, Wide: true,
		Dest: RegisterOperand(reg), Src: src,
	}, nil
}

// decodeMovSegFromRM handles `1000 1110`: MOV sreg, r/m.
func decodeMovSegFromRM(first byte, r *reader.Reader) (Instruction, error) {
	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	src, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Type: isa.Mov, OperandCount: 2, Wide: true,
		Dest: SegmentRegisterOperand(reg & 0b11), Src: src,
	}, nil
}

// decodeMovSegToRM handles `1000 1100`: MOV r/m, sreg.
func decodeMovSegToRM(first byte, r *reader.Reader) (Instruction, error) {
	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	dest, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Type: isa.Mov, OperandCount: 2, Wide: true,
		Dest: dest, Src: SegmentRegisterOperand(reg & 0b11),
	}, nil
}
