package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// decodeMovRMReg handles `1000 10dw`: MOV between a register and a
// register/memory operand, direction bit chooses which slot the register
// lands in.
func decodeMovRMReg(first byte, r *reader.Reader) (Instruction, error) {
	d := isa.Direction(first)
	w := isa.Wide(first)

	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	other, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}

	inst := Instruction{Type: isa.Mov, OperandCount: 2, Wide: w}
	if d {
		inst.Dest, inst.Src = RegisterOperand(reg), other
	} else {
		inst.Dest, inst.Src = other, RegisterOperand(reg)
	}
	return inst, nil
}

// decodeMovImmToRM handles `1100 011w`: MOV of an immediate into a register
// or memory destination. The ModRM reg field is architecturally required
// to be zero; spec.md does not ask the decoder to enforce that, so this
// does not check it. output_width is set on the immediate, per spec.md's
// printer contract for this family specifically (not the generic
// memory-destination convention used elsewhere).
func decodeMovImmToRM(first byte, r *reader.Reader) (Instruction, error) {
	w := isa.Wide(first)

	mod, _, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	dest, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}
	imm, err := loadImmediateOperand(r, w, false)
	if err != nil {
		return Instruction{}, err
	}
	imm.OutputWidth = true

	return Instruction{Type: isa.Mov, OperandCount: 2, Wide: w, Dest: dest, Src: imm}, nil
}

// decodeMovImmToReg handles `1011 wreg`: MOV of an immediate directly into
// a register, the most common literal-load form.
func decodeMovImmToReg(first byte, r *reader.Reader) (Instruction, error) {
	w := (first>>3)&1 == 1
	reg := first & 0b111

	imm, err := loadImmediateOperand(r, w, false)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Type: isa.Mov, OperandCount: 2, Wide: w,
		Dest: RegisterOperand(reg), Src: imm,
	}, nil
}

// decodeMovAXMem handles `1010 00dw`: MOV between the accumulator and a
// direct 16-bit memory address, no ModRM byte. The direction bit's sense is
// inverted relative to every other family: d=1 means the accumulator is
// the source.
func decodeMovAXMem(first byte, r *reader.Reader) (Instruction, error) {
	d := isa.Direction(first)
	w := isa.Wide(first)

	addr, err := r.ReadU16LE()
	if err != nil {
		return Instruction{}, err
	}
	mem := Operand{Tag: Memory, ModField: isa.Mem0, RegMemIndex: isa.DirectAddressRM, Value: addr}
	acc := RegisterOperand(isa.AX)

	inst := Instruction{Type: isa.Mov, OperandCount: 2, Wide: w}
	if d {
		inst.Dest, inst.Src = mem, acc
	} else {
		inst.Dest, inst.Src = acc, mem
	}
	return inst, nil
}

// decodeTestXchgRM handles `1000 010w` / `1000 011w`: TEST or XCHG between
// a register and a register/memory operand, disambiguated by bit 1.
func decodeTestXchgRM(first byte, r *reader.Reader) (Instruction, error) {
	w := isa.Wide(first)
	t := isa.Test
	if (first>>1)&1 == 1 {
		t = isa.Xchg
	}

	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	other, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{Type: t, OperandCount: 2, Wide: w, Dest: other, Src: RegisterOperand(reg)}, nil
}

// decodeXchgAccReg handles `1001 0reg`: the short-form register/accumulator
// exchange, always word-sized.
func decodeXchgAccReg(first byte, r *reader.Reader) (Instruction, error) {
	return Instruction{
		Type: isa.Xchg, OperandCount: 2, Wide: true,
		Dest: RegisterOperand(isa.AX), Src: RegisterOperand(first & 0b111),
	}, nil
}
