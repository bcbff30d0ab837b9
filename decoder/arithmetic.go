package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// decodeArithmeticRM handles `00xxx0dw`: the eight ADD/OR/ADC/SBB/AND/
// SUB/XOR/CMP opcodes in their register/memory form. The direction bit
// picks which slot the ModRM register field lands in (spec.md's direction
// normalization), removing any later need for a switch-operands flag.
func decodeArithmeticRM(first byte, r *reader.Reader) (Instruction, error) {
	opType := (first >> 3) & 0b111
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

	inst := Instruction{Type: isa.ArithmeticType(opType), OperandCount: 2, Wide: w}
	if d {
		inst.Dest, inst.Src = RegisterOperand(reg), other
	} else {
		inst.Dest, inst.Src = other, RegisterOperand(reg)
	}
	return inst, nil
}

// decodeArithmeticImmToAcc handles `00xxx10w`: an arithmetic family op with
// an immediate source and the accumulator as destination.
func decodeArithmeticImmToAcc(first byte, r *reader.Reader) (Instruction, error) {
	opType := (first >> 3) & 0b111
	w := isa.Wide(first)

	imm, err := loadImmediateOperand(r, w, false)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Type: isa.ArithmeticType(opType), OperandCount: 2, Wide: w,
		Dest: RegisterOperand(isa.AX), Src: imm,
	}, nil
}

// decodeImmToRM handles `1000 00sw`: the immediate-to-r/m arithmetic group,
// its operation selected by the ModRM reg field.
func decodeImmToRM(first byte, r *reader.Reader) (Instruction, error) {
	s := isa.Sign(first)
	w := isa.Wide(first)

	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	dest, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}
	imm, err := loadImmediateOperand(r, w, s)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Type: isa.ImmediateToRMType(reg), OperandCount: 2, Wide: w,
		Dest: withMemoryWidth(dest), Src: imm,
	}, nil
}

// decodeIncReg16 and decodeDecReg16 handle the short-form `0100 0reg` /
// `0100 1reg` register increment/decrement opcodes, always word-sized.
func decodeIncReg16(first byte, r *reader.Reader) (Instruction, error) {
	return Instruction{Type: isa.Inc, OperandCount: 1, Wide: true, Dest: RegisterOperand(first & 0b111)}, nil
}

func decodeDecReg16(first byte, r *reader.Reader) (Instruction, error) {
	return Instruction{Type: isa.Dec, OperandCount: 1, Wide: true, Dest: RegisterOperand(first & 0b111)}, nil
}

// decodeTestImmAX handles `1010 100w`: TEST with an immediate against the
// accumulator.
func decodeTestImmAX(first byte, r *reader.Reader) (Instruction, error) {
	w := isa.Wide(first)
	imm, err := loadImmediateOperand(r, w, false)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Type: isa.Test, OperandCount: 2, Wide: w,
		Dest: RegisterOperand(isa.AX), Src: imm,
	}, nil
}
