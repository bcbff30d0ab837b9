package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// decodePushReg16 and decodePopReg16 handle the short-form `0101 0reg` /
// `0101 1reg` stack opcodes, always word-sized.
func decodePushReg16(first byte, r *reader.Reader) (Instruction, error) {
	return Instruction{Type: isa.Push, OperandCount: 1, Wide: true, Dest: RegisterOperand(first & 0b111)}, nil
}

func decodePopReg16(first byte, r *reader.Reader) (Instruction, error) {
	return Instruction{Type: isa.Pop, OperandCount: 1, Wide: true, Dest: RegisterOperand(first & 0b111)}, nil
}

// decodePushSeg and decodePopSeg handle the `000 sreg 11w` family; the
// low bit here is a push/pop selector baked into the rule's pattern, not a
// width bit, so width is always 16.
func decodePushSeg(first byte, r *reader.Reader) (Instruction, error) {
	sreg := (first >> 3) & 0b11
	return Instruction{Type: isa.Push, OperandCount: 1, Wide: true, Dest: SegmentRegisterOperand(sreg)}, nil
}

func decodePopSeg(first byte, r *reader.Reader) (Instruction, error) {
	sreg := (first >> 3) & 0b11
	return Instruction{Type: isa.Pop, OperandCount: 1, Wide: true, Dest: SegmentRegisterOperand(sreg)}, nil
}

// decodePopRM handles `1000 1111`: POP into a register or memory
// destination. The ModRM reg field is architecturally required to be
// zero; as with MOV imm→r/m, spec.md leaves that unchecked.
func decodePopRM(first byte, r *reader.Reader) (Instruction, error) {
	mod, _, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	dest, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Type: isa.Pop, OperandCount: 1, Wide: true, Dest: withMemoryWidth(dest)}, nil
}

// decodeGroup1111111w handles `1111 111w`: INC/DEC/CALL/CALL-far/JMP/
// JMP-far/PUSH, selected by the ModRM reg field. reg=0b111 is invalid and
// maps to Noop via isa.Group1111111wType.
func decodeGroup1111111w(first byte, r *reader.Reader) (Instruction, error) {
	w := isa.Wide(first)

	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	operand, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}

	t := isa.Group1111111wType(reg)
	inst := Instruction{Type: t, OperandCount: 1, Wide: w, Dest: operand}

	switch reg {
	case 0, 1: // INC, DEC
		inst.Dest = withMemoryWidth(operand)
	case 6: // PUSH
		inst.Wide = true
		inst.Dest = withMemoryWidth(operand)
	}
	return inst, nil
}
