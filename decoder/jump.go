package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// shortJumpTarget reads the signed 8-bit displacement byte common to
// conditional jumps and the LOOP family, and applies spec.md's "+2"
// convention: the stored value is the offset from the start of the
// instruction following this one.
func shortJumpTarget(r *reader.Reader) (uint16, error) {
	b, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	return uint16(int16(int8(b)) + 2), nil
}

// decodeCondJump handles `0111 cccc`: the 16 conditional short jumps.
func decodeCondJump(first byte, r *reader.Reader) (Instruction, error) {
	target, err := shortJumpTarget(r)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Type: isa.CondJumpType(first & 0b1111), OperandCount: 1,
		Dest: ImmediateOperand(target),
	}, nil
}

// decodeLoopJcxz handles `1110 00cc`: LOOP/LOOPZ/LOOPNZ/JCXZ, same +2
// displacement convention as the conditional jumps.
func decodeLoopJcxz(first byte, r *reader.Reader) (Instruction, error) {
	target, err := shortJumpTarget(r)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Type: isa.LoopType(first & 0b11), OperandCount: 1,
		Dest: ImmediateOperand(target),
	}, nil
}

// decodeRetImm handles the within- and inter-segment RET forms that carry
// a 16-bit immediate (0xC2, 0xCA). Per spec.md's open question, both print
// plain "ret"; only the immediate's presence distinguishes them from the
// plain forms, not a near/far mnemonic split.
func decodeRetImm(first byte, r *reader.Reader) (Instruction, error) {
	imm, err := loadImmediateOperand(r, true, false)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Type: isa.Ret, OperandCount: 1, Wide: true, Dest: imm}, nil
}

// decodeRetPlain handles the within- and inter-segment RET forms with no
// operand (0xC3, 0xCB).
func decodeRetPlain(first byte, r *reader.Reader) (Instruction, error) {
	return Instruction{Type: isa.Ret}, nil
}
