package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// decodeGroup1111011w handles `1111 011w`: TEST-with-immediate/NOT/NEG/
// MUL/IMUL/DIV/IDIV, selected by the ModRM reg field. reg=1 is invalid and
// maps to Noop via isa.Group1111011wType.
func decodeGroup1111011w(first byte, r *reader.Reader) (Instruction, error) {
	w := isa.Wide(first)

	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	operand, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}

	t := isa.Group1111011wType(reg)
	if reg == 0 { // TEST takes a trailing immediate
		imm, err := loadImmediateOperand(r, w, false)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Type: t, OperandCount: 2, Wide: w, Dest: operand, Src: imm}, nil
	}

	return Instruction{Type: t, OperandCount: 1, Wide: w, Dest: operand}, nil
}
