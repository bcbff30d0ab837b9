package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// decodeShiftRotate handles `1101 00vw`: the ROL/ROR/RCL/RCR/SHL/SHR/SAR
// group. When v=1 the shift count comes from CL at runtime; the decoder
// still materializes a Register(CL) operand so the printer has something
// to render. The printer narrows this second operand to 8 bits regardless
// of the instruction's own width.
func decodeShiftRotate(first byte, r *reader.Reader) (Instruction, error) {
	v := (first>>1)&1 == 1
	w := isa.Wide(first)

	mod, reg, rm, err := readModRM(r)
	if err != nil {
		return Instruction{}, err
	}
	dest, err := loadMemoryOperand(r, mod, rm)
	if err != nil {
		return Instruction{}, err
	}

	src := ImmediateOperand(1)
	if v {
		src = RegisterOperand(isa.CL)
	}

	return Instruction{
		Type: isa.ShiftRotateType(reg), OperandCount: 2, Wide: w,
		Dest: dest, Src: src,
	}, nil
}
