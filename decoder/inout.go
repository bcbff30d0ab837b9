package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// decodeInOut handles the `1110 01wx` IN/OUT family (refined by mask
// 1111 0100, per spec.md). bit1 is direction (0=IN,1=OUT), bit0 is width,
// bit3 selects a fixed imm8 port versus the variable DX port. The port
// operand is always materialized as a Register(DX) or an Immediate; the
// printer renders the port at a fixed 16-bit width regardless of the
// instruction's own width, and the accumulator at the instruction width.
func decodeInOut(first byte, r *reader.Reader) (Instruction, error) {
	isOut := (first>>1)&1 == 1
	w := first&1 == 1
	variablePort := (first>>3)&1 == 1

	var port Operand
	if variablePort {
		port = RegisterOperand(isa.DX)
	} else {
		b, err := r.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		port = ImmediateOperand(uint16(b))
	}
	acc := RegisterOperand(isa.AX)

	t := isa.In
	inst := Instruction{OperandCount: 2, Wide: w, Dest: acc, Src: port}
	if isOut {
		t = isa.Out
		inst.Dest, inst.Src = port, acc
	}
	inst.Type = t
	return inst, nil
}
