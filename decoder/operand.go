package decoder

import (
	"github.com/pkg/errors"

	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// loadMemoryOperand implements spec §4.2's load_memory_operand: given a
// parsed mod/rm pair it consumes 0, 1 or 2 further bytes and returns the
// resulting Operand.
func loadMemoryOperand(r *reader.Reader, mod isa.Mod, rm uint8) (Operand, error) {
	if mod == isa.Reg {
		return RegisterOperand(rm), nil
	}

	if mod == isa.Mem0 {
		if rm == isa.DirectAddressRM {
			addr, err := r.ReadU16LE()
			if err != nil {
				return Operand{}, errors.Wrap(err, "load direct address")
			}
			return Operand{Tag: Memory, ModField: isa.Mem0, RegMemIndex: rm, Value: addr}, nil
		}
		return Operand{Tag: Memory, ModField: isa.Mem0, RegMemIndex: rm}, nil
	}

	if mod == isa.Mem8 {
		b, err := r.ReadU8()
		if err != nil {
			return Operand{}, errors.Wrap(err, "load 8-bit displacement")
		}
		disp := uint16(int16(int8(b)))
		return Operand{Tag: Memory, ModField: isa.Mem8, RegMemIndex: rm, Value: disp}, nil
	}

	// Mem16
	disp, err := r.ReadU16LE()
	if err != nil {
		return Operand{}, errors.Wrap(err, "load 16-bit displacement")
	}
	return Operand{Tag: Memory, ModField: isa.Mem16, RegMemIndex: rm, Value: disp}, nil
}

// loadImmediateOperand implements spec §4.2's load_immediate_operand.
func loadImmediateOperand(r *reader.Reader, wide, signExtend bool) (Operand, error) {
	if signExtend {
		b, err := r.ReadU8()
		if err != nil {
			return Operand{}, errors.Wrap(err, "load sign-extended immediate")
		}
		return ImmediateOperand(uint16(int16(int8(b)))), nil
	}
	if wide {
		v, err := r.ReadU16LE()
		if err != nil {
			return Operand{}, errors.Wrap(err, "load wide immediate")
		}
		return ImmediateOperand(v), nil
	}
	b, err := r.ReadU8()
	if err != nil {
		return Operand{}, errors.Wrap(err, "load narrow immediate")
	}
	return ImmediateOperand(uint16(b)), nil
}
