package decoder

import (
	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// decodeRepPrefix handles `1111 001w`: the REP prefix shares a printed line
// with the string instruction it modifies, so it never consumes operand
// bytes of its own.
func decodeRepPrefix(first byte, r *reader.Reader) (Instruction, error) {
	return Instruction{Type: isa.Rep, NoNewline: true}, nil
}

// decodeStringOp returns a decoder for one of the byte/word string-op
// families (MOVS/CMPS/SCAS/LODS/STOS), all of which are bare one-byte,
// zero-operand opcodes distinguished only by the wide bit.
func decodeStringOp(narrow, wide isa.Type) decodeFunc {
	return func(first byte, r *reader.Reader) (Instruction, error) {
		if isa.Wide(first) {
			return Instruction{Type: wide}, nil
		}
		return Instruction{Type: narrow}, nil
	}
}
