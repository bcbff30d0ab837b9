package decoder

import (
	"github.com/sirupsen/logrus"

	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// decodeFunc decodes the instruction that starts with the given first byte,
// pulling any further bytes it needs from r.
type decodeFunc func(first byte, r *reader.Reader) (Instruction, error)

// rule pairs a (mask, pattern) opcode match with the handler for it. Rules
// are tried in slice order; the first match for a given byte wins, so more
// specific rules (exact-byte constants) must precede family masks, exactly
// as spec §4.3 orders its own table.
type rule struct {
	mask, pattern byte
	handler       decodeFunc
}

var rules = buildRules()

// table is a 256-entry dispatch table built once from rules, indexed by
// the first opcode byte (spec §9's suggested "dispatch table indexed by
// the first byte").
var table = buildTable()

func buildTable() [256]decodeFunc {
	var t [256]decodeFunc
	for b := 0; b < 256; b++ {
		for _, r := range rules {
			if byte(b)&r.mask == r.pattern {
				t[b] = r.handler
				break
			}
		}
		if t[b] == nil {
			t[b] = decodeUnknown
		}
	}
	return t
}

// Decode classifies the current byte against the ordered opcode patterns,
// invoking the matching operand loader(s), and returns the resulting
// Instruction. The decoder is total: an unrecognized first byte decodes to
// a one-byte Noop carrying the raw byte for the printer's hex-comment form.
func Decode(r *reader.Reader) (Instruction, error) {
	first, err := r.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	return table[first](first, r)
}

func decodeUnknown(first byte, r *reader.Reader) (Instruction, error) {
	logrus.WithFields(logrus.Fields{
		"byte":   first,
		"offset": r.Offset() - 1,
	}).Warn("decoder: unrecognized opcode, emitting hex comment")
	return Instruction{Type: isa.Noop, RawByte: first}, nil
}
