package executor

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/binarysweep/sim8086/decoder"
	"github.com/binarysweep/sim8086/isa"
)

// supported reports whether Step can apply inst at all: MOV/ADD/SUB/CMP,
// neither operand a Memory reference (spec.md §4.5's scope).
func supported(inst decoder.Instruction) bool {
	switch inst.Type {
	case isa.Mov, isa.Add, isa.Sub, isa.Cmp:
	default:
		return false
	}
	if inst.Dest.Tag == decoder.Memory || inst.Src.Tag == decoder.Memory {
		return false
	}
	return inst.Dest.Tag == decoder.Register || inst.Dest.Tag == decoder.SegmentRegister
}

// readOperand resolves the current value of a Register, SegmentRegister
// or Immediate operand.
func (s *State) readOperand(op decoder.Operand, wide bool) uint16 {
	switch op.Tag {
	case decoder.Register:
		if wide {
			return s.Reg16(op.RegMemIndex)
		}
		return uint16(s.Reg8(op.RegMemIndex))
	case decoder.SegmentRegister:
		return s.SegReg(op.RegMemIndex)
	default: // Immediate
		return op.Value
	}
}

// writeOperand stores v into a Register or SegmentRegister destination.
func (s *State) writeOperand(op decoder.Operand, wide bool, v uint16) {
	switch op.Tag {
	case decoder.Register:
		if wide {
			s.SetReg16(op.RegMemIndex, v)
		} else {
			s.SetReg8(op.RegMemIndex, uint8(v))
		}
	case decoder.SegmentRegister:
		s.SetSegReg(op.RegMemIndex, v)
	}
}

func destName(op decoder.Operand, wide bool) string {
	if op.Tag == decoder.SegmentRegister {
		return isa.SegReg[op.RegMemIndex]
	}
	return RegisterName(op.RegMemIndex, wide)
}

// Step applies inst to s, per spec.md §4.5: MOV copies; ADD/SUB perform
// wrapping arithmetic and store back; CMP computes dest-src without
// storing. It returns the same-line trace comment the top-level loop
// appends after the printed instruction.
func (s *State) Step(inst decoder.Instruction) string {
	if !supported(inst) {
		logrus.WithFields(logrus.Fields{"type": inst.Type.String()}).Debug("executor: instruction not supported")
		return "; not implemented"
	}

	before := s.Flags
	wide := inst.Wide
	dest := s.readOperand(inst.Dest, wide)

	if inst.Type == isa.Mov {
		src := s.readOperand(inst.Src, wide)
		s.writeOperand(inst.Dest, wide, src)
		return fmt.Sprintf("; %s: %s -> %s", destName(inst.Dest, wide), hexWord(dest, wide), hexWord(src, wide))
	}

	src := s.readOperand(inst.Src, wide)
	var result uint16
	if wide {
		result = dest + negateIf(inst.Type == isa.Sub || inst.Type == isa.Cmp, src)
	} else {
		result = uint16(uint8(dest) + uint8(negateIf(inst.Type == isa.Sub || inst.Type == isa.Cmp, src)))
	}

	s.Flags.Sign = signBit(result, wide)
	s.Flags.Zero = isZero(result, wide)
	if inst.Src.Tag == decoder.Immediate {
		s.Flags.Parity = false
	}

	if inst.Type == isa.Cmp {
		return fmt.Sprintf("; %s unchanged (0x%s)  flags: %s -> %s",
			destName(inst.Dest, wide), hexWord(dest, wide), before.String(), s.Flags.String())
	}

	s.writeOperand(inst.Dest, wide, result)
	return fmt.Sprintf("; %s: %s -> %s  flags: %s -> %s",
		destName(inst.Dest, wide), hexWord(dest, wide), hexWord(result, wide), before.String(), s.Flags.String())
}

// negateIf two's-complement negates v when cond is true, used to turn the
// ADD code path above into SUB/CMP by adding the negation.
func negateIf(cond bool, v uint16) uint16 {
	if cond {
		return ^v + 1
	}
	return v
}

func signBit(v uint16, wide bool) bool {
	if wide {
		return v&0x8000 != 0
	}
	return v&0x80 != 0
}

func isZero(v uint16, wide bool) bool {
	if wide {
		return v == 0
	}
	return uint8(v) == 0
}

func hexWord(v uint16, wide bool) string {
	if wide {
		return fmt.Sprintf("0x%04X", v)
	}
	return fmt.Sprintf("0x%02X", uint8(v))
}

// FinalState renders the `; Final state:` block emitted once at
// end-of-input.
func (s *State) FinalState() []string {
	lines := []string{"; Final state:"}
	names16 := isa.Reg16
	for i, v := range s.Reg {
		lines = append(lines, fmt.Sprintf(";   %s: 0x%04X", names16[i], v))
	}
	for i, v := range s.Seg {
		lines = append(lines, fmt.Sprintf(";   %s: 0x%04X", isa.SegReg[i], v))
	}
	lines = append(lines, fmt.Sprintf(";   flags: %s", s.Flags.String()))
	return lines
}
