// Package executor maintains a small 8086 register/flag model and applies
// the MOV/ADD/SUB/CMP subset of decoded instructions to it, the way
// spec.md's executor pins down CPU state semantics once the decoder is
// already correct.
package executor

import "github.com/binarysweep/sim8086/isa"

// Flags is the subset of the 8086 flags word this executor tracks.
// Carry, AuxCarry, Overflow, InterruptEnable, Direction and Trap are
// carried for completeness but never updated by this instruction subset.
type Flags struct {
	Carry           bool
	Parity          bool
	AuxCarry        bool
	Zero            bool
	Sign            bool
	Overflow        bool
	InterruptEnable bool
	Direction       bool
	Trap            bool
}

// String renders the set flags as their letters in C P A Z S O I D T order,
// the order the distilled program's own flag printer used.
func (f Flags) String() string {
	letters := []struct {
		set bool
		ch  byte
	}{
		{f.Carry, 'C'}, {f.Parity, 'P'}, {f.AuxCarry, 'A'}, {f.Zero, 'Z'},
		{f.Sign, 'S'}, {f.Overflow, 'O'}, {f.InterruptEnable, 'I'},
		{f.Direction, 'D'}, {f.Trap, 'T'},
	}
	buf := make([]byte, 0, len(letters))
	for _, l := range letters {
		if l.set {
			buf = append(buf, l.ch)
		}
	}
	return string(buf)
}

// State is the process-local CPU model: eight 16-bit general registers
// (with AL/AH..BL/BH addressable as the low/high bytes of the first four),
// four segment registers, and Flags. Initialized to all zeros and lives
// for the whole run.
type State struct {
	Reg   [8]uint16
	Seg   [4]uint16
	Flags Flags
}

// New returns a zeroed CPU state.
func New() *State {
	return &State{}
}

// Reg16 reads one of the eight 16-bit general registers.
func (s *State) Reg16(idx uint8) uint16 {
	return s.Reg[idx&0b111]
}

// SetReg16 writes one of the eight 16-bit general registers.
func (s *State) SetReg16(idx uint8, v uint16) {
	s.Reg[idx&0b111] = v
}

// Reg8 reads one of the eight 8-bit register aliases (AL..BH, in the
// order spec.md's RM field table gives), masking the low or high byte of
// the corresponding 16-bit register.
func (s *State) Reg8(idx uint8) uint8 {
	base := s.Reg[idx&0b11]
	if idx < 4 {
		return uint8(base)
	}
	return uint8(base >> 8)
}

// SetReg8 writes one of the eight 8-bit register aliases, preserving the
// untouched half of the backing 16-bit register.
func (s *State) SetReg8(idx uint8, v uint8) {
	word := idx & 0b11
	if idx < 4 {
		s.Reg[word] = (s.Reg[word] &^ 0x00FF) | uint16(v)
	} else {
		s.Reg[word] = (s.Reg[word] &^ 0xFF00) | uint16(v)<<8
	}
}

// SegReg reads one of the four segment registers.
func (s *State) SegReg(idx uint8) uint16 {
	return s.Seg[idx&0b11]
}

// SetSegReg writes one of the four segment registers.
func (s *State) SetSegReg(idx uint8, v uint16) {
	s.Seg[idx&0b11] = v
}

// RegisterName returns the printed name of a general register at the
// given width, for trace rendering.
func RegisterName(idx uint8, wide bool) string {
	if wide {
		return isa.Reg16[idx&0b111]
	}
	return isa.Reg8[idx&0b111]
}
