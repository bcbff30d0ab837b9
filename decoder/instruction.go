package decoder

import "github.com/binarysweep/sim8086/isa"

// OperandTag is the closed set of operand kinds an Operand can carry.
type OperandTag int

const (
	Immediate OperandTag = iota
	Memory
	Register
	SegmentRegister
)

// Operand is a tagged value: an immediate, a memory reference, a register,
// or a segment register. RegMemIndex is interpreted under Tag and under the
// enclosing Instruction's Wide bit; ModField is only meaningful for Memory.
type Operand struct {
	Tag OperandTag

	RegMemIndex uint8
	ModField    isa.Mod

	// Value holds the immediate value or the displacement, depending on
	// Tag. ValueLow/ValueHigh address the same bits split into bytes,
	// little-endian, matching the union the distilled program used.
	Value uint16

	// OutputWidth requests a "word "/"byte " printer prefix on Memory and
	// Immediate operands so a cooperating assembler can infer the width.
	OutputWidth bool
}

// ValueLow returns the low byte of Value.
func (o Operand) ValueLow() uint8 { return uint8(o.Value) }

// ValueHigh returns the high byte of Value.
func (o Operand) ValueHigh() uint8 { return uint8(o.Value >> 8) }

// RegisterOperand builds a Register-tagged operand.
func RegisterOperand(index uint8) Operand {
	return Operand{Tag: Register, RegMemIndex: index}
}

// SegmentRegisterOperand builds a SegmentRegister-tagged operand.
func SegmentRegisterOperand(index uint8) Operand {
	return Operand{Tag: SegmentRegister, RegMemIndex: index}
}

// ImmediateOperand builds an Immediate-tagged operand.
func ImmediateOperand(value uint16) Operand {
	return Operand{Tag: Immediate, Value: value}
}

// Instruction is the canonical decoded form of one 8086 instruction: a
// mnemonic kind, up to two operands, and the width that governs both how
// register operands were selected and how Immediate/Memory operands print.
type Instruction struct {
	Type         isa.Type
	OperandCount int
	Dest         Operand
	Src          Operand
	Wide         bool

	// RawByte carries the undecoded first byte for the Noop fallback's
	// hex-comment rendering (spec §4.3 "anything else" row).
	RawByte byte

	// NoNewline marks prefix forms (LOCK, REP) whose printed mnemonic
	// shares a line with the instruction that follows.
	NoNewline bool
}
