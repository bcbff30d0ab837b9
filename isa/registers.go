// Package isa holds the opcode constants, mnemonic spellings and register
// tables shared by the decoder, printer and executor.
package isa

// Reg8 names the eight 8-bit general-purpose registers, indexed by the
// regmem field of a ModRM byte when the enclosing instruction is narrow.
var Reg8 = [8]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}

// Reg16 names the eight 16-bit general-purpose registers, indexed by the
// regmem field of a ModRM byte when the enclosing instruction is wide.
var Reg16 = [8]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}

// SegReg names the four segment registers, indexed by a 2-bit sreg field.
var SegReg = [4]string{"es", "cs", "ss", "ds"}

// EffectiveAddress names the eight base/index formulas selected by the
// regmem field of a ModRM byte when mod != Reg.
var EffectiveAddress = [8]string{
	"bx + si", "bx + di", "bp + si", "bp + di",
	"si", "di", "bp", "bx",
}

// RM indices for the 8-bit register table, named for readability at call
// sites in the executor.
const (
	AL = 0
	CL = 1
	DL = 2
	BL = 3
	AH = 4
	CH = 5
	DH = 6
	BH = 7
)

// RM indices for the 16-bit register table.
const (
	AX = 0
	CX = 1
	DX = 2
	BX = 3
	SP = 4
	BP = 5
	SI = 6
	DI = 7
)

// DirectAddressRM is the special regmem value that, combined with Mem0,
// denotes a 16-bit absolute address rather than an effective-address
// formula (spec: "direct address").
const DirectAddressRM = 0b110
