package isa

// Type is the closed set of mnemonic kinds a decoded Instruction can carry.
// It mirrors the distilled program's InstructionType enumeration, minus
// the two original members (ESC, SEGMENT) that no row of the decoder table
// actually produces.
type Type int

const (
	Noop Type = iota

	// Data transfer
	Mov
	Push
	Pop
	Xchg
	In
	Out
	Xlat
	Lea
	Lds
	Les
	Lahf
	Sahf
	Pushf
	Popf

	// Arithmetic
	Add
	Adc
	Inc
	Aaa
	Daa
	Sub
	Sbb
	Dec
	Neg
	Cmp
	Aas
	Das
	Mul
	Imul
	Aam
	Div
	Idiv
	Aad
	Cbw
	Cwd

	// Logic
	Not
	Shl
	Shr
	Sar
	Rol
	Ror
	Rcl
	Rcr
	And
	Test
	Or
	Xor

	// String manipulation
	Rep
	Movsb
	Movsw
	Cmpsb
	Cmpsw
	Scasb
	Scasw
	Lodsb
	Lodsw
	Stosb
	Stosw

	// Control transfer
	Call
	Jmp
	Ret
	Je
	Jl
	Jle
	Jb
	Jbe
	Jp
	Jo
	Js
	Jne
	Jnl
	Jnle
	Jnb
	Jnbe
	Jnp
	Jno
	Jns
	Loop
	Loopz
	Loopnz
	Jcxz
	Int
	Into
	Iret

	// Processor control
	Clc
	Cmc
	Stc
	Cld
	Std
	Cli
	Sti
	Hlt
	Wait
	Lock
)

// mnemonics holds the printed spelling for every Type, indexed positionally.
// Noop's entry is never used directly by the printer (it renders a hex
// comment instead) but is kept for completeness of the table.
var mnemonics = [...]string{
	Noop: "; noop",

	Mov: "mov", Push: "push", Pop: "pop", Xchg: "xchg", In: "in", Out: "out",
	Xlat: "xlat", Lea: "lea", Lds: "lds", Les: "les", Lahf: "lahf",
	Sahf: "sahf", Pushf: "pushf", Popf: "popf",

	Add: "add", Adc: "adc", Inc: "inc", Aaa: "aaa", Daa: "daa", Sub: "sub",
	Sbb: "sbb", Dec: "dec", Neg: "neg", Cmp: "cmp", Aas: "aas", Das: "das",
	Mul: "mul", Imul: "imul", Aam: "aam", Div: "div", Idiv: "idiv",
	Aad: "aad", Cbw: "cbw", Cwd: "cwd",

	Not: "not", Shl: "shl", Shr: "shr", Sar: "sar", Rol: "rol", Ror: "ror",
	Rcl: "rcl", Rcr: "rcr", And: "and", Test: "test", Or: "or", Xor: "xor",

	Rep: "rep", Movsb: "movsb", Movsw: "movsw", Cmpsb: "cmpsb",
	Cmpsw: "cmpsw", Scasb: "scasb", Scasw: "scasw", Lodsb: "lodsb",
	Lodsw: "lodsw", Stosb: "stosb", Stosw: "stosw",

	Call: "call", Jmp: "jmp", Ret: "ret", Je: "je", Jl: "jl", Jle: "jle",
	Jb: "jb", Jbe: "jbe", Jp: "jp", Jo: "jo", Js: "js", Jne: "jne",
	Jnl: "jnl", Jnle: "jnle", Jnb: "jnb", Jnbe: "jnbe", Jnp: "jnp",
	Jno: "jno", Jns: "jns", Loop: "loop", Loopz: "loopz", Loopnz: "loopnz",
	Jcxz: "jcxz", Int: "int", Into: "into", Iret: "iret",

	Clc: "clc", Cmc: "cmc", Stc: "stc", Cld: "cld", Std: "std", Cli: "cli",
	Sti: "sti", Hlt: "hlt", Wait: "wait", Lock: "lock",
}

// String returns the assembly mnemonic for t.
func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(mnemonics) {
		return "; ?"
	}
	return mnemonics[t]
}

// arithmeticFamily maps the 3-bit opType field of the "00xxx0dw"/"00xxx10w"
// byte families to an instruction Type, in table order (spec §4.3).
var arithmeticFamily = [8]Type{Add, Or, Adc, Sbb, And, Sub, Xor, Cmp}

// ArithmeticType returns the instruction Type for the arithmetic-family
// sub-opcode extracted from bits 5..3 of the first opcode byte.
func ArithmeticType(opType uint8) Type {
	return arithmeticFamily[opType&0b111]
}

// group2ShiftRotate maps the reg field of a shift/rotate ModRM byte (family
// "1101 00vw") to an instruction Type; reg=6 is unused/invalid.
var group2ShiftRotate = [8]Type{Rol, Ror, Rcl, Rcr, Shl, Shr, Noop, Sar}

// ShiftRotateType returns the instruction Type for a shift/rotate
// sub-opcode (the reg field of the ModRM byte).
func ShiftRotateType(reg uint8) Type {
	return group2ShiftRotate[reg&0b111]
}

// group1ImmToRM maps the reg field of the immediate-to-r/m arithmetic
// family (100000sw) to an instruction Type.
var group1ImmToRM = [8]Type{Add, Or, Adc, Sbb, And, Sub, Xor, Cmp}

// ImmediateToRMType returns the instruction Type for the immediate-to-r/m
// arithmetic sub-opcode (the reg field of the ModRM byte).
func ImmediateToRMType(reg uint8) Type {
	return group1ImmToRM[reg&0b111]
}

// condJump names the 16 conditional short-jump mnemonics in opcode order
// (first byte 0111 cccc).
var condJump = [16]Type{Jo, Jno, Jb, Jnb, Je, Jne, Jbe, Jnbe, Js, Jns, Jp, Jnp, Jl, Jnl, Jle, Jnle}

// CondJumpType returns the instruction Type for a conditional short jump's
// 4-bit condition code.
func CondJumpType(cond uint8) Type {
	return condJump[cond&0b1111]
}

// loopFamily names the four LOOP/LOOPZ/LOOPNZ/JCXZ variants in opcode
// order (first byte 1110 00cc).
var loopFamily = [4]Type{Loopnz, Loopz, Loop, Jcxz}

// LoopType returns the instruction Type for the 2-bit LOOP/JCXZ selector.
func LoopType(sel uint8) Type {
	return loopFamily[sel&0b11]
}

// group1111111w maps the reg field of the INC/DEC/CALL/JMP/PUSH group
// (1111 111w) to an instruction Type; reg=7 (0b111) is invalid.
var group1111111w = [8]Type{Inc, Dec, Call, Call, Jmp, Jmp, Push, Noop}

// Group1111111wType returns the instruction Type for that group's
// sub-opcode (the reg field of the ModRM byte).
func Group1111111wType(reg uint8) Type {
	return group1111111w[reg&0b111]
}

// group1111011w maps the reg field of the TEST/NOT/NEG/MUL/IMUL/DIV/IDIV
// group (1111 011w) to an instruction Type; reg=1 (0b001) is invalid.
var group1111011w = [8]Type{Test, Noop, Not, Neg, Mul, Imul, Div, Idiv}

// Group1111011wType returns the instruction Type for that group's
// sub-opcode (the reg field of the ModRM byte).
func Group1111011wType(reg uint8) Type {
	return group1111011w[reg&0b111]
}
