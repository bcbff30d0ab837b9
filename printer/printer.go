// Package printer renders a decoded Instruction as one line of assembly
// text compatible with a standard assembler's `bits 16` mode.
package printer

import (
	"fmt"
	"strconv"

	"github.com/binarysweep/sim8086/decoder"
	"github.com/binarysweep/sim8086/isa"
)

// condJumpTypes and loopTypes are checked to pick the `$+N`/`$N` rendering;
// kept as small lookup sets rather than a big switch, matching how the
// teacher's disassembler distinguishes branch mnemonics from the rest.
var condJumpTypes = map[isa.Type]bool{
	isa.Je: true, isa.Jl: true, isa.Jle: true, isa.Jb: true, isa.Jbe: true,
	isa.Jp: true, isa.Jo: true, isa.Js: true, isa.Jne: true, isa.Jnl: true,
	isa.Jnle: true, isa.Jnb: true, isa.Jnbe: true, isa.Jnp: true, isa.Jno: true,
	isa.Jns: true, isa.Loop: true, isa.Loopz: true, isa.Loopnz: true, isa.Jcxz: true,
}

var shiftRotateTypes = map[isa.Type]bool{
	isa.Rol: true, isa.Ror: true, isa.Rcl: true, isa.Rcr: true,
	isa.Shl: true, isa.Shr: true, isa.Sar: true,
}

// Preamble returns the two fixed header lines spec.md's output contract
// requires before the first decoded instruction.
func Preamble(filename string) []string {
	return []string{
		fmt.Sprintf("; Disassembly: %s", filename),
		"bits 16",
	}
}

// Print renders inst as a single line of text, with no trailing newline;
// the caller decides whether to emit one, since LOCK/REP prefixes want
// their line to continue into the next decoded instruction.
func Print(inst decoder.Instruction) string {
	switch {
	case inst.Type == isa.Noop:
		return fmt.Sprintf("; %02X", inst.RawByte)
	case inst.Type == isa.In || inst.Type == isa.Out:
		return printInOut(inst)
	case condJumpTypes[inst.Type]:
		return printShortJump(inst)
	}

	mnemonic := inst.Type.String()
	switch inst.OperandCount {
	case 0:
		return mnemonic
	case 1:
		return mnemonic + " " + formatOperand(inst.Dest, inst.Wide)
	default:
		src := inst.Src
		srcWide := inst.Wide
		if shiftRotateTypes[inst.Type] {
			srcWide = false
		}
		return mnemonic + " " + formatOperand(inst.Dest, inst.Wide) + ", " + formatOperand(src, srcWide)
	}
}

func printShortJump(inst decoder.Instruction) string {
	n := int16(inst.Dest.Value)
	if n >= 0 {
		return fmt.Sprintf("%s $+%d", inst.Type.String(), n)
	}
	return fmt.Sprintf("%s $%d", inst.Type.String(), n)
}

// printInOut implements spec.md's custom IN/OUT ordering: the accumulator
// always prints at the instruction's own width, the port always at 16
// bits, and the textual order is chosen by the mnemonic: accumulator first
// for IN, port first for OUT.
func printInOut(inst decoder.Instruction) string {
	mnemonic := inst.Type.String()

	acc, port := inst.Dest, inst.Src
	if inst.Type == isa.Out {
		port, acc = inst.Dest, inst.Src
	}

	accStr := formatOperand(acc, inst.Wide)
	var portStr string
	if port.Tag == decoder.Register {
		portStr = isa.Reg16[port.RegMemIndex]
	} else {
		portStr = strconv.Itoa(int(port.Value))
	}

	if inst.Type == isa.In {
		return mnemonic + " " + accStr + ", " + portStr
	}
	return mnemonic + " " + portStr + ", " + accStr
}

func formatOperand(op decoder.Operand, wide bool) string {
	switch op.Tag {
	case decoder.Register:
		if wide {
			return isa.Reg16[op.RegMemIndex]
		}
		return isa.Reg8[op.RegMemIndex]
	case decoder.SegmentRegister:
		return isa.SegReg[op.RegMemIndex]
	case decoder.Immediate:
		return formatImmediate(op, wide)
	default:
		return formatMemory(op, wide)
	}
}

func formatImmediate(op decoder.Operand, wide bool) string {
	var prefix string
	if op.OutputWidth {
		if wide {
			prefix = "word "
		} else {
			prefix = "byte "
		}
	}
	if wide {
		return prefix + strconv.Itoa(int(int16(op.Value)))
	}
	return prefix + strconv.Itoa(int(int8(op.ValueLow())))
}

func formatMemory(op decoder.Operand, wide bool) string {
	var prefix string
	if op.OutputWidth {
		if wide {
			prefix = "word "
		} else {
			prefix = "byte "
		}
	}

	if op.ModField == isa.Mem0 && op.RegMemIndex == isa.DirectAddressRM {
		return fmt.Sprintf("%s[%d]", prefix, op.Value)
	}

	ea := isa.EffectiveAddress[op.RegMemIndex]
	disp := int16(op.Value)
	switch {
	case op.ModField == isa.Mem0 || disp == 0:
		return fmt.Sprintf("%s[%s]", prefix, ea)
	case disp > 0:
		return fmt.Sprintf("%s[%s + %d]", prefix, ea, disp)
	default:
		return fmt.Sprintf("%s[%s - %d]", prefix, ea, -disp)
	}
}
