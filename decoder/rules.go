package decoder

import (
	"github.com/pkg/errors"

	"github.com/binarysweep/sim8086/isa"
	"github.com/binarysweep/sim8086/reader"
)

// readModRM reads the second byte of a two-byte-or-longer instruction and
// splits it into its mod/reg/rm fields.
func readModRM(r *reader.Reader) (mod isa.Mod, reg, rm uint8, err error) {
	b, err := r.ReadU8()
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "read ModRM byte")
	}
	mod, reg, rm = isa.ModRM(b)
	return mod, reg, rm, nil
}

// withMemoryWidth marks op as carrying a printed width prefix when it is a
// Memory operand; Register operands are left alone, matching the invariant
// that output_width is never set on a Register.
func withMemoryWidth(op Operand) Operand {
	if op.Tag == Memory {
		op.OutputWidth = true
	}
	return op
}

// buildRules lists every decoder arm in the priority order spec.md's own
// table gives: the zero-operand and other exact-byte constants first, then
// the family masks, with the remaining exact-byte forms (RET, POP r/m)
// placed among them in table order. buildTable() walks this slice once per
// byte value and keeps the first match, so the order here is load-bearing.
func buildRules() []rule {
	var rs []rule

	rs = append(rs, zeroOperandRules()...)
	rs = append(rs, rule{0xFF, isa.OpINT, decodeIntImm8})
	rs = append(rs, rule{0xFF, isa.OpINT3, decodeInt3})
	rs = append(rs, rule{0xFF, isa.OpAAM, decodeAam})
	rs = append(rs, rule{0xFF, isa.OpAAD, decodeAad})
	rs = append(rs, rule{0xFF, isa.OpLEA, decodeLeaLdsLes})
	rs = append(rs, rule{0xFF, isa.OpLDS, decodeLeaLdsLes})
	rs = append(rs, rule{0xFF, isa.OpLES, decodeLeaLdsLes})
	rs = append(rs, rule{0xFF, isa.OpMOVRegMemToSeg, decodeMovSegFromRM})
	rs = append(rs, rule{0xFF, isa.OpMOVSegToRegMem, decodeMovSegToRM})
	rs = append(rs, rule{isa.MaskRepPrefix, isa.PatRepPrefix, decodeRepPrefix})
	rs = append(rs, rule{isa.MaskMovsb, isa.PatMovsb, decodeStringOp(isa.Movsb, isa.Movsw)})
	rs = append(rs, rule{isa.MaskCmpsb, isa.PatCmpsb, decodeStringOp(isa.Cmpsb, isa.Cmpsw)})
	rs = append(rs, rule{isa.MaskScasb, isa.PatScasb, decodeStringOp(isa.Scasb, isa.Scasw)})
	rs = append(rs, rule{isa.MaskLodsb, isa.PatLodsb, decodeStringOp(isa.Lodsb, isa.Lodsw)})
	rs = append(rs, rule{isa.MaskStosb, isa.PatStosb, decodeStringOp(isa.Stosb, isa.Stosw)})
	rs = append(rs, rule{isa.MaskArithmeticRM, isa.PatArithmeticRM, decodeArithmeticRM})
	rs = append(rs, rule{isa.MaskPushReg16, isa.PatPushReg16, decodePushReg16})
	rs = append(rs, rule{isa.MaskPopReg16, isa.PatPopReg16, decodePopReg16})
	rs = append(rs, rule{isa.MaskPushSeg, isa.PatPushSeg, decodePushSeg})
	rs = append(rs, rule{isa.MaskPopSeg, isa.PatPopSeg, decodePopSeg})
	rs = append(rs, rule{isa.MaskINOUtFixedVar, isa.PatINOutFixedVar, decodeInOut})
	rs = append(rs, rule{isa.MaskTestXchgRM, isa.PatTestXchgRM, decodeTestXchgRM})
	rs = append(rs, rule{isa.MaskXchgAccReg, isa.PatXchgAccReg, decodeXchgAccReg})
	rs = append(rs, rule{isa.MaskIncReg16, isa.PatIncReg16, decodeIncReg16})
	rs = append(rs, rule{isa.MaskDecReg16, isa.PatDecReg16, decodeDecReg16})
	rs = append(rs, rule{isa.MaskArithmeticImmToAcc, isa.PatArithmeticImmToAcc, decodeArithmeticImmToAcc})
	rs = append(rs, rule{isa.MaskImmToRM, isa.PatImmToRM, decodeImmToRM})
	rs = append(rs, rule{isa.MaskShiftRotate, isa.PatShiftRotate, decodeShiftRotate})
	rs = append(rs, rule{isa.MaskMovImmToRM, isa.PatMovImmToRM, decodeMovImmToRM})
	rs = append(rs, rule{isa.MaskMovRMReg, isa.PatMovRMReg, decodeMovRMReg})
	rs = append(rs, rule{isa.MaskMovAXMem, isa.PatMovAXMem, decodeMovAXMem})
	rs = append(rs, rule{0xFF, isa.OpRetNearImm, decodeRetImm})
	rs = append(rs, rule{isa.MaskMovImmToReg, isa.PatMovImmToReg, decodeMovImmToReg})
	rs = append(rs, rule{isa.MaskCondJump, isa.PatCondJump, decodeCondJump})
	rs = append(rs, rule{isa.MaskLoopJcxz, isa.PatLoopJcxz, decodeLoopJcxz})
	rs = append(rs, rule{0xFF, isa.OpPOPRM, decodePopRM})
	rs = append(rs, rule{0xFF, isa.OpRetNear, decodeRetPlain})
	rs = append(rs, rule{0xFF, isa.OpRetFarImm, decodeRetImm})
	rs = append(rs, rule{0xFF, isa.OpRetFar, decodeRetPlain})
	rs = append(rs, rule{isa.MaskGroup1111111w, isa.PatGroup1111111w, decodeGroup1111111w})
	rs = append(rs, rule{isa.MaskTestImmAX, isa.PatTestImmAX, decodeTestImmAX})
	rs = append(rs, rule{isa.MaskGroup1111011w, isa.PatGroup1111011w, decodeGroup1111011w})

	return rs
}
