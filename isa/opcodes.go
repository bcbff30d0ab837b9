package isa

// First-byte opcode constants for the exact-match "0-operand" family and
// the other single-byte-pattern families of the decoder table (spec §4.3,
// §6). Named the way the teacher names its opcode constants (OP<MNEMONIC>),
// just one byte wide instead of one word wide.
const (
	OpDAA = 0b0010_0111
	OpDAS = 0b0010_1111
	OpAAA = 0b0011_0111
	OpAAS = 0b0011_1111

	OpCBW = 0b1001_1000
	OpCWD = 0b1001_1001

	OpPUSHF = 0b1001_1100
	OpPOPF  = 0b1001_1101
	OpSAHF  = 0b1001_1110
	OpLAHF  = 0b1001_1111

	OpXLAT = 0b1101_0111

	OpINT3 = 0b1100_1100
	OpINT  = 0b1100_1101
	OpINTO = 0b1100_1110
	OpIRET = 0b1100_1111

	OpAAM = 0b1101_0100
	OpAAD = 0b1101_0101

	OpCLC = 0b1111_1000
	OpCMC = 0b1111_0101
	OpSTC = 0b1111_1001
	OpCLD = 0b1111_1100
	OpSTD = 0b1111_1101
	OpCLI = 0b1111_1010
	OpSTI = 0b1111_1011
	OpHLT = 0b1111_0100
	OpWAIT = 0b1001_1011
	OpLOCK = 0b1111_0000

	OpLEA = 0b1000_1101
	OpLDS = 0b1100_0101
	OpLES = 0b1100_0100

	OpMOVRegMemToSeg = 0b1000_1110
	OpMOVSegToRegMem = 0b1000_1100

	// RET: spec.md's decoder table calls out only the within-segment,
	// immediate form explicitly; the plain near/far forms and the far,
	// immediate form are handled per the Open Question decision (both
	// print plain "ret", no near/far distinction).
	OpRetNearImm = 0b1100_0010
	OpRetNear    = 0b1100_0011
	OpRetFarImm  = 0b1100_1010
	OpRetFar     = 0b1100_1011

	OpPOPRM = 0b1000_1111
)

// Masks and patterns for the multi-opcode families of the decoder table.
// Each pair is used as `b&Mask == Pattern`.
const (
	MaskArithmeticRM, PatArithmeticRM = 0b1100_0100, 0b0000_0000
	MaskArithmeticImmToAcc, PatArithmeticImmToAcc = 0b1100_0110, 0b0000_0100

	MaskPushSeg, PatPushSeg = 0b1110_0111, 0b0000_0110
	MaskPopSeg, PatPopSeg   = 0b1110_0111, 0b0000_0111

	MaskPushReg16, PatPushReg16 = 0b1111_1000, 0b0101_0000
	MaskPopReg16, PatPopReg16   = 0b1111_1000, 0b0101_1000

	MaskINOUtFixedVar, PatINOutFixedVar = 0b1111_0100, 0b1110_0100

	MaskTestXchgRM, PatTestXchgRM = 0b1111_1100, 0b1000_0100

	MaskXchgAccReg, PatXchgAccReg = 0b1111_1000, 0b1001_0000
	MaskIncReg16, PatIncReg16     = 0b1111_1000, 0b0100_0000
	MaskDecReg16, PatDecReg16     = 0b1111_1000, 0b0100_1000

	MaskImmToRM, PatImmToRM = 0b1111_1100, 0b1000_0000

	MaskShiftRotate, PatShiftRotate = 0b1111_1100, 0b1101_0000

	MaskMovImmToRM, PatMovImmToRM = 0b1111_1110, 0b1100_0110
	MaskMovRMReg, PatMovRMReg     = 0b1111_1100, 0b1000_1000
	MaskMovAXMem, PatMovAXMem     = 0b1111_1100, 0b1010_0000

	MaskMovImmToReg, PatMovImmToReg = 0b1111_0000, 0b1011_0000

	MaskCondJump, PatCondJump = 0b1111_0000, 0b0111_0000
	MaskLoopJcxz, PatLoopJcxz = 0b1111_1100, 0b1110_0000

	MaskGroup1111111w, PatGroup1111111w = 0b1111_1110, 0b1111_1110
	MaskTestImmAX, PatTestImmAX         = 0b1111_1110, 0b1010_1000
	MaskGroup1111011w, PatGroup1111011w = 0b1111_1110, 0b1111_0110

	MaskRepPrefix, PatRepPrefix = 0b1111_1110, 0b1111_0010

	MaskMovsb, PatMovsb = 0b1111_1110, 0b1010_0100
	MaskCmpsb, PatCmpsb = 0b1111_1110, 0b1010_0110
	MaskScasb, PatScasb = 0b1111_1110, 0b1010_1110
	MaskLodsb, PatLodsb = 0b1111_1110, 0b1010_1100
	MaskStosb, PatStosb = 0b1111_1110, 0b1010_1010
)
