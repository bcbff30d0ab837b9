package isa

import "testing"

func TestArithmeticTypeOrder(t *testing.T) {
	want := []Type{Add, Or, Adc, Sbb, And, Sub, Xor, Cmp}
	for i, typ := range want {
		if got := ArithmeticType(uint8(i)); got != typ {
			t.Errorf("ArithmeticType(%d) = %v, want %v", i, got, typ)
		}
	}
}

func TestCondJumpTypeOrder(t *testing.T) {
	want := []Type{Jo, Jno, Jb, Jnb, Je, Jne, Jbe, Jnbe, Js, Jns, Jp, Jnp, Jl, Jnl, Jle, Jnle}
	for i, typ := range want {
		if got := CondJumpType(uint8(i)); got != typ {
			t.Errorf("CondJumpType(%d) = %v, want %v", i, got, typ)
		}
	}
}

func TestStringMatchesMnemonic(t *testing.T) {
	cases := map[Type]string{Mov: "mov", Add: "add", Jne: "jne", Rep: "rep", Lock: "lock"}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", typ, got, want)
		}
	}
}

func TestModRMSplitsAllThreeFields(t *testing.T) {
	mod, reg, rm := ModRM(0b11_010_011)
	if mod != Reg || reg != 0b010 || rm != 0b011 {
		t.Errorf("ModRM() = %v, %d, %d", mod, reg, rm)
	}
}
