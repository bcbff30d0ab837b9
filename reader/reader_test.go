package reader

import (
	"io"
	"testing"
)

func TestReadU8SequentialAndEOF(t *testing.T) {
	r := New([]byte{0x01, 0x02})

	b, err := r.ReadU8()
	if err != nil || b != 0x01 {
		t.Fatalf("ReadU8() = %v, %v", b, err)
	}
	if r.AtEOF() {
		t.Fatalf("AtEOF() true after first byte, want false")
	}

	b, err = r.ReadU8()
	if err != nil || b != 0x02 {
		t.Fatalf("ReadU8() = %v, %v", b, err)
	}
	if !r.AtEOF() {
		t.Fatalf("AtEOF() false after last byte, want true")
	}

	if _, err := r.ReadU8(); err != io.EOF {
		t.Fatalf("ReadU8() past end = %v, want io.EOF", err)
	}
}

func TestReadU16LELittleEndian(t *testing.T) {
	r := New([]byte{0x34, 0x12})
	v, err := r.ReadU16LE()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x1234 {
		t.Fatalf("ReadU16LE() = 0x%04X, want 0x1234", v)
	}
}

func TestReadU16LEShortRead(t *testing.T) {
	r := New([]byte{0x01})
	if _, err := r.ReadU16LE(); err == nil {
		t.Fatalf("ReadU16LE() on a single byte should error")
	}
}

func TestOffsetTracksConsumedBytes(t *testing.T) {
	r := New([]byte{0x01, 0x02, 0x03, 0x04})
	if r.Offset() != 0 {
		t.Fatalf("Offset() = %d, want 0", r.Offset())
	}
	if _, err := r.ReadU16LE(); err != nil {
		t.Fatal(err)
	}
	if r.Offset() != 2 {
		t.Fatalf("Offset() = %d, want 2", r.Offset())
	}
}
