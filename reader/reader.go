// Package reader provides a sequential byte/16-bit-little-endian reader
// over an in-memory instruction stream, reporting end-of-input the way the
// decoder needs it: detectable between instructions, a hard error mid-
// instruction.
package reader

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Reader is a forward-only cursor over a byte slice.
type Reader struct {
	data []byte
	pos  int
}

// New wraps data for sequential reading.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// AtEOF reports whether the cursor has reached the end of the stream. The
// top-level decode loop calls this only between instructions, per the
// reader's contract: end-of-input is a normal stop condition there, and a
// decode error anywhere else.
func (r *Reader) AtEOF() bool {
	return r.pos >= len(r.data)
}

// Offset returns the current cursor position, used for diagnostics and for
// tests asserting exact byte consumption.
func (r *Reader) Offset() int {
	return r.pos
}

// ReadU8 reads the next byte, or io.EOF if the stream is exhausted.
func (r *Reader) ReadU8() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadU16LE reads a 16-bit little-endian word (low byte first), wrapping
// any short read with context the way the pack's other x86 emulator wraps
// its byte/word reads.
func (r *Reader) ReadU16LE() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, errors.Wrap(io.EOF, "read u16")
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}
