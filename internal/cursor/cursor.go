// SPDX-License-Identifier: EPL-2.0

// Package cursor provides a little-endian read cursor over an in-memory
// byte slice.
//
// Reads never panic. The first read past the end of the buffer records
// an error that is returned by Err; every later read returns the zero
// value and leaves the offset where the failure happened.
package cursor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

type Cursor struct {
	buf []byte
	off int
	err error
}

func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

func (c *Cursor) Offset() int    { return c.off }
func (c *Cursor) Len() int       { return len(c.buf) }
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }
func (c *Cursor) Err() error     { return c.err }

// Seek moves the cursor to an absolute offset. Seeking to Len is allowed.
func (c *Cursor) Seek(off int) error {
	if off < 0 || off > len(c.buf) {
		return fmt.Errorf("%w: seek to %d in %d bytes", ErrOutOfBounds, off, len(c.buf))
	}
	c.off = off
	return nil
}

// take returns the next n bytes and advances past them, or nil once the
// cursor has failed.
func (c *Cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > len(c.buf)-c.off {
		c.err = fmt.Errorf("%w: read of %d bytes at offset %d, %d remaining",
			ErrOutOfBounds, n, c.off, len(c.buf)-c.off)
		return nil
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b
}

func (c *Cursor) Uint8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *Cursor) Uint16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (c *Cursor) Uint64() uint64 {
	b := c.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (c *Cursor) Int64() int64 { return int64(c.Uint64()) }

func (c *Cursor) Float32() float32 { return math.Float32frombits(c.Uint32()) }
func (c *Cursor) Float64() float64 { return math.Float64frombits(c.Uint64()) }

// Float32s reads n consecutive float32 values into a new slice.
func (c *Cursor) Float32s(n int) []float32 {
	b := c.take(n * 4)
	if b == nil {
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return out
}

// Uint64s reads n consecutive uint64 values into a new slice.
func (c *Cursor) Uint64s(n int) []uint64 {
	b := c.take(n * 8)
	if b == nil {
		return nil
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return out
}

// Text reads a fixed-width UTF-8 field and strips the NUL padding.
func (c *Cursor) Text(n int) string {
	b := c.take(n)
	if b == nil {
		return ""
	}
	return string(bytes.TrimRight(b, "\x00"))
}

// Bytes returns a copy of the next n bytes.
func (c *Cursor) Bytes(n int) []byte {
	b := c.take(n)
	if b == nil {
		return nil
	}
	return bytes.Clone(b)
}

func (c *Cursor) Skip(n int) {
	c.take(n)
}

// Sub carves the next n bytes into an independent cursor and advances
// past them. Reads on the returned cursor can never run into the bytes
// that follow.
func (c *Cursor) Sub(n int) *Cursor {
	b := c.take(n)
	if b == nil {
		return &Cursor{err: c.err}
	}
	return &Cursor{buf: b}
}
