// SPDX-License-Identifier: EPL-2.0

// Package wdftest builds synthetic WDF buffers for tests.
package wdftest

import (
	"encoding/binary"
	"math"
)

// Writer appends little-endian values to a byte slice.
type Writer struct {
	buf []byte
}

func (w *Writer) Bytes() []byte { return w.buf }
func (w *Writer) Len() int      { return len(w.buf) }

func (w *Writer) U16(v uint16) *Writer {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return w
}

func (w *Writer) U32(v uint32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

func (w *Writer) U64(v uint64) *Writer {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
	return w
}

func (w *Writer) F32(v float32) *Writer { return w.U32(math.Float32bits(v)) }
func (w *Writer) F64(v float64) *Writer { return w.U64(math.Float64bits(v)) }

// Text writes s NUL padded (or truncated) to width bytes.
func (w *Writer) Text(s string, width int) *Writer {
	field := make([]byte, width)
	copy(field, s)
	w.buf = append(w.buf, field...)
	return w
}

func (w *Writer) Raw(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// Header holds the raw values of a file header.
type Header struct {
	Signature   uint32
	Version     uint32
	Size        uint64
	Flags       uint64
	UUID        [4]uint32
	NTracks     uint32
	Status      uint32
	NPoints     uint32
	NSpectra    uint64
	NCollected  uint64
	NAccum      uint32
	YListCount  uint32
	XListCount  uint32
	OriginCount uint32
	AppName     string
	AppVersion  [4]uint16
	ScanType    uint32
	Type        uint32
	TimeStart   uint64
	TimeEnd     uint64
	Units       uint32
	Laser       float32
	User        string
	Title       string
}

// Bytes encodes the header as 512 bytes.
func (h Header) Bytes() []byte {
	w := &Writer{}
	w.U32(h.Signature).U32(h.Version).U64(h.Size).U64(h.Flags)
	for _, v := range h.UUID {
		w.U32(v)
	}
	w.U64(0).U32(0) // unused0, unused1
	w.U32(h.NTracks).U32(h.Status).U32(h.NPoints)
	w.U64(h.NSpectra).U64(h.NCollected)
	w.U32(h.NAccum).U32(h.YListCount).U32(h.XListCount).U32(h.OriginCount)
	w.Text(h.AppName, 24)
	for _, v := range h.AppVersion {
		w.U16(v)
	}
	w.U32(h.ScanType).U32(h.Type)
	w.U64(h.TimeStart).U64(h.TimeEnd)
	w.U32(h.Units).F32(h.Laser)
	for range 6 {
		w.U64(0)
	}
	w.Text(h.User, 32).Text(h.Title, 160)
	for range 6 + 4 + 4 {
		w.U64(0)
	}
	return w.Bytes()
}

// Block frames body with a 16-byte block header whose size covers both.
func Block(kind, id uint32, body []byte) []byte {
	w := &Writer{}
	w.U32(kind).U32(id).U64(uint64(16 + len(body))).Raw(body)
	return w.Bytes()
}

// DataBody encodes spectra in spectrum-major order.
func DataBody(spectra [][]float32) []byte {
	w := &Writer{}
	for _, s := range spectra {
		for _, v := range s {
			w.F32(v)
		}
	}
	return w.Bytes()
}

// ListBody encodes an x-list or y-list body.
func ListBody(role, unit uint32, values []float32) []byte {
	w := &Writer{}
	w.U32(role).U32(unit)
	for _, v := range values {
		w.F32(v)
	}
	return w.Bytes()
}

// OriginSet is one raw set of an origin block. Words hold the 8-byte
// payload values as stored in the file.
type OriginSet struct {
	RoleWord uint32
	Unit     uint32
	Label    string
	Words    []uint64
}

func OriginBody(sets []OriginSet) []byte {
	w := &Writer{}
	w.U32(uint32(len(sets)))
	for _, s := range sets {
		w.U32(s.RoleWord).U32(s.Unit).Text(s.Label, 16)
		for _, v := range s.Words {
			w.U64(v)
		}
	}
	return w.Bytes()
}

// Float64Words stores float64 values as origin payload words.
func Float64Words(values []float64) []uint64 {
	out := make([]uint64, len(values))
	for i, v := range values {
		out[i] = math.Float64bits(v)
	}
	return out
}

// File concatenates a header and blocks.
func File(h Header, blocks ...[]byte) []byte {
	out := h.Bytes()
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}
