// SPDX-License-Identifier: EPL-2.0

package block

import (
	"fmt"
	"math"

	"github.com/cheminfo/wdf-parser/enum"
	"github.com/cheminfo/wdf-parser/header"
	"github.com/cheminfo/wdf-parser/internal/cursor"
)

// Context carries the file header fields body decoding depends on.
type Context struct {
	Spectra    uint64
	Points     uint32
	YListCount uint32
}

func ContextFrom(h *header.File) Context {
	return Context{
		Spectra:    h.NSpectra,
		Points:     h.NPoints,
		YListCount: h.YListCount,
	}
}

type Options struct {
	// KeepOpaque retains the bytes of uninterpreted bodies in Opaque.Raw.
	KeepOpaque bool
}

// Read decodes one block header and its body at the cursor's offset.
func Read(c *cursor.Cursor, ctx Context, opts Options) (*Block, error) {
	hdr, err := header.ReadBlock(c)
	if err != nil {
		return nil, err
	}
	body, err := Decode(c, hdr, ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Block{Header: hdr, Body: body}, nil
}

// Decode reads the body that follows hdr. The cursor always advances by
// exactly hdr.Size-16 bytes on success, whatever the body holds.
func Decode(c *cursor.Cursor, hdr header.Block, ctx Context, opts Options) (Body, error) {
	if hdr.Size < header.BlockSize {
		return nil, fmt.Errorf("%w: %s declares %d bytes", ErrBlockSize, hdr.Kind, hdr.Size)
	}
	size := hdr.BodySize()
	if size > uint64(c.Remaining()) {
		return nil, fmt.Errorf("%w: %s at offset %d needs %d body bytes, %d available",
			ErrTruncated, hdr.Kind, c.Offset()-header.BlockSize, size, c.Remaining())
	}

	body := c.Sub(int(size))

	var (
		out Body
		err error
	)
	switch {
	case hdr.Kind == enum.KindData:
		out, err = decodeData(body, ctx)
	case hdr.Kind == enum.KindYList && ctx.YListCount <= 1:
		// a single y value is meaningless outside images
		out = opaque(body, opts)
	case hdr.Kind == enum.KindXList || hdr.Kind == enum.KindYList:
		out, err = decodeAxisList(body)
	case hdr.Kind == enum.KindOrigin:
		out, err = decodeOrigin(body, ctx)
	default:
		out = opaque(body, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", hdr.Kind, err)
	}
	if err := body.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTruncated, hdr.Kind, err)
	}
	return out, nil
}

func opaque(body *cursor.Cursor, opts Options) *Opaque {
	if !opts.KeepOpaque {
		return &Opaque{}
	}
	return &Opaque{Raw: body.Bytes(body.Remaining())}
}

func decodeData(body *cursor.Cursor, ctx Context) (*Data, error) {
	avail := uint64(body.Remaining()) / 4
	if ctx.Points != 0 && ctx.Spectra > avail/uint64(ctx.Points) {
		return nil, fmt.Errorf("%w: %d spectra of %d points do not fit in %d bytes",
			ErrTruncated, ctx.Spectra, ctx.Points, body.Remaining())
	}

	n := int(ctx.Spectra) * int(ctx.Points)
	return &Data{
		Spectra: int(ctx.Spectra),
		Points:  int(ctx.Points),
		Values:  body.Float32s(n),
	}, nil
}

func decodeAxisList(body *cursor.Cursor) (*AxisList, error) {
	if body.Remaining() < 8 {
		return nil, fmt.Errorf("%w: axis list needs 8 bytes, %d available", ErrTruncated, body.Remaining())
	}

	role, err := enum.ParseAxisRole(body.Uint32())
	if err != nil {
		return nil, err
	}
	unit, err := enum.ParseDataUnit(body.Uint32())
	if err != nil {
		return nil, err
	}

	return &AxisList{
		Role:   role,
		Unit:   unit,
		Values: body.Float32s(body.Remaining() / 4),
	}, nil
}

// Origin set labels with a decoded payload.
const (
	LabelX     = "X"
	LabelY     = "Y"
	LabelFlags = "Flags"
	LabelTime  = "Time"
)

const originSetHeaderSize = 4 + 4 + 16

func decodeOrigin(body *cursor.Cursor, ctx Context) (*Origin, error) {
	n := body.Uint32()
	if err := body.Err(); err != nil {
		return nil, fmt.Errorf("%w: origin set count: %w", ErrTruncated, err)
	}

	perSet := originSetHeaderSize + 8*ctx.Spectra
	if ctx.Spectra > uint64(body.Remaining())/8 || uint64(n) > uint64(body.Remaining())/perSet {
		return nil, fmt.Errorf("%w: %d origin sets of %d spectra do not fit in %d bytes",
			ErrTruncated, n, ctx.Spectra, body.Remaining())
	}

	o := &Origin{Sets: make([]OriginSet, 0, n)}
	for i := range int(n) {
		set, err := decodeOriginSet(body, int(ctx.Spectra))
		if err != nil {
			return nil, fmt.Errorf("origin set %d: %w", i, err)
		}
		o.Sets = append(o.Sets, set)
	}
	return o, nil
}

func decodeOriginSet(body *cursor.Cursor, spectra int) (OriginSet, error) {
	role, important, err := enum.DecodeRoleWord(body.Uint32())
	if err != nil {
		return OriginSet{}, err
	}
	unit, err := enum.ParseDataUnit(body.Uint32())
	if err != nil {
		return OriginSet{}, err
	}

	set := OriginSet{
		Role:      role,
		Important: important,
		Unit:      unit,
		Label:     body.Text(16),
	}

	words := body.Uint64s(spectra)
	switch set.Label {
	case LabelX, LabelY:
		values := make(Float64Values, len(words))
		for i, w := range words {
			values[i] = math.Float64frombits(w)
		}
		set.Values = values
	case LabelFlags:
		values := make(FlagValues, len(words))
		for i, w := range words {
			values[i] = enum.DecodeSpectrumFlags(w)
		}
		set.Values = values
	case LabelTime:
		values := make(TimeValues, len(words))
		for i, w := range words {
			values[i] = enum.FileTimeToMs(w)
		}
		set.Values = values
	default:
		set.Values = RawValues(words)
	}
	return set, nil
}
