// SPDX-License-Identifier: EPL-2.0

package wdf

import (
	"errors"
	"fmt"
	"io"

	"github.com/cheminfo/wdf-parser/block"
	"github.com/cheminfo/wdf-parser/header"
	"github.com/cheminfo/wdf-parser/internal/cursor"
)

// File is a fully decoded WDF file.
type File struct {
	Header *header.File  `json:"header" yaml:"header"`
	Blocks []block.Block `json:"blocks" yaml:"blocks"`
}

// Parse decodes a whole WDF file held in memory.
func Parse(data []byte) (*File, error) {
	return Decoder{}.parse(data)
}

// Decoder decodes WDF files. The zero value is ready to use.
type Decoder struct {
	// KeepOpaque retains the raw bytes of blocks that are not interpreted.
	KeepOpaque bool
}

// Decode reads r to the end and decodes it as a WDF file.
func (d Decoder) Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wdf data: %w", err)
	}
	return d.parse(data)
}

func (d Decoder) parse(data []byte) (*File, error) {
	c := cursor.New(data)

	h, err := header.ReadFile(c)
	if err != nil {
		return nil, truncation(err)
	}

	blocks, err := readBlocks(c, block.ContextFrom(h), block.Options{KeepOpaque: d.KeepOpaque})
	if err != nil {
		return nil, err
	}

	f := &File{Header: h, Blocks: blocks}
	if err := Validate(f.Kinds(), h.Type); err != nil {
		return nil, err
	}
	return f, nil
}

func readBlocks(c *cursor.Cursor, ctx block.Context, opts block.Options) ([]block.Block, error) {
	var blocks []block.Block
	for c.Remaining() > 0 {
		off := c.Offset()
		b, err := block.Read(c, ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("block %d at offset %d: %w", len(blocks), off, truncation(err))
		}
		blocks = append(blocks, *b)
	}

	if c.Offset() != c.Len() {
		return nil, fmt.Errorf("%w: stream ended at offset %d of %d", ErrTruncatedStream, c.Offset(), c.Len())
	}
	return blocks, nil
}

// truncation tags size and bounds errors with ErrTruncatedStream.
func truncation(err error) error {
	switch {
	case errors.Is(err, header.ErrTruncated),
		errors.Is(err, block.ErrTruncated),
		errors.Is(err, block.ErrBlockSize),
		errors.Is(err, cursor.ErrOutOfBounds):
		return fmt.Errorf("%w: %w", ErrTruncatedStream, err)
	}
	return err
}
