// SPDX-License-Identifier: EPL-2.0

package header

import (
	"fmt"
	"strconv"

	"github.com/cheminfo/wdf-parser/enum"
	"github.com/cheminfo/wdf-parser/internal/cursor"
)

// BlockSize is the size of the header in front of every block body.
const BlockSize = 16

// Block is the header of one block in the stream.
type Block struct {
	Kind enum.BlockKind `json:"kind" yaml:"kind"`
	// ID distinguishes blocks of the same kind; "0" marks the only one.
	ID string `json:"id" yaml:"id"`
	// Size is the total block size in bytes, header included.
	Size uint64 `json:"size" yaml:"size"`
}

// BodySize is the number of bytes that follow the header.
func (b Block) BodySize() uint64 {
	if b.Size < BlockSize {
		return 0
	}
	return b.Size - BlockSize
}

// ReadBlock decodes a 16-byte block header at the cursor's current offset.
// An unknown kind is an error; no other check is made.
func ReadBlock(c *cursor.Cursor) (Block, error) {
	if c.Remaining() < BlockSize {
		return Block{}, fmt.Errorf("%w: block header at offset %d needs %d bytes, %d available",
			ErrTruncated, c.Offset(), BlockSize, c.Remaining())
	}

	off := c.Offset()
	kind, err := enum.ParseBlockKind(c.Uint32())
	if err != nil {
		return Block{}, fmt.Errorf("block header at offset %d: %w", off, err)
	}

	return Block{
		Kind: kind,
		ID:   strconv.FormatUint(uint64(c.Uint32()), 10),
		Size: c.Uint64(),
	}, nil
}

// ReadBlockAt seeks to off and decodes the block header found there.
func ReadBlockAt(c *cursor.Cursor, off int) (Block, error) {
	if err := c.Seek(off); err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return ReadBlock(c)
}
