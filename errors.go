// SPDX-License-Identifier: EPL-2.0

package wdf

import (
	"errors"
	"strings"

	"github.com/cheminfo/wdf-parser/enum"
	"github.com/cheminfo/wdf-parser/header"
)

var (
	// ErrNotWDFFile is returned when the buffer does not start with a WDF1 signature
	ErrNotWDFFile = header.ErrNotWDFFile

	// ErrUnsupportedVersion is returned for any format version other than 1
	ErrUnsupportedVersion = header.ErrUnsupportedVersion

	// ErrTruncatedStream is returned when a block runs past the end of the
	// buffer or the block stream does not end exactly at the buffer end
	ErrTruncatedStream = errors.New("truncated block stream")

	// ErrCorruptFile is matched by every *CorruptFileError
	ErrCorruptFile = errors.New("corrupt WDF file")
)

// CorruptFileError lists every required block kind a file lacks.
type CorruptFileError struct {
	Missing []enum.BlockKind
}

func (e *CorruptFileError) Error() string {
	names := make([]string, len(e.Missing))
	for i, k := range e.Missing {
		names[i] = k.String()
	}
	return ErrCorruptFile.Error() + ": missing " + strings.Join(names, ", ")
}

func (e *CorruptFileError) Unwrap() error { return ErrCorruptFile }
