// SPDX-License-Identifier: EPL-2.0

package header

import "errors"

var (
	// ErrNotWDFFile indicates the buffer does not start with a WDF file block
	ErrNotWDFFile = errors.New("not a WDF file")

	// ErrUnsupportedVersion indicates a WDF specification version other than 1
	ErrUnsupportedVersion = errors.New("unsupported WDF version")

	// ErrTruncated indicates the buffer ends inside a header
	ErrTruncated = errors.New("truncated header")
)
