// SPDX-License-Identifier: EPL-2.0

package cursor

import "errors"

var (
	// ErrOutOfBounds indicates a read or seek past the end of the buffer
	ErrOutOfBounds = errors.New("read past end of buffer")
)
