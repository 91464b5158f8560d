// SPDX-License-Identifier: EPL-2.0

package block

import "errors"

var (
	// ErrBlockSize indicates a declared block size below the 16-byte header
	ErrBlockSize = errors.New("block size smaller than block header")

	// ErrTruncated indicates a body that ends before its contents do
	ErrTruncated = errors.New("truncated block body")
)
