// SPDX-License-Identifier: EPL-2.0

package spectrum

import "errors"

var (
	// ErrNoData indicates a file without a decoded data block
	ErrNoData = errors.New("file has no spectral data")

	// ErrNoAxis indicates a file without a decoded x-list
	ErrNoAxis = errors.New("file has no spectral axis")

	// ErrAxisMismatch indicates an axis whose length differs from the spectra
	ErrAxisMismatch = errors.New("axis length does not match spectrum length")

	// ErrEmpty indicates an operation on a spectrum with no points
	ErrEmpty = errors.New("empty spectrum")

	// ErrNotMonotonic indicates an axis that neither rises nor falls throughout
	ErrNotMonotonic = errors.New("axis is not strictly monotonic")

	// ErrTooFewPoints indicates a resampling request below two points
	ErrTooFewPoints = errors.New("need at least two points")
)
