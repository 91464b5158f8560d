// SPDX-License-Identifier: EPL-2.0

// Package block decodes the bodies of WDF blocks.
//
// A WDF file is a 512-byte header followed by blocks, each framed by a
// 16-byte block header (see package header). Four kinds of body are
// interpreted:
//
//   - DATA: nSpectra*nPoints float32 intensities, spectrum-major.
//   - XLIST and YLIST: an axis role, a unit and a list of float32 values.
//     A YLIST is only decoded when the file header announces more than
//     one y value.
//   - ORIGIN: labelled per-spectrum data origin sets. The "X" and "Y"
//     sets hold float64 positions, "Flags" holds spectrum flags and
//     "Time" holds FILETIME stamps converted to Unix milliseconds. Other
//     sets keep their raw 64-bit words.
//
// Every other kind is returned as an *Opaque body. Its bytes are only
// retained when Options.KeepOpaque is set.
//
// Decode always consumes exactly the declared body size from its cursor,
// so trailing padding in a body never shifts the next block.
package block
