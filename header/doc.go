// SPDX-License-Identifier: EPL-2.0

// Package header decodes the two fixed-size records of a WDF file: the
// 512-byte file header at offset 0 and the 16-byte header that frames
// every block after it.
//
// ReadFile checks only the signature and the format version. Codes inside
// the header (scan type, spectra description, data unit) must still be
// known values, and the FILETIME stamps are converted to milliseconds
// since the Unix epoch.
package header
