// SPDX-License-Identifier: EPL-2.0

// Package enum translates the raw integer codes and bit fields of WDF
// files into named values.
//
// Every Parse function accepts an unsigned code and returns a typed value
// whose String method gives its label, or an *UnknownValueError naming
// the enumeration and the offending code:
//
//	kind, err := enum.ParseBlockKind(0x41544144)
//	// kind == enum.KindData, kind.String() == "WDF_BLOCKID_DATA"
//
//	_, err = enum.ParseDataUnit(25)
//	// errors.Is(err, enum.ErrUnknownValue) == true
//	// err.Error() == "unknown data unit value 25 (0x19)"
//
// # Enumerations
//
//   - BlockKind: 38 block tags, the KindAny wildcard and two stream markers
//   - DataUnit: 25 contiguous codes, 0 (arbitrary units) to 24 (end marker)
//   - AxisRole: 25 contiguous codes, 0 (arbitrary) to 24 (end marker)
//   - SpectraDescription: unspecified, single, series, map
//   - ScanType: codes 0-8 plus the 0x100, 0x200 and 0x400 modifiers
//
// # Bit Fields
//
// DecodeFileFlags, DecodeSpectrumFlags and DecodeRoleWord unpack the
// masked bits into named fields, one field per bit.
//
// # Time
//
// WDF stores timestamps as Windows FILETIME values. FileTimeToMs applies
// the exact conversion raw/10000 - 11644473600000 and returns milliseconds
// since the Unix epoch.
package enum
