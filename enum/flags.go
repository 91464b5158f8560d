// SPDX-License-Identifier: EPL-2.0

package enum

import (
	"math"
	"time"
)

// FileFlags are the file-level property bits of the header flag word.
type FileFlags struct {
	XYXY             bool `json:"xyxy" yaml:"xyxy"`                         // multiple x-lists and data blocks
	Checksum         bool `json:"checksum" yaml:"checksum"`                 // checksum enabled
	CosmicRayRemoval bool `json:"cosmicRayRemoval" yaml:"cosmicRayRemoval"` // hardware cosmic ray removal
	Multitrack       bool `json:"multitrack" yaml:"multitrack"`             // separate x-list per spectrum
	Saturation       bool `json:"saturation" yaml:"saturation"`             // saturated datasets exist
	FileBackup       bool `json:"fileBackup" yaml:"fileBackup"`             // a complete backup was made
	Temporary        bool `json:"temporary" yaml:"temporary"`
	Slice            bool `json:"slice" yaml:"slice"` // extracted from a volume slice
}

const (
	flagXYXY = 1 << iota
	flagChecksum
	flagCosmicRayRemoval
	flagMultitrack
	flagSaturation
	flagFileBackup
	flagTemporary
	flagSlice
)

func DecodeFileFlags(v uint64) FileFlags {
	return FileFlags{
		XYXY:             v&flagXYXY != 0,
		Checksum:         v&flagChecksum != 0,
		CosmicRayRemoval: v&flagCosmicRayRemoval != 0,
		Multitrack:       v&flagMultitrack != 0,
		Saturation:       v&flagSaturation != 0,
		FileBackup:       v&flagFileBackup != 0,
		Temporary:        v&flagTemporary != 0,
		Slice:            v&flagSlice != 0,
	}
}

// SpectrumFlags describe one spectrum of an origin "Flags" set.
type SpectrumFlags struct {
	Saturated bool   `json:"saturated" yaml:"saturated"`
	Error     bool   `json:"error" yaml:"error"`
	CosmicRay bool   `json:"cosmicRay" yaml:"cosmicRay"`
	ErrorCode uint32 `json:"errorCode" yaml:"errorCode"`
}

const (
	spectrumSaturated = 1 << iota
	spectrumError
	spectrumCosmicRay
)

// DecodeSpectrumFlags splits a 64-bit flag word: bits 0-2 of the low word
// are the saturated, error and cosmic ray bits, the high word is the error
// code.
func DecodeSpectrumFlags(v uint64) SpectrumFlags {
	low := uint32(v)
	return SpectrumFlags{
		Saturated: low&spectrumSaturated != 0,
		Error:     low&spectrumError != 0,
		CosmicRay: low&spectrumCosmicRay != 0,
		ErrorCode: uint32(v >> 32),
	}
}

// Milliseconds between 1601-01-01 and 1970-01-01.
const fileTimeEpochOffsetMs = 11644473600000

// FileTimeToMs converts a Windows FILETIME (100ns ticks since 1601-01-01
// UTC) to milliseconds since the Unix epoch.
func FileTimeToMs(raw uint64) float64 {
	return float64(raw)/10000 - fileTimeEpochOffsetMs
}

// FileTimeToTime converts a Windows FILETIME to a UTC time.Time.
func FileTimeToTime(raw uint64) time.Time {
	return MsToTime(FileTimeToMs(raw))
}

// MsToTime converts milliseconds since the Unix epoch, as produced by
// FileTimeToMs, to a UTC time.Time.
func MsToTime(ms float64) time.Time {
	sec := math.Floor(ms / 1000)
	nsec := (ms - sec*1000) * float64(time.Millisecond)
	return time.Unix(int64(sec), int64(nsec)).UTC()
}
