// SPDX-License-Identifier: EPL-2.0

package header

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cheminfo/wdf-parser/enum"
	"github.com/cheminfo/wdf-parser/internal/cursor"
)

const (
	// FileSize is the fixed size of the file header.
	FileSize = 512

	// SupportedVersion is the only WDF specification version decoded.
	SupportedVersion = 1
)

// AppVersion is the version of the application that wrote the file.
type AppVersion struct {
	Major uint16 `json:"major" yaml:"major"`
	Minor uint16 `json:"minor" yaml:"minor"`
	Patch uint16 `json:"patch" yaml:"patch"`
	Build uint16 `json:"build" yaml:"build"`
}

func (v AppVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// File is the 512-byte header at the start of every WDF file.
type File struct {
	Signature  enum.BlockKind `json:"signature" yaml:"signature"`
	Version    uint32         `json:"version" yaml:"version"`
	HeaderSize uint64         `json:"headerSize" yaml:"headerSize"`
	Flags      enum.FileFlags `json:"flags" yaml:"flags"`
	// UUID is the file identifier as four dotted decimal words, the way
	// WiRE displays it. GUID holds the same 16 bytes.
	UUID    string    `json:"uuid" yaml:"uuid"`
	GUID    uuid.UUID `json:"guid" yaml:"guid"`
	Unused0 uint64    `json:"unused0" yaml:"unused0"`
	Unused1 uint32    `json:"unused1" yaml:"unused1"`
	// NTracks is the number of tracks used when Flags.XYXY is set.
	NTracks uint32 `json:"nTracks" yaml:"nTracks"`
	// Status is the file status word, 0 when no error occurred.
	Status uint32 `json:"status" yaml:"status"`
	// NPoints is the number of values per spectrum.
	NPoints uint32 `json:"nPoints" yaml:"nPoints"`
	// NSpectra is the spectra capacity of the file.
	NSpectra uint64 `json:"nSpectra" yaml:"nSpectra"`
	// NCollected is the number of spectra actually written.
	NCollected uint64 `json:"nCollected" yaml:"nCollected"`
	// NAccum is the number of accumulations per spectrum.
	NAccum uint32 `json:"nAccum" yaml:"nAccum"`
	// YListCount is greater than 1 for images.
	YListCount  uint32                  `json:"yListCount" yaml:"yListCount"`
	XListCount  uint32                  `json:"xListCount" yaml:"xListCount"`
	OriginCount uint32                  `json:"originCount" yaml:"originCount"`
	AppName     string                  `json:"appName" yaml:"appName"`
	AppVersion  AppVersion              `json:"appVersion" yaml:"appVersion"`
	ScanType    enum.ScanType           `json:"scanType" yaml:"scanType"`
	Type        enum.SpectraDescription `json:"type" yaml:"type"`
	// TimeStart and TimeEnd are milliseconds since the Unix epoch.
	TimeStart    float64       `json:"timeStart" yaml:"timeStart"`
	TimeEnd      float64       `json:"timeEnd" yaml:"timeEnd"`
	Units        enum.DataUnit `json:"units" yaml:"units"`
	LaserWavenum float32       `json:"laserWavenum" yaml:"laserWavenum"`
	Spare        [6]uint64     `json:"spare" yaml:"spare"`
	User         string        `json:"user" yaml:"user"`
	Title        string        `json:"title" yaml:"title"`
	Padding      [6]uint64     `json:"padding" yaml:"padding"`
	Free         [4]uint64     `json:"free" yaml:"free"`
	Reserved     [4]uint64     `json:"reserved" yaml:"reserved"`
}

// ReadFile decodes the file header at the cursor's current offset and
// leaves the cursor exactly FileSize bytes further.
//
// Only two checks are made: the signature must be the file block kind and
// the version must be SupportedVersion. Every other field is decoded as
// found.
func ReadFile(c *cursor.Cursor) (*File, error) {
	if c.Remaining() < FileSize {
		return nil, fmt.Errorf("%w: file header needs %d bytes, %d available",
			ErrTruncated, FileSize, c.Remaining())
	}

	h := &File{}

	sig, err := enum.ParseBlockKind(c.Uint32())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWDFFile, err)
	}
	if sig != enum.KindFile {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrNotWDFFile, enum.KindFile, sig)
	}
	h.Signature = sig

	h.Version = c.Uint32()
	if h.Version != SupportedVersion {
		return nil, fmt.Errorf("%w: found version %d, only version %d is supported",
			ErrUnsupportedVersion, h.Version, SupportedVersion)
	}

	h.HeaderSize = c.Uint64()
	h.Flags = enum.DecodeFileFlags(c.Uint64())
	raw := c.Bytes(16)
	h.UUID = dotted(raw)
	if id, err := uuid.FromBytes(raw); err == nil {
		h.GUID = id
	}
	h.Unused0 = c.Uint64()
	h.Unused1 = c.Uint32()
	h.NTracks = c.Uint32()
	h.Status = c.Uint32()
	h.NPoints = c.Uint32()
	h.NSpectra = c.Uint64()
	h.NCollected = c.Uint64()
	h.NAccum = c.Uint32()
	h.YListCount = c.Uint32()
	h.XListCount = c.Uint32()
	h.OriginCount = c.Uint32()
	h.AppName = c.Text(24)
	h.AppVersion = AppVersion{
		Major: c.Uint16(),
		Minor: c.Uint16(),
		Patch: c.Uint16(),
		Build: c.Uint16(),
	}

	if h.ScanType, err = enum.ParseScanType(c.Uint32()); err != nil {
		return nil, fmt.Errorf("file header scan type: %w", err)
	}
	if h.Type, err = enum.ParseSpectraDescription(c.Uint32()); err != nil {
		return nil, fmt.Errorf("file header type: %w", err)
	}

	h.TimeStart = enum.FileTimeToMs(c.Uint64())
	h.TimeEnd = enum.FileTimeToMs(c.Uint64())

	if h.Units, err = enum.ParseDataUnit(c.Uint32()); err != nil {
		return nil, fmt.Errorf("file header units: %w", err)
	}

	h.LaserWavenum = c.Float32()
	copy(h.Spare[:], c.Uint64s(len(h.Spare)))
	h.User = c.Text(32)
	h.Title = c.Text(160)
	copy(h.Padding[:], c.Uint64s(len(h.Padding)))
	copy(h.Free[:], c.Uint64s(len(h.Free)))
	copy(h.Reserved[:], c.Uint64s(len(h.Reserved)))

	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return h, nil
}

// Parse decodes the file header at the start of data.
func Parse(data []byte) (*File, error) {
	return ReadFile(cursor.New(data))
}

// dotted joins the little-endian uint32 words of b with dots.
func dotted(b []byte) string {
	parts := make([]string, len(b)/4)
	for i := range parts {
		parts[i] = strconv.FormatUint(uint64(binary.LittleEndian.Uint32(b[4*i:])), 10)
	}
	return strings.Join(parts, ".")
}
