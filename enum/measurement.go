// SPDX-License-Identifier: EPL-2.0

package enum

// SpectraDescription classifies the spectra a file holds as a whole.
type SpectraDescription uint32

const (
	DescriptionUnspecified SpectraDescription = iota
	// DescriptionSingle is a file with one spectrum.
	DescriptionSingle
	// DescriptionSeries is a set of spectra sharing one data origin
	// such as time, depth or temperature.
	DescriptionSeries
	// DescriptionMap is a set of spectra with more than one common
	// origin, typically X and Y positions.
	DescriptionMap
)

var descriptionNames = [...]string{
	DescriptionUnspecified: "unspecified",
	DescriptionSingle:      "single",
	DescriptionSeries:      "series",
	DescriptionMap:         "map",
}

func ParseSpectraDescription(code uint32) (SpectraDescription, error) {
	if code >= uint32(len(descriptionNames)) {
		return 0, unknown("spectra description", uint64(code))
	}
	return SpectraDescription(code), nil
}

func (d SpectraDescription) String() string {
	if int(d) < len(descriptionNames) {
		return descriptionNames[d]
	}
	return "unknown"
}

func (d SpectraDescription) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ScanType is the data collection method.
//
// MultitrackStitched, MultitrackDiscrete and LineFocusMapping are flag
// values that instruments may OR with a base method. Only the exact
// literals are accepted here.
type ScanType uint32

const (
	ScanUnspecified        ScanType = 0x0000
	ScanStatic             ScanType = 0x0001
	ScanContinuous         ScanType = 0x0002
	ScanStepRepeat         ScanType = 0x0003
	ScanFilterScan         ScanType = 0x0004
	ScanFilterImage        ScanType = 0x0005
	ScanStreamLine         ScanType = 0x0006
	ScanStreamLineHR       ScanType = 0x0007
	ScanPoint              ScanType = 0x0008
	ScanMultitrackStitched ScanType = 0x0100
	ScanMultitrackDiscrete ScanType = 0x0200
	ScanLineFocusMapping   ScanType = 0x0400
)

var scanTypeNames = map[ScanType]string{
	ScanUnspecified:        "unspecified",
	ScanStatic:             "static",
	ScanContinuous:         "continuous",
	ScanStepRepeat:         "step-repeat",
	ScanFilterScan:         "filter-scan",
	ScanFilterImage:        "filter-image",
	ScanStreamLine:         "streamline",
	ScanStreamLineHR:       "streamline-hr",
	ScanPoint:              "point",
	ScanMultitrackStitched: "multitrack-stitched",
	ScanMultitrackDiscrete: "multitrack-discrete",
	ScanLineFocusMapping:   "line-focus-mapping",
}

func ParseScanType(code uint32) (ScanType, error) {
	s := ScanType(code)
	if _, ok := scanTypeNames[s]; !ok {
		return 0, unknown("scan type", uint64(code))
	}
	return s, nil
}

func (s ScanType) String() string {
	if n, ok := scanTypeNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s ScanType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
