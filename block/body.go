// SPDX-License-Identifier: EPL-2.0

package block

import (
	"github.com/cheminfo/wdf-parser/enum"
	"github.com/cheminfo/wdf-parser/header"
)

// Block pairs a block header with its decoded body.
type Block struct {
	Header header.Block `json:"header" yaml:"header"`
	Body   Body         `json:"body,omitempty" yaml:"body,omitempty"`
}

// Body is one of *Data, *AxisList, *Origin or *Opaque.
type Body interface {
	isBody()
}

// Data holds every spectrum of the file in spectrum-major order: the
// points of spectrum 0, then spectrum 1, and so on.
type Data struct {
	Spectra int       `json:"spectra" yaml:"spectra"`
	Points  int       `json:"points" yaml:"points"`
	Values  []float32 `json:"values" yaml:"values,flow"`
}

// Spectrum returns the points of spectrum i without copying.
func (d *Data) Spectrum(i int) []float32 {
	if i < 0 || i >= d.Spectra {
		return nil
	}
	return d.Values[i*d.Points : (i+1)*d.Points : (i+1)*d.Points]
}

// SpectraList returns one slice per spectrum, all sharing Values.
func (d *Data) SpectraList() [][]float32 {
	out := make([][]float32, d.Spectra)
	for i := range out {
		out[i] = d.Spectrum(i)
	}
	return out
}

// Flat returns the single spectrum of a one-spectrum file, or all values
// end to end otherwise.
func (d *Data) Flat() []float32 {
	return d.Values
}

// AxisList is the body of an x-list or y-list block.
type AxisList struct {
	Role   enum.AxisRole `json:"role" yaml:"role"`
	Unit   enum.DataUnit `json:"unit" yaml:"unit"`
	Values []float32     `json:"values" yaml:"values,flow"`
}

// Origin holds the data origin sets of a file, one value per spectrum in
// each set.
type Origin struct {
	Sets []OriginSet `json:"sets" yaml:"sets"`
}

// Set returns the first set with the given label.
func (o *Origin) Set(label string) (OriginSet, bool) {
	for _, s := range o.Sets {
		if s.Label == label {
			return s, true
		}
	}
	return OriginSet{}, false
}

// OriginSet is one labelled list inside an origin block.
type OriginSet struct {
	Role enum.AxisRole `json:"role" yaml:"role"`
	// Important is false for alternative origins.
	Important bool          `json:"important" yaml:"important"`
	Unit      enum.DataUnit `json:"unit" yaml:"unit"`
	Label     string        `json:"label" yaml:"label"`
	Values    Payload       `json:"values" yaml:"values,flow"`
}

// Payload is one of Float64Values, FlagValues, TimeValues or RawValues.
type Payload interface {
	Len() int
	isPayload()
}

// Float64Values are axis origins, used by the "X" and "Y" sets.
type Float64Values []float64

// FlagValues are per-spectrum flags, used by the "Flags" set.
type FlagValues []enum.SpectrumFlags

// TimeValues are acquisition times in milliseconds since the Unix epoch,
// used by the "Time" set.
type TimeValues []float64

// RawValues are the undecoded words of any other set.
type RawValues []uint64

func (v Float64Values) Len() int { return len(v) }
func (v FlagValues) Len() int    { return len(v) }
func (v TimeValues) Len() int    { return len(v) }
func (v RawValues) Len() int     { return len(v) }

func (Float64Values) isPayload() {}
func (FlagValues) isPayload()    {}
func (TimeValues) isPayload()    {}
func (RawValues) isPayload()     {}

// Opaque is the body of a block that is not interpreted. Raw is only
// filled when Options.KeepOpaque is set.
type Opaque struct {
	Raw []byte `json:"raw,omitempty" yaml:"raw,omitempty"`
}

func (*Data) isBody()     {}
func (*AxisList) isBody() {}
func (*Origin) isBody()   {}
func (*Opaque) isBody()   {}
