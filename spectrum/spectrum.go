// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"math"
	"time"

	wdf "github.com/cheminfo/wdf-parser"
	"github.com/cheminfo/wdf-parser/block"
	"github.com/cheminfo/wdf-parser/enum"
)

// Spectrum is one measured spectrum with its axis and data origins.
// Positions and Time are NaN when the file has no matching origin set.
type Spectrum struct {
	Index     int                `json:"index" yaml:"index"`
	Axis      []float32          `json:"-" yaml:"-"`
	Intensity []float32          `json:"-" yaml:"-"`
	X         float64            `json:"x" yaml:"x"`
	Y         float64            `json:"y" yaml:"y"`
	Time      float64            `json:"time" yaml:"time"`
	Flags     enum.SpectrumFlags `json:"flags" yaml:"flags"`
}

// AcquiredAt returns Time as a time.Time, or the zero time when unknown.
func (s Spectrum) AcquiredAt() time.Time {
	if math.IsNaN(s.Time) {
		return time.Time{}
	}
	return enum.MsToTime(s.Time)
}

// FromFile splits the data block of f into spectra. The slices share
// memory with f.
func FromFile(f *wdf.File) ([]Spectrum, error) {
	data := f.Data()
	if data == nil {
		return nil, ErrNoData
	}
	axis := f.XList()
	if axis == nil {
		return nil, ErrNoAxis
	}
	if len(axis.Values) != data.Points {
		return nil, fmt.Errorf("%w: %d axis values, %d points", ErrAxisMismatch, len(axis.Values), data.Points)
	}

	var xs, ys, times []float64
	var flags []enum.SpectrumFlags
	if o := f.Origin(); o != nil {
		xs = float64Set(o, block.LabelX)
		ys = float64Set(o, block.LabelY)
		if s, ok := o.Set(block.LabelTime); ok {
			times, _ = s.Values.(block.TimeValues)
		}
		if s, ok := o.Set(block.LabelFlags); ok {
			flags, _ = s.Values.(block.FlagValues)
		}
	}

	out := make([]Spectrum, data.Spectra)
	for i := range out {
		out[i] = Spectrum{
			Index:     i,
			Axis:      axis.Values,
			Intensity: data.Spectrum(i),
			X:         at(xs, i),
			Y:         at(ys, i),
			Time:      at(times, i),
		}
		if i < len(flags) {
			out[i].Flags = flags[i]
		}
	}
	return out, nil
}

func float64Set(o *block.Origin, label string) []float64 {
	s, ok := o.Set(label)
	if !ok {
		return nil
	}
	v, _ := s.Values.(block.Float64Values)
	return v
}

func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return math.NaN()
}
