// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	wdf "github.com/cheminfo/wdf-parser"
	"github.com/cheminfo/wdf-parser/block"
	"github.com/cheminfo/wdf-parser/enum"
	"github.com/cheminfo/wdf-parser/header"
	"github.com/cheminfo/wdf-parser/spectrum"
)

// report is the document written for one file.
type report struct {
	Path    string         `json:"path" yaml:"path"`
	Header  *header.File   `json:"header" yaml:"header"`
	Blocks  []blockInfo    `json:"blocks" yaml:"blocks"`
	Census  []kindCount    `json:"census" yaml:"census"`
	Spectra []spectrumInfo `json:"spectra,omitempty" yaml:"spectra,omitempty"`
}

type blockInfo struct {
	Kind enum.BlockKind `json:"kind" yaml:"kind"`
	ID   string         `json:"id" yaml:"id"`
	Size uint64         `json:"size" yaml:"size"`
	Body string         `json:"body" yaml:"body"`
}

type kindCount struct {
	Kind  enum.BlockKind `json:"kind" yaml:"kind"`
	Count int            `json:"count" yaml:"count"`
}

// spectrumInfo uses pointers for values that may be NaN, which JSON
// cannot carry.
type spectrumInfo struct {
	Index       int                `json:"index" yaml:"index"`
	X           *float64           `json:"x,omitempty" yaml:"x,omitempty"`
	Y           *float64           `json:"y,omitempty" yaml:"y,omitempty"`
	Time        *float64           `json:"time,omitempty" yaml:"time,omitempty"`
	Flags       enum.SpectrumFlags `json:"flags" yaml:"flags"`
	Min         float64            `json:"min" yaml:"min"`
	Max         float64            `json:"max" yaml:"max"`
	PeakAt      float32            `json:"peakAt" yaml:"peakAt"`
	Mean        float64            `json:"mean" yaml:"mean"`
	StdDev      *float64           `json:"stddev,omitempty" yaml:"stddev,omitempty"`
	Fingerprint string             `json:"fingerprint" yaml:"fingerprint"`
}

func newReport(path string, f *wdf.File, withSpectra bool) (*report, error) {
	r := &report{Path: path, Header: f.Header}

	r.Blocks = lo.Map(f.Blocks, func(b block.Block, _ int) blockInfo {
		return blockInfo{
			Kind: b.Header.Kind,
			ID:   b.Header.ID,
			Size: b.Header.Size,
			Body: bodyName(b.Body),
		}
	})
	for kind, n := range f.Census().AllFromFront() {
		r.Census = append(r.Census, kindCount{Kind: kind, Count: n})
	}

	if !withSpectra {
		return r, nil
	}

	spectra, err := spectrum.FromFile(f)
	if err != nil {
		return nil, err
	}
	for _, s := range spectra {
		sum, err := spectrum.Summarize(s.Intensity)
		if err != nil {
			return nil, fmt.Errorf("spectrum %d: %w", s.Index, err)
		}
		r.Spectra = append(r.Spectra, spectrumInfo{
			Index:       s.Index,
			X:           finite(s.X),
			Y:           finite(s.Y),
			Time:        finite(s.Time),
			Flags:       s.Flags,
			Min:         sum.Min,
			Max:         sum.Max,
			PeakAt:      s.Axis[sum.ArgMax],
			Mean:        sum.Mean,
			StdDev:      finite(sum.StdDev),
			Fingerprint: fmt.Sprintf("%016x", spectrum.Fingerprint(s.Intensity)),
		})
	}
	return r, nil
}

func bodyName(b block.Body) string {
	switch b.(type) {
	case *block.Data:
		return "data"
	case *block.AxisList:
		return "axis list"
	case *block.Origin:
		return "origin"
	default:
		return "opaque"
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
