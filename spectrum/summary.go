// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of one spectrum.
type Summary struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	ArgMax int     `json:"argmax" yaml:"argmax"`
	Mean   float64 `json:"mean" yaml:"mean"`
	// StdDev is the sample standard deviation, NaN for a single point.
	StdDev float64 `json:"stddev" yaml:"stddev"`
}

func Summarize(values []float32) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmpty
	}

	v := widen(values)
	mean, std := stat.MeanStdDev(v, nil)
	return Summary{
		Min:    floats.Min(v),
		Max:    floats.Max(v),
		ArgMax: floats.MaxIdx(v),
		Mean:   mean,
		StdDev: std,
	}, nil
}

func widen(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
