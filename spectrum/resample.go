// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Resample interpolates the spectrum y, sampled at the strictly monotonic
// axis x, onto n evenly spaced positions between the first and last axis
// values. It returns the new axis and intensities.
//
// Interpolation is Catmull-Rom cubic; the end segments reuse their edge
// sample as the missing neighbour.
func Resample(x, y []float32, n int) ([]float32, []float32, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: %d axis values, %d points", ErrAxisMismatch, len(x), len(y))
	}
	if len(x) < 2 || n < 2 {
		return nil, nil, ErrTooFewPoints
	}

	rising := x[1] > x[0]
	for i := 1; i < len(x); i++ {
		if (x[i] > x[i-1]) != rising || x[i] == x[i-1] {
			return nil, nil, fmt.Errorf("%w: at index %d", ErrNotMonotonic, i)
		}
	}

	last := len(x) - 1
	grid := make([]float64, n)
	floats.Span(grid, float64(x[0]), float64(x[last]))

	outX := make([]float32, n)
	outY := make([]float32, n)
	for k, g := range grid {
		pos := float32(g)
		i := sort.Search(last, func(j int) bool {
			if rising {
				return x[j+1] >= pos
			}
			return x[j+1] <= pos
		})
		if i >= last {
			i = last - 1
		}

		t := (pos - x[i]) / (x[i+1] - x[i])
		t = min(max(t, 0), 1)

		outX[k] = pos
		outY[k] = cubicInterpolate(y[max(i-1, 0)], y[i], y[i+1], y[min(i+2, last)], t)
	}
	return outX, outY, nil
}

// cubicInterpolate evaluates the Catmull-Rom spline through y1 and y2 at
// fraction t, with y0 and y3 as the outer neighbours.
func cubicInterpolate(y0, y1, y2, y3, t float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*t*t*t + a1*t*t + a2*t + a3
}
