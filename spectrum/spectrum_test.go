// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"errors"
	"math"
	"testing"
	"time"

	wdf "github.com/cheminfo/wdf-parser"
	"github.com/cheminfo/wdf-parser/block"
	"github.com/cheminfo/wdf-parser/internal/wdftest"
)

func TestFromFile_Map(t *testing.T) {
	t.Parallel()

	f, err := wdf.Parse(wdftest.MapFile())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	spectra, err := FromFile(f)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if len(spectra) != wdftest.MapSpectra {
		t.Fatalf("len(spectra) = %d, want %d", len(spectra), wdftest.MapSpectra)
	}

	s := spectra[13]
	if s.Index != 13 {
		t.Errorf("Index = %d, want 13", s.Index)
	}
	if len(s.Axis) != wdftest.MapPoints || len(s.Intensity) != wdftest.MapPoints {
		t.Fatalf("len(Axis), len(Intensity) = %d, %d", len(s.Axis), len(s.Intensity))
	}
	if s.Intensity[7] != wdftest.Intensity(13, 7) {
		t.Errorf("Intensity[7] = %v, want %v", s.Intensity[7], wdftest.Intensity(13, 7))
	}
	if s.Axis[7] != wdftest.Shift(7) {
		t.Errorf("Axis[7] = %v, want %v", s.Axis[7], wdftest.Shift(7))
	}
	if s.X != 10 || s.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", s.X, s.Y)
	}
	if s.Time != 1555526400000+13*1000 {
		t.Errorf("Time = %v", s.Time)
	}
	want := time.Date(2019, 4, 17, 18, 40, 13, 0, time.UTC)
	if !s.AcquiredAt().Equal(want) {
		t.Errorf("AcquiredAt() = %v, want %v", s.AcquiredAt(), want)
	}

	if !spectra[3].Flags.Saturated {
		t.Errorf("spectra[3].Flags = %+v, want saturated", spectra[3].Flags)
	}
	if spectra[4].Flags.ErrorCode != 42 {
		t.Errorf("spectra[4].Flags = %+v, want error code 42", spectra[4].Flags)
	}
}

func TestFromFile_SingleWithoutPositions(t *testing.T) {
	t.Parallel()

	f, err := wdf.Parse(wdftest.SingleFile())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	spectra, err := FromFile(f)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if len(spectra) != 1 {
		t.Fatalf("len(spectra) = %d, want 1", len(spectra))
	}
	if !math.IsNaN(spectra[0].X) || !math.IsNaN(spectra[0].Y) {
		t.Errorf("position = (%v, %v), want NaN", spectra[0].X, spectra[0].Y)
	}
	if spectra[0].Time != 1555526400000 {
		t.Errorf("Time = %v, want 1555526400000", spectra[0].Time)
	}
}

func TestFromFile_Errors(t *testing.T) {
	t.Parallel()

	f, err := wdf.Parse(wdftest.SingleFile())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	noData := &wdf.File{Header: f.Header, Blocks: f.Blocks[1:]}
	if _, err := FromFile(noData); !errors.Is(err, ErrNoData) {
		t.Errorf("FromFile() without data error = %v, want ErrNoData", err)
	}

	noAxis := &wdf.File{Header: f.Header, Blocks: []block.Block{f.Blocks[0]}}
	if _, err := FromFile(noAxis); !errors.Is(err, ErrNoAxis) {
		t.Errorf("FromFile() without axis error = %v, want ErrNoAxis", err)
	}

	h := wdftest.SingleHeader()
	h.XListCount = 10
	short := wdftest.File(h,
		wdftest.Block(wdftest.CodeData, 0, wdftest.DataBody(wdftest.Spectra(1, int(h.NPoints)))),
		wdftest.Block(wdftest.CodeYList, 0, wdftest.ListBody(0, 0, []float32{0})),
		wdftest.Block(wdftest.CodeXList, 0, wdftest.ListBody(19, 1, wdftest.Axis(10))),
		wdftest.Block(wdftest.CodeOrigin, 0, wdftest.OriginBody(nil)),
	)
	mismatched, err := wdf.Parse(short)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := FromFile(mismatched); !errors.Is(err, ErrAxisMismatch) {
		t.Errorf("FromFile() with short axis error = %v, want ErrAxisMismatch", err)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float32
		want   Summary
	}{
		{
			name:   "peak",
			values: []float32{2, 4, 4, 4, 5, 5, 7, 9},
			want:   Summary{Min: 2, Max: 9, ArgMax: 7, Mean: 5, StdDev: math.Sqrt(32.0 / 7)},
		},
		{
			name:   "first maximum wins",
			values: []float32{1, 3, 3, -1},
			want:   Summary{Min: -1, Max: 3, ArgMax: 1, Mean: 1.5, StdDev: math.Sqrt(11.0 / 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Summarize(tt.values)
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if got.Min != tt.want.Min || got.Max != tt.want.Max || got.ArgMax != tt.want.ArgMax {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.Mean-tt.want.Mean) > 1e-9 || math.Abs(got.StdDev-tt.want.StdDev) > 1e-9 {
				t.Errorf("Mean, StdDev = %v, %v, want %v, %v", got.Mean, got.StdDev, tt.want.Mean, tt.want.StdDev)
			}
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	if _, err := Summarize(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Summarize(nil) error = %v, want ErrEmpty", err)
	}
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := wdftest.Spectra(2, 100)
	same := append([]float32(nil), a[0]...)

	if Fingerprint(a[0]) != Fingerprint(same) {
		t.Error("equal spectra have different fingerprints")
	}
	if Fingerprint(a[0]) == Fingerprint(a[1]) {
		t.Error("different spectra share a fingerprint")
	}
	if Fingerprint([]float32{0}) == Fingerprint([]float32{float32(math.Copysign(0, -1))}) {
		t.Error("+0 and -0 share a fingerprint")
	}
	if Fingerprint(nil) != Fingerprint([]float32{}) {
		t.Error("nil and empty spectra differ")
	}
}
