// SPDX-License-Identifier: EPL-2.0

package block

import (
	"errors"
	"math"
	"testing"

	"github.com/cheminfo/wdf-parser/enum"
	"github.com/cheminfo/wdf-parser/header"
	"github.com/cheminfo/wdf-parser/internal/cursor"
	"github.com/cheminfo/wdf-parser/internal/wdftest"
)

func mapContext() Context {
	return Context{Spectra: wdftest.MapSpectra, Points: wdftest.MapPoints, YListCount: 1}
}

func TestRead_Data(t *testing.T) {
	t.Parallel()

	raw := wdftest.Block(wdftest.CodeData, 0,
		wdftest.DataBody(wdftest.Spectra(wdftest.MapSpectra, wdftest.MapPoints)))
	c := cursor.New(raw)

	b, err := Read(c, mapContext(), Options{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", c.Remaining())
	}

	data, ok := b.Body.(*Data)
	if !ok {
		t.Fatalf("Body = %T, want *Data", b.Body)
	}
	if len(data.Values) != wdftest.MapSpectra*wdftest.MapPoints {
		t.Fatalf("len(Values) = %d, want %d", len(data.Values), wdftest.MapSpectra*wdftest.MapPoints)
	}

	for _, s := range []int{0, 1, 17, 35} {
		spec := data.Spectrum(s)
		if len(spec) != wdftest.MapPoints {
			t.Fatalf("len(Spectrum(%d)) = %d", s, len(spec))
		}
		for _, p := range []int{0, 500, wdftest.MapPoints - 1} {
			if spec[p] != wdftest.Intensity(s, p) {
				t.Errorf("Spectrum(%d)[%d] = %v, want %v", s, p, spec[p], wdftest.Intensity(s, p))
			}
		}
	}

	if data.Spectrum(-1) != nil || data.Spectrum(36) != nil {
		t.Error("Spectrum() out of range should be nil")
	}
	if got := len(data.SpectraList()); got != wdftest.MapSpectra {
		t.Errorf("len(SpectraList()) = %d, want %d", got, wdftest.MapSpectra)
	}
}

func TestRead_DataTrailingPadding(t *testing.T) {
	t.Parallel()

	body := append(wdftest.DataBody(wdftest.Spectra(2, 3)), 0xaa, 0xbb, 0xcc, 0xdd, 0xee)
	raw := append(wdftest.Block(wdftest.CodeData, 0, body), wdftest.Block(wdftest.CodeZeldac, 3, nil)...)
	c := cursor.New(raw)
	ctx := Context{Spectra: 2, Points: 3}

	if _, err := Read(c, ctx, Options{}); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	next, err := Read(c, ctx, Options{})
	if err != nil {
		t.Fatalf("Read() second block error = %v", err)
	}
	if next.Header.Kind != enum.KindZeldac || next.Header.ID != "3" {
		t.Errorf("second block = %+v", next.Header)
	}
}

func TestRead_DataTooSmall(t *testing.T) {
	t.Parallel()

	raw := wdftest.Block(wdftest.CodeData, 0, wdftest.DataBody(wdftest.Spectra(2, 3)))
	_, err := Read(cursor.New(raw), Context{Spectra: 3, Points: 3}, Options{})
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Read() error = %v, want ErrTruncated", err)
	}
}

func TestRead_XList(t *testing.T) {
	t.Parallel()

	raw := wdftest.Block(wdftest.CodeXList, 0, wdftest.ListBody(19, 1, wdftest.Axis(wdftest.MapPoints)))
	b, err := Read(cursor.New(raw), mapContext(), Options{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	list, ok := b.Body.(*AxisList)
	if !ok {
		t.Fatalf("Body = %T, want *AxisList", b.Body)
	}
	if list.Role != enum.RoleFrequency {
		t.Errorf("Role = %v, want %v", list.Role, enum.RoleFrequency)
	}
	if list.Unit != enum.UnitRamanShift {
		t.Errorf("Unit = %v, want %v", list.Unit, enum.UnitRamanShift)
	}
	if len(list.Values) != wdftest.MapPoints {
		t.Fatalf("len(Values) = %d, want %d", len(list.Values), wdftest.MapPoints)
	}
	if list.Values[0] != 3200 || list.Values[10] != 3170 {
		t.Errorf("Values[0], Values[10] = %v, %v", list.Values[0], list.Values[10])
	}
}

func TestRead_YList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		count  uint32
		values []float32
		opaque bool
	}{
		{"single value skipped", 1, []float32{0}, true},
		{"zero count skipped", 0, []float32{0}, true},
		{"image rows decoded", 3, []float32{1, 2, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := wdftest.Block(wdftest.CodeYList, 0, wdftest.ListBody(0, 0, tt.values))
			c := cursor.New(raw)
			b, err := Read(c, Context{Spectra: 1, Points: 1, YListCount: tt.count}, Options{})
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if c.Remaining() != 0 {
				t.Errorf("Remaining() = %d, want 0", c.Remaining())
			}

			switch body := b.Body.(type) {
			case *Opaque:
				if !tt.opaque {
					t.Errorf("Body = *Opaque, want *AxisList")
				}
			case *AxisList:
				if tt.opaque {
					t.Errorf("Body = *AxisList, want *Opaque")
				}
				if len(body.Values) != len(tt.values) {
					t.Errorf("len(Values) = %d, want %d", len(body.Values), len(tt.values))
				}
			default:
				t.Errorf("Body = %T", b.Body)
			}
		})
	}
}

func TestRead_ListTooShort(t *testing.T) {
	t.Parallel()

	raw := wdftest.Block(wdftest.CodeXList, 0, []byte{19, 0, 0, 0})
	_, err := Read(cursor.New(raw), mapContext(), Options{})
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Read() error = %v, want ErrTruncated", err)
	}
}

func TestRead_Origin(t *testing.T) {
	t.Parallel()

	raw := wdftest.Block(wdftest.CodeOrigin, 0, wdftest.OriginBody(wdftest.MapOrigins(wdftest.MapSpectra)))
	c := cursor.New(raw)
	b, err := Read(c, mapContext(), Options{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", c.Remaining())
	}

	origin, ok := b.Body.(*Origin)
	if !ok {
		t.Fatalf("Body = %T, want *Origin", b.Body)
	}
	if len(origin.Sets) != 5 {
		t.Fatalf("len(Sets) = %d, want 5", len(origin.Sets))
	}
	for _, s := range origin.Sets {
		if s.Values.Len() != wdftest.MapSpectra {
			t.Errorf("set %q has %d values, want %d", s.Label, s.Values.Len(), wdftest.MapSpectra)
		}
	}

	timeSet, ok := origin.Set(LabelTime)
	if !ok {
		t.Fatal("no Time set")
	}
	if timeSet.Role != enum.RoleTime || !timeSet.Important {
		t.Errorf("Time role = %v important = %v", timeSet.Role, timeSet.Important)
	}
	times, ok := timeSet.Values.(TimeValues)
	if !ok {
		t.Fatalf("Time values = %T, want TimeValues", timeSet.Values)
	}
	if times[0] != 1555526400000 || times[35] != 1555526400000+35*1000 {
		t.Errorf("times[0], times[35] = %v, %v", times[0], times[35])
	}

	flagSet, _ := origin.Set(LabelFlags)
	if flagSet.Important {
		t.Error("Flags set should not be important")
	}
	flags, ok := flagSet.Values.(FlagValues)
	if !ok {
		t.Fatalf("Flags values = %T, want FlagValues", flagSet.Values)
	}
	if flags[0] != (enum.SpectrumFlags{}) {
		t.Errorf("flags[0] = %+v, want zero", flags[0])
	}
	if !flags[3].Saturated || flags[3].Error {
		t.Errorf("flags[3] = %+v, want saturated", flags[3])
	}
	if !flags[4].Error || flags[4].ErrorCode != 42 {
		t.Errorf("flags[4] = %+v, want error code 42", flags[4])
	}

	xSet, _ := origin.Set(LabelX)
	ySet, _ := origin.Set(LabelY)
	xs, okX := xSet.Values.(Float64Values)
	ys, okY := ySet.Values.(Float64Values)
	if !okX || !okY {
		t.Fatalf("X, Y values = %T, %T", xSet.Values, ySet.Values)
	}
	if xs[7] != 10 || ys[7] != 10 || xs[35] != 50 || ys[35] != 50 {
		t.Errorf("positions 7, 35 = (%v,%v) (%v,%v)", xs[7], ys[7], xs[35], ys[35])
	}
	if xSet.Role != enum.RoleSpatialX || xSet.Unit != enum.UnitMicron {
		t.Errorf("X role, unit = %v, %v", xSet.Role, xSet.Unit)
	}

	sumSet, _ := origin.Set("Checksum")
	sums, ok := sumSet.Values.(RawValues)
	if !ok {
		t.Fatalf("Checksum values = %T, want RawValues", sumSet.Values)
	}
	if sums[1] != 0xc0ffee01 {
		t.Errorf("sums[1] = %#x, want 0xc0ffee01", sums[1])
	}

	if _, ok := origin.Set("Missing"); ok {
		t.Error("Set(\"Missing\") found a set")
	}
}

func TestRead_OriginNaNPosition(t *testing.T) {
	t.Parallel()

	sets := []wdftest.OriginSet{
		{RoleWord: wdftest.ImportantBit | 3, Unit: 5, Label: "X", Words: wdftest.Float64Words([]float64{math.NaN()})},
	}
	raw := wdftest.Block(wdftest.CodeOrigin, 0, wdftest.OriginBody(sets))
	b, err := Read(cursor.New(raw), Context{Spectra: 1, Points: 1}, Options{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	set, _ := b.Body.(*Origin).Set(LabelX)
	if v := set.Values.(Float64Values)[0]; !math.IsNaN(v) {
		t.Errorf("X[0] = %v, want NaN", v)
	}
}

func TestRead_OriginErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []byte
		want error
	}{
		{
			name: "unknown role",
			body: wdftest.OriginBody([]wdftest.OriginSet{{RoleWord: 99, Label: "X", Words: []uint64{0}}}),
			want: enum.ErrUnknownValue,
		},
		{
			name: "unknown unit",
			body: wdftest.OriginBody([]wdftest.OriginSet{{RoleWord: 3, Unit: 99, Label: "X", Words: []uint64{0}}}),
			want: enum.ErrUnknownValue,
		},
		{
			name: "more sets than bytes",
			body: (&wdftest.Writer{}).U32(4).Bytes(),
			want: ErrTruncated,
		},
		{
			name: "empty body",
			body: nil,
			want: ErrTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := wdftest.Block(wdftest.CodeOrigin, 0, tt.body)
			_, err := Read(cursor.New(raw), Context{Spectra: 1, Points: 1}, Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("Read() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRead_Opaque(t *testing.T) {
	t.Parallel()

	body := []byte("map of sample A\x00")
	raw := wdftest.Block(wdftest.CodeComment, 0, body)

	tests := []struct {
		name string
		opts Options
		want int
	}{
		{"dropped", Options{}, 0},
		{"kept", Options{KeepOpaque: true}, len(body)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cursor.New(raw)
			b, err := Read(c, mapContext(), tt.opts)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if c.Remaining() != 0 {
				t.Errorf("Remaining() = %d, want 0", c.Remaining())
			}
			op, ok := b.Body.(*Opaque)
			if !ok {
				t.Fatalf("Body = %T, want *Opaque", b.Body)
			}
			if len(op.Raw) != tt.want {
				t.Errorf("len(Raw) = %d, want %d", len(op.Raw), tt.want)
			}
			if b.Header.Kind != enum.KindComment {
				t.Errorf("Kind = %v, want %v", b.Header.Kind, enum.KindComment)
			}
		})
	}
}

func TestDecode_BadSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hdr  header.Block
		buf  []byte
		want error
	}{
		{"below header size", header.Block{Kind: enum.KindComment, Size: 8}, nil, ErrBlockSize},
		{"past end", header.Block{Kind: enum.KindComment, Size: 64}, make([]byte, 10), ErrTruncated},
		{"huge", header.Block{Kind: enum.KindData, Size: math.MaxUint64}, make([]byte, 10), ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(cursor.New(tt.buf), tt.hdr, mapContext(), Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}
