// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/cheminfo/wdf-parser/enum"
)

var errUnknownFormat = errors.New("unknown output format")

type valueEncoder interface {
	Encode(v any) error
}

type encoder interface {
	valueEncoder
	Close() error
}

func newEncoder(format string, w io.Writer) (encoder, error) {
	switch format {
	case "text":
		return &textEncoder{w: w}, nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc, nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return nopCloser{enc}, nil
	case "msgpack":
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return nopCloser{enc}, nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownFormat, format)
}

type nopCloser struct {
	valueEncoder
}

func (nopCloser) Close() error { return nil }

type textEncoder struct {
	w     io.Writer
	count int
}

func (e *textEncoder) Close() error { return nil }

func (e *textEncoder) Encode(v any) error {
	r, ok := v.(*report)
	if !ok {
		return fmt.Errorf("text output cannot render %T", v)
	}
	if e.count > 0 {
		if _, err := fmt.Fprintln(e.w); err != nil {
			return err
		}
	}
	e.count++

	h := r.Header
	tw := tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "file:\t%s\n", r.Path)
	fmt.Fprintf(tw, "title:\t%s\n", h.Title)
	fmt.Fprintf(tw, "user:\t%s\n", h.User)
	fmt.Fprintf(tw, "id:\t%s (%s)\n", h.GUID, h.UUID)
	fmt.Fprintf(tw, "application:\t%s %s\n", h.AppName, h.AppVersion)
	fmt.Fprintf(tw, "type:\t%s, %s scan\n", h.Type, h.ScanType)
	fmt.Fprintf(tw, "spectra:\t%d of %d, %d points, %s\n", h.NCollected, h.NSpectra, h.NPoints, h.Units)
	fmt.Fprintf(tw, "laser:\t%g cm-1\n", h.LaserWavenum)
	fmt.Fprintf(tw, "collected:\t%s to %s\n",
		enum.MsToTime(h.TimeStart).Format("2006-01-02T15:04:05Z07:00"),
		enum.MsToTime(h.TimeEnd).Format("2006-01-02T15:04:05Z07:00"))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(e.w, "blocks:")
	tw = tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)
	for _, b := range r.Blocks {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\n", b.Kind.Tag(), b.ID, b.Size, b.Body)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Spectra) == 0 {
		return nil
	}
	fmt.Fprintln(e.w, "spectra:")
	tw = tabwriter.NewWriter(e.w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  #\tx\ty\tmin\tmax\tpeak at\tmean\tflags\t\n")
	for _, s := range r.Spectra {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%g\t%g\t%g\t%.2f\t%s\t\n",
			s.Index, optional(s.X), optional(s.Y), s.Min, s.Max, s.PeakAt, s.Mean, flagString(s.Flags))
	}
	return tw.Flush()
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func flagString(f enum.SpectrumFlags) string {
	switch {
	case f.Error:
		return fmt.Sprintf("error %d", f.ErrorCode)
	case f.Saturated && f.CosmicRay:
		return "saturated, cosmic ray"
	case f.Saturated:
		return "saturated"
	case f.CosmicRay:
		return "cosmic ray"
	}
	return "-"
}
