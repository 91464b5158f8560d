// SPDX-License-Identifier: EPL-2.0

// Package spectrum offers per-spectrum views over a decoded WDF file.
//
// FromFile pairs each spectrum of the data block with the spectral axis
// and with its position, acquisition time and flags from the origin
// block:
//
//	file, _ := wdf.Parse(buf)
//	spectra, err := spectrum.FromFile(file)
//	for _, s := range spectra {
//		sum, _ := spectrum.Summarize(s.Intensity)
//		fmt.Println(s.X, s.Y, s.Axis[sum.ArgMax], sum.Max)
//	}
//
// Summarize reports descriptive statistics and Resample moves a spectrum
// onto an evenly spaced axis. Fingerprint hashes a spectrum for duplicate
// detection.
package spectrum
