// SPDX-License-Identifier: EPL-2.0

// Package wdf decodes Renishaw WiRE Data Files (.wdf), the binary container
// written by Raman spectroscopy instruments.
//
// A WDF file is a fixed 512-byte header followed by a stream of typed
// blocks. The decoder reads the header, walks every block, decodes the
// bodies it understands and checks that the blocks a usable file needs
// are present. Everything is decoded in one pass from an in-memory buffer.
//
// # Quick Start
//
//	f, err := os.Open("measurement.wdf")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	file, err := wdf.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//
//	data := file.Data()       // every spectrum, spectrum-major
//	shifts := file.XList()    // the spectral axis
//	origins := file.Origin()  // per-spectrum position, time, flags
//
// When the file is already in memory, use Parse:
//
//	file, err := wdf.Parse(buf)
//
// # Blocks
//
// Each block carries a kind, an instance id and a size. DATA, XLIST,
// YLIST and ORIGIN bodies are decoded into the types of package block.
// The bodies of all other kinds (TEXT, WXDA, WMAP, NAIL and so on) are
// returned as *block.Opaque, with their bytes retained only when
// Decoder.KeepOpaque is set.
//
// Every file must hold a DATA, XLIST, YLIST and ORIGIN block. Series and
// map files must also hold a MAPAREA block.
//
// # Errors
//
// Decoding either returns a complete *File or an error, never both:
//
//   - ErrNotWDFFile and ErrUnsupportedVersion for a bad header.
//   - *enum.UnknownValueError (matching enum.ErrUnknownValue) for a code
//     outside a known enumeration.
//   - ErrTruncatedStream when a block overruns the buffer or the stream
//     does not end exactly at the end of the buffer.
//   - *CorruptFileError (matching ErrCorruptFile) naming every missing
//     required block.
//
// # Spectra
//
// Package spectrum pairs the decoded data with its axis and origins and
// offers summary statistics, resampling and fingerprinting of single
// spectra. The wdfinfo command in cmd/wdfinfo prints decoded files as
// text, YAML, JSON or MessagePack.
package wdf
