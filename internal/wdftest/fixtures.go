// SPDX-License-Identifier: EPL-2.0

package wdftest

// Raw codes used by the fixtures. They are repeated here rather than
// imported so the fixtures stay independent of the decoder under test.
const (
	CodeFile        uint32 = 0x31464457
	CodeData        uint32 = 0x41544144
	CodeYList       uint32 = 0x54534c59
	CodeXList       uint32 = 0x54534c58
	CodeOrigin      uint32 = 0x4e47524f
	CodeComment     uint32 = 0x54584554
	CodeWireData    uint32 = 0x41445857
	CodeMeasurement uint32 = 0x4d445857
	CodeCalibration uint32 = 0x53435857
	CodeInstrument  uint32 = 0x53495857
	CodeMapArea     uint32 = 0x50414d57
	CodeWhiteLight  uint32 = 0x4c544857
	CodeThumbnail   uint32 = 0x4c49414e
	CodeZeldac      uint32 = 0x43444c5a

	ImportantBit uint32 = 1 << 31
)

const (
	MapSpectra = 36
	MapPoints  = 1015

	// FixtureTimeStart is 2019-04-17T18:40:00Z as FILETIME.
	FixtureTimeStart uint64 = 132000000000000000
	// FixtureTimeStep is one second in FILETIME ticks.
	FixtureTimeStep uint64 = 10000000
)

// Intensity is the synthetic value stored for point p of spectrum s.
func Intensity(s, p int) float32 {
	return float32(s*2000 + p)
}

// Shift is the synthetic x-list value for point p.
func Shift(p int) float32 {
	return float32(3200 - 3*p)
}

// Spectra builds n spectra of points values using Intensity.
func Spectra(n, points int) [][]float32 {
	out := make([][]float32, n)
	for s := range out {
		out[s] = make([]float32, points)
		for p := range out[s] {
			out[s][p] = Intensity(s, p)
		}
	}
	return out
}

// Axis builds points x-list values using Shift.
func Axis(points int) []float32 {
	out := make([]float32, points)
	for p := range out {
		out[p] = Shift(p)
	}
	return out
}

// MapHeader mirrors the header of a 6x6 area map with 36 spectra of
// 1015 points.
func MapHeader() Header {
	return Header{
		Signature:   CodeFile,
		Version:     1,
		Size:        512,
		UUID:        [4]uint32{2774409017, 1183364117, 2929021362, 3459420843},
		NPoints:     MapPoints,
		NSpectra:    MapSpectra,
		NCollected:  MapSpectra,
		NAccum:      1,
		YListCount:  1,
		XListCount:  MapPoints,
		OriginCount: 5,
		AppName:     "WiRE",
		AppVersion:  [4]uint16{4, 1, 0, 4308},
		ScanType:    1, // static
		Type:        3, // map
		TimeStart:   FixtureTimeStart,
		TimeEnd:     FixtureTimeStart + MapSpectra*FixtureTimeStep,
		Units:       6, // counts
		Laser:       15797.788,
		User:        "Raman",
		Title:       "Simple mapping measurement 1",
	}
}

// MapOrigins returns the Time, Flags, X, Y and Checksum sets of a
// 6x6 map with a 10um pitch.
func MapOrigins(n int) []OriginSet {
	times := make([]uint64, n)
	flags := make([]uint64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	sums := make([]uint64, n)
	for i := range n {
		times[i] = FixtureTimeStart + uint64(i)*FixtureTimeStep
		xs[i] = float64(i%6) * 10
		ys[i] = float64(i/6) * 10
		sums[i] = uint64(0xc0ffee00 + i)
	}
	if n > 3 {
		flags[3] = 1         // saturated
		flags[4] = 42<<32 | 2 // error, code 42
	}
	return []OriginSet{
		{RoleWord: ImportantBit | 11, Unit: 23, Label: "Time", Words: times},
		{RoleWord: 17, Unit: 0, Label: "Flags", Words: flags},
		{RoleWord: ImportantBit | 3, Unit: 5, Label: "X", Words: Float64Words(xs)},
		{RoleWord: ImportantBit | 4, Unit: 5, Label: "Y", Words: Float64Words(ys)},
		{RoleWord: 16, Unit: 0, Label: "Checksum", Words: sums},
	}
}

// MapFile builds a well-formed 13-block map file.
func MapFile() []byte {
	h := MapHeader()
	return File(h, MapBlocks(h)...)
}

// MapBlocks returns the 13 blocks of MapFile, in file order.
func MapBlocks(h Header) [][]byte {
	n := int(h.NSpectra)
	return [][]byte{
		Block(CodeData, 0, DataBody(Spectra(n, int(h.NPoints)))),
		Block(CodeYList, 0, ListBody(0, 0, []float32{0})),
		Block(CodeXList, 0, ListBody(19, 1, Axis(int(h.NPoints)))),
		Block(CodeOrigin, 0, OriginBody(MapOrigins(n))),
		Block(CodeComment, 0, []byte("map of sample A\x00")),
		Block(CodeWireData, 0, make([]byte, 64)),
		Block(CodeMeasurement, 0, make([]byte, 32)),
		Block(CodeCalibration, 0, make([]byte, 24)),
		Block(CodeInstrument, 0, make([]byte, 40)),
		Block(CodeMapArea, 0, make([]byte, 64)),
		Block(CodeWhiteLight, 0, make([]byte, 128)),
		Block(CodeThumbnail, 0, make([]byte, 48)),
		Block(CodeZeldac, 1, make([]byte, 8)),
	}
}

// SingleHeader mirrors the header of a single static scan with three
// accumulations.
func SingleHeader() Header {
	h := MapHeader()
	h.NSpectra = 1
	h.NCollected = 1
	h.NAccum = 3
	h.OriginCount = 3
	h.Type = 1 // single
	h.TimeEnd = FixtureTimeStart + FixtureTimeStep
	h.Title = "Single scan measurement 2"
	return h
}

// SingleFile builds a well-formed single-spectrum file.
func SingleFile() []byte {
	h := SingleHeader()
	origins := MapOrigins(1)
	return File(h,
		Block(CodeData, 0, DataBody(Spectra(1, int(h.NPoints)))),
		Block(CodeYList, 0, ListBody(0, 0, []float32{0})),
		Block(CodeXList, 0, ListBody(19, 1, Axis(int(h.NPoints)))),
		Block(CodeOrigin, 0, OriginBody([]OriginSet{origins[0], origins[1], origins[4]})),
		Block(CodeWireData, 0, make([]byte, 16)),
	)
}
