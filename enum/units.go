// SPDX-License-Identifier: EPL-2.0

package enum

// DataUnit is the physical unit of a data or axis value.
type DataUnit uint32

const (
	UnitArbitrary DataUnit = iota
	UnitRamanShift
	UnitWavenumber
	UnitNanometre
	UnitElectronVolt
	UnitMicron
	UnitCounts
	UnitElectrons
	UnitMillimetre
	UnitMetre
	UnitKelvin
	UnitPascal
	UnitSecond
	UnitMillisecond
	UnitHour
	UnitDay
	UnitPixel
	UnitIntensity
	UnitRelativeIntensity
	UnitDegree
	UnitCelsius
	UnitFahrenheit
	UnitKelvinPerMinute
	UnitFileTime
	UnitEndMarker
)

var dataUnitNames = [...]string{
	UnitArbitrary:         "arbitrary units",
	UnitRamanShift:        "Raman shift (cm-1)",
	UnitWavenumber:        "wavenumber (nm)",
	UnitNanometre:         "10-9 metres (nm)",
	UnitElectronVolt:      "electron volts (eV)",
	UnitMicron:            "10-6 metres (um)",
	UnitCounts:            "counts",
	UnitElectrons:         "electrons",
	UnitMillimetre:        "10-3 metres (mm)",
	UnitMetre:             "metres (m)",
	UnitKelvin:            "Temperature (K)",
	UnitPascal:            "Pascals (Pa)",
	UnitSecond:            "seconds (s)",
	UnitMillisecond:       "milliseconds (ms)",
	UnitHour:              "Hours (hs)",
	UnitDay:               "Days (ds)",
	UnitPixel:             "Pixels",
	UnitIntensity:         "Intensity",
	UnitRelativeIntensity: "Relative Intensity",
	UnitDegree:            "Degrees",
	UnitCelsius:           "Temperature (C)",
	UnitFahrenheit:        "Temperature (F)",
	UnitKelvinPerMinute:   "Kelvin per minute",
	UnitFileTime:          "Filetime as Windows FileTime",
	UnitEndMarker:         "Endmarker",
}

func ParseDataUnit(code uint32) (DataUnit, error) {
	if code >= uint32(len(dataUnitNames)) {
		return 0, unknown("data unit", uint64(code))
	}
	return DataUnit(code), nil
}

func (u DataUnit) String() string {
	if int(u) < len(dataUnitNames) {
		return dataUnitNames[u]
	}
	return "unknown unit"
}

func (u DataUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// AxisRole is the kind of quantity an axis list or origin set holds.
type AxisRole uint32

const (
	RoleArbitrary AxisRole = iota
	RoleSpectral           // deprecated, use RoleFrequency
	RoleIntensity
	RoleSpatialX
	RoleSpatialY
	RoleSpatialZ
	RoleSpatialR
	RoleSpatialTheta
	RoleSpatialPhi
	RoleTemperature
	RolePressure
	RoleTime
	RoleDerived
	RolePolarization
	RoleFocusTrackZ
	RoleRampRate
	RoleChecksum
	RoleFlags
	RoleElapsedTime
	RoleFrequency
	RoleMpWellSpatialX
	RoleMpWellSpatialY
	RoleLocationIndex
	RoleWellReference
	RoleEndMarker
)

var axisRoleNames = [...]string{
	RoleArbitrary:      "arbitrary",
	RoleSpectral:       "spectral",
	RoleIntensity:      "Intensity",
	RoleSpatialX:       "X position",
	RoleSpatialY:       "Y axis position",
	RoleSpatialZ:       "Z axis (vertical) position",
	RoleSpatialR:       "R axis (rotary) position",
	RoleSpatialTheta:   "Theta angle (rotary) position",
	RoleSpatialPhi:     "phi angle (rotary) position",
	RoleTemperature:    "Temperature",
	RolePressure:       "Pressure",
	RoleTime:           "Time",
	RoleDerived:        "Derived",
	RolePolarization:   "Polarization",
	RoleFocusTrackZ:    "Focus Track Z position",
	RoleRampRate:       "Temperature Ramp rate",
	RoleChecksum:       "Spectrum Data Checksum",
	RoleFlags:          "Bit Flags",
	RoleElapsedTime:    "Elapsed Time Intervals",
	RoleFrequency:      "Frequency",
	RoleMpWellSpatialX: "Microplate Well Spatial X",
	RoleMpWellSpatialY: "Microplate Well Spatial Y",
	RoleLocationIndex:  "Location Index",
	RoleWellReference:  "Well Reference",
	RoleEndMarker:      "End Marker",
}

func ParseAxisRole(code uint32) (AxisRole, error) {
	if code >= uint32(len(axisRoleNames)) {
		return 0, unknown("axis role", uint64(code))
	}
	return AxisRole(code), nil
}

func (r AxisRole) String() string {
	if int(r) < len(axisRoleNames) {
		return axisRoleNames[r]
	}
	return "unknown role"
}

func (r AxisRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

const (
	roleImportantBit = 1 << 31
	roleMask         = 1<<14 - 1
)

// DecodeRoleWord splits the packed role word of an origin set. Bit 31
// marks an important origin (as opposed to an alternative one); the low
// 14 bits carry the axis role.
func DecodeRoleWord(word uint32) (role AxisRole, important bool, err error) {
	role, err = ParseAxisRole(word & roleMask)
	if err != nil {
		return 0, false, err
	}
	return role, word&roleImportantBit != 0, nil
}
