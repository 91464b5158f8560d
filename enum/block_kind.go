// SPDX-License-Identifier: EPL-2.0

package enum

// BlockKind identifies the role of a block. Each code is the
// little-endian reading of a four character ASCII tag.
type BlockKind uint32

const (
	KindFile           BlockKind = 0x31464457 // "WDF1"
	KindData           BlockKind = 0x41544144 // "DATA"
	KindYList          BlockKind = 0x54534c59 // "YLST"
	KindXList          BlockKind = 0x54534c58 // "XLST"
	KindOrigin         BlockKind = 0x4e47524f // "ORGN"
	KindComment        BlockKind = 0x54584554 // "TEXT"
	KindWireData       BlockKind = 0x41445857 // "WXDA"
	KindDatasetData    BlockKind = 0x42445857 // "WXDB"
	KindMeasurement    BlockKind = 0x4d445857 // "WXDM"
	KindCalibration    BlockKind = 0x53435857 // "WXCS"
	KindInstrument     BlockKind = 0x53495857 // "WXIS"
	KindMapArea        BlockKind = 0x50414d57 // "WMAP"
	KindWhiteLight     BlockKind = 0x4c544857 // "WHTL"
	KindThumbnail      BlockKind = 0x4c49414e // "NAIL"
	KindMap            BlockKind = 0x2050414d // "MAP "
	KindCurveFit       BlockKind = 0x52414643 // "CFAR"
	KindComponent      BlockKind = 0x534c4344 // "DCLS"
	KindPCA            BlockKind = 0x52414350 // "PCAR"
	KindEM             BlockKind = 0x4552434d // "MCRE"
	KindZeldac         BlockKind = 0x43444c5a // "ZLDC"
	KindResponseCal    BlockKind = 0x4c414352 // "RCAL"
	KindCap            BlockKind = 0x20504143 // "CAP "
	KindProcessing     BlockKind = 0x50524157 // "WARP"
	KindAnalysis       BlockKind = 0x41524157 // "WARA"
	KindSpectrumLabels BlockKind = 0x4c424c57 // "WLBL"
	KindChecksum       BlockKind = 0x4b484357 // "WCHK"
	KindRxCalData      BlockKind = 0x44435852 // "RXCD"
	KindRxCalFit       BlockKind = 0x46435852 // "RXCF"
	KindXCal           BlockKind = 0x4c414358 // "XCAL"
	KindSpecSearch     BlockKind = 0x48435253 // "SRCH"
	KindTempProfile    BlockKind = 0x504d4554 // "TEMP"
	KindUnitConvert    BlockKind = 0x56434e55 // "UNCV"
	KindARPlate        BlockKind = 0x52505241 // "ARPR"
	KindElecSign       BlockKind = 0x43454c45 // "ELEC"
	KindBkXList        BlockKind = 0x4c584b42 // "BKXL"
	KindAuxiliaryData  BlockKind = 0x20585541 // "AUX "
	KindChangeLog      BlockKind = 0x474c4843 // "CHLG"
	KindSurface        BlockKind = 0x46525553 // "SURF"

	// KindAny matches every block kind in lookups.
	KindAny BlockKind = 0xffffffff

	KindStreamPSet BlockKind = 0x54455350 // "PSET"
	KindStreamCstm BlockKind = 0x4d545343 // "CSTM"
)

var blockKindNames = map[BlockKind]string{
	KindFile:           "WDF_BLOCKID_FILE",
	KindData:           "WDF_BLOCKID_DATA",
	KindYList:          "WDF_BLOCKID_YLIST",
	KindXList:          "WDF_BLOCKID_XLIST",
	KindOrigin:         "WDF_BLOCKID_ORIGIN",
	KindComment:        "WDF_BLOCKID_COMMENT",
	KindWireData:       "WDF_BLOCKID_WIREDATA",
	KindDatasetData:    "WDF_BLOCKID_DATASETDATA",
	KindMeasurement:    "WDF_BLOCKID_MEASUREMENT",
	KindCalibration:    "WDF_BLOCKID_CALIBRATION",
	KindInstrument:     "WDF_BLOCKID_INSTRUMENT",
	KindMapArea:        "WDF_BLOCKID_MAPAREA",
	KindWhiteLight:     "WDF_BLOCKID_WHITELIGHT",
	KindThumbnail:      "WDF_BLOCKID_THUMBNAIL",
	KindMap:            "WDF_BLOCKID_MAP",
	KindCurveFit:       "WDF_BLOCKID_CURVEFIT",
	KindComponent:      "WDF_BLOCKID_COMPONENT",
	KindPCA:            "WDF_BLOCKID_PCA",
	KindEM:             "WDF_BLOCKID_EM",
	KindZeldac:         "WDF_BLOCKID_ZELDAC",
	KindResponseCal:    "WDF_BLOCKID_RESPONSECAL",
	KindCap:            "WDF_BLOCKID_CAP",
	KindProcessing:     "WDF_BLOCKID_PROCESSING",
	KindAnalysis:       "WDF_BLOCKID_ANALYSIS",
	KindSpectrumLabels: "WDF_BLOCKID_SPECTRUMLABELS",
	KindChecksum:       "WDF_BLOCKID_CHECKSUM",
	KindRxCalData:      "WDF_BLOCKID_RXCALDATA",
	KindRxCalFit:       "WDF_BLOCKID_RXCALFIT",
	KindXCal:           "WDF_BLOCKID_XCAL",
	KindSpecSearch:     "WDF_BLOCKID_SPECSEARCH",
	KindTempProfile:    "WDF_BLOCKID_TEMPPROFILE",
	KindUnitConvert:    "WDF_BLOCKID_UNITCONVERT",
	KindARPlate:        "WDF_BLOCKID_ARPLATE",
	KindElecSign:       "WDF_BLOCKID_ELECSIGN",
	KindBkXList:        "WDF_BLOCKID_BKXLIST",
	KindAuxiliaryData:  "WDF_BLOCKID_AUXILARYDATA",
	KindChangeLog:      "WDF_BLOCKID_CHANGELOG",
	KindSurface:        "WDF_BLOCKID_SURFACE",
	KindAny:            "WDF_BLOCKID_ANY",
	KindStreamPSet:     "WDF_STREAM_IS_PSET",
	KindStreamCstm:     "WDF_STREAM_IS_CSTM",
}

// ParseBlockKind maps a raw four byte code to its BlockKind.
func ParseBlockKind(code uint32) (BlockKind, error) {
	k := BlockKind(code)
	if _, ok := blockKindNames[k]; !ok {
		return 0, unknown("block kind", uint64(code))
	}
	return k, nil
}

func (k BlockKind) String() string {
	if s, ok := blockKindNames[k]; ok {
		return s
	}
	return "WDF_BLOCKID_UNKNOWN"
}

// Tag returns the four character ASCII tag the code was built from.
func (k BlockKind) Tag() string {
	return string([]byte{byte(k), byte(k >> 8), byte(k >> 16), byte(k >> 24)})
}

// MarshalText lets encoders render kinds by name.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
