package types

import "time"

// Kind identifies which variant a PortValue carries.
type Kind int

const (
	KindTime Kind = iota
	KindReal
	KindScalar
	KindSpectrum
	KindHistory
	KindBool
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindReal:
		return "real"
	case KindScalar:
		return "scalar"
	case KindSpectrum:
		return "spectrum"
	case KindHistory:
		return "history"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// SpectrumData is the payload of a Spectrum port value: a band-limited
// magnitude spectrum.
type SpectrumData struct {
	Freqs []float64
	Mags  []float64
	Band  [2]float64
}

// HistoryData is the payload of a History port value: a fixed-capacity FIFO
// of past spectra and the timestamp each was captured at.
type HistoryData struct {
	Spectra [][]float64
	Times   []time.Time
}

// PortValue is a tagged union over the seven value kinds a node port can
// carry. The zero value is not a valid PortValue; always construct one via
// the Value constructors below.
type PortValue struct {
	kind     Kind
	time     []time.Time
	real     []float64
	scalar   float64
	spectrum SpectrumData
	history  HistoryData
	boolean  bool
	text     string
}

func TimeValue(v []time.Time) PortValue     { return PortValue{kind: KindTime, time: v} }
func RealValue(v []float64) PortValue       { return PortValue{kind: KindReal, real: v} }
func ScalarValue(v float64) PortValue       { return PortValue{kind: KindScalar, scalar: v} }
func SpectrumValue(v SpectrumData) PortValue { return PortValue{kind: KindSpectrum, spectrum: v} }
func HistoryValue(v HistoryData) PortValue  { return PortValue{kind: KindHistory, history: v} }
func BoolValue(v bool) PortValue            { return PortValue{kind: KindBool, boolean: v} }
func TextValue(v string) PortValue          { return PortValue{kind: KindText, text: v} }

// Kind reports which variant this value carries.
func (v PortValue) Kind() Kind { return v.kind }

func (v PortValue) Time() ([]time.Time, bool) {
	if v.kind != KindTime {
		return nil, false
	}
	return v.time, true
}

func (v PortValue) Real() ([]float64, bool) {
	if v.kind != KindReal {
		return nil, false
	}
	return v.real, true
}

func (v PortValue) Scalar() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	return v.scalar, true
}

func (v PortValue) Spectrum() (SpectrumData, bool) {
	if v.kind != KindSpectrum {
		return SpectrumData{}, false
	}
	return v.spectrum, true
}

func (v PortValue) History() (HistoryData, bool) {
	if v.kind != KindHistory {
		return HistoryData{}, false
	}
	return v.history, true
}

func (v PortValue) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

func (v PortValue) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// SameKind reports whether two values share a variant. The graph does not
// call it: ports carry no declared variant, and Graph.Connect wires an edge
// without comparing endpoint variants.
func SameKind(a, b PortValue) bool {
	return a.kind == b.kind
}
