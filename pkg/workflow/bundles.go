package workflow

import "time"

// SliceData bundles the Slicer node's outputs for the current window.
//
// SliceIndexStart/End are 1-based, inclusive sample positions;
// SlicePoints/StepPoints are sample counts.
type SliceData struct {
	Time            []time.Time
	Value           []float64
	FS              float64
	NumSlices       int
	SliceStartTimes []string
	CurrentSlice    int
	SliceIndexStart int
	SliceIndexEnd   int
	SliceTimeRange  string
	SlicePoints     int
	StepPoints      int
}

// SpectrumBundle bundles the Spectrum node's outputs.
type SpectrumBundle struct {
	FPlot   []float64
	P1Plot  []float64
	FreqMin float64
	FreqMax float64
}

// WaterfallBundle bundles the Waterfall node's outputs.
type WaterfallBundle struct {
	History    [][]float64
	Times      []time.Time
	Size       int
	LogHistory [][]float64
}
