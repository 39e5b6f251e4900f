package tfnodes

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spectrawave/tfgraph/pkg/node"
	"github.com/spectrawave/tfgraph/pkg/types"
)

// Slicer cuts a signal into overlapping windows and exposes one window at a
// time, selected by current_slice.
//
// The port type system has no tuple or string-list variant, so slice_index
// (spec'd as a (start,end) pair) is emitted as a two-element Real value, and
// slice_start_times (spec'd as a list of date strings) is emitted as a
// single comma-joined Text value.
type Slicer struct {
	node.Base
}

// NewSlicer constructs a Slicer with its defaults: a full-day slice
// duration, 50% overlap, first slice selected.
func NewSlicer(name string) *Slicer {
	n := &Slicer{Base: node.NewBase(name)}
	n.Init(n)
	n.SetParameter("slice_duration", types.ScalarValue(86400))
	n.SetParameter("overlap_ratio", types.ScalarValue(0.5))
	n.SetParameter("current_slice", types.ScalarValue(1))
	return n
}

// Execute implements node.Executable.
func (n *Slicer) Execute() error {
	timeVal, ok := n.Input("time")
	if !ok {
		return types.MissingInputError(n.Name(), "time")
	}
	valueVal, ok := n.Input("value")
	if !ok {
		return types.MissingInputError(n.Name(), "value")
	}
	fsVal, ok := n.Input("fs")
	if !ok {
		return types.MissingInputError(n.Name(), "fs")
	}
	times, _ := timeVal.Time()
	value, _ := valueVal.Real()
	fs, _ := fsVal.Scalar()

	durationVal, ok := n.GetParameter("slice_duration")
	if !ok {
		return types.MissingParameterError(n.Name(), "slice_duration")
	}
	sliceDuration, _ := durationVal.Scalar()
	if sliceDuration <= 0 {
		return types.ValidationError(n.Name(), "slice_duration must be > 0")
	}

	overlapVal, ok := n.GetParameter("overlap_ratio")
	if !ok {
		return types.MissingParameterError(n.Name(), "overlap_ratio")
	}
	overlapRatio, _ := overlapVal.Scalar()
	if !(overlapRatio >= 0 && overlapRatio < 1) {
		return types.ValidationError(n.Name(), "overlap_ratio must be in [0, 1)")
	}

	currentSliceVal, ok := n.GetParameter("current_slice")
	if !ok {
		return types.MissingParameterError(n.Name(), "current_slice")
	}
	currentSliceParam, _ := currentSliceVal.Scalar()

	nSamples := len(value)
	slicePoints := int(math.Round(sliceDuration * fs))
	if slicePoints < 1 {
		slicePoints = 1
	}
	stepPoints := int(math.Round(float64(slicePoints) * (1 - overlapRatio)))
	if stepPoints < 1 {
		return types.ValidationError(n.Name(), "overlap_ratio leaves a zero-sample step")
	}

	numSlices := (nSamples-slicePoints)/stepPoints + 1
	if numSlices < 1 {
		numSlices = 1
	}

	currentSlice := int(math.Round(currentSliceParam))
	if currentSlice < 1 {
		currentSlice = 1
	}
	if currentSlice > numSlices {
		currentSlice = numSlices
	}

	start := (currentSlice-1)*stepPoints + 1
	end := start + slicePoints - 1
	if end > nSamples {
		end = nSamples
	}

	startIdx := clampIndex(start-1, nSamples)
	endIdx := clampIndex(end, nSamples)

	windowTime := append([]time.Time(nil), times[startIdx:endIdx]...)
	windowValue := append([]float64(nil), value[startIdx:endIdx]...)

	dates := make([]string, 0, numSlices)
	seen := make(map[string]bool, numSlices)
	for i := 1; i <= numSlices; i++ {
		idx := (i - 1) * stepPoints
		if idx >= nSamples {
			break
		}
		d := times[idx].Format("2006-01-02")
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}

	var timeRange string
	if len(windowTime) > 0 {
		timeRange = fmt.Sprintf("%s - %s", windowTime[0].Format(timestampLayout), windowTime[len(windowTime)-1].Format(timestampLayout))
	}

	n.SetOutput("time", types.TimeValue(windowTime))
	n.SetOutput("value", types.RealValue(windowValue))
	n.SetOutput("fs", fsVal)
	n.SetOutput("num_slices", types.ScalarValue(float64(numSlices)))
	n.SetOutput("slice_start_times", types.TextValue(strings.Join(dates, ",")))
	n.SetOutput("current_slice", types.ScalarValue(float64(currentSlice)))
	n.SetOutput("slice_index", types.RealValue([]float64{float64(start), float64(end)}))
	n.SetOutput("slice_time_range", types.TextValue(timeRange))
	n.SetOutput("slice_points", types.ScalarValue(float64(slicePoints)))
	n.SetOutput("step_points", types.ScalarValue(float64(stepPoints)))
	n.MarkClean()
	return nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
