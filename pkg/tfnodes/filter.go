package tfnodes

import (
	"fmt"
	"math"

	"github.com/spectrawave/tfgraph/pkg/dsp"
	"github.com/spectrawave/tfgraph/pkg/node"
	"github.com/spectrawave/tfgraph/pkg/types"
)

// Filter type parameter values, as spec'd: one numeric parameter selects
// between the two filter algorithms.
const (
	FilterTypeMeanDownsample = 1
	FilterTypeLowPass        = 2
)

// Filter passes its input through unchanged, mean-downsamples-and-resamples
// it, or applies a Butterworth zero-phase low-pass, depending on its
// parameters.
type Filter struct {
	node.Base
}

// NewFilter constructs a Filter with its defaults: disabled, MeanDownsample,
// window 5, cutoff 0.01 Hz, order 4.
func NewFilter(name string) *Filter {
	n := &Filter{Base: node.NewBase(name)}
	n.Init(n)
	n.SetParameter("enable", types.BoolValue(false))
	n.SetParameter("filter_type", types.ScalarValue(FilterTypeMeanDownsample))
	n.SetParameter("window", types.ScalarValue(5))
	n.SetParameter("cutoff_freq", types.ScalarValue(0.01))
	n.SetParameter("filter_order", types.ScalarValue(4))
	return n
}

// Execute implements node.Executable.
func (n *Filter) Execute() error {
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
	value, _ := valueVal.Real()
	fs, _ := fsVal.Scalar()

	enableVal, _ := n.GetParameter("enable")
	enable, _ := enableVal.Bool()

	if !enable {
		n.SetOutput("time", timeVal)
		n.SetOutput("value", valueVal)
		n.SetOutput("fs", fsVal)
		n.SetOutput("is_filtered", types.BoolValue(false))
		n.SetOutput("filter_type", types.ScalarValue(0))
		n.SetOutput("filter_info", types.TextValue(""))
		n.MarkClean()
		return nil
	}

	filterTypeVal, ok := n.GetParameter("filter_type")
	if !ok {
		return types.MissingParameterError(n.Name(), "filter_type")
	}
	filterType, _ := filterTypeVal.Scalar()

	var filtered []float64
	var info string

	switch int(filterType) {
	case FilterTypeMeanDownsample:
		windowVal, ok := n.GetParameter("window")
		if !ok {
			return types.MissingParameterError(n.Name(), "window")
		}
		window, _ := windowVal.Scalar()
		w := int(math.Round(window))
		if w < 1 {
			return types.ValidationError(n.Name(), "window must be >= 1")
		}
		filtered = dsp.MeanDownsampleResample(value, w)
		info = fmt.Sprintf("mean downsample, window=%d", w)

	case FilterTypeLowPass:
		cutoffVal, ok := n.GetParameter("cutoff_freq")
		if !ok {
			return types.MissingParameterError(n.Name(), "cutoff_freq")
		}
		cutoff, _ := cutoffVal.Scalar()
		orderVal, ok := n.GetParameter("filter_order")
		if !ok {
			return types.MissingParameterError(n.Name(), "filter_order")
		}
		order, _ := orderVal.Scalar()
		o := int(math.Round(order))
		if o < 1 {
			return types.ValidationError(n.Name(), "filter_order must be >= 1")
		}
		if !(cutoff > 0 && cutoff < fs/2) {
			return types.ValidationError(n.Name(), "cutoff_freq must be in (0, fs/2)")
		}
		b, a, err := dsp.Butterworth(o, cutoff/(fs/2))
		if err != nil {
			return types.ValidationError(n.Name(), err.Error())
		}
		filtered = dsp.FiltFilt(b, a, value)
		info = fmt.Sprintf("lowpass, cutoff=%g Hz", cutoff)

	default:
		return types.ValidationError(n.Name(), fmt.Sprintf("unknown filter_type %v", filterType))
	}

	n.SetOutput("time", timeVal)
	n.SetOutput("value", types.RealValue(filtered))
	n.SetOutput("fs", fsVal)
	n.SetOutput("is_filtered", types.BoolValue(true))
	n.SetOutput("filter_type", types.ScalarValue(filterType))
	n.SetOutput("filter_info", types.TextValue(info))
	n.MarkClean()
	return nil
}
