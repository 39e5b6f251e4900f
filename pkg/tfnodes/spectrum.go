package tfnodes

import (
	"github.com/spectrawave/tfgraph/pkg/dsp"
	"github.com/spectrawave/tfgraph/pkg/node"
	"github.com/spectrawave/tfgraph/pkg/types"
)

// Spectrum computes a zoom-FFT magnitude spectrum of its input window over a
// frequency band.
//
// freq_range is spec'd as an (fmin, fmax) pair; like Slicer.slice_index, it
// is carried as a two-element Real value since PortValue has no tuple kind.
type Spectrum struct {
	node.Base
}

// NewSpectrum constructs a Spectrum with its defaults: band (0, 0.001) Hz,
// fft_size_factor 8.
func NewSpectrum(name string) *Spectrum {
	n := &Spectrum{Base: node.NewBase(name)}
	n.Init(n)
	n.SetParameter("freq_range", types.RealValue([]float64{0, 0.001}))
	n.SetParameter("fft_size_factor", types.ScalarValue(8))
	return n
}

// Execute implements node.Executable.
func (n *Spectrum) Execute() error {
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

	rangeVal, ok := n.GetParameter("freq_range")
	if !ok {
		return types.MissingParameterError(n.Name(), "freq_range")
	}
	band, _ := rangeVal.Real()
	if len(band) != 2 {
		return types.ValidationError(n.Name(), "freq_range must carry exactly two values")
	}
	fmin, fmax := band[0], band[1]
	if !(fmin >= 0 && fmin < fmax && fmax <= fs/2) {
		return types.ValidationError(n.Name(), "freq_range must satisfy 0 <= fmin < fmax <= fs/2")
	}

	sizeFactorVal, ok := n.GetParameter("fft_size_factor")
	if !ok {
		return types.MissingParameterError(n.Name(), "fft_size_factor")
	}
	sizeFactorF, _ := sizeFactorVal.Scalar()
	sizeFactor := int(sizeFactorF)
	if sizeFactor < 1 {
		return types.ValidationError(n.Name(), "fft_size_factor must be >= 1")
	}

	mean := dsp.Mean(value)
	centered := make([]float64, len(value))
	for i, v := range value {
		centered[i] = v - mean
	}

	freqs, mags := dsp.ZoomFFT(centered, fs, fmin, fmax, sizeFactor)

	n.SetOutput("f_plot", types.RealValue(freqs))
	n.SetOutput("P1_plot", types.RealValue(mags))
	n.SetOutput("freq_range", types.RealValue([]float64{fmin, fmax}))
	n.MarkClean()
	return nil
}
