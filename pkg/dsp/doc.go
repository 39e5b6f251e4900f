// Package dsp holds the numeric kernels shared by the Filter and Spectrum
// node types: Butterworth IIR filter design and zero-phase application,
// block-mean resampling, a zoom-FFT, and the median/mean helpers the
// DataLoader and Filter nodes need.
//
// The Butterworth design and zero-phase filtering are hand-written — no
// library in this module's dependency set implements the exact bilinear
// transform this engine needs — while the FFT and Mean are thin wrappers
// over gonum.org/v1/gonum. Median sorts a copy of its input itself.
package dsp
