package dsp

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// epsilon is the floor magnitude values are clamped to, so that a
// subsequent log-magnitude display never takes log(0).
const epsilon = 1e-12

// NextPow2 returns the smallest power of two that is >= n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// ZoomFFT computes a band-limited magnitude spectrum of x, sampled at fs Hz,
// over [fmin, fmax]. It heterodynes the signal down by the band's midpoint
// so that the band of interest sits near DC, zero-pads to
// NextPow2(len(x))*sizeFactor before transforming (more padding means finer
// frequency resolution across the same band), and returns only the
// in-band frequencies and their magnitudes.
func ZoomFFT(x []float64, fs, fmin, fmax float64, sizeFactor int) (freqs, mags []float64) {
	n := len(x)
	if n == 0 {
		return nil, nil
	}
	fc := (fmin + fmax) / 2

	baseband := make([]complex128, n)
	for i, v := range x {
		phase := -2 * math.Pi * fc * float64(i) / fs
		baseband[i] = complex(v, 0) * cmplx.Exp(complex(0, phase))
	}

	m := NextPow2(n) * sizeFactor
	padded := make([]complex128, m)
	copy(padded, baseband)

	fft := fourier.NewCmplxFFT(m)
	coeffs := fft.Coefficients(nil, padded)
	shifted := fftShift(coeffs)

	freqs = make([]float64, 0, m)
	mags = make([]float64, 0, m)
	for k := 0; k < m; k++ {
		freq := fc + (float64(k)-float64(m)/2)*fs/float64(m)
		if freq < fmin || freq > fmax {
			continue
		}
		mag := cmplx.Abs(shifted[k]) / float64(n)
		if mag < epsilon {
			mag = epsilon
		}
		freqs = append(freqs, freq)
		mags = append(mags, mag)
	}
	return freqs, mags
}

// fftShift swaps the two halves of c so that the zero-frequency coefficient
// ends up in the middle of the slice, matching the conventional display
// order for a centered spectrum.
func fftShift(c []complex128) []complex128 {
	n := len(c)
	out := make([]complex128, n)
	mid := n / 2
	copy(out[:n-mid], c[mid:])
	copy(out[n-mid:], c[:mid])
	return out
}
