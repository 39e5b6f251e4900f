package dsp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Butterworth designs a digital Butterworth low-pass filter of the given
// order with normalized cutoff wn in (0, 1), where 1.0 is the Nyquist
// frequency. It returns the numerator (b) and denominator (a) coefficients
// of the resulting transfer function, highest power of z^-1 first, with
// a[0] == 1.
//
// The design follows the standard analog-prototype-then-bilinear-transform
// construction: place the order poles of the normalized analog Butterworth
// prototype on the unit circle, frequency-warp and scale them by the
// tangent-prewarped cutoff, bilinear-transform them into the digital
// domain (placing all resulting zeros at z = -1), and expand the
// pole/zero/gain form into polynomial coefficients.
func Butterworth(order int, wn float64) (b, a []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("dsp: butterworth order must be >= 1, got %d", order)
	}
	if wn <= 0 || wn >= 1 {
		return nil, nil, fmt.Errorf("dsp: butterworth normalized cutoff must be in (0,1), got %g", wn)
	}

	const fsBilinear = 2.0
	fs2 := 2 * fsBilinear
	warped := 2 * fsBilinear * math.Tan(math.Pi*wn/fsBilinear)

	analogPoles := make([]complex128, order)
	for k := 0; k < order; k++ {
		m := float64(-order + 1 + 2*k)
		theta := math.Pi * m / (2 * float64(order))
		analogPoles[k] = complex(-warped, 0) * cmplx.Exp(complex(0, theta))
	}
	kLP := math.Pow(warped, float64(order))

	digitalPoles := make([]complex128, order)
	digitalZeros := make([]complex128, order)
	denomProd := complex(1, 0)
	for k, p := range analogPoles {
		digitalPoles[k] = (complex(fs2, 0) + p) / (complex(fs2, 0) - p)
		digitalZeros[k] = complex(-1, 0)
		denomProd *= complex(fs2, 0) - p
	}

	kz := real(complex(kLP, 0) / denomProd)

	aComplex := polyFromRoots(digitalPoles)
	bComplex := polyFromRoots(digitalZeros)

	a = make([]float64, len(aComplex))
	for i, c := range aComplex {
		a[i] = real(c)
	}
	b = make([]float64, len(bComplex))
	for i, c := range bComplex {
		b[i] = real(c) * kz
	}
	return b, a, nil
}

// polyFromRoots expands (x - roots[0])(x - roots[1])... into monic
// polynomial coefficients, highest power first.
func polyFromRoots(roots []complex128) []complex128 {
	coeffs := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i := range next {
			var left, right complex128
			if i-1 >= 0 && i-1 < len(coeffs) {
				left = coeffs[i-1]
			}
			if i < len(coeffs) {
				right = coeffs[i]
			}
			next[i] = left - r*right
		}
		coeffs = next
	}
	return coeffs
}

// FiltFilt applies the filter described by b, a to x forward then backward
// so that the net result has zero phase distortion, padding both ends of x
// by odd reflection first to suppress the transient that a zero
// initial-condition filter would otherwise leave at the edges.
func FiltFilt(b, a, x []float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	order := len(b)
	if len(a) > order {
		order = len(a)
	}
	padlen := 3 * order
	if padlen >= len(x) {
		padlen = len(x) - 1
	}
	if padlen < 0 {
		padlen = 0
	}

	ext := make([]float64, 0, len(x)+2*padlen)
	if padlen > 0 {
		front := make([]float64, padlen)
		for i := 0; i < padlen; i++ {
			front[i] = 2*x[0] - x[padlen-i]
		}
		ext = append(ext, front...)
	}
	ext = append(ext, x...)
	if padlen > 0 {
		last := len(x) - 1
		back := make([]float64, padlen)
		for i := 0; i < padlen; i++ {
			back[i] = 2*x[last] - x[last-1-i]
		}
		ext = append(ext, back...)
	}

	y1 := lfilter(b, a, ext)
	reverseInPlace(y1)
	y2 := lfilter(b, a, y1)
	reverseInPlace(y2)

	return y2[padlen : padlen+len(x)]
}

// lfilter applies the direct-form-I difference equation
// a[0]*y[n] = sum(b[j]*x[n-j]) - sum(a[j]*y[n-j], j>=1) with zero initial
// conditions.
func lfilter(b, a, x []float64) []float64 {
	y := make([]float64, len(x))
	for i := range x {
		acc := 0.0
		for j, bj := range b {
			if i-j >= 0 {
				acc += bj * x[i-j]
			}
		}
		for j := 1; j < len(a); j++ {
			if i-j >= 0 {
				acc -= a[j] * y[i-j]
			}
		}
		y[i] = acc / a[0]
	}
	return y
}

func reverseInPlace(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
