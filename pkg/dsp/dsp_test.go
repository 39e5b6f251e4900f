package dsp_test

import (
	"math"
	"testing"

	"github.com/spectrawave/tfgraph/pkg/dsp"
)

func TestMedianOddAndEven(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dsp.Median(tc.in); got != tc.want {
				t.Errorf("Median(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMeanDownsampleResamplePreservesLength(t *testing.T) {
	x := make([]float64, 97)
	for i := range x {
		x[i] = float64(i)
	}
	out := dsp.MeanDownsampleResample(x, 5)
	if len(out) != len(x) {
		t.Fatalf("expected length %d, got %d", len(x), len(out))
	}
}

func TestMeanDownsampleResamplePassThroughForWindowOne(t *testing.T) {
	x := []float64{5, 6, 7, 8}
	out := dsp.MeanDownsampleResample(x, 1)
	for i := range x {
		if math.Abs(out[i]-x[i]) > 1e-9 {
			t.Errorf("out[%d] = %v, want pass-through %v", i, out[i], x[i])
		}
	}
}

func TestMeanDownsampleResampleSmoothsAConstantSignal(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = 3.0
	}
	out := dsp.MeanDownsampleResample(x, 5)
	for i, v := range out {
		if math.Abs(v-3.0) > 1e-9 {
			t.Errorf("out[%d] = %v, want 3.0 for a constant input", i, v)
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16, 1000: 1024}
	for in, want := range cases {
		if got := dsp.NextPow2(in); got != want {
			t.Errorf("NextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestButterworthRejectsInvalidInputs(t *testing.T) {
	if _, _, err := dsp.Butterworth(0, 0.2); err == nil {
		t.Error("expected error for order 0")
	}
	if _, _, err := dsp.Butterworth(4, 0); err == nil {
		t.Error("expected error for cutoff 0")
	}
	if _, _, err := dsp.Butterworth(4, 1); err == nil {
		t.Error("expected error for cutoff at Nyquist")
	}
}

func TestButterworthIsMonicAndCorrectLength(t *testing.T) {
	order := 4
	b, a, err := dsp.Butterworth(order, 0.25)
	if err != nil {
		t.Fatalf("Butterworth: %v", err)
	}
	if len(a) != order+1 || len(b) != order+1 {
		t.Fatalf("expected coefficient slices of length %d, got len(a)=%d len(b)=%d", order+1, len(a), len(b))
	}
	if math.Abs(a[0]-1) > 1e-9 {
		t.Errorf("expected monic a[0] == 1, got %v", a[0])
	}
}

func TestFiltFiltPreservesDCLevel(t *testing.T) {
	x := make([]float64, 256)
	for i := range x {
		x[i] = 1.0
	}
	b, a, err := dsp.Butterworth(4, 0.3)
	if err != nil {
		t.Fatalf("Butterworth: %v", err)
	}
	y := dsp.FiltFilt(b, a, x)
	if len(y) != len(x) {
		t.Fatalf("expected output length %d, got %d", len(x), len(y))
	}
	// A constant signal has zero frequency content, which a low-pass
	// filter must pass through unattenuated once transients settle.
	for i := len(y) - 20; i < len(y); i++ {
		if math.Abs(y[i]-1.0) > 0.05 {
			t.Errorf("y[%d] = %v, want close to 1.0", i, y[i])
		}
	}
}

func TestZoomFFTKeepsOnlyInBandFrequencies(t *testing.T) {
	fs := 1000.0
	n := 512
	x := make([]float64, n)
	for i := range x {
		t := float64(i) / fs
		x[i] = math.Sin(2 * math.Pi * 50 * t)
	}
	freqs, mags := dsp.ZoomFFT(x, fs, 0, 100, 2)
	if len(freqs) != len(mags) {
		t.Fatalf("freqs/mags length mismatch: %d vs %d", len(freqs), len(mags))
	}
	for _, f := range freqs {
		if f < 0 || f > 100 {
			t.Errorf("frequency %v outside requested band [0,100]", f)
		}
	}
	if len(freqs) == 0 {
		t.Fatal("expected a non-empty in-band spectrum")
	}
}
