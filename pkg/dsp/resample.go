package dsp

// MeanDownsampleResample computes block means of x over blocks of w samples
// (the last block is clamped to whatever remains instead of going short),
// then linearly interpolates those m = len(x)/w block means back onto the
// original n-sample grid at evenly spaced abscissae, extrapolating linearly
// past the first and last block centers. The result has the same length as
// x, smoothed but not frequency-limited — this is the "resample" described
// alongside MeanDownsample, not a decimator.
//
// gonum's interp package does not extrapolate past its fitted domain, which
// this algorithm requires at both ends, so the interpolation here is
// hand-rolled rather than built on it.
func MeanDownsampleResample(x []float64, w int) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	if w <= 1 {
		out := make([]float64, n)
		copy(out, x)
		return out
	}

	m := n / w
	if m < 1 {
		m = 1
	}
	means := make([]float64, m)
	for i := 0; i < m; i++ {
		start := i * w
		end := start + w
		if i == m-1 || end > n {
			end = n
		}
		means[i] = Mean(x[start:end])
	}

	abscissae := linspace(1, float64(n), m)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = interpLinear(abscissae, means, float64(i+1))
	}
	return out
}

// linspace returns n evenly spaced values from a to b inclusive.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + step*float64(i)
	}
	return out
}

// interpLinear evaluates the piecewise-linear function through (xs[i],
// ys[i]) at x, extrapolating linearly along the first or last segment's
// slope when x falls outside [xs[0], xs[len(xs)-1]].
func interpLinear(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 1 {
		return ys[0]
	}
	if x <= xs[0] {
		return lerp(xs[0], ys[0], xs[1], ys[1], x)
	}
	if x >= xs[n-1] {
		return lerp(xs[n-2], ys[n-2], xs[n-1], ys[n-1], x)
	}
	for i := 0; i < n-1; i++ {
		if x >= xs[i] && x <= xs[i+1] {
			return lerp(xs[i], ys[i], xs[i+1], ys[i+1], x)
		}
	}
	return ys[n-1]
}

// lerp evaluates the line through (x0,y0)-(x1,y1) at x, which is also a
// valid linear extrapolation when x falls outside [x0,x1].
func lerp(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}
