package series

// Gradient differentiates y with respect to its index. Interior points use
// central differences and both ends use first-order one-sided differences.
// NaN samples propagate into their neighbours.
func Gradient(y []float64) (Series, error) {
	n := len(y)
	if n < 2 {
		return nil, ErrTooFewSamples
	}

	out := make(Series, n)
	for i := 1; i < n-1; i++ {
		out[i] = (y[i+1] - y[i-1]) / 2
	}
	out[0] = y[1] - y[0]
	out[n-1] = y[n-1] - y[n-2]

	return out, nil
}

// Linspace returns n evenly spaced samples over [start, stop].
func Linspace(start, stop float64, n int) Series {
	if n <= 0 {
		return Series{}
	}
	if n == 1 {
		return Series{start}
	}
	out := make(Series, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
