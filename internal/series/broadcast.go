package series

import "fmt"

// Broadcast returns the common length of args. Every argument must have
// either length 1 (treated as a scalar) or the same length N.
func Broadcast(args ...[]float64) (int, error) {
	n := 1
	for _, a := range args {
		switch {
		case len(a) == 0:
			return 0, ErrEmpty
		case len(a) == 1 || len(a) == n:
		case n == 1:
			n = len(a)
		default:
			return 0, fmt.Errorf("%w: lengths %d and %d", ErrShapeMismatch, n, len(a))
		}
	}
	return n, nil
}

// At returns xs[i], or xs[0] when xs is a broadcast scalar.
func At(xs []float64, i int) float64 {
	if len(xs) == 1 {
		return xs[0]
	}
	return xs[i]
}

// Map2 applies fn element-wise over a and b with broadcasting.
func Map2(a, b []float64, fn func(x, y float64) float64) (Series, error) {
	n, err := Broadcast(a, b)
	if err != nil {
		return nil, err
	}
	out := make(Series, n)
	for i := range out {
		out[i] = fn(At(a, i), At(b, i))
	}
	return out, nil
}

// Map3 applies fn element-wise over a, b and c with broadcasting.
func Map3(a, b, c []float64, fn func(x, y, z float64) float64) (Series, error) {
	n, err := Broadcast(a, b, c)
	if err != nil {
		return nil, err
	}
	out := make(Series, n)
	for i := range out {
		out[i] = fn(At(a, i), At(b, i), At(c, i))
	}
	return out, nil
}

// Scalar wraps a single value as a length-1 argument.
func Scalar(v float64) []float64 {
	return []float64{v}
}
