package series

import (
	"errors"
	"math"
)

var (
	// ErrEmpty indicates a call with no samples at all.
	ErrEmpty = errors.New("series: empty input")

	// ErrShapeMismatch indicates arguments that cannot be broadcast together.
	ErrShapeMismatch = errors.New("series: arguments cannot be broadcast to a common length")

	// ErrTooFewSamples indicates a differencing call with fewer than two samples.
	ErrTooFewSamples = errors.New("series: at least two samples required")
)

// Series is an ordered sequence of samples. Invalid samples are NaN.
type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Valid returns the sample at i and whether it is a usable number.
func (s Series) Valid(i int) (float64, bool) {
	v := s[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Count returns the number of finite samples.
func (s Series) Count() int {
	n := 0
	for i := range s {
		if _, ok := s.Valid(i); ok {
			n++
		}
	}
	return n
}

// Mask overwrites every index where drop reports true with NaN, in place.
func (s Series) Mask(drop func(i int) bool) Series {
	for i := range s {
		if drop(i) {
			s[i] = math.NaN()
		}
	}
	return s
}

func (s Series) Scale(factor float64) Series {
	result := make(Series, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}
