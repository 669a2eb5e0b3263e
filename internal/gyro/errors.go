package gyro

import (
	"errors"

	"github.com/san-kum/gyrochron/internal/series"
)

// Input errors. Out-of-range physics is reported as NaN samples, never as
// an error.
var (
	// ErrTooFewSamples indicates an age grid with fewer than two samples.
	ErrTooFewSamples = series.ErrTooFewSamples

	// ErrShapeMismatch indicates colour and age sequences of incompatible length.
	ErrShapeMismatch = series.ErrShapeMismatch

	// ErrInvalidStep indicates an age grid whose first step is zero or not finite.
	ErrInvalidStep = errors.New("gyro: age step must be non-zero and finite")
)
