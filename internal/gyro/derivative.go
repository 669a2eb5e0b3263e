package gyro

import (
	"fmt"
	"math"

	"github.com/san-kum/gyrochron/internal/series"
)

const (
	DaysPerYear   = 365.25
	YearsPerMyr   = 1e6
	MinutesPerDay = 24 * 60
)

// Derivative converts a period sequence in days sampled every dt Myr into the
// dimensionless period derivative dP/dt. A negative dt describes a grid
// running backwards in age.
func Derivative(p []float64, dt float64) (series.Series, error) {
	if dt == 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: dt=%g", ErrInvalidStep, dt)
	}
	g, err := series.Gradient(p)
	if err != nil {
		return nil, err
	}
	return g.Scale(1 / (DaysPerYear * YearsPerMyr * dt)), nil
}

// PeriodDerivative differentiates the convective sequence over time. The
// step is taken from the first two samples, so time must be uniformly
// spaced; it may run in either direction but must not repeat an age.
func PeriodDerivative(bv, time []float64) (series.Series, error) {
	if len(time) < 2 {
		return nil, fmt.Errorf("period derivative: %w, got %d", ErrTooFewSamples, len(time))
	}
	p, err := Convective(bv, time)
	if err != nil {
		return nil, fmt.Errorf("period derivative: %w", err)
	}
	pdot, err := Derivative(p, time[1]-time[0])
	if err != nil {
		return nil, fmt.Errorf("period derivative: %w", err)
	}
	return pdot, nil
}
