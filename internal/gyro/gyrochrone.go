// Package gyro evaluates the Barnes (2003) rotation-period gyrochrones, their
// time derivative, and the O-C timing residual that a spinning-down star
// would produce over an observing baseline.
//
// Colour is B-V, ages are in Myr and periods are in days. Samples outside the
// domain of a relation are NaN.
package gyro

import (
	"math"

	"github.com/san-kum/gyrochron/internal/series"
)

// InterfacePeriod is the interface (I) sequence, Barnes (2003) eqns 1 and 2.
// It is NaN for bv < 0.5 and zero for bv == 0.5.
func InterfacePeriod(bv, t float64) float64 {
	x := bv - 0.5
	return math.Sqrt(t)*math.Sqrt(x) - 0.15*x
}

func convectiveRaw(bv, t float64) float64 {
	base := bv + 0.1 - t/3000
	return 0.2 * math.Exp(t/(100*base*base*base))
}

// ConvectivePeriod is the convective (C) sequence, Barnes (2003) eqn 15.
// It is NaN wherever it would reach or exceed the interface period.
func ConvectivePeriod(bv, t float64) float64 {
	p := convectiveRaw(bv, t)
	if p >= InterfacePeriod(bv, t) {
		return math.NaN()
	}
	return p
}

// Interface evaluates InterfacePeriod element-wise.
func Interface(bv, t []float64) (series.Series, error) {
	return series.Map2(bv, t, InterfacePeriod)
}

// Convective evaluates the convective sequence element-wise and masks every
// sample that has crossed the interface sequence.
func Convective(bv, t []float64) (series.Series, error) {
	pi, err := Interface(bv, t)
	if err != nil {
		return nil, err
	}
	p, err := series.Map2(bv, t, convectiveRaw)
	if err != nil {
		return nil, err
	}
	return p.Mask(func(i int) bool { return p[i] >= pi[i] }), nil
}
