package gyro

import (
	"fmt"

	"github.com/san-kum/gyrochron/internal/config"
	"github.com/san-kum/gyrochron/internal/series"
)

// Residual converts a period and its derivative into the O-C timing
// residual in minutes accumulated over baseline years.
//
// See http://jjherm.es/research/omc.html for the derivation.
func Residual(p, pdot, baseline float64) float64 {
	span := baseline * DaysPerYear
	return pdot / (2 * p) * span * span * MinutesPerDay
}

// OmC predicts the O-C residual in minutes along the convective sequence.
// opts is used as given; start from config.DefaultResidual for the 10 year
// baseline and unit fudge factor.
func OmC(bv, time []float64, opts config.Residual) (series.Series, error) {
	p, err := Convective(bv, time)
	if err != nil {
		return nil, fmt.Errorf("omc: %w", err)
	}
	pdot, err := PeriodDerivative(bv, time)
	if err != nil {
		return nil, fmt.Errorf("omc: %w", err)
	}

	oc := make(series.Series, len(p))
	for i := range oc {
		oc[i] = Residual(p[i], pdot[i]*opts.Fudge, opts.Baseline)
	}
	return oc, nil
}
