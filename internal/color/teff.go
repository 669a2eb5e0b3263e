// Package color converts photometric colour index to effective temperature
// with the Sekiguchi & Fukugita (2000) full-sample relation (their Table 3).
package color

import (
	"math"

	"github.com/san-kum/gyrochron/internal/config"
	"github.com/san-kum/gyrochron/internal/series"
)

const (
	DefaultLogg = config.DefaultLogg
	DefaultFeH  = config.DefaultFeH
)

var c = [4]float64{3.939654, -0.395361, 0.2082113, -0.0604097}

const (
	f1 = 0.027153
	f2 = 0.005036
	g1 = 0.007367
	h1 = -0.01069
)

// LogTeff returns log10 of the effective temperature in Kelvin.
func LogTeff(bv, logg, feh float64) float64 {
	return c[0] + c[1]*bv + c[2]*bv*bv + c[3]*bv*bv*bv +
		f1*feh + f2*feh*feh +
		g1*logg + h1*bv*logg
}

// Teff returns the effective temperature in Kelvin.
func Teff(bv, logg, feh float64) float64 {
	return math.Pow(10, LogTeff(bv, logg, feh))
}

// TeffDefault is Teff for a main-sequence star of solar metallicity.
func TeffDefault(bv float64) float64 {
	return Teff(bv, DefaultLogg, DefaultFeH)
}

// TeffSeries evaluates Teff element-wise; length-1 arguments broadcast.
func TeffSeries(bv, logg, feh []float64) (series.Series, error) {
	return series.Map3(bv, logg, feh, Teff)
}

// TeffFor evaluates a colour sequence with the stellar parameters in p.
func TeffFor(bv []float64, p config.Color) (series.Series, error) {
	return TeffSeries(bv, series.Scalar(p.Logg), series.Scalar(p.FeH))
}
