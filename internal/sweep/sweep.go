// Package sweep evaluates the gyrochronology relations for one star over a
// configured age grid.
package sweep

import (
	"fmt"
	"math"

	"github.com/san-kum/gyrochron/internal/color"
	"github.com/san-kum/gyrochron/internal/config"
	"github.com/san-kum/gyrochron/internal/series"
)

type Result struct {
	BV      float64
	Teff    float64
	Ages    series.Series
	Columns map[string]series.Series
	Metrics map[string]float64
}

// Run evaluates every relation in the default registry.
func Run(cfg *config.Config) (*Result, error) {
	return NewRegistry().Run(cfg)
}

// Run evaluates every registered relation over cfg.Grid. The metrics hold
// the valid sample count of each column and the first age at which the
// convective sequence is masked (NaN if it never is).
func (r *Registry) Run(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bv := series.Scalar(cfg.Grid.BV)
	ages := cfg.Grid.Ages()

	res := &Result{
		BV:      cfg.Grid.BV,
		Teff:    color.Teff(cfg.Grid.BV, cfg.Color.Logg, cfg.Color.FeH),
		Ages:    ages,
		Columns: make(map[string]series.Series),
		Metrics: make(map[string]float64),
	}

	for _, name := range r.List() {
		fn := r.relations[name]
		col, err := fn(bv, ages, cfg)
		if err != nil {
			return nil, fmt.Errorf("relation %s: %w", name, err)
		}
		res.Columns[name] = col
		res.Metrics["valid_"+name] = float64(col.Count())
	}

	res.Metrics["convective_limit"] = math.NaN()
	if pc, ok := res.Columns["convective"]; ok {
		for i := range pc {
			if _, valid := pc.Valid(i); !valid {
				res.Metrics["convective_limit"] = ages[i]
				break
			}
		}
	}

	return res, nil
}
