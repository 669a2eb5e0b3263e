package sweep

import (
	"fmt"
	"sort"

	"github.com/san-kum/gyrochron/internal/config"
	"github.com/san-kum/gyrochron/internal/gyro"
	"github.com/san-kum/gyrochron/internal/series"
)

// Relation evaluates one age-dependent quantity for a star of colour bv.
type Relation func(bv, ages []float64, cfg *config.Config) (series.Series, error)

type Registry struct {
	relations map[string]Relation
}

func NewRegistry() *Registry {
	r := &Registry{
		relations: make(map[string]Relation),
	}

	r.relations["interface"] = func(bv, ages []float64, _ *config.Config) (series.Series, error) {
		return gyro.Interface(bv, ages)
	}
	r.relations["convective"] = func(bv, ages []float64, _ *config.Config) (series.Series, error) {
		return gyro.Convective(bv, ages)
	}
	r.relations["pdot"] = func(bv, ages []float64, _ *config.Config) (series.Series, error) {
		return gyro.PeriodDerivative(bv, ages)
	}
	r.relations["omc"] = func(bv, ages []float64, cfg *config.Config) (series.Series, error) {
		return gyro.OmC(bv, ages, cfg.Residual)
	}

	return r
}

func (r *Registry) Get(name string) (Relation, error) {
	fn, ok := r.relations[name]
	if !ok {
		return nil, fmt.Errorf("unknown relation: %s", name)
	}
	return fn, nil
}

func (r *Registry) Register(name string, fn Relation) {
	r.relations[name] = fn
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.relations))
	for name := range r.relations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
