package config

import (
	"fmt"
	"os"

	"github.com/san-kum/gyrochron/internal/series"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogg     = 4.3
	DefaultFeH      = 0.0
	DefaultBaseline = 10.0
	DefaultFudge    = 1.0
	DefaultBV       = 0.65
	DefaultAgeStart = 10.0
	DefaultAgeStop  = 1000.0
	DefaultSamples  = 100
)

type Config struct {
	Color    Color    `yaml:"color"`
	Residual Residual `yaml:"residual"`
	Grid     Grid     `yaml:"grid"`
}

// Color holds the stellar parameters of the colour-temperature relation.
type Color struct {
	Logg float64 `yaml:"logg"`
	FeH  float64 `yaml:"feh"`
}

// Residual configures the O-C prediction. Baseline is the observing
// baseline in years and Fudge scales the period derivative.
type Residual struct {
	Baseline float64 `yaml:"baseline"`
	Fudge    float64 `yaml:"fudge"`
}

// DefaultResidual is a 10 year baseline with no fudge factor applied.
func DefaultResidual() Residual {
	return Residual{
		Baseline: DefaultBaseline,
		Fudge:    DefaultFudge,
	}
}

// Grid is a star of fixed colour evaluated over a uniform age grid in Myr.
type Grid struct {
	BV       float64 `yaml:"bv"`
	AgeStart float64 `yaml:"age_start"`
	AgeStop  float64 `yaml:"age_stop"`
	Samples  int     `yaml:"samples"`
}

// Ages returns the uniform age grid in Myr.
func (g Grid) Ages() series.Series {
	return series.Linspace(g.AgeStart, g.AgeStop, g.Samples)
}

func DefaultConfig() *Config {
	return &Config{
		Color: Color{
			Logg: DefaultLogg,
			FeH:  DefaultFeH,
		},
		Residual: DefaultResidual(),
		Grid: Grid{
			BV:       DefaultBV,
			AgeStart: DefaultAgeStart,
			AgeStop:  DefaultAgeStop,
			Samples:  DefaultSamples,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Grid.Samples < 2 {
		return fmt.Errorf("grid needs at least 2 samples, got %d", c.Grid.Samples)
	}
	if c.Grid.AgeStop <= c.Grid.AgeStart {
		return fmt.Errorf("age_stop must exceed age_start, got %g <= %g", c.Grid.AgeStop, c.Grid.AgeStart)
	}
	if c.Residual.Baseline < 0 {
		return fmt.Errorf("baseline must not be negative, got %g", c.Residual.Baseline)
	}
	return nil
}
