package config

import "sort"

var Presets = map[string]*Config{
	"sun": {
		Color:    Color{Logg: 4.44, FeH: 0.0},
		Residual: Residual{Baseline: 10, Fudge: 1},
		Grid:     Grid{BV: 0.65, AgeStart: 10, AgeStop: 4600, Samples: 460},
	},
	"k_dwarf": {
		Color:    Color{Logg: 4.6, FeH: 0.0},
		Residual: Residual{Baseline: 10, Fudge: 1},
		Grid:     Grid{BV: 1.0, AgeStart: 10, AgeStop: 1000, Samples: 100},
	},
	"late_f": {
		Color:    Color{Logg: 4.3, FeH: 0.0},
		Residual: Residual{Baseline: 10, Fudge: 1},
		Grid:     Grid{BV: 0.55, AgeStart: 1, AgeStop: 300, Samples: 300},
	},
	"long_baseline": {
		Color:    Color{Logg: 4.3, FeH: 0.0},
		Residual: Residual{Baseline: 30, Fudge: 1},
		Grid:     Grid{BV: 0.65, AgeStart: 10, AgeStop: 1000, Samples: 100},
	},
	"metal_poor": {
		Color:    Color{Logg: 4.3, FeH: -1.0},
		Residual: Residual{Baseline: 10, Fudge: 1},
		Grid:     Grid{BV: 0.65, AgeStart: 10, AgeStop: 1000, Samples: 100},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
