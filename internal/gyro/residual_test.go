package gyro

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gyrochron/internal/config"
	"github.com/san-kum/gyrochron/internal/series"
)

func TestResidualFormula(t *testing.T) {
	p, pdot := 10.0, 1e-11
	expected := pdot / 20 * math.Pow(10*365.25, 2) * 24 * 60
	if got := Residual(p, pdot, 10); !relClose(got, expected, 1e-12) {
		t.Errorf("expected %g, got %g", expected, got)
	}
}

func TestOmCKnownValues(t *testing.T) {
	ages := []float64{10, 20, 30, 40}
	expected := []float64{0.73586691174494, 0.6666821417364478, 0.6851559238391165, 0.6025700145803334}

	oc, err := OmC(series.Scalar(0.65), ages, config.Residual{Baseline: 10, Fudge: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range expected {
		if !relClose(oc[i], expected[i], 1e-9) {
			t.Errorf("oc[%d] = %g min, want %g", i, oc[i], expected[i])
		}
	}
}

func TestOmCDefaultResidual(t *testing.T) {
	ages := []float64{10, 20, 30, 40}
	a, err := OmC(series.Scalar(0.65), ages, config.DefaultResidual())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := OmC(series.Scalar(0.65), ages, config.Residual{Baseline: 10, Fudge: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("oc[%d]: DefaultResidual %g, explicit %g", i, a[i], b[i])
		}
	}
}

func TestOmCBaselineQuadratic(t *testing.T) {
	ages := []float64{10, 20, 30}
	short, err := OmC(series.Scalar(0.65), ages, config.Residual{Baseline: 10, Fudge: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	long, err := OmC(series.Scalar(0.65), ages, config.Residual{Baseline: 30, Fudge: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range short {
		if !relClose(long[i], 9*short[i], 1e-12) {
			t.Errorf("oc[%d]: 30 yr %g, expected 9x %g", i, long[i], short[i])
		}
	}
}

func TestOmCZeroOptions(t *testing.T) {
	ages := []float64{10, 20, 30, 40}
	tests := []struct {
		name string
		opts config.Residual
	}{
		{"zero fudge", config.Residual{Baseline: 10, Fudge: 0}},
		{"zero baseline", config.Residual{Baseline: 0, Fudge: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oc, err := OmC(series.Scalar(0.65), ages, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, v := range oc {
				if v != 0 {
					t.Errorf("oc[%d] = %g, want 0", i, v)
				}
			}
		})
	}
}

func TestOmCPropagatesMask(t *testing.T) {
	oc, err := OmC(series.Scalar(0.55), []float64{1, 2, 3, 100}, config.DefaultResidual())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(oc[3]) {
		t.Errorf("expected NaN past the interface, got %g", oc[3])
	}
}

func TestOmCTooFewSamples(t *testing.T) {
	_, err := OmC(series.Scalar(0.65), []float64{10}, config.DefaultResidual())
	if !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
}
