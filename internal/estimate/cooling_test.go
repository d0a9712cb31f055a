package estimate

import (
	"errors"
	"math"
	"testing"

	"github.com/Simplici0/moldcost/internal/catalog"
)

func TestCoolingTime_ABS(t *testing.T) {
	abs, ok := catalog.Default().Material("abs-gen")
	if !ok {
		t.Fatalf("abs-gen missing from default catalog")
	}

	got := CoolingTime(abs, 2.1)
	nearlyEqual(t, "coolingTime", got, 11.037537114003406)
}

func TestCoolingTime_DefaultCatalogFinitePositive(t *testing.T) {
	for _, m := range catalog.Default().Materials {
		if err := ValidateThermal(m); err != nil {
			t.Fatalf("ValidateThermal(%s) error = %v", m.ID, err)
		}
		for _, h := range []float64{0.5, 1, 2.1, 4} {
			got := CoolingTime(m, h)
			if math.IsNaN(got) || math.IsInf(got, 0) || got <= 0 {
				t.Fatalf("CoolingTime(%s, %v) = %v, want finite positive", m.ID, h, got)
			}
		}
	}
}

func TestCoolingTime_QuadraticInThickness(t *testing.T) {
	m, _ := catalog.Default().Material("pp-gen")

	thin := CoolingTime(m, 1)
	thick := CoolingTime(m, 2)
	nearlyEqual(t, "ratio", thick/thin, 4)
	nearlyEqual(t, "zero wall", CoolingTime(m, 0), 0)
}

func TestCoolingTime_DegenerateTemperatures(t *testing.T) {
	m := catalog.Material{ID: "bad", ThermalDiffusivity: 0.1, MeltTemp: 200, MoldTemp: 60, EjectTemp: 60}
	if got := CoolingTime(m, 2); !math.IsInf(got, 0) {
		t.Fatalf("CoolingTime with eject == mold = %v, want ±Inf", got)
	}
	if err := ValidateThermal(m); !errors.Is(err, ErrInvalidThermal) {
		t.Fatalf("ValidateThermal() error = %v, want ErrInvalidThermal", err)
	}

	m.EjectTemp = 40
	if got := CoolingTime(m, 2); !math.IsNaN(got) {
		t.Fatalf("CoolingTime with eject < mold = %v, want NaN", got)
	}
	if err := ValidateThermal(m); !errors.Is(err, ErrInvalidThermal) {
		t.Fatalf("ValidateThermal() error = %v, want ErrInvalidThermal", err)
	}
}

func TestValidateThermal_RatioBelowOne(t *testing.T) {
	// (4/π)·(100/95) > 1 while (4/π)·(100/130) < 1.
	ok := catalog.Material{ThermalDiffusivity: 0.1, MeltTemp: 160, MoldTemp: 60, EjectTemp: 155}
	if err := ValidateThermal(ok); err != nil {
		t.Fatalf("ValidateThermal() error = %v", err)
	}

	bad := catalog.Material{ThermalDiffusivity: 0.1, MeltTemp: 160, MoldTemp: 60, EjectTemp: 190}
	if err := ValidateThermal(bad); !errors.Is(err, ErrInvalidThermal) {
		t.Fatalf("ValidateThermal() error = %v, want ErrInvalidThermal", err)
	}
	if got := CoolingTime(bad, 2); got >= 0 {
		t.Fatalf("CoolingTime() = %v, want negative", got)
	}

	noDiffusivity := catalog.Material{MeltTemp: 230, MoldTemp: 60, EjectTemp: 90}
	if err := ValidateThermal(noDiffusivity); !errors.Is(err, ErrInvalidThermal) {
		t.Fatalf("ValidateThermal() error = %v, want ErrInvalidThermal", err)
	}
}
