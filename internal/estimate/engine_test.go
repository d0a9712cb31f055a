package estimate

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/Simplici0/moldcost/internal/catalog"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCalculate_DefaultState(t *testing.T) {
	result := Calculate(DefaultState())

	nearlyEqual(t, "partWeight", result.PartWeight, 129.48)
	nearlyEqual(t, "shotWeight", result.ShotWeight, 271.46)
	nearlyEqual(t, "cycleTime", result.CycleTime, 34.5)
	nearlyEqual(t, "coolingTime", result.CoolingTime, 18)
	nearlyEqual(t, "effectiveMaterialRate", result.EffectiveMaterialRate, 2.63625)
	nearlyEqual(t, "materialCostPerPart", result.MaterialCostPerPart, 0.3578182125)
	nearlyEqual(t, "processCostPerPart", result.ProcessCostPerPart, 0.6708333333333334)

	b := result.Breakdown
	nearlyEqual(t, "rawMaterial", b.RawMaterial, 0.3578182125)
	nearlyEqual(t, "process", b.Process, 0.6708333333333334)
	nearlyEqual(t, "icc", b.ICC, 0.003578182125)
	nearlyEqual(t, "rejection", b.Rejection, 0.020573030916666672)
	nearlyEqual(t, "overhead", b.Overhead, 0.06708333333333334)
	nearlyEqual(t, "packaging", b.Packaging, 0.020573030916666672)
	nearlyEqual(t, "logistics", b.Logistics, 0.03085954637500001)
	nearlyEqual(t, "profit", b.Profit, 0.09370549356000005)

	nearlyEqual(t, "totalCostPerPart", result.TotalCostPerPart, 1.2650241630600008)
	nearlyEqual(t, "totalAnnualProjectCost", result.TotalAnnualProjectCost, 63251.208153)

	nearlyEqual(t, "weightBreakdown.base", result.WeightBreakdown.Base, 110.058)
	nearlyEqual(t, "weightBreakdown.mb", result.WeightBreakdown.MB, 0)
	nearlyEqual(t, "weightBreakdown.regrind", result.WeightBreakdown.Regrind, 19.422)

	nearlyEqual(t, "requiredTonnage", result.RequiredTonnage, 37)
	if !result.IsTonnageValid {
		t.Fatalf("isTonnageValid = false, want true")
	}
	nearlyEqual(t, "tonnageUtilization", result.TonnageUtilization, 37.0/9000*100)
	nearlyEqual(t, "injectionVolume", result.InjectionVolume, 0.2610192307692308)
	nearlyEqual(t, "hourlyOutput", result.HourlyOutput, 198)

	if result.ResolvedMaterialID != "abs-gen" || result.ResolvedMachineID != "m-900" {
		t.Fatalf("resolved ids = %q/%q, want abs-gen/m-900", result.ResolvedMaterialID, result.ResolvedMachineID)
	}
}

func TestCalculate_BreakdownSumsToTotal(t *testing.T) {
	states := []EstimationState{DefaultState()}

	s := DefaultState()
	s.Cavities = 8
	s.RegrindPercentage = 0
	s.MaterialID = "pc-gen"
	states = append(states, s)

	s = DefaultState()
	s.RunnerWeight = 0
	s.LoadingTime = 0
	s.MachineID = "m-250"
	states = append(states, s)

	for i, state := range states {
		result := Calculate(state)
		nearlyEqual(t, "breakdown sum", result.Breakdown.Sum(), result.TotalCostPerPart)
		nearlyEqual(t, "annual", result.TotalAnnualProjectCost, result.TotalCostPerPart*state.AnnualVolume)
		if math.IsNaN(result.TotalCostPerPart) {
			t.Fatalf("state %d: total is NaN", i)
		}
	}
}

func TestCalculate_NonNegative(t *testing.T) {
	for _, regrind := range []float64{0, 15, 50, 100} {
		for _, cavities := range []int{1, 2, 4, 16} {
			s := DefaultState()
			s.RegrindPercentage = regrind
			s.Cavities = cavities

			result := Calculate(s)
			b := result.Breakdown
			for name, v := range map[string]float64{
				"partWeight":   result.PartWeight,
				"shotWeight":   result.ShotWeight,
				"cycleTime":    result.CycleTime,
				"hourlyOutput": result.HourlyOutput,
				"rawMaterial":  b.RawMaterial,
				"process":      b.Process,
				"icc":          b.ICC,
				"rejection":    b.Rejection,
				"overhead":     b.Overhead,
				"packaging":    b.Packaging,
				"logistics":    b.Logistics,
				"profit":       b.Profit,
			} {
				if v < 0 {
					t.Fatalf("regrind %v cavities %d: %s = %v, want >= 0", regrind, cavities, name, v)
				}
			}
		}
	}
}

func TestCalculate_CavityScaling(t *testing.T) {
	prevShot := 0.0
	prevMaterial := math.Inf(1)
	for cavities := 1; cavities <= 8; cavities++ {
		s := DefaultState()
		s.Cavities = cavities
		result := Calculate(s)

		if result.ShotWeight <= prevShot {
			t.Fatalf("cavities %d: shotWeight %v did not grow from %v", cavities, result.ShotWeight, prevShot)
		}
		if result.MaterialCostPerPart >= prevMaterial {
			t.Fatalf("cavities %d: materialCostPerPart %v did not drop below %v", cavities, result.MaterialCostPerPart, prevMaterial)
		}
		nearlyEqual(t, "partWeight", result.PartWeight, 129.48)
		prevShot = result.ShotWeight
		prevMaterial = result.MaterialCostPerPart
	}
}

func TestCalculate_TonnageCheck(t *testing.T) {
	s := DefaultState()
	s.MachineID = "m-50" // 500 kN
	s.Cavities = 2

	s.ProjectedArea = 625
	atLimit := Calculate(s)
	nearlyEqual(t, "requiredTonnage at limit", atLimit.RequiredTonnage, 500)
	if !atLimit.IsTonnageValid {
		t.Fatalf("isTonnageValid at clamp force = false, want true")
	}
	nearlyEqual(t, "tonnageUtilization at limit", atLimit.TonnageUtilization, 100)

	s.ProjectedArea = 625.01
	over := Calculate(s)
	nearlyEqual(t, "requiredTonnage over limit", over.RequiredTonnage, 501)
	if over.IsTonnageValid {
		t.Fatalf("isTonnageValid above clamp force = true, want false")
	}
	nearlyEqual(t, "tonnageUtilization over limit", over.TonnageUtilization, 100)

	prev := 0.0
	for _, area := range []float64{0, 10, 45.2, 100, 1000} {
		s.ProjectedArea = area
		got := Calculate(s).RequiredTonnage
		if got < prev {
			t.Fatalf("requiredTonnage(%v) = %v, want >= %v", area, got, prev)
		}
		prev = got
	}
}

func TestCalculate_HourlyOutputClampsCycleTime(t *testing.T) {
	s := DefaultState()
	s.InjectionTime, s.CoolingTimeManual, s.ActuationTime, s.EjectionTime, s.LoadingTime = 0, 0, 0, 0, 0
	s.Efficiency = 100
	s.Cavities = 1

	result := Calculate(s)
	nearlyEqual(t, "cycleTime", result.CycleTime, 0)
	nearlyEqual(t, "hourlyOutput", result.HourlyOutput, 36000)
	nearlyEqual(t, "processCostPerPart", result.ProcessCostPerPart, 0)
}

func TestCalculate_Idempotent(t *testing.T) {
	s := DefaultState()
	first := Calculate(s)
	second := Calculate(s)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Calculate is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestCalculate_ZeroCavitiesIsNonFinite(t *testing.T) {
	s := DefaultState()
	s.Cavities = 0

	result := Calculate(s)
	bad := result.NonFinite()
	if len(bad) == 0 {
		t.Fatalf("NonFinite() = empty, want per-part fields")
	}
	if !math.IsInf(result.MaterialCostPerPart, 1) {
		t.Fatalf("materialCostPerPart = %v, want +Inf", result.MaterialCostPerPart)
	}
	if !contains(bad, "totalCostPerPart") {
		t.Fatalf("NonFinite() = %v, want totalCostPerPart listed", bad)
	}
	if contains(bad, "partWeight") {
		t.Fatalf("NonFinite() = %v, partWeight should stay finite", bad)
	}
}

func TestNonFinite_DefaultIsEmpty(t *testing.T) {
	if bad := Calculate(DefaultState()).NonFinite(); len(bad) != 0 {
		t.Fatalf("NonFinite() = %v, want empty", bad)
	}
}

func TestEngine_FallbackLookup(t *testing.T) {
	s := DefaultState()
	s.MaterialID = "does-not-exist"
	s.MachineID = "nope"

	result, err := NewEngine(nil, Options{}).Calculate(s)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if result.ResolvedMaterialID != "abs-gen" {
		t.Fatalf("resolvedMaterialId = %q, want abs-gen", result.ResolvedMaterialID)
	}
	if result.ResolvedMachineID != "m-50" {
		t.Fatalf("resolvedMachineId = %q, want m-50", result.ResolvedMachineID)
	}
	// m-50 at 35 USD/hr.
	nearlyEqual(t, "processCostPerPart", result.ProcessCostPerPart, (35.0/3600)*34.5/2)
}

func TestEngine_StrictLookup(t *testing.T) {
	engine := NewEngine(nil, Options{Lookup: catalog.LookupStrict})

	s := DefaultState()
	s.MaterialID = "does-not-exist"
	if _, err := engine.Calculate(s); !errors.Is(err, catalog.ErrUnknownMaterialID) {
		t.Fatalf("Calculate() error = %v, want ErrUnknownMaterialID", err)
	}

	s = DefaultState()
	s.MachineID = "nope"
	if _, err := engine.Calculate(s); !errors.Is(err, catalog.ErrUnknownMachineID) {
		t.Fatalf("Calculate() error = %v, want ErrUnknownMachineID", err)
	}

	result, err := engine.Calculate(DefaultState())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	nearlyEqual(t, "totalCostPerPart", result.TotalCostPerPart, 1.2650241630600008)
}

func TestEngine_HourlyRateOverride(t *testing.T) {
	result, err := NewEngine(nil, Options{HourlyRate: 36}).Calculate(DefaultState())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	nearlyEqual(t, "processCostPerPart", result.ProcessCostPerPart, 0.1725)
	nearlyEqual(t, "overhead", result.Breakdown.Overhead, 0.01725)
}

func TestEngine_CustomCatalog(t *testing.T) {
	c := &catalog.Catalog{
		Materials: []catalog.Material{{ID: "x", Density: 1, PricePerKg: 10}},
		Machines:  []catalog.Machine{{ID: "y", HourlyRate: 0, ClampingForce: 10}},
	}
	s := DefaultState()
	s.PartVolume = 100
	s.RunnerWeight = 0
	s.RegrindPercentage = 0
	s.Cavities = 1
	s.ProjectedArea = 100

	result, err := NewEngine(c, Options{}).Calculate(s)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	nearlyEqual(t, "materialCostPerPart", result.MaterialCostPerPart, 1)
	nearlyEqual(t, "processCostPerPart", result.ProcessCostPerPart, 0)
	nearlyEqual(t, "requiredTonnage", result.RequiredTonnage, 40)
	if result.IsTonnageValid {
		t.Fatalf("isTonnageValid = true, want false")
	}
}

func TestParseMaterialModel(t *testing.T) {
	cases := map[string]MaterialModel{
		"":        MaterialModelFlat,
		"flat":    MaterialModelFlat,
		"layered": MaterialModelLayered,
	}
	for in, want := range cases {
		got, err := ParseMaterialModel(in)
		if err != nil {
			t.Fatalf("ParseMaterialModel(%q) error = %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMaterialModel(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseMaterialModel("blend"); err == nil {
		t.Fatalf("ParseMaterialModel(blend) error = nil, want error")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
