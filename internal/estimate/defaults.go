package estimate

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultState returns the housing reference project used as the starting
// point of every new estimate. ProjectNumber is left empty.
func DefaultState() EstimationState {
	return EstimationState{
		ProjectName:  "Housing X5",
		AnnualVolume: 50000,
		Region:       "na",
		Commodity:    "Plastics - Injection",
		ClientName:   "Acme Corp",

		BaseMaterial: MaterialLayer{Family: "ABS", Grade: "Lustran GP", Dosage: 93.0, RMRate: 3.11, ScrapRate: 0.62},
		Masterbatch1: MaterialLayer{Family: "Color", Grade: "Avient 15RL312", Dosage: 5.0, RMRate: 5.56},
		Masterbatch2: MaterialLayer{Family: "UV", Grade: "Avient UV2S", Dosage: 2.0, RMRate: 10.00},
		Recycle:      MaterialLayer{Family: "ABS", Grade: "Lustran GP", Dosage: 20.0},

		RunnerType:   RunnerCold,
		RunnerWeight: 12.5,

		PartLength:       120.5,
		PartWidth:        85.2,
		PartHeight:       40.0,
		PartVolume:       124.50,
		WallThickness:    2.1,
		MaxWallThickness: 3.5,
		MinWallThickness: 1.2,
		AvgWallThickness: 2.1,
		SurfaceArea:      450.20,
		ProjectedArea:    45.2,
		Density:          1.04,

		MaterialID:        "abs-gen",
		RegrindPercentage: 15,

		MachineID:    "m-900",
		Manufacturer: "Engel",
		MachineModel: "Duo5550/900",
		Cavities:     2,
		Efficiency:   95,

		InjectionPressure: 800,
		DemoldTemp:        76,
		InjTemp:           237,
		MoldTemp:          58,

		InjectionTime:     4.2,
		CoolingTimeManual: 18.0,
		ActuationTime:     2.5,
		EjectionTime:      1.8,
		LoadingTime:       8.0,
	}
}

// NewProjectNumber formats a project number such as CE-20261015-4821.
func NewProjectNumber(now time.Time, r *rand.Rand) string {
	return fmt.Sprintf("CE-%s-%04d", now.Format("20060102"), 1000+r.IntN(9000))
}
