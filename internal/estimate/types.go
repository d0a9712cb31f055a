package estimate

import (
	"math"
)

// RunnerType is the feed system of the mold.
type RunnerType string

const (
	RunnerCold RunnerType = "cold"
	RunnerHot  RunnerType = "hot"
)

// MaterialLayer is one component of the material blend.
type MaterialLayer struct {
	Family    string  `json:"family"`
	Grade     string  `json:"grade"`
	Dosage    float64 `json:"dosage" validate:"gte=0,lte=100"` // %
	RMRate    float64 `json:"rmRate" validate:"gte=0"`           // USD/kg
	ScrapRate float64 `json:"scrapRate" validate:"gte=0"`        // USD/kg
}

// EstimationState is the full input record collected by the caller.
type EstimationState struct {
	ProjectName           string  `json:"projectName"`
	ProjectNumber         string  `json:"projectNumber"`
	AnnualVolume          float64 `json:"annualVolume" validate:"gte=0"`
	Region                string  `json:"region"`
	Commodity             string  `json:"commodity"`
	ClientName            string  `json:"clientName"`
	CostingResponsibility string  `json:"costingResponsibility"`

	BaseMaterial MaterialLayer `json:"baseMaterial"`
	Masterbatch1 MaterialLayer `json:"masterbatch1"`
	Masterbatch2 MaterialLayer `json:"masterbatch2"`
	Recycle      MaterialLayer `json:"recycle"`

	RunnerType   RunnerType `json:"runnerType" validate:"oneof=cold hot"`
	RunnerWeight float64    `json:"runnerWeight" validate:"gte=0"` // g

	PartLength       float64 `json:"partLength" validate:"gte=0"`       // mm
	PartWidth        float64 `json:"partWidth" validate:"gte=0"`        // mm
	PartHeight       float64 `json:"partHeight" validate:"gte=0"`       // mm
	PartVolume       float64 `json:"partVolume" validate:"gte=0"`       // cm3
	WallThickness    float64 `json:"wallThickness" validate:"gte=0"`    // mm
	MaxWallThickness float64 `json:"maxWallThickness" validate:"gte=0"` // mm
	MinWallThickness float64 `json:"minWallThickness" validate:"gte=0"` // mm
	AvgWallThickness float64 `json:"avgWallThickness" validate:"gte=0"` // mm
	SurfaceArea      float64 `json:"surfaceArea" validate:"gte=0"`      // mm2
	ProjectedArea    float64 `json:"projectedArea" validate:"gte=0"`    // mm2
	Density          float64 `json:"density" validate:"gte=0"`          // g/cm3, informational

	MaterialID        string  `json:"materialId"`
	RegrindPercentage float64 `json:"regrindPercentage" validate:"gte=0,lte=100"`

	Manufacturer string  `json:"manufacturer"`
	MachineModel string  `json:"machineModel"`
	MachineID    string  `json:"machineId"`
	Cavities     int     `json:"cavities" validate:"gte=1"`
	Efficiency   float64 `json:"efficiency" validate:"gte=0,lte=100"` // %

	InjectionPressure float64 `json:"injectionPressure" validate:"gte=0"` // kg/cm2
	DemoldTemp        float64 `json:"demoldTemp"`                         // C
	InjTemp           float64 `json:"injTemp"`                            // C
	MoldTemp          float64 `json:"moldTemp"`                           // C

	// Cycle phases, seconds.
	InjectionTime     float64 `json:"injectionTime" validate:"gte=0"`
	CoolingTimeManual float64 `json:"coolingTimeManual" validate:"gte=0"`
	ActuationTime     float64 `json:"actuationTime" validate:"gte=0"`
	EjectionTime      float64 `json:"ejectionTime" validate:"gte=0"`
	LoadingTime       float64 `json:"loadingTime" validate:"gte=0"`
}

// WeightBreakdown splits the part weight by material origin, in grams.
type WeightBreakdown struct {
	Base    float64 `json:"base"`
	MB      float64 `json:"mb"`
	Regrind float64 `json:"regrind"`
}

// CostBreakdown is the per-part cost cascade in USD. The eight fields sum to
// CalculationResults.TotalCostPerPart.
type CostBreakdown struct {
	RawMaterial float64 `json:"rawMaterial"`
	Process     float64 `json:"process"`
	ICC         float64 `json:"icc"`
	Rejection   float64 `json:"rejection"`
	Overhead    float64 `json:"overhead"`
	Packaging   float64 `json:"packaging"`
	Logistics   float64 `json:"logistics"`
	Profit      float64 `json:"profit"`
}

// Sum adds all eight components.
func (b CostBreakdown) Sum() float64 {
	return b.RawMaterial + b.Process + b.ICC + b.Rejection + b.Overhead + b.Packaging + b.Logistics + b.Profit
}

// CalculationResults is rebuilt from scratch on every Calculate call.
//
// RequiredTonnage and HourlyOutput hold integral values (ceil and floor) but
// stay float64 so NaN and ±Inf survive out-of-domain inputs.
type CalculationResults struct {
	ResolvedMaterialID string `json:"resolvedMaterialId"`
	ResolvedMachineID  string `json:"resolvedMachineId"`

	PartWeight             float64         `json:"partWeight"`  // g
	ShotWeight             float64         `json:"shotWeight"`  // g
	CoolingTime            float64         `json:"coolingTime"` // s, as entered
	CycleTime              float64         `json:"cycleTime"`   // s
	MaterialCostPerPart    float64         `json:"materialCostPerPart"`
	ProcessCostPerPart     float64         `json:"processCostPerPart"`
	TotalCostPerPart       float64         `json:"totalCostPerPart"`
	TotalAnnualProjectCost float64         `json:"totalAnnualProjectCost"`
	EffectiveMaterialRate  float64         `json:"effectiveMaterialRate"` // USD/kg
	WeightBreakdown        WeightBreakdown `json:"weightBreakdown"`
	RequiredTonnage        float64         `json:"requiredTonnage"` // kN
	IsTonnageValid         bool            `json:"isTonnageValid"`
	TonnageUtilization     float64         `json:"tonnageUtilization"` // %, capped at 100
	InjectionVolume        float64         `json:"injectionVolume"`    // L
	HourlyOutput           float64         `json:"hourlyOutput"`       // parts/hr
	Breakdown              CostBreakdown   `json:"breakdown"`
}

// NonFinite returns the json names of every numeric result that is NaN or
// infinite. An empty slice means the result can be displayed as is.
func (r CalculationResults) NonFinite() []string {
	fields := []struct {
		name  string
		value float64
	}{
		{"partWeight", r.PartWeight},
		{"shotWeight", r.ShotWeight},
		{"coolingTime", r.CoolingTime},
		{"cycleTime", r.CycleTime},
		{"materialCostPerPart", r.MaterialCostPerPart},
		{"processCostPerPart", r.ProcessCostPerPart},
		{"totalCostPerPart", r.TotalCostPerPart},
		{"totalAnnualProjectCost", r.TotalAnnualProjectCost},
		{"effectiveMaterialRate", r.EffectiveMaterialRate},
		{"weightBreakdown.base", r.WeightBreakdown.Base},
		{"weightBreakdown.mb", r.WeightBreakdown.MB},
		{"weightBreakdown.regrind", r.WeightBreakdown.Regrind},
		{"requiredTonnage", r.RequiredTonnage},
		{"tonnageUtilization", r.TonnageUtilization},
		{"injectionVolume", r.InjectionVolume},
		{"hourlyOutput", r.HourlyOutput},
		{"breakdown.rawMaterial", r.Breakdown.RawMaterial},
		{"breakdown.process", r.Breakdown.Process},
		{"breakdown.icc", r.Breakdown.ICC},
		{"breakdown.rejection", r.Breakdown.Rejection},
		{"breakdown.overhead", r.Breakdown.Overhead},
		{"breakdown.packaging", r.Breakdown.Packaging},
		{"breakdown.logistics", r.Breakdown.Logistics},
		{"breakdown.profit", r.Breakdown.Profit},
	}

	bad := make([]string, 0)
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			bad = append(bad, f.name)
		}
	}
	return bad
}
