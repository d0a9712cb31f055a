package estimate

import (
	"fmt"
	"math"

	"github.com/Simplici0/moldcost/internal/catalog"
)

// Fixed surcharge cascade and process constants.
const (
	iccRate         = 0.01 // of raw material
	rejectionRate   = 0.02 // of raw material + process
	overheadRate    = 0.10 // of process
	packagingRate   = 0.02 // of raw material + process
	logisticsRate   = 0.03 // of raw material + process
	profitRate      = 0.08 // of the subtotal
	regrindDiscount = 0.5
	clampFactor     = 0.4 // kN per unit of projected area and cavity
	minCycleTime    = 0.1 // s
)

// MaterialModel selects how the material rate is derived.
type MaterialModel string

const (
	// MaterialModelFlat prices the catalog material, discounted by the regrind
	// percentage.
	MaterialModelFlat MaterialModel = "flat"
	// MaterialModelLayered prices the dosage-weighted blend of the four
	// material layers of the state.
	MaterialModelLayered MaterialModel = "layered"
)

// ParseMaterialModel converts a configuration string to a MaterialModel.
func ParseMaterialModel(s string) (MaterialModel, error) {
	switch MaterialModel(s) {
	case "", MaterialModelFlat:
		return MaterialModelFlat, nil
	case MaterialModelLayered:
		return MaterialModelLayered, nil
	default:
		return "", fmt.Errorf("unknown material model %q (want %q or %q)", s, MaterialModelFlat, MaterialModelLayered)
	}
}

// Options tune an Engine. The zero value reproduces the reference behaviour:
// fallback lookup and the flat material model.
type Options struct {
	Lookup        catalog.LookupMode
	MaterialModel MaterialModel
	// HourlyRate replaces the machine's catalog rate when positive.
	HourlyRate float64
}

// Engine computes estimates against a fixed catalog. It holds no mutable
// state and may be shared.
type Engine struct {
	catalog *catalog.Catalog
	opts    Options
}

// NewEngine returns an Engine over c, or over the embedded catalog when c is nil.
func NewEngine(c *catalog.Catalog, opts Options) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	if opts.MaterialModel == "" {
		opts.MaterialModel = MaterialModelFlat
	}
	return &Engine{catalog: c, opts: opts}
}

// Calculate runs the estimate with the embedded catalog, fallback lookup and
// the flat material model. It never fails.
func Calculate(state EstimationState) CalculationResults {
	results, _ := NewEngine(catalog.Default(), Options{}).Calculate(state)
	return results
}

type materialCost struct {
	rate    float64 // USD/kg
	perShot float64 // USD
	weights WeightBreakdown
}

// Calculate derives the full result for state. The only error is an unknown
// material or machine id under catalog.LookupStrict.
func (e *Engine) Calculate(state EstimationState) (CalculationResults, error) {
	material, err := e.catalog.ResolveMaterial(state.MaterialID, e.opts.Lookup)
	if err != nil {
		return CalculationResults{}, err
	}
	machine, err := e.catalog.ResolveMachine(state.MachineID, e.opts.Lookup)
	if err != nil {
		return CalculationResults{}, err
	}

	hourlyRate := machine.HourlyRate
	if e.opts.HourlyRate > 0 {
		hourlyRate = e.opts.HourlyRate
	}

	cavities := float64(state.Cavities)
	partWeight, shotWeight := ShotWeights(state.PartVolume, material.Density, state.Cavities, state.RunnerWeight)

	cycleTime := state.InjectionTime + state.CoolingTimeManual + state.ActuationTime + state.EjectionTime + state.LoadingTime

	var mat materialCost
	switch e.opts.MaterialModel {
	case MaterialModelLayered:
		mat = layeredMaterialCost(state, partWeight)
	default:
		mat = flatMaterialCost(material, state, partWeight, shotWeight)
	}
	materialCostPerPart := mat.perShot / cavities

	processCostPerShot := (hourlyRate / 3600) * cycleTime
	processCostPerPart := processCostPerShot / cavities

	breakdown := surcharges(materialCostPerPart, processCostPerPart)
	totalCostPerPart := breakdown.Sum()

	requiredTonnage := math.Ceil(state.ProjectedArea * cavities * clampFactor)

	return CalculationResults{
		ResolvedMaterialID:     material.ID,
		ResolvedMachineID:      machine.ID,
		PartWeight:             partWeight,
		ShotWeight:             shotWeight,
		CoolingTime:            state.CoolingTimeManual,
		CycleTime:              cycleTime,
		MaterialCostPerPart:    materialCostPerPart,
		ProcessCostPerPart:     processCostPerPart,
		TotalCostPerPart:       totalCostPerPart,
		TotalAnnualProjectCost: totalCostPerPart * state.AnnualVolume,
		EffectiveMaterialRate:  mat.rate,
		WeightBreakdown:        mat.weights,
		RequiredTonnage:        requiredTonnage,
		IsTonnageValid:         machine.ClampingForce >= requiredTonnage,
		TonnageUtilization:     math.Min(100, requiredTonnage/machine.ClampingForce*100),
		InjectionVolume:        (shotWeight / 1000) / material.Density,
		HourlyOutput:           math.Floor((3600 / math.Max(cycleTime, minCycleTime)) * cavities * (state.Efficiency / 100)),
		Breakdown:              breakdown,
	}, nil
}

func flatMaterialCost(material catalog.Material, state EstimationState, partWeight, shotWeight float64) materialCost {
	rate := material.PricePerKg * (1 - (state.RegrindPercentage/100)*regrindDiscount)
	return materialCost{
		rate:    rate,
		perShot: (shotWeight / 1000) * rate,
		weights: regrindSplit(partWeight, state.RegrindPercentage),
	}
}

// surcharges applies the cascade in order. Each percentage is taken from its
// own base, and profit from the subtotal of everything before it, so the
// components sum exactly to the total.
func surcharges(rawMaterial, process float64) CostBreakdown {
	direct := rawMaterial + process

	b := CostBreakdown{
		RawMaterial: rawMaterial,
		Process:     process,
		ICC:         rawMaterial * iccRate,
		Rejection:   direct * rejectionRate,
		Overhead:    process * overheadRate,
		Packaging:   direct * packagingRate,
		Logistics:   direct * logisticsRate,
	}
	subtotal := b.RawMaterial + b.Process + b.ICC + b.Rejection + b.Overhead + b.Packaging + b.Logistics
	b.Profit = subtotal * profitRate
	return b
}
