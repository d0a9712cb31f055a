package report

import (
	"fmt"
	"strings"

	"github.com/Simplici0/moldcost/internal/estimate"
)

// Build assembles the report for one calculation. Non-finite results are kept
// and listed in Warnings.
func Build(state estimate.EstimationState, results estimate.CalculationResults) *Report {
	total := results.TotalCostPerPart
	share := func(v float64) Amount { return Amount(v / total * 100) }

	b := results.Breakdown
	r := &Report{
		Project: Project{
			Name:         state.ProjectName,
			Number:       state.ProjectNumber,
			Client:       state.ClientName,
			Region:       state.Region,
			Commodity:    state.Commodity,
			MaterialID:   results.ResolvedMaterialID,
			MachineID:    results.ResolvedMachineID,
			Cavities:     state.Cavities,
			AnnualVolume: Amount(state.AnnualVolume),
		},
		KPIs: []Figure{
			{Label: "Total cost per part", Value: Amount(total), Unit: "USD", Precision: 4},
			{Label: "Annual project cost", Value: Amount(results.TotalAnnualProjectCost), Unit: "USD", Precision: 2},
			{Label: "Material cost per part", Value: Amount(results.MaterialCostPerPart), Unit: "USD", Precision: 4},
			{Label: "Process cost per part", Value: Amount(results.ProcessCostPerPart), Unit: "USD", Precision: 4},
			{Label: "Effective material rate", Value: Amount(results.EffectiveMaterialRate), Unit: "USD/kg", Precision: 4},
			{Label: "Hourly output", Value: Amount(results.HourlyOutput), Unit: "parts/h", Precision: 0},
		},
		Breakdown: []CostLine{
			{Label: "Raw Material", Basis: "net part + runner", USD: Amount(b.RawMaterial), Share: share(b.RawMaterial)},
			{Label: "Process", Basis: "machine rate x cycle", USD: Amount(b.Process), Share: share(b.Process)},
			{Label: "ICC", Basis: "1% of material", USD: Amount(b.ICC), Share: share(b.ICC)},
			{Label: "Rejection", Basis: "2% of material + process", USD: Amount(b.Rejection), Share: share(b.Rejection)},
			{Label: "Overhead", Basis: "10% of process", USD: Amount(b.Overhead), Share: share(b.Overhead)},
			{Label: "Packaging", Basis: "2% of material + process", USD: Amount(b.Packaging), Share: share(b.Packaging)},
			{Label: "Logistics", Basis: "3% of material + process", USD: Amount(b.Logistics), Share: share(b.Logistics)},
			{Label: "Profit", Basis: "8% of subtotal", USD: Amount(b.Profit), Share: share(b.Profit)},
		},
		Total: Amount(total),
		Technical: []Figure{
			{Label: "Part weight", Value: Amount(results.PartWeight), Unit: "g", Precision: 2},
			{Label: "Shot weight", Value: Amount(results.ShotWeight), Unit: "g", Precision: 2},
			{Label: "Virgin weight", Value: Amount(results.WeightBreakdown.Base), Unit: "g", Precision: 2},
			{Label: "Masterbatch weight", Value: Amount(results.WeightBreakdown.MB), Unit: "g", Precision: 2},
			{Label: "Regrind weight", Value: Amount(results.WeightBreakdown.Regrind), Unit: "g", Precision: 2},
			{Label: "Cooling time", Value: Amount(results.CoolingTime), Unit: "s", Precision: 1},
			{Label: "Cycle time", Value: Amount(results.CycleTime), Unit: "s", Precision: 1},
			{Label: "Required tonnage", Value: Amount(results.RequiredTonnage), Unit: "kN", Precision: 0},
			{Label: "Tonnage utilization", Value: Amount(results.TonnageUtilization), Unit: "%", Precision: 1},
			{Label: "Injection volume", Value: Amount(results.InjectionVolume), Unit: "L", Precision: 4},
		},
	}

	if !results.IsTonnageValid {
		r.Warnings = append(r.Warnings, fmt.Sprintf("required tonnage %s kN exceeds the clamping force of machine %s",
			Amount(results.RequiredTonnage).Text(0), results.ResolvedMachineID))
	}
	if bad := results.NonFinite(); len(bad) > 0 {
		r.Warnings = append(r.Warnings, "non-finite results: "+strings.Join(bad, ", "))
	}
	return r
}
