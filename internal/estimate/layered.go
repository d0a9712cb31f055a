package estimate

import "math"

// layeredMaterialCost prices the material blend from the state's layers.
//
// The virgin blend is base + both masterbatches, weighted by dosage. The
// recycle layer's dosage is the regrind share of the part and is priced at
// its own rate. With a cold runner the runner is credited back at the
// blend's scrap rate, never below zero.
func layeredMaterialCost(state EstimationState, partWeight float64) materialCost {
	virgin := [...]MaterialLayer{state.BaseMaterial, state.Masterbatch1, state.Masterbatch2}

	var dosage, rate, scrap float64
	for _, l := range virgin {
		dosage += l.Dosage
		rate += l.Dosage * l.RMRate
		scrap += l.Dosage * l.ScrapRate
	}
	virginRate := rate / dosage
	scrapCredit := scrap / dosage

	regrind := state.Recycle.Dosage / 100
	effective := (1-regrind)*virginRate + regrind*state.Recycle.RMRate

	runnerRate := effective
	if state.RunnerType != RunnerHot {
		runnerRate = math.Max(effective-scrapCredit, 0)
	}

	cavities := float64(state.Cavities)
	virginWeight := partWeight * (1 - regrind)

	return materialCost{
		rate:    effective,
		perShot: (partWeight*cavities/1000)*effective + (state.RunnerWeight/1000)*runnerRate,
		weights: WeightBreakdown{
			Base:    virginWeight * state.BaseMaterial.Dosage / dosage,
			MB:      virginWeight * (state.Masterbatch1.Dosage + state.Masterbatch2.Dosage) / dosage,
			Regrind: partWeight * regrind,
		},
	}
}
