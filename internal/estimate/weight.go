package estimate

// ShotWeights returns the weight of one part and of a full shot in grams.
// cavities is not checked; a zero cavity count surfaces later as ±Inf/NaN in
// the per-part costs.
func ShotWeights(partVolume, density float64, cavities int, runnerWeight float64) (partWeight, shotWeight float64) {
	partWeight = partVolume * density
	shotWeight = (partWeight * float64(cavities)) + runnerWeight
	return partWeight, shotWeight
}

// regrindSplit divides a part weight into virgin and regrind grams. The
// masterbatch share is not modelled by the flat material model.
func regrindSplit(partWeight, regrindPercentage float64) WeightBreakdown {
	return WeightBreakdown{
		Base:    partWeight * (1 - regrindPercentage/100),
		MB:      0,
		Regrind: partWeight * (regrindPercentage / 100),
	}
}
