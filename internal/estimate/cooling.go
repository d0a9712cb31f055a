package estimate

import (
	"math"

	"github.com/Simplici0/moldcost/internal/catalog"
)

// CoolingTime estimates the time in seconds for a wall of the given thickness
// (mm) to cool from melt to ejection temperature, using the one-dimensional
// slab conduction approximation:
//
//	t = h² / (π²·α) · ln( (4/π) · (Tmelt - Tmold) / (Teject - Tmold) )
//
// The result is not validated: Teject == Tmold gives ±Inf and a non-positive
// logarithm argument gives NaN. Use ValidateThermal before trusting it.
func CoolingTime(m catalog.Material, wallThickness float64) float64 {
	factor := (wallThickness * wallThickness) / (math.Pi * math.Pi * m.ThermalDiffusivity)
	tempRatio := (4 / math.Pi) * ((m.MeltTemp - m.MoldTemp) / (m.EjectTemp - m.MoldTemp))

	return factor * math.Log(tempRatio)
}
