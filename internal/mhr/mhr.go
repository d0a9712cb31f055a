// Package mhr derives a machine hour rate from the investment and operating
// figures of a molding cell.
package mhr

// Inputs are the cost drivers of one machine.
type Inputs struct {
	AcquisitionValue    float64 `json:"acquisitionValue" validate:"gte=0"`    // USD
	InstallationPercent float64 `json:"installationPercent" validate:"gte=0"` // % of acquisition
	DepreciationYears   float64 `json:"depreciationYears" validate:"gt=0"`
	InterestRatePercent float64 `json:"interestRatePercent" validate:"gte=0"`
	LeasingRate         float64 `json:"leasingRate" validate:"gte=0"` // USD/sqft/month
	RatedPowerKW        float64 `json:"ratedPowerKW" validate:"gte=0"`
	EnergyCostPerKWh    float64 `json:"energyCostPerKWh" validate:"gte=0"`
	MaintenancePercent  float64 `json:"maintenancePercent" validate:"gte=0"`
	ProductionDays      float64 `json:"productionDays" validate:"gt=0,lte=366"`
	ShiftsPerDay        float64 `json:"shiftsPerDay" validate:"gt=0"`
	HoursPerShift       float64 `json:"hoursPerShift" validate:"gt=0,lte=24"`
	UtilizationPercent  float64 `json:"utilizationPercent" validate:"gt=0,lte=100"`
}

// DefaultInputs returns the figures of the reference 900 t cell.
func DefaultInputs() Inputs {
	return Inputs{
		AcquisitionValue:    431600,
		InstallationPercent: 5,
		DepreciationYears:   10,
		InterestRatePercent: 6,
		LeasingRate:         4.5,
		RatedPowerKW:        90,
		EnergyCostPerKWh:    0.07,
		MaintenancePercent:  5,
		ProductionDays:      240,
		ShiftsPerDay:        3,
		HoursPerShift:       7.5,
		UtilizationPercent:  93,
	}
}

// Breakdown is the hourly rate split into its components, USD/h unless noted.
type Breakdown struct {
	TotalInvestment float64 `json:"totalInvestment"` // USD
	CapacityHours   float64 `json:"capacityHours"`   // h/year
	Depreciation    float64 `json:"depreciation"`
	Interest        float64 `json:"interest"`
	Space           float64 `json:"space"`
	Energy          float64 `json:"energy"`
	Maintenance     float64 `json:"maintenance"`
	Fixed           float64 `json:"fixed"`
	Variable        float64 `json:"variable"`
	Total           float64 `json:"total"`
}

// Compute returns the machine hour rate for in. A zero capacity propagates as
// ±Inf or NaN.
func Compute(in Inputs) Breakdown {
	investment := in.AcquisitionValue * (1 + in.InstallationPercent/100)
	capacity := in.ProductionDays * in.ShiftsPerDay * in.HoursPerShift * (in.UtilizationPercent / 100)

	b := Breakdown{
		TotalInvestment: investment,
		CapacityHours:   capacity,
		Depreciation:    (investment / in.DepreciationYears) / capacity,
		Interest:        (investment * (in.InterestRatePercent / 100)) / capacity,
		// Flat allocation of leased floor space per machine hour.
		Space:       (in.LeasingRate * 12) / 200,
		Energy:      in.RatedPowerKW * in.EnergyCostPerKWh,
		Maintenance: (investment * (in.MaintenancePercent / 100)) / capacity,
	}
	b.Fixed = b.Depreciation + b.Interest + b.Space
	b.Variable = b.Energy + b.Maintenance
	b.Total = b.Fixed + b.Variable
	return b
}
