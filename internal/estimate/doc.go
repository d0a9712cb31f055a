// Package estimate implements the injection-molding cost engine.
//
// Calculate turns an EstimationState (project, geometry, material, machine and
// cycle-phase inputs) into CalculationResults: part and shot weight, cycle
// time, a cost breakdown, the clamp-tonnage check and hourly throughput.
// The computation is pure and total over its numeric domain: out-of-range
// arithmetic yields NaN or ±Inf instead of an error, and input validation is
// left to the caller (see Validate and CalculationResults.NonFinite).
package estimate
