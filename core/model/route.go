package model

import "time"

// Measurement is the outcome of measuring a route for one mode.
type Measurement struct {
	DistanceMeters float64
	Duration       time.Duration // zero when the provider has no travel time
}

// Result holds the computed figures of one mode for a single run.
type Result struct {
	Mode           Mode
	DistanceMeters float64
	Duration       time.Duration
	EmissionGrams  float64 // per person
	SavingsPct     float64 // relative to driving alone
}

// Minutes returns the whole minutes of travel, truncated.
func (r Result) Minutes() int {
	return int(r.Duration.Seconds() / 60)
}

// Kilograms returns the emission in whole kilograms, truncated.
func (r Result) Kilograms() int {
	return int(r.EmissionGrams / 1000)
}
