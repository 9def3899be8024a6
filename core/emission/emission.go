// Package emission turns route distances into CO2 figures per person.
package emission

import "github.com/kilianp07/commuteco2/core/model"

// Calculate returns the grams of CO2 per person for a trip.
//
// The distance is used as given, in meters, although the factor is expressed
// per kilometer. Reports produced so far rely on this scale.
func Calculate(distanceMeters, factorGramsPerKm float64, occupancy int) float64 {
	if occupancy < 1 {
		return 0
	}
	return distanceMeters * factorGramsPerKm / float64(occupancy)
}

// ForMode applies the emission table entry of m to the distance.
func ForMode(distanceMeters float64, m model.Mode) float64 {
	f, ok := model.FactorFor(m)
	if !ok {
		return 0
	}
	return Calculate(distanceMeters, f.GramsPerKm, f.Occupancy)
}

// Savings returns the percentage of CO2 saved compared to the baseline.
// A zero baseline yields NaN or Inf; callers check it beforehand.
func Savings(emission, baseline float64) float64 {
	return 100 - (emission / baseline * 100)
}
