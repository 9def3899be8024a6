package model

import (
	"fmt"
	"strings"
)

// Mode defines the way a commute is travelled.
type Mode int

const (
	ModeBike Mode = iota
	ModeBus
	ModeCar
	ModeCarPool
)

// String returns the tag used in reports and configuration.
func (m Mode) String() string {
	switch m {
	case ModeBike:
		return "BIKE"
	case ModeBus:
		return "BUS"
	case ModeCar:
		return "CAR"
	case ModeCarPool:
		return "CAR_POOL"
	default:
		return "unknown"
	}
}

// TravelMode returns the value of the Directions API "mode" parameter.
func (m Mode) TravelMode() string {
	switch m {
	case ModeBike:
		return "bicycling"
	case ModeBus:
		return "transit"
	default:
		return "driving"
	}
}

// ParseMode accepts the report tag of a mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BIKE":
		return ModeBike, nil
	case "BUS":
		return ModeBus, nil
	case "CAR":
		return ModeCar, nil
	case "CAR_POOL", "CARPOOL":
		return ModeCarPool, nil
	default:
		return 0, fmt.Errorf("unknown commute mode: %s", s)
	}
}

// Factor is the emission profile of a mode.
type Factor struct {
	Mode       Mode
	GramsPerKm float64 // g CO2 per km for the whole vehicle
	Occupancy  int     // people sharing the vehicle, always >= 1
}

// factors is ordered; reports list modes in this order.
var factors = []Factor{
	{Mode: ModeBike, GramsPerKm: 0.0, Occupancy: 1},
	{Mode: ModeBus, GramsPerKm: 86.5, Occupancy: 1},
	{Mode: ModeCar, GramsPerKm: 118.0, Occupancy: 1},
	{Mode: ModeCarPool, GramsPerKm: 118.0, Occupancy: 2},
}

// Factors returns a copy of the emission table in report order.
func Factors() []Factor {
	out := make([]Factor, len(factors))
	copy(out, factors)
	return out
}

// FactorFor looks up the emission profile of m.
func FactorFor(m Mode) (Factor, bool) {
	for _, f := range factors {
		if f.Mode == m {
			return f, true
		}
	}
	return Factor{}, false
}
