package cart

import "math"

// Mode selects how a food quantity is interpreted: a count of catalog units
// or a gram weight.
type Mode string

const (
	ModeUnit Mode = "unit"
	ModeGram Mode = "gram"
)

// Floors substituted when a conversion collapses to a non-positive quantity,
// so a cart line never degenerates to zero. Product defaults, not laws.
const (
	gramFloor = 10.0
	unitFloor = 0.5
)

// ToGrams converts a unit count to grams, rounded to the nearest whole gram.
func ToGrams(units, gramsPerUnit float64) float64 {
	g := math.Round(units * gramsPerUnit)
	if g <= 0 {
		return gramFloor
	}
	return g
}

// ToUnits converts grams back to a unit count, rounded to one decimal place.
func ToUnits(grams, gramsPerUnit float64) float64 {
	if gramsPerUnit <= 0 {
		return unitFloor
	}
	u := round1(grams / gramsPerUnit)
	if u <= 0 {
		return unitFloor
	}
	return u
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
