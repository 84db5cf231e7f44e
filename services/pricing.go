package services

import (
	"math"

	"backend/entity"
)

// Price multipliers per complexity tier. Unknown tiers fall back to 1.00
// so a bad row still prices at the cake's base price instead of failing
// the whole listing.
var complexityMultipliers = map[entity.ComplexityLevel]float64{
	entity.ComplexitySimple:   1.00,
	entity.ComplexityModerate: 1.25,
	entity.ComplexityComplex:  1.50,
	entity.ComplexityExpert:   2.00,
}

// CalculatePrice derives a design's displayed price from its cake's base
// price and its complexity tier, rounded half-up to 2 decimal places.
// A missing cake prices at 0; that is a defined degenerate case, not an
// error, so a design orphaned mid-edit still renders.
func CalculatePrice(design *entity.Design, cake *entity.Cake) float64 {
	if design == nil || cake == nil {
		return 0
	}
	mult, ok := complexityMultipliers[design.ComplexityLevel]
	if !ok {
		mult = 1.00
	}
	return roundTo(cake.BasePrice*mult, 2)
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
