package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePriceMultipliers(t *testing.T) {
	cake := &entity.Cake{BasePrice: 100}

	tests := []struct {
		level entity.ComplexityLevel
		want  float64
	}{
		{entity.ComplexitySimple, 100.00},
		{entity.ComplexityModerate, 125.00},
		{entity.ComplexityComplex, 150.00},
		{entity.ComplexityExpert, 200.00},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			design := &entity.Design{ComplexityLevel: tt.level}
			assert.Equal(t, tt.want, CalculatePrice(design, cake))
		})
	}
}

func TestCalculatePriceRounding(t *testing.T) {
	// 10.01 * 1.25 = 12.5125 -> 12.51
	design := &entity.Design{ComplexityLevel: entity.ComplexityModerate}
	assert.Equal(t, 12.51, CalculatePrice(design, &entity.Cake{BasePrice: 10.01}))

	// 0.05 * 1.50 = 0.075, half rounds up -> 0.08
	design = &entity.Design{ComplexityLevel: entity.ComplexityComplex}
	assert.Equal(t, 0.08, CalculatePrice(design, &entity.Cake{BasePrice: 0.05}))
}

func TestCalculatePriceMissingCake(t *testing.T) {
	design := &entity.Design{ComplexityLevel: entity.ComplexityExpert}
	assert.Equal(t, 0.0, CalculatePrice(design, nil))
	assert.Equal(t, 0.0, CalculatePrice(nil, &entity.Cake{BasePrice: 100}))
}

func TestCalculatePriceUnknownComplexityFallsBack(t *testing.T) {
	// unpriced tiers fall back to the base price instead of erroring
	design := &entity.Design{ComplexityLevel: "Legendary"}
	assert.Equal(t, 321.50, CalculatePrice(design, &entity.Cake{BasePrice: 321.50}))
}

func TestCalculatePriceZeroBase(t *testing.T) {
	design := &entity.Design{ComplexityLevel: entity.ComplexityExpert}
	assert.Equal(t, 0.0, CalculatePrice(design, &entity.Cake{BasePrice: 0}))
}
