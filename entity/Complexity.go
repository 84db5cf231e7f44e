package entity

// ComplexityLevel drives the design price multiplier and the fixed
// ordering on the dashboard complexity chart.
type ComplexityLevel string

const (
	ComplexitySimple   ComplexityLevel = "Simple"
	ComplexityModerate ComplexityLevel = "Moderate"
	ComplexityComplex  ComplexityLevel = "Complex"
	ComplexityExpert   ComplexityLevel = "Expert"
)

// ComplexityLevels in chart order: Simple < Moderate < Complex < Expert.
func ComplexityLevels() []ComplexityLevel {
	return []ComplexityLevel{
		ComplexitySimple,
		ComplexityModerate,
		ComplexityComplex,
		ComplexityExpert,
	}
}

func (l ComplexityLevel) Valid() bool {
	switch l {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityExpert:
		return true
	}
	return false
}
