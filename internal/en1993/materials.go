package en1993

import "math"

// EN1993-1-1 / EN1993-1-3 Material Constants

const (
	// Modulus of elasticity for steel (EN1993-1-1 3.2.6)
	Es = 210000.0 // MPa

	// Poisson's ratio in the elastic stage (EN1993-1-1 3.2.6)
	Nu = 0.3

	// Reference yield strength for ε = √(235/fy)
	FyRef = 235.0 // MPa

	// Allowance subtracted from the nominal thickness to obtain the
	// design core thickness of coated sheet (EN1993-1-3 3.2.4)
	CoatingAllowance = 0.04 // mm

	// RatioTolerance guards the exact stress-ratio cases ψ = 1 and ψ = 0
	// of Tables 4.1 and 4.2 against floating point noise
	RatioTolerance = 1e-9
)

// Epsilon calculates the material factor ε = √(235/fy)
func Epsilon(fy float64) float64 {
	return math.Sqrt(FyRef / fy)
}

func isOne(psi float64) bool {
	return math.Abs(psi-1) <= RatioTolerance
}

func isZero(psi float64) bool {
	return math.Abs(psi) <= RatioTolerance
}

func isMinusOne(psi float64) bool {
	return math.Abs(psi+1) <= RatioTolerance
}
