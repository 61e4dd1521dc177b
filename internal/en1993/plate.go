package en1993

import (
	"fmt"
	"math"
)

// EN1993-1-5 Section 4.4 - Plate elements without longitudinal stiffeners

const (
	clauseTable41 = "EN1993-1-5 Table 4.1"
	clauseTable42 = "EN1993-1-5 Table 4.2"
	clauseEq42    = "EN1993-1-5 4.4(2) Eq. 4.2"

	// Lowest stress ratio tabulated for internal elements
	psiMinInternal = -3.0

	// Lowest stress ratio tabulated for outstands with compression at the
	// supported edge
	psiMinOutstand = -1.0

	// Stress ratio at which the radicand of Eq. 4.2 vanishes
	psiMaxRadicand = 0.085 / 0.055
)

// InternalWidths is the effective width of an internal (doubly supported)
// element per Table 4.1. Be1 lies next to the edge carrying the larger
// compressive stress σ1, Be2 next to the other edge or, under stress
// reversal, next to the zero-stress line.
type InternalWidths struct {
	Beff float64 // total effective width
	Be1  float64
	Be2  float64
	Bc   float64 // compressed part of the flat width
	Bt   float64 // tensioned part of the flat width
}

// OutstandWidths is the effective width of an outstand (singly supported)
// element per Table 4.2
type OutstandWidths struct {
	Beff float64 // effective width of the compressed part
	Bc   float64 // compressed part of the flat width
	Bt   float64 // tensioned part of the flat width
}

// BucklingFactorInternal returns kσ for an internal element (Table 4.1)
// as a function of the stress ratio ψ = σ2/σ1
func BucklingFactorInternal(psi float64) (float64, error) {
	switch {
	case isOne(psi):
		return 4.0, nil
	case psi > 1:
		return 0, &RangeError{Clause: clauseTable41, Quantity: "stress ratio ψ", Value: psi, Limit: 1, Boundary: 4.0}
	case isZero(psi):
		return 7.81, nil
	case psi > 0:
		return 8.2 / (1.05 + psi), nil
	case isMinusOne(psi):
		return 23.9, nil
	case psi > -1:
		return 7.81 - 6.29*psi + 9.78*psi*psi, nil
	case psi > psiMinInternal:
		return 5.98 * (1 - psi) * (1 - psi), nil
	}
	boundary := 5.98 * (1 - psiMinInternal) * (1 - psiMinInternal)
	return 0, &RangeError{Clause: clauseTable41, Quantity: "stress ratio ψ", Value: psi, Limit: psiMinInternal, Boundary: boundary}
}

// BucklingFactorOutstand returns kσ for an outstand element (Table 4.2).
// compressionAtFreeEdge selects the case where the larger compressive
// stress acts on the unsupported edge.
func BucklingFactorOutstand(psi float64, compressionAtFreeEdge bool) (float64, error) {
	if compressionAtFreeEdge {
		k := func(p float64) float64 { return 0.57 - 0.21*p + 0.07*p*p }
		switch {
		case psi > 1 && !isOne(psi):
			return 0, &RangeError{Clause: clauseTable42, Quantity: "stress ratio ψ", Value: psi, Limit: 1, Boundary: k(1)}
		case psi < psiMinInternal:
			return 0, &RangeError{Clause: clauseTable42, Quantity: "stress ratio ψ", Value: psi, Limit: psiMinInternal, Boundary: k(psiMinInternal)}
		}
		return k(psi), nil
	}

	switch {
	case isOne(psi):
		return 0.43, nil
	case psi > 1:
		return 0, &RangeError{Clause: clauseTable42, Quantity: "stress ratio ψ", Value: psi, Limit: 1, Boundary: 0.43}
	case isZero(psi):
		return 1.70, nil
	case psi > 0:
		return 0.578 / (psi + 0.34), nil
	case isMinusOne(psi):
		return 23.8, nil
	case psi > psiMinOutstand:
		return 1.7 - 5.0*psi + 17.1*psi*psi, nil
	}
	return 0, &RangeError{Clause: clauseTable42, Quantity: "stress ratio ψ", Value: psi, Limit: psiMinOutstand, Boundary: 23.8}
}

// RelativeSlenderness calculates the plate slenderness
// λp = (b/t) / (28.4·ε·√kσ) with ε evaluated at the design stress
func RelativeSlenderness(b, t, ksigma, stress float64) (float64, error) {
	if b < 0 {
		return 0, fmt.Errorf("%w: width must not be negative, got %g", ErrInvalidInput, b)
	}
	if !(t > 0) {
		return 0, fmt.Errorf("%w: thickness must be positive, got %g", ErrInvalidInput, t)
	}
	if !(ksigma > 0) {
		return 0, fmt.Errorf("%w: buckling factor must be positive, got %g", ErrInvalidInput, ksigma)
	}
	if !(stress > 0) {
		return 0, fmt.Errorf("%w: design stress must be positive, got %g", ErrInvalidInput, stress)
	}
	return (b / t) / (28.4 * Epsilon(stress) * math.Sqrt(ksigma)), nil
}

// ReductionInternal calculates ρ for an internal element (Eq. 4.2)
func ReductionInternal(lambda, psi float64) (float64, error) {
	if lambda < 0 {
		return 0, fmt.Errorf("%w: slenderness must not be negative, got %g", ErrInvalidInput, lambda)
	}
	rho := func(p float64) float64 {
		if lambda <= 0.5+math.Sqrt(0.085-0.055*p) {
			return 1.0
		}
		return math.Min(1.0, (lambda-0.055*(3+p))/(lambda*lambda))
	}
	if 0.085-0.055*psi < 0 {
		return 0, &RangeError{Clause: clauseEq42, Quantity: "stress ratio ψ", Value: psi, Limit: psiMaxRadicand, Boundary: rho(psiMaxRadicand)}
	}
	return rho(psi), nil
}

// ReductionOutstand calculates ρ for an outstand element (Eq. 4.3)
func ReductionOutstand(lambda float64) float64 {
	if lambda <= 0.748 {
		return 1.0
	}
	return math.Min(1.0, (lambda-0.188)/(lambda*lambda))
}

// EffectiveWidthInternal splits the effective width of an internal element
// of flat width b (Table 4.1)
func EffectiveWidthInternal(psi, b, rho float64) InternalWidths {
	switch {
	case isOne(psi) || psi > 1:
		beff := rho * b
		return InternalWidths{Beff: beff, Be1: 0.5 * beff, Be2: 0.5 * beff, Bc: b}
	case psi >= -RatioTolerance:
		beff := rho * b
		be1 := 2 / (5 - psi) * beff
		return InternalWidths{Beff: beff, Be1: be1, Be2: beff - be1, Bc: b}
	}
	bc := b / (1 - psi)
	beff := rho * bc
	return InternalWidths{Beff: beff, Be1: 0.4 * beff, Be2: 0.6 * beff, Bc: bc, Bt: b - bc}
}

// EffectiveWidthOutstand splits the effective width of an outstand element
// of flat width b (Table 4.2)
func EffectiveWidthOutstand(psi, b, rho float64) OutstandWidths {
	if psi >= -RatioTolerance {
		return OutstandWidths{Beff: rho * b, Bc: b}
	}
	bc := b / (1 - psi)
	return OutstandWidths{Beff: rho * bc, Bc: bc, Bt: b - bc}
}
