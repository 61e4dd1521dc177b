package en1993

import (
	"fmt"
	"math"
)

// EN1993-1-3 Section 5.5.3 - Plane elements with edge stiffeners

const (
	clauseLipFactor = "EN1993-1-3 5.5.3.2(5)"

	// Limits on the stiffener-to-flange ratio bpc/bp for the lip factor
	lipRatioPlain = 0.35
	lipRatioMax   = 0.6

	// Largest flange slenderness b/t for which the edge fold procedure is
	// validated (EN1993-1-3 5.5.3.2(1))
	MaxSlendernessSingleFold = 60.0
	MaxSlendernessDoubleFold = 90.0

	// Distortional buckling reduction limits (EN1993-1-3 5.5.3.1(7))
	lambdaDistortionalPlain = 0.65
	lambdaDistortionalLimit = 1.38
)

// LipBucklingFactor returns kσ of a single edge fold from the ratio of
// its flat width bpc to the flat width bp of the adjacent flange
func LipBucklingFactor(bpc, bp float64) (float64, error) {
	if !(bp > 0) {
		return 0, fmt.Errorf("%w: flange flat width must be positive, got %g", ErrInvalidInput, bp)
	}
	if bpc < 0 {
		return 0, fmt.Errorf("%w: lip flat width must not be negative, got %g", ErrInvalidInput, bpc)
	}

	k := func(ratio float64) float64 {
		if ratio <= lipRatioPlain {
			return 0.5
		}
		d := ratio - lipRatioPlain
		return 0.5 + 0.83*math.Cbrt(d*d)
	}

	ratio := bpc / bp
	if ratio > lipRatioMax {
		return 0, &RangeError{Clause: clauseLipFactor, Quantity: "bpc/bp", Value: ratio, Limit: lipRatioMax, Boundary: k(lipRatioMax)}
	}
	return k(ratio), nil
}

// SpringStiffness calculates the spring stiffness K per unit length of
// the edge stiffener (Eq. 5.10b). b1 is the distance from the web-to-flange
// junction to the stiffener centroid, b2 the same for the opposite flange
// and hw the web depth. kf is 0 under bending and 1 under axial compression.
func SpringStiffness(e, t, nu, b1, hw, b2 float64, bending bool) (float64, error) {
	switch {
	case !(e > 0):
		return 0, fmt.Errorf("%w: modulus of elasticity must be positive, got %g", ErrInvalidInput, e)
	case !(t > 0):
		return 0, fmt.Errorf("%w: thickness must be positive, got %g", ErrInvalidInput, t)
	case nu < 0 || nu >= 1:
		return 0, fmt.Errorf("%w: Poisson's ratio must be in [0, 1), got %g", ErrInvalidInput, nu)
	case !(b1 > 0):
		return 0, fmt.Errorf("%w: stiffener distance b1 must be positive, got %g", ErrInvalidInput, b1)
	case !(hw > 0):
		return 0, fmt.Errorf("%w: web depth must be positive, got %g", ErrInvalidInput, hw)
	case b2 < 0:
		return 0, fmt.Errorf("%w: stiffener distance b2 must not be negative, got %g", ErrInvalidInput, b2)
	}

	kf := 1.0
	if bending {
		kf = 0
	}
	denominator := b1*b1*hw + b1*b1*b1 + 0.5*b1*b2*hw*kf
	return e * t * t * t / (4 * (1 - nu*nu)) / denominator, nil
}

// StiffenerCentroidDistance calculates b1, the distance from the
// web-to-flange junction to the centroid of the stiffener made of the
// effective flange part be and the effective lip ceff
func StiffenerCentroidDistance(bp, be, ceff float64) float64 {
	if be+ceff <= 0 {
		return bp
	}
	return bp - be*be/(2*(be+ceff))
}

// StiffenerArea calculates As of the effective edge stiffener
func StiffenerArea(be, t, ceff float64) float64 {
	return t * (be + ceff)
}

// StiffenerSecondMoment calculates Is of the effective edge stiffener about
// its own centroidal axis parallel to the flange
func StiffenerSecondMoment(be, t, ceff float64) float64 {
	if be+ceff <= 0 {
		return 0
	}
	yc := ceff * ceff / (2 * (be + ceff))
	return be*t*t*t/12 + ceff*ceff*ceff*t/12 +
		be*t*yc*yc +
		ceff*t*(ceff/2-yc)*(ceff/2-yc)
}

// CriticalStress calculates the elastic critical stress of the edge
// stiffener σcr,s = 2√(K·E·Is)/As (Eq. 5.15)
func CriticalStress(k, is, e, as float64) (float64, error) {
	switch {
	case k < 0:
		return 0, fmt.Errorf("%w: spring stiffness must not be negative, got %g", ErrInvalidInput, k)
	case is < 0:
		return 0, fmt.Errorf("%w: second moment must not be negative, got %g", ErrInvalidInput, is)
	case !(e > 0):
		return 0, fmt.Errorf("%w: modulus of elasticity must be positive, got %g", ErrInvalidInput, e)
	case !(as > 0):
		return 0, fmt.Errorf("%w: stiffener area must be positive, got %g", ErrInvalidInput, as)
	}
	return 2 * math.Sqrt(k*e*is) / as, nil
}

// DistortionalSlenderness calculates λd = √(fy/σcr,s)
func DistortionalSlenderness(fy, sigmaCrs float64) (float64, error) {
	if !(fy > 0) {
		return 0, fmt.Errorf("%w: yield strength must be positive, got %g", ErrInvalidInput, fy)
	}
	if !(sigmaCrs > 0) {
		return 0, fmt.Errorf("%w: critical stress must be positive, got %g", ErrInvalidInput, sigmaCrs)
	}
	return math.Sqrt(fy / sigmaCrs), nil
}

// ThicknessReduction calculates the distortional buckling reduction factor
// χd applied to the stiffener thickness (Eq. 5.12)
func ThicknessReduction(fy, sigmaCrs float64) (float64, error) {
	lambda, err := DistortionalSlenderness(fy, sigmaCrs)
	if err != nil {
		return 0, err
	}
	switch {
	case lambda <= lambdaDistortionalPlain:
		return 1.0, nil
	case lambda <= lambdaDistortionalLimit:
		return 1.47 - 0.723*lambda, nil
	}
	return 0.66 / lambda, nil
}

// IsEdgeStiffenerValid reports whether the flange slenderness b/t lies in
// the range where the edge fold procedure applies
func IsEdgeStiffenerValid(b, t float64, doubleFold bool) bool {
	if !(t > 0) {
		return false
	}
	limit := MaxSlendernessSingleFold
	if doubleFold {
		limit = MaxSlendernessDoubleFold
	}
	return b/t <= limit
}
