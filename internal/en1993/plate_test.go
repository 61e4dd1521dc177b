package en1993

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_plate01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("plate01. internal buckling factor")

	cases := []struct {
		psi, k float64
	}{
		{1, 4.0},
		{0.5, 8.2 / 1.55},
		{0, 7.81},
		{-0.5, 13.4},
		{-1, 23.9},
		{-2, 53.82},
	}
	for _, c := range cases {
		k, err := BucklingFactorInternal(c.psi)
		if err != nil {
			tst.Errorf("ψ=%g: %v", c.psi, err)
			return
		}
		chk.Float64(tst, "kσ", 1e-12, k, c.k)
	}

	// neighbouring branches agree at the exact-value cases
	for _, psi := range []float64{1, 0, -1} {
		exact, _ := BucklingFactorInternal(psi)
		above, _ := BucklingFactorInternal(psi + 1e-6)
		below, _ := BucklingFactorInternal(psi - 1e-6)
		if psi < 1 {
			chk.Float64(tst, "kσ above", 0.05, above, exact)
		}
		chk.Float64(tst, "kσ below", 0.05, below, exact)
	}
}

func Test_plate02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("plate02. buckling factor out of range")

	_, err := BucklingFactorInternal(-3.5)
	re, ok := AsRangeError(err)
	if !ok {
		tst.Errorf("expected a range error, got %v", err)
		return
	}
	chk.Float64(tst, "limit", 1e-15, re.Limit, -3)
	chk.Float64(tst, "boundary", 1e-12, re.Boundary, 5.98*16)

	if _, err := BucklingFactorInternal(1.2); err == nil {
		tst.Errorf("ψ > 1 must be rejected")
	}
	if _, err := BucklingFactorOutstand(-1.5, false); err == nil {
		tst.Errorf("ψ < -1 must be rejected for compression at the supported edge")
	}
	if _, err := BucklingFactorOutstand(-3.5, true); err == nil {
		tst.Errorf("ψ < -3 must be rejected for compression at the free edge")
	}
}

func Test_plate03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("plate03. outstand buckling factor")

	cases := []struct {
		psi      float64
		freeEdge bool
		k        float64
	}{
		{1, false, 0.43},
		{0.5, false, 0.578 / 0.84},
		{0, false, 1.70},
		{-0.5, false, 1.7 + 2.5 + 17.1*0.25},
		{-1, false, 23.8},
		{1, true, 0.43},
		{0, true, 0.57},
		{-1, true, 0.85},
	}
	for _, c := range cases {
		k, err := BucklingFactorOutstand(c.psi, c.freeEdge)
		if err != nil {
			tst.Errorf("ψ=%g: %v", c.psi, err)
			return
		}
		chk.Float64(tst, "kσ", 1e-12, k, c.k)
	}

	above, _ := BucklingFactorOutstand(1-1e-6, false)
	chk.Float64(tst, "kσ near ψ=1", 0.05, above, 0.43)
	above, _ = BucklingFactorOutstand(1e-6, false)
	chk.Float64(tst, "kσ near ψ=0", 0.05, above, 1.70)
	below, _ := BucklingFactorOutstand(-1+1e-6, false)
	chk.Float64(tst, "kσ near ψ=-1", 0.05, below, 23.8)
}

func Test_plate04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("plate04. slenderness and reduction")

	lambda, err := RelativeSlenderness(100, 1, 4, 235)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "λp", 1e-12, lambda, 100/56.8)

	rho, err := ReductionInternal(lambda, 1)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "ρ internal", 1e-8, rho, 0.49702272)

	rho, _ = ReductionInternal(0.6, 1)
	chk.Float64(tst, "ρ stocky", 1e-15, rho, 1)

	rho, _ = ReductionInternal(2, -1)
	chk.Float64(tst, "ρ ψ=-1", 1e-12, rho, 0.4725)

	chk.Float64(tst, "ρ outstand stocky", 1e-15, ReductionOutstand(0.7), 1)
	chk.Float64(tst, "ρ outstand", 1e-12, ReductionOutstand(1.2), (1.2-0.188)/1.44)

	// just above the threshold the formula would exceed unity
	rho, _ = ReductionInternal(0.68, 1)
	if rho > 1 {
		tst.Errorf("ρ must not exceed 1, got %g", rho)
	}
}

func Test_plate05(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("plate05. reduction is bounded and non-increasing")

	for _, psi := range []float64{1, 0.5, 0, -1, -2} {
		prev := 1.0
		for lambda := 0.0; lambda <= 5; lambda += 0.01 {
			rho, err := ReductionInternal(lambda, psi)
			if err != nil {
				tst.Errorf("%v", err)
				return
			}
			if rho <= 0 || rho > 1 {
				tst.Errorf("ρ(%g, %g) = %g out of (0, 1]", lambda, psi, rho)
				return
			}
			if rho > prev+1e-12 {
				tst.Errorf("ρ increases at λ=%g ψ=%g", lambda, psi)
				return
			}
			prev = rho
		}
	}

	prev := 1.0
	for lambda := 0.0; lambda <= 5; lambda += 0.01 {
		rho := ReductionOutstand(lambda)
		if rho <= 0 || rho > 1 || rho > prev+1e-12 {
			tst.Errorf("outstand ρ(%g) = %g", lambda, rho)
			return
		}
		prev = rho
	}
}

func Test_plate06(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("plate06. invalid input")

	inputs := []struct {
		b, t, k, sigma float64
	}{
		{100, 0, 4, 235},
		{100, -1, 4, 235},
		{100, 1, 0, 235},
		{100, 1, 4, 0},
		{-1, 1, 4, 235},
		{100, math.NaN(), 4, 235},
	}
	for _, in := range inputs {
		_, err := RelativeSlenderness(in.b, in.t, in.k, in.sigma)
		if !errors.Is(err, ErrInvalidInput) {
			tst.Errorf("%+v: expected ErrInvalidInput, got %v", in, err)
		}
	}

	if _, err := ReductionInternal(-0.1, 1); !errors.Is(err, ErrInvalidInput) {
		tst.Errorf("negative slenderness must be rejected, got %v", err)
	}
	_, err := ReductionInternal(1, 2)
	if _, ok := AsRangeError(err); !ok {
		tst.Errorf("ψ beyond the radicand limit must be a range error, got %v", err)
	}
}

func Test_plate07(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("plate07. effective width distribution")

	w := EffectiveWidthInternal(1, 100, 0.5)
	chk.Float64(tst, "ψ=1 beff", 1e-12, w.Beff, 50)
	chk.Float64(tst, "ψ=1 be1", 1e-12, w.Be1, 25)
	chk.Float64(tst, "ψ=1 be2", 1e-12, w.Be2, 25)
	chk.Float64(tst, "ψ=1 bc", 1e-12, w.Bc, 100)

	w = EffectiveWidthInternal(0.5, 100, 0.9)
	chk.Float64(tst, "ψ=0.5 be1", 1e-12, w.Be1, 2/4.5*90)
	chk.Float64(tst, "ψ=0.5 sum", 1e-12, w.Be1+w.Be2, 90)

	w = EffectiveWidthInternal(-1, 100, 0.8)
	chk.Float64(tst, "ψ=-1 bc", 1e-12, w.Bc, 50)
	chk.Float64(tst, "ψ=-1 bt", 1e-12, w.Bt, 50)
	chk.Float64(tst, "ψ=-1 beff", 1e-12, w.Beff, 40)
	chk.Float64(tst, "ψ=-1 be1", 1e-12, w.Be1, 16)
	chk.Float64(tst, "ψ=-1 be2", 1e-12, w.Be2, 24)

	o := EffectiveWidthOutstand(1, 20, 0.7)
	chk.Float64(tst, "outstand beff", 1e-12, o.Beff, 14)
	chk.Float64(tst, "outstand bc", 1e-12, o.Bc, 20)

	o = EffectiveWidthOutstand(-1, 20, 1)
	chk.Float64(tst, "outstand ψ=-1 bc", 1e-12, o.Bc, 10)
	chk.Float64(tst, "outstand ψ=-1 bt", 1e-12, o.Bt, 10)
	chk.Float64(tst, "outstand ψ=-1 beff", 1e-12, o.Beff, 10)
}
