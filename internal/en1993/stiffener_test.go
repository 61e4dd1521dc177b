package en1993

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_stiffener01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("stiffener01. lip buckling factor")

	k, err := LipBucklingFactor(10, 40)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "bpc/bp=0.25", 1e-15, k, 0.5)

	k, _ = LipBucklingFactor(14, 40)
	chk.Float64(tst, "bpc/bp=0.35", 1e-12, k, 0.5)

	k, _ = LipBucklingFactor(20, 40)
	chk.Float64(tst, "bpc/bp=0.5", 1e-12, k, 0.7343179711913761)

	k, _ = LipBucklingFactor(24, 40)
	chk.Float64(tst, "bpc/bp=0.6", 1e-12, k, 0.8293857182834015)

	_, err = LipBucklingFactor(30, 40)
	re, ok := AsRangeError(err)
	if !ok {
		tst.Errorf("bpc/bp=0.75 must be a range error, got %v", err)
		return
	}
	chk.Float64(tst, "boundary", 1e-12, re.Boundary, 0.8293857182834015)

	if _, err := LipBucklingFactor(10, 0); !errors.Is(err, ErrInvalidInput) {
		tst.Errorf("zero flange width must be rejected, got %v", err)
	}
}

func Test_stiffener02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("stiffener02. spring stiffness and stiffener section")

	k, err := SpringStiffness(210000, 1, 0.3, 30, 100, 30, false)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "K axial", 1e-12, k, 0.3561253561253561)

	k, _ = SpringStiffness(210000, 1, 0.3, 30, 100, 30, true)
	chk.Float64(tst, "K bending", 1e-12, k, 0.49309664694280075)

	chk.Float64(tst, "b1", 1e-12, StiffenerCentroidDistance(40, 10, 12), 37.72727272727273)
	chk.Float64(tst, "As", 1e-15, StiffenerArea(10, 1, 12), 22)
	chk.Float64(tst, "Is", 1e-10, StiffenerSecondMoment(10, 1, 12), 341.19696969696975)

	if _, err := SpringStiffness(210000, 0, 0.3, 30, 100, 30, true); !errors.Is(err, ErrInvalidInput) {
		tst.Errorf("zero thickness must be rejected, got %v", err)
	}
}

func Test_stiffener03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("stiffener03. critical stress and thickness reduction")

	sigma, err := CriticalStress(0.5, 300, 210000, 20)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "σcr,s", 1e-10, sigma, 2*5612.486080160912/20)

	chi, _ := ThicknessReduction(350, 1000)
	chk.Float64(tst, "χd stocky", 1e-15, chi, 1)

	chi, _ = ThicknessReduction(350, 350)
	chk.Float64(tst, "χd λd=1", 1e-12, chi, 0.747)

	chi, _ = ThicknessReduction(400, 100)
	chk.Float64(tst, "χd λd=2", 1e-12, chi, 0.33)

	if _, err := CriticalStress(0.5, 300, 210000, 0); !errors.Is(err, ErrInvalidInput) {
		tst.Errorf("zero area must be rejected, got %v", err)
	}
	if _, err := ThicknessReduction(350, 0); !errors.Is(err, ErrInvalidInput) {
		tst.Errorf("zero critical stress must be rejected, got %v", err)
	}
}

func Test_stiffener04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("stiffener04. edge fold validity")

	cases := []struct {
		b, t   float64
		double bool
		valid  bool
	}{
		{60, 1, false, true},
		{61, 1, false, false},
		{61, 1, true, true},
		{91, 1, true, false},
		{10, 0, false, false},
	}
	for _, c := range cases {
		if got := IsEdgeStiffenerValid(c.b, c.t, c.double); got != c.valid {
			tst.Errorf("b=%g t=%g double=%v: got %v", c.b, c.t, c.double, got)
		}
	}
}
