package effective

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gocfs/internal/en1993"
	"github.com/alexiusacademia/gocfs/internal/section"
)

// evaluation carries the state of one load case through the stages
type evaluation struct {
	*Analysis
	plan   plan
	stress float64
	result *Result
}

// warn records a warning against an element
func (e *evaluation) warn(element, format string, args ...any) {
	e.result.Warnings = append(e.result.Warnings, Warning{Element: element, Message: fmt.Sprintf(format, args...)})
}

// bounded turns an out-of-range error into a warning and continues with the
// value of the tabulated formula at the limit
func (e *evaluation) bounded(element string, v float64, err error) (float64, error) {
	if err == nil {
		return v, nil
	}
	if re, ok := en1993.AsRangeError(err); ok {
		e.warn(element, "%v; boundary value %.4g used", re, re.Boundary)
		return re.Boundary, nil
	}
	return 0, fmt.Errorf("%s: %w", element, err)
}

// internal runs the Table 4.1 chain for a compressed internal element
func (e *evaluation) internal(element string, width, psi float64) (Buckling, en1993.InternalWidths, error) {
	b := Buckling{Compressed: true, Width: width, StressRatio: psi}
	k, err := en1993.BucklingFactorInternal(psi)
	if b.BucklingFactor, err = e.bounded(element, k, err); err != nil {
		return b, en1993.InternalWidths{}, err
	}
	if b.Slenderness, err = en1993.RelativeSlenderness(width, e.centerline.Core, b.BucklingFactor, e.stress); err != nil {
		return b, en1993.InternalWidths{}, fmt.Errorf("%s: %w", element, err)
	}
	rho, err := en1993.ReductionInternal(b.Slenderness, psi)
	if b.Reduction, err = e.bounded(element, rho, err); err != nil {
		return b, en1993.InternalWidths{}, err
	}
	w := en1993.EffectiveWidthInternal(psi, width, b.Reduction)
	b.EffectiveWidth = w.Beff
	return b, w, nil
}

// stageFlanges computes the effective widths of both flanges
func (e *evaluation) stageFlanges() error {
	var err error
	if e.result.TopFlange, err = e.flange("top flange", e.plan.topFlange); err != nil {
		return err
	}
	e.result.TopFlange.Position = "top"
	if e.result.BottomFlange, err = e.flange("bottom flange", e.plan.bottomFlange); err != nil {
		return err
	}
	e.result.BottomFlange.Position = "bottom"
	return nil
}

func (e *evaluation) flange(element string, load flangeLoad) (FlangeResult, error) {
	bb := e.centerline.Flange
	zgx := e.gross.Zgx

	if load == flangeTension {
		return FlangeResult{
			Buckling: Buckling{Width: bb, Reduction: 1, EffectiveWidth: bb},
			Widths:   en1993.InternalWidths{Beff: bb, Be1: bb / 2, Be2: bb / 2, Bt: bb},
			WebSide:  bb / 2,
			LipSide:  bb / 2,
		}, nil
	}

	// Stress ratio from the gross neutral axis for weak axis bending
	psi := 1.0
	switch load {
	case flangeLipCompressed:
		psi = -zgx / (bb - zgx)
	case flangeWebCompressed:
		psi = -(bb - zgx) / zgx
	}

	b, w, err := e.internal(element, bb, psi)
	if err != nil {
		return FlangeResult{}, err
	}
	f := FlangeResult{Buckling: b, Widths: w}

	// be1 lies at the edge with σ1, be2 at the other edge or next to the
	// neutral axis, followed by the fully effective tension zone
	switch load {
	case flangeLipCompressed:
		f.LipSide = w.Be1
		f.WebSide = w.Bt + w.Be2
	case flangeWebCompressed:
		f.WebSide = w.Be1
		f.LipSide = w.Bt + w.Be2
	default:
		f.WebSide = w.Be1
		f.LipSide = w.Be2
	}
	return f, nil
}

// stageLips computes the effective lips and the distortional buckling
// reduction of the edge stiffeners
func (e *evaluation) stageLips() error {
	var err error
	if e.result.TopLip, err = e.lip("top lip", e.plan.topLip, e.result.TopFlange); err != nil {
		return err
	}
	e.result.TopLip.Position = "top"
	if e.result.BottomLip, err = e.lip("bottom lip", e.plan.bottomLip, e.result.BottomFlange); err != nil {
		return err
	}
	e.result.BottomLip.Position = "bottom"
	return nil
}

func (e *evaluation) lip(element string, compressed bool, flange FlangeResult) (LipResult, error) {
	cl := e.centerline
	cc, bb, core := cl.Lip, cl.Flange, cl.Core

	if !compressed {
		return LipResult{
			Buckling:  Buckling{Width: cc, Reduction: 1, EffectiveWidth: cc},
			Widths:    en1993.OutstandWidths{Beff: cc, Bt: cc},
			Ceff:      cc,
			Thickness: core,
		}, nil
	}

	// Uniform compression along the lip
	l := LipResult{Buckling: Buckling{Compressed: true, Width: cc, StressRatio: 1}}
	k, err := en1993.LipBucklingFactor(cc, bb)
	if l.BucklingFactor, err = e.bounded(element, k, err); err != nil {
		return l, err
	}
	if l.Slenderness, err = en1993.RelativeSlenderness(cc, core, l.BucklingFactor, e.stress); err != nil {
		return l, fmt.Errorf("%s: %w", element, err)
	}
	l.Reduction = en1993.ReductionOutstand(l.Slenderness)
	l.Widths = en1993.EffectiveWidthOutstand(1, cc, l.Reduction)
	l.EffectiveWidth = l.Widths.Beff
	l.Ceff = l.Widths.Beff

	// Edge stiffener made of the lip and the lip-side flange part
	s := &Stiffener{Be: flange.LipSide}
	s.B1 = en1993.StiffenerCentroidDistance(bb, s.Be, l.Ceff)
	s.As = en1993.StiffenerArea(s.Be, core, l.Ceff)
	s.Is = en1993.StiffenerSecondMoment(s.Be, core, l.Ceff)
	if s.K, err = en1993.SpringStiffness(e.section.E, core, e.section.Nu, s.B1, cl.Web, s.B1, e.plan.bending); err != nil {
		return l, fmt.Errorf("%s stiffener: %w", element, err)
	}
	if s.SigmaCrs, err = en1993.CriticalStress(s.K, s.Is, e.section.E, s.As); err != nil {
		return l, fmt.Errorf("%s stiffener: %w", element, err)
	}
	if s.LambdaD, err = en1993.DistortionalSlenderness(e.stress, s.SigmaCrs); err != nil {
		return l, fmt.Errorf("%s stiffener: %w", element, err)
	}
	if s.Reduction, err = en1993.ThicknessReduction(e.stress, s.SigmaCrs); err != nil {
		return l, fmt.Errorf("%s stiffener: %w", element, err)
	}
	l.Stiffener = s
	l.Thickness = s.Reduction * core

	return l, nil
}

// stageProvisional integrates the flanges and lips with the full web to
// locate the neutral axis the web stress ratio depends on
func (e *evaluation) stageProvisional() error {
	cl := e.centerline
	m := e.mesh(section.Segment{ID: 4, I: section.Point{X: 0, Y: 0}, J: section.Point{X: 0, Y: cl.Web}, Thickness: cl.Core})

	props, err := section.CalculateProperties(m)
	if err != nil {
		return err
	}
	e.result.Provisional = props
	return nil
}

// stageWeb computes the effective parts of the web
func (e *evaluation) stageWeb() error {
	aa := e.centerline.Web
	w := &e.result.Web

	switch e.plan.web {
	case webTension:
		w.Buckling = Buckling{Width: aa, Reduction: 1, EffectiveWidth: aa}
		w.Widths = en1993.InternalWidths{Beff: aa, Be1: aa / 2, Be2: aa / 2, Bt: aa}
		w.Top, w.Bottom = aa/2, aa/2
		return nil

	case webNeutralAxis:
		// Compression above the provisional centroid, tension below
		ht := e.result.Provisional.CentroidY
		hc := aa - ht
		if !(hc > 0) || !(ht >= 0) {
			return fmt.Errorf("neutral axis at %.3f mm lies outside the web", ht)
		}
		b, widths, err := e.internal("web", aa, -ht/hc)
		if err != nil {
			return err
		}
		w.Buckling, w.Widths = b, widths
		w.Top = widths.Be1
		w.Bottom = widths.Bt + widths.Be2
		return nil
	}

	b, widths, err := e.internal("web", aa, 1)
	if err != nil {
		return err
	}
	w.Buckling, w.Widths = b, widths
	w.Top, w.Bottom = widths.Be1, widths.Be2
	return nil
}

// stageFinal assembles the effective mesh and derives the published
// properties
func (e *evaluation) stageFinal() error {
	cl := e.centerline
	w := e.result.Web

	m := e.mesh(
		section.Segment{ID: 4, I: section.Point{X: 0, Y: 0}, J: section.Point{X: 0, Y: w.Bottom}, Thickness: cl.Core},
		section.Segment{ID: 5, I: section.Point{X: 0, Y: cl.Web - w.Top}, J: section.Point{X: 0, Y: cl.Web}, Thickness: cl.Core},
	)

	props, err := section.CalculateProperties(m)
	if err != nil {
		return err
	}

	ey, ex := props.ExtremeFiberY(), props.ExtremeFiberX()
	if !(ey > 0) || !(ex > 0) {
		return errors.New("effective mesh has no extent")
	}

	e.result.Mesh = m
	e.result.Properties = props
	e.result.Wx = props.Ix / ey
	e.result.Wy = props.Iy / ex
	e.result.ShiftX = props.CentroidX - e.gross.Zgx
	e.result.ShiftY = props.CentroidY - e.gross.Zgy
	return nil
}

// mesh traces the centerline from the bottom lip tip to the top lip tip
// with the given web segments in between
func (e *evaluation) mesh(web ...section.Segment) section.Mesh {
	cl := e.centerline
	aa, bb, core := cl.Web, cl.Flange, cl.Core
	r := e.result

	m := section.Mesh{
		{ID: 1, I: section.Point{X: bb, Y: r.BottomLip.Ceff}, J: section.Point{X: bb, Y: 0}, Thickness: r.BottomLip.Thickness},
		{ID: 2, I: section.Point{X: bb, Y: 0}, J: section.Point{X: bb - r.BottomFlange.LipSide, Y: 0}, Thickness: r.BottomLip.Thickness},
		{ID: 3, I: section.Point{X: r.BottomFlange.WebSide, Y: 0}, J: section.Point{X: 0, Y: 0}, Thickness: core},
	}
	m = append(m, web...)
	m = append(m,
		section.Segment{ID: 6, I: section.Point{X: 0, Y: aa}, J: section.Point{X: r.TopFlange.WebSide, Y: aa}, Thickness: core},
		section.Segment{ID: 7, I: section.Point{X: bb - r.TopFlange.LipSide, Y: aa}, J: section.Point{X: bb, Y: aa}, Thickness: r.TopLip.Thickness},
		section.Segment{ID: 8, I: section.Point{X: bb, Y: aa}, J: section.Point{X: bb, Y: aa - r.TopLip.Ceff}, Thickness: r.TopLip.Thickness},
	)
	return m
}
