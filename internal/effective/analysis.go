package effective

import (
	"fmt"
	"sync"

	"github.com/alexiusacademia/gocfs/internal/en1993"
	"github.com/alexiusacademia/gocfs/internal/section"
)

// Analysis evaluates the effective section of one lipped channel. It is
// immutable once created and safe for concurrent use.
type Analysis struct {
	section    section.LippedChannel
	centerline section.Centerline
	gross      *section.GrossProperties
	warnings   []Warning
}

// NewAnalysis validates the section and computes its gross properties
func NewAnalysis(s *section.LippedChannel) (*Analysis, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: no section given", en1993.ErrInvalidInput)
	}

	sec := *s
	sec.ApplyDefaults()
	if err := sec.Validate(); err != nil {
		return nil, err
	}

	gross, err := sec.CalculateGross()
	if err != nil {
		return nil, fmt.Errorf("gross section: %w", err)
	}

	a := &Analysis{
		section:    sec,
		centerline: sec.Centerline(),
		gross:      gross,
	}

	// Geometric limit of the edge fold procedure, advisory only
	cl := a.centerline
	if !en1993.IsEdgeStiffenerValid(cl.Flange, cl.Core, false) {
		a.warnings = append(a.warnings, Warning{
			Element: "flange",
			Message: fmt.Sprintf("b/t = %.1f exceeds %.0f for a single edge fold (EN1993-1-3 5.5.3.2(1))",
				cl.Flange/cl.Core, en1993.MaxSlendernessSingleFold),
		})
	}

	return a, nil
}

// Section returns the section with defaults applied
func (a *Analysis) Section() section.LippedChannel {
	return a.section
}

// Centerline returns the idealized mid-thickness dimensions
func (a *Analysis) Centerline() section.Centerline {
	return a.centerline
}

// Gross returns a copy of the gross section properties
func (a *Analysis) Gross() *section.GrossProperties {
	g := *a.gross
	g.Nodes = append([]section.Point(nil), a.gross.Nodes...)
	return &g
}

// Warnings returns the advisory warnings raised by the section geometry
// itself; every Result repeats them
func (a *Analysis) Warnings() []Warning {
	return append([]Warning(nil), a.warnings...)
}

// DesignStress returns the applied compressive stress of a load case,
// falling back to the yield strength
func (a *Analysis) DesignStress(m Mode) float64 {
	var sigma float64
	switch m {
	case AxialCompression:
		sigma = a.section.DesignStress.Axial
	case BendingStrong:
		sigma = a.section.DesignStress.BendingStrong
	case BendingWeakLip:
		sigma = a.section.DesignStress.BendingWeakLip
	case BendingWeakWeb:
		sigma = a.section.DesignStress.BendingWeakWeb
	}
	if sigma == 0 {
		sigma = a.section.Fy
	}
	return sigma
}

// Evaluate computes the effective section for one load case
func (a *Analysis) Evaluate(m Mode) (*Result, error) {
	p, ok := plans[m]
	if !ok {
		return nil, fmt.Errorf("%w: unknown mode %d", en1993.ErrInvalidInput, int(m))
	}

	e := &evaluation{
		Analysis: a,
		plan:     p,
		stress:   a.DesignStress(m),
		result: &Result{
			Mode:     m,
			Warnings: append([]Warning(nil), a.warnings...),
		},
	}
	e.result.DesignStress = e.stress

	stages := []struct {
		name string
		run  func() error
	}{
		{"flanges", e.stageFlanges},
		{"lips", e.stageLips},
		{"provisional", e.stageProvisional},
		{"web", e.stageWeb},
		{"final", e.stageFinal},
	}
	for _, st := range stages {
		if err := st.run(); err != nil {
			return nil, fmt.Errorf("%s: %s stage: %w", m, st.name, err)
		}
	}

	return e.result, nil
}

// EvaluateAll computes every load case concurrently. Results are returned
// in the order of Modes; the first error in that order is reported.
func (a *Analysis) EvaluateAll() ([]*Result, error) {
	results := make([]*Result, len(Modes))
	errs := make([]error, len(Modes))

	var wg sync.WaitGroup
	for i, m := range Modes {
		wg.Add(1)
		go func(i int, m Mode) {
			defer wg.Done()
			results[i], errs[i] = a.Evaluate(m)
		}(i, m)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
