package section

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Konstantin8105/errors"
	"github.com/alexiusacademia/gocfs/internal/en1993"
)

// LoadFromFile loads a lipped channel definition from a JSON file
func LoadFromFile(filepath string) (*LippedChannel, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var section LippedChannel
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, err
	}

	section.ApplyDefaults()
	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

// Validate checks that the section is geometrically and materially
// consistent. Every violated condition is reported, not only the first.
func (s *LippedChannel) Validate() error {
	et := errors.New("check lipped channel")

	positive := []struct {
		name  string
		value float64
	}{
		{"web depth A", s.A},
		{"flange width B", s.B},
		{"lip depth C", s.C},
		{"thickness t", s.T},
		{"yield strength fy", s.Fy},
		{"modulus of elasticity E", s.E},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			et.Add(fmt.Errorf("%s must be positive, got %g", p.name, p.value))
		}
	}
	if s.R < 0 {
		et.Add(fmt.Errorf("corner radius R must not be negative, got %g", s.R))
	}
	if s.Coating < 0 {
		et.Add(fmt.Errorf("coating allowance must not be negative, got %g", s.Coating))
	}
	if s.Nu < 0 || s.Nu >= 0.5 {
		et.Add(fmt.Errorf("Poisson's ratio must be in [0, 0.5), got %g", s.Nu))
	}

	stresses := []struct {
		name  string
		value float64
	}{
		{"axial", s.DesignStress.Axial},
		{"bending_strong", s.DesignStress.BendingStrong},
		{"bending_weak_lip", s.DesignStress.BendingWeakLip},
		{"bending_weak_web", s.DesignStress.BendingWeakWeb},
	}
	for _, st := range stresses {
		if st.value < 0 {
			et.Add(fmt.Errorf("design stress %s must not be negative, got %g", st.name, st.value))
		}
	}

	if s.T > 0 && s.A > 0 && s.B > 0 && s.C > 0 && s.R >= 0 {
		cl := s.Centerline()
		if cl.Core <= 0 {
			et.Add(fmt.Errorf("core thickness t - coating must be positive, got %g", cl.Core))
		}
		if cl.WebFlat <= 0 {
			et.Add(fmt.Errorf("web has no flat part: A=%g is too small for t=%g and R=%g", s.A, s.T, s.R))
		}
		if cl.FlangeFlat <= 0 {
			et.Add(fmt.Errorf("flange has no flat part: B=%g is too small for t=%g and R=%g", s.B, s.T, s.R))
		}
		if cl.LipFlat <= 0 {
			et.Add(fmt.Errorf("lip has no flat part: C=%g is too small for t=%g and R=%g", s.C, s.T, s.R))
		}
	}

	if et.IsError() {
		return &ValidationError{tree: et}
	}
	return nil
}

// ValidationError represents a section validation error.
// It matches en1993.ErrInvalidInput with errors.Is.
type ValidationError struct {
	tree error
}

func (e *ValidationError) Error() string {
	return e.tree.Error()
}

func (e *ValidationError) Unwrap() error {
	return en1993.ErrInvalidInput
}
