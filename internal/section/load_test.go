package section

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gocfs/internal/en1993"
)

func TestValidate(t *testing.T) {
	tcs := []struct {
		name  string
		edit  func(s *LippedChannel)
		valid bool
	}{
		{"ok", func(s *LippedChannel) {}, true},
		{"zero thickness", func(s *LippedChannel) { s.T = 0 }, false},
		{"negative web", func(s *LippedChannel) { s.A = -90 }, false},
		{"no yield strength", func(s *LippedChannel) { s.Fy = 0 }, false},
		{"negative radius", func(s *LippedChannel) { s.R = -1 }, false},
		{"coating eats thickness", func(s *LippedChannel) { s.Coating = 1.2 }, false},
		{"lip shorter than corner", func(s *LippedChannel) { s.C = 2 }, false},
		{"negative design stress", func(s *LippedChannel) { s.DesignStress.Axial = -10 }, false},
		{"poisson out of range", func(s *LippedChannel) { s.Nu = 0.5 }, false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s := sampleChannel()
			tc.edit(s)
			err := s.Validate()
			if tc.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !errors.Is(err, en1993.ErrInvalidInput) {
				t.Fatalf("validation error must match ErrInvalidInput")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "c90.json")
	content := `{
  "name": "C90",
  "a": 90, "b": 45, "c": 10, "t": 1.2, "r": 1.6,
  "fy": 350,
  "design_stress": {"axial": 300}
}`
	if err := os.WriteFile(good, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFromFile(good)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.E != en1993.Es || s.Nu != en1993.Nu || s.Coating != en1993.CoatingAllowance {
		t.Errorf("defaults not applied: E=%g ν=%g coating=%g", s.E, s.Nu, s.Coating)
	}
	if s.DesignStress.Axial != 300 {
		t.Errorf("design stress: got %g", s.DesignStress.Axial)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"a": 90, "b": 45, "c": 10, "t": 0, "fy": 350}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(bad); !errors.Is(err, en1993.ErrInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
