package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/alexiusacademia/gocfs/internal/en1993"
	"github.com/spf13/cobra"
)

func TestSelectModes(t *testing.T) {
	tests := []struct {
		name  string
		count int
		err   bool
	}{
		{"all", len(effective.Modes), false},
		{" ALL ", len(effective.Modes), false},
		{"axial", 1, false},
		{"bending_weak_web", 1, false},
		{"torsion", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modes, err := selectModes(tt.name)
			if (err != nil) != tt.err {
				t.Fatalf("got error %v", err)
			}
			if len(modes) != tt.count {
				t.Errorf("got %d modes, want %d", len(modes), tt.count)
			}
		})
	}
}

func TestModeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"c90.png", "c90-bending-strong.png"},
		{"out/c90.svg", "out/c90-bending-strong.svg"},
		{"c90", "c90-bending-strong"},
	}
	for _, tt := range tests {
		if got := modeFilename(tt.in, effective.BendingStrong); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func parseInput(t *testing.T, args ...string) (*sectionInput, *cobra.Command) {
	t.Helper()
	in := &sectionInput{}
	cmd := &cobra.Command{Use: "test"}
	addSectionFlags(cmd, in)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return in, cmd
}

func TestSectionInput(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		in, cmd := parseInput(t, "-A", "90", "-B", "45", "-C", "10", "-t", "1.2", "-r", "1.6", "--stress", "300")
		sec, err := in.load(cmd)
		if err != nil {
			t.Fatal(err)
		}
		if sec.Name != "C90x45x10x1.2" {
			t.Errorf("got name %q", sec.Name)
		}
		if sec.Fy != 350 || sec.E != en1993.Es || sec.Coating != en1993.CoatingAllowance {
			t.Errorf("defaults not applied: %+v", sec)
		}
		if sec.DesignStress.Axial != 300 || sec.DesignStress.BendingWeakWeb != 300 {
			t.Errorf("design stress not applied: %+v", sec.DesignStress)
		}
	})

	t.Run("file with fy override", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "c.json")
		data := `{"name":"file","a":90,"b":45,"c":10,"t":1.2,"r":1.6,"fy":350}`
		if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		in, cmd := parseInput(t, "-f", file, "--fy", "450")
		sec, err := in.load(cmd)
		if err != nil {
			t.Fatal(err)
		}
		if sec.Name != "file" || sec.Fy != 450 {
			t.Errorf("got %+v", sec)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		in, cmd := parseInput(t, "-A", "90", "-B", "45")
		_, err := in.load(cmd)
		if !errors.Is(err, en1993.ErrInvalidInput) {
			t.Errorf("got %v, want ErrInvalidInput", err)
		}
	})
}

func TestSectionFlagsWithFile(t *testing.T) {
	tests := []struct {
		args []string
		err  bool
	}{
		{[]string{"-f", "c.json", "--fy", "450", "--stress", "300"}, false},
		{[]string{"-f", "c.json", "--name", "x"}, true},
		{[]string{"-f", "c.json", "-A", "90"}, true},
		{[]string{"-f", "c.json", "-r", "2"}, true},
		{[]string{"-f", "c.json", "--coating", "0.05"}, true},
		{[]string{"-f", "c.json", "--e", "200000"}, true},
		{[]string{"-f", "c.json", "--nu", "0.28"}, true},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args[2:], " "), func(t *testing.T) {
			_, cmd := parseInput(t, tt.args...)
			err := cmd.ValidateFlagGroups()
			if (err != nil) != tt.err {
				t.Errorf("got error %v, want error %v", err, tt.err)
			}
		})
	}
}
