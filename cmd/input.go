package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocfs/internal/section"
	"github.com/spf13/cobra"
)

// sectionInput is the section given either as a JSON file or as flags
type sectionInput struct {
	file string

	name    string
	a       float64
	b       float64
	c       float64
	t       float64
	r       float64
	fy      float64
	coating float64
	e       float64
	nu      float64
	stress  float64
}

func addSectionFlags(cmd *cobra.Command, in *sectionInput) {
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "Path to section JSON file")

	// Geometry flags
	cmd.Flags().StringVar(&in.name, "name", "", "Section name")
	cmd.Flags().Float64VarP(&in.a, "depth", "A", 0, "Web depth A, outer (mm)")
	cmd.Flags().Float64VarP(&in.b, "width", "B", 0, "Flange width B, outer (mm)")
	cmd.Flags().Float64VarP(&in.c, "lip", "C", 0, "Lip depth C, outer (mm)")
	cmd.Flags().Float64VarP(&in.t, "thickness", "t", 0, "Nominal thickness t (mm)")
	cmd.Flags().Float64VarP(&in.r, "radius", "r", 0, "Internal corner radius R (mm)")
	cmd.Flags().Float64Var(&in.coating, "coating", 0, "Coating allowance (mm), default 0.04")

	// Material flags
	cmd.Flags().Float64Var(&in.fy, "fy", 350, "Yield strength fy (MPa)")
	cmd.Flags().Float64Var(&in.e, "e", 0, "Modulus of elasticity E (MPa), default 210000")
	cmd.Flags().Float64Var(&in.nu, "nu", 0, "Poisson's ratio, default 0.3")

	// Load flag
	cmd.Flags().Float64Var(&in.stress, "stress", 0, "Design compressive stress for every load case (MPa), default fy")

	// Only --fy and --stress override a file
	for _, name := range []string{"name", "depth", "width", "lip", "thickness", "radius", "coating", "e", "nu"} {
		cmd.MarkFlagsMutuallyExclusive("file", name)
	}
}

// load returns the validated section with defaults applied
func (in *sectionInput) load(cmd *cobra.Command) (*section.LippedChannel, error) {
	var sec *section.LippedChannel
	if in.file != "" {
		s, err := section.LoadFromFile(in.file)
		if err != nil {
			return nil, fmt.Errorf("loading section: %w", err)
		}
		sec = s
		if cmd.Flags().Changed("fy") {
			sec.Fy = in.fy
		}
	} else {
		sec = &section.LippedChannel{
			Name:    in.name,
			A:       in.a,
			B:       in.b,
			C:       in.c,
			T:       in.t,
			R:       in.r,
			Fy:      in.fy,
			Coating: in.coating,
			E:       in.e,
			Nu:      in.nu,
		}
		if sec.Name == "" {
			sec.Name = fmt.Sprintf("C%gx%gx%gx%g", in.a, in.b, in.c, in.t)
		}
	}

	if in.stress > 0 {
		sec.DesignStress = section.DesignStress{
			Axial:          in.stress,
			BendingStrong:  in.stress,
			BendingWeakLip: in.stress,
			BendingWeakWeb: in.stress,
		}
	}

	sec.ApplyDefaults()
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	return sec, nil
}
