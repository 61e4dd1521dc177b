package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/alexiusacademia/gocfs/internal/section"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printInput(sec section.LippedChannel) {
	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Web depth (A):\t%.2f mm\n", sec.A)
	fmt.Fprintf(w, "  Flange width (B):\t%.2f mm\n", sec.B)
	fmt.Fprintf(w, "  Lip depth (C):\t%.2f mm\n", sec.C)
	fmt.Fprintf(w, "  Thickness (t):\t%.3f mm\n", sec.T)
	fmt.Fprintf(w, "  Internal radius (R):\t%.2f mm\n", sec.R)
	fmt.Fprintf(w, "  Coating allowance:\t%.3f mm\n", sec.Coating)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", sec.Fy)
	fmt.Fprintf(w, "  E:\t%.0f MPa\n", sec.E)
	fmt.Fprintf(w, "  ν:\t%.2f\n", sec.Nu)
	w.Flush()
	fmt.Println()
}

func printCenterline(cl section.Centerline) {
	fmt.Println("CENTERLINE DIMENSIONS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tCorner to corner\tFlat part\n")
	fmt.Fprintf(w, "  \t────────────────\t─────────\n")
	fmt.Fprintf(w, "  Web:\t%.3f mm\t%.3f mm\n", cl.Web, cl.WebFlat)
	fmt.Fprintf(w, "  Flange:\t%.3f mm\t%.3f mm\n", cl.Flange, cl.FlangeFlat)
	fmt.Fprintf(w, "  Lip:\t%.3f mm\t%.3f mm\n", cl.Lip, cl.LipFlat)
	w.Flush()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Corner radius (r):\t%.3f mm\n", cl.Radius)
	fmt.Fprintf(w, "  Core thickness:\t%.3f mm\n", cl.Core)
	w.Flush()
	fmt.Println()
}

func printGross(g *section.GrossProperties) {
	fmt.Println("GROSS SECTION:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tRounded corners\tReduced (δ)\n")
	fmt.Fprintf(w, "  \t───────────────\t───────────\n")
	fmt.Fprintf(w, "  Area:\t%.2f mm²\t%.2f mm²\n", g.Area, g.AreaReduced)
	fmt.Fprintf(w, "  Ix:\t%.5g mm⁴\t%.5g mm⁴\n", g.Ix, g.IxReduced)
	fmt.Fprintf(w, "  Iy:\t%.5g mm⁴\t%.5g mm⁴\n", g.Iy, g.IyReduced)
	fmt.Fprintf(w, "  It:\t%.5g mm⁴\t%.5g mm⁴\n", g.It, g.ItReduced)
	fmt.Fprintf(w, "  Cw:\t%.5g mm⁶\t%.5g mm⁶\n", g.Cw, g.CwReduced)
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Centroid from web (zgx):\t%.3f mm\n", g.Zgx)
	fmt.Fprintf(w, "  Centroid from bottom flange (zgy):\t%.3f mm\n", g.Zgy)
	fmt.Fprintf(w, "  Wx:\t%.5g mm³\n", g.Wx)
	fmt.Fprintf(w, "  Wy:\t%.5g mm³\n", g.Wy)
	fmt.Fprintf(w, "  Ixy:\t%.4g mm⁴\n", g.Ixy)
	fmt.Fprintf(w, "  I1 / I2:\t%.5g / %.5g mm⁴\n", g.I1, g.I2)
	fmt.Fprintf(w, "  Principal angle α:\t%.4f rad\n", g.Alpha)
	fmt.Fprintf(w, "  Shear centre (xsc, ysc):\t(%.3f, %.3f) mm\n", g.Xsc, g.Ysc)
	fmt.Fprintf(w, "  Centroid to shear centre (xo):\t%.3f mm\n", g.Xo)
	fmt.Fprintf(w, "  Rounded corner factor δ:\t%.5f\n", g.Delta)
	w.Flush()
	fmt.Println()
}

func printEffective(r *effective.Result) {
	fmt.Printf("  Design stress σcom,Ed: %.1f MPa\n", r.DesignStress)
	fmt.Println()

	fmt.Println("PLATE ELEMENTS (EN1993-1-5 4.4):")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Element\tb (mm)\tψ\tkσ\tλp\tρ\tbeff (mm)\n")
	fmt.Fprintf(w, "  ───────\t──────\t─\t──\t──\t─\t─────────\n")
	element := func(name string, b effective.Buckling) {
		if !b.Compressed {
			fmt.Fprintf(w, "  %s\t%.2f\t-\t-\t-\t-\t%.2f (tension)\n", name, b.Width, b.EffectiveWidth)
			return
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t%.2f\n",
			name, b.Width, b.StressRatio, b.BucklingFactor, b.Slenderness, b.Reduction, b.EffectiveWidth)
	}
	element("Top flange", r.TopFlange.Buckling)
	element("Top lip", r.TopLip.Buckling)
	element("Web", r.Web.Buckling)
	element("Bottom flange", r.BottomFlange.Buckling)
	element("Bottom lip", r.BottomLip.Buckling)
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Top flange (web side / lip side):\t%.2f / %.2f mm\n", r.TopFlange.WebSide, r.TopFlange.LipSide)
	fmt.Fprintf(w, "  Bottom flange (web side / lip side):\t%.2f / %.2f mm\n", r.BottomFlange.WebSide, r.BottomFlange.LipSide)
	fmt.Fprintf(w, "  Web (h1 / h2):\t%.2f / %.2f mm\n", r.Web.Top, r.Web.Bottom)
	fmt.Fprintf(w, "  Lips ceff (top / bottom):\t%.2f / %.2f mm\n", r.TopLip.Ceff, r.BottomLip.Ceff)
	w.Flush()
	fmt.Println()

	stiffeners := []*effective.LipResult{&r.TopLip, &r.BottomLip}
	printed := false
	for _, lip := range stiffeners {
		st := lip.Stiffener
		if st == nil {
			continue
		}
		if !printed {
			fmt.Println("EDGE STIFFENERS (EN1993-1-3 5.5.3):")
			fmt.Println(rule)
			printed = true
		}
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  %s lip:\t\n", lip.Position)
		fmt.Fprintf(w, "    be / b1:\t%.2f / %.2f mm\n", st.Be, st.B1)
		fmt.Fprintf(w, "    As / Is:\t%.2f mm² / %.2f mm⁴\n", st.As, st.Is)
		fmt.Fprintf(w, "    Spring stiffness K:\t%.4f N/mm²\n", st.K)
		fmt.Fprintf(w, "    σcr,s:\t%.1f MPa\n", st.SigmaCrs)
		fmt.Fprintf(w, "    λd:\t%.3f\n", st.LambdaD)
		fmt.Fprintf(w, "    χd:\t%.4f\n", st.Reduction)
		fmt.Fprintf(w, "    Reduced thickness:\t%.4f mm\n", lip.Thickness)
		w.Flush()
	}
	if printed {
		fmt.Println()
	}

	p := r.Properties
	fmt.Println("EFFECTIVE SECTION:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Aeff:\t%.2f mm²\n", p.Area)
	fmt.Fprintf(w, "  Centroid (x, y):\t(%.3f, %.3f) mm\n", p.CentroidX, p.CentroidY)
	fmt.Fprintf(w, "  Ix,eff:\t%.5g mm⁴\n", p.Ix)
	fmt.Fprintf(w, "  Iy,eff:\t%.5g mm⁴\n", p.Iy)
	fmt.Fprintf(w, "  Wx,eff:\t%.5g mm³\n", r.Wx)
	fmt.Fprintf(w, "  Wy,eff:\t%.5g mm³\n", r.Wy)
	fmt.Fprintf(w, "  Centroid shift (eN,x, eN,y):\t(%.3f, %.3f) mm\n", r.ShiftX, r.ShiftY)
	w.Flush()
	fmt.Println()

	printWarnings(r.Warnings)
}

func printWarnings(warnings []effective.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println(rule)
	for _, wn := range warnings {
		fmt.Printf("  ⚠ %s: %s\n", wn.Element, wn.Message)
	}
	fmt.Println()
}

// summaryLines returns the headline values of a load case
func summaryLines(r *effective.Result) []string {
	lines := []string{fmt.Sprintf("Aeff = %.2f mm²", r.Area())}
	switch r.Mode {
	case effective.AxialCompression:
		lines = append(lines, fmt.Sprintf("eN,x = %.3f mm", r.ShiftX))
	case effective.BendingStrong:
		lines = append(lines, fmt.Sprintf("Wx,eff = %.5g mm³", r.Wx))
	default:
		lines = append(lines, fmt.Sprintf("Wy,eff = %.5g mm³", r.Wy))
	}
	return lines
}
