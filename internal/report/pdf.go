package report

import (
	"fmt"
	"io"
	"time"

	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/alexiusacademia/gocfs/internal/version"
	"github.com/phpdave11/gofpdf"
)

// diagramSize is the printed width and height of a mesh diagram (mm)
const diagramSize = 110.0

// PDFOptions controls the calculation report
type PDFOptions struct {
	Project string
	Author  string
	Date    time.Time

	// Optional diagram per load case, as png files
	Diagrams map[effective.Mode]string
}

// WritePDF writes the calculation report of one section
func WritePDF(w io.Writer, item Item, opts PDFOptions) error {
	if item.Err != nil {
		return item.Err
	}
	if item.Analysis == nil {
		return fmt.Errorf("report: section %q has not been evaluated", item.Name)
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("gocfs v%s  -  page %d", version.Version, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	s := item.Analysis.Section()
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Effective Section - %s", item.Name)))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if opts.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", opts.Project)))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", opts.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", opts.Date.Format("2006-01-02")))
	pdf.Ln(10)
	if s.Description != "" {
		pdf.MultiCell(0, 6, tr(s.Description), "", "L", false)
		pdf.Ln(4)
	}

	heading(pdf, "Input")
	table(pdf, [][2]string{
		{"Web depth A", fmt.Sprintf("%.2f mm", s.A)},
		{"Flange width B", fmt.Sprintf("%.2f mm", s.B)},
		{"Lip depth C", fmt.Sprintf("%.2f mm", s.C)},
		{"Nominal thickness t", fmt.Sprintf("%.3f mm", s.T)},
		{"Internal radius R", fmt.Sprintf("%.2f mm", s.R)},
		{"Coating allowance", fmt.Sprintf("%.3f mm", s.Coating)},
		{"Yield strength fy", fmt.Sprintf("%.1f MPa", s.Fy)},
		{"Modulus E", fmt.Sprintf("%.0f MPa", s.E)},
		{"Poisson's ratio", fmt.Sprintf("%.2f", s.Nu)},
	})

	g := item.Analysis.Gross()
	heading(pdf, "Gross Section")
	table(pdf, [][2]string{
		{"Area", fmt.Sprintf("%.2f mm2", g.AreaReduced)},
		{"Centroid zgx / zgy", fmt.Sprintf("%.3f / %.3f mm", g.Zgx, g.Zgy)},
		{"Ix / Wx", fmt.Sprintf("%.4g mm4 / %.4g mm3", g.IxReduced, g.Wx)},
		{"Iy / Wy", fmt.Sprintf("%.4g mm4 / %.4g mm3", g.IyReduced, g.Wy)},
		{"Shear centre xsc / ysc", fmt.Sprintf("%.3f / %.3f mm", g.Xsc, g.Ysc)},
		{"Warping constant Cw", fmt.Sprintf("%.4g mm6", g.CwReduced)},
		{"Torsion constant It", fmt.Sprintf("%.4g mm4", g.ItReduced)},
		{"Rounded corner factor", fmt.Sprintf("%.4f", g.Delta)},
	})

	for _, r := range item.Results {
		pdf.AddPage()
		heading(pdf, r.Mode.Title())
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Design stress: %.1f MPa", r.DesignStress))
		pdf.Ln(8)

		elements(pdf, r, item.Analysis.Centerline().Core)
		pdf.Ln(4)

		p := r.Properties
		table(pdf, [][2]string{
			{"Effective area Aeff", fmt.Sprintf("%.2f mm2", p.Area)},
			{"Centroid x / y", fmt.Sprintf("%.3f / %.3f mm", p.CentroidX, p.CentroidY)},
			{"Ix,eff / Wx,eff", fmt.Sprintf("%.4g mm4 / %.4g mm3", p.Ix, r.Wx)},
			{"Iy,eff / Wy,eff", fmt.Sprintf("%.4g mm4 / %.4g mm3", p.Iy, r.Wy)},
			{"Centroid shift x / y", fmt.Sprintf("%.3f / %.3f mm", r.ShiftX, r.ShiftY)},
		})

		if len(r.Warnings) > 0 {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.Cell(0, 6, "Warnings")
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "", 9)
			for _, wn := range r.Warnings {
				pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s: %s", wn.Element, wn.Message)), "", "L", false)
			}
		}

		if img, ok := opts.Diagrams[r.Mode]; ok && img != "" {
			pdf.Ln(4)
			if pdf.GetY()+diagramSize > 280 {
				pdf.AddPage()
			}
			pdf.ImageOptions(img, (210-diagramSize)/2, pdf.GetY(), diagramSize, diagramSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
}

func table(pdf *gofpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(70, 6, row[0], "B", 0, "L", false, 0, "")
		pdf.CellFormat(80, 6, row[1], "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

// elements writes the buckling chain of every element of a load case
func elements(pdf *gofpdf.Fpdf, r *effective.Result, core float64) {
	header := []string{"Element", "b (mm)", "psi", "k", "lambda", "rho", "beff (mm)", "t (mm)"}
	widths := []float64{32, 20, 20, 20, 20, 18, 24, 20}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range elementRows(r, core) {
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// elementRows formats the per-element records shared by the PDF and XLSX
// reports. Elements in tension show dashes for the buckling chain.
func elementRows(r *effective.Result, core float64) [][]string {
	row := func(name string, b effective.Buckling, thickness float64) []string {
		if !b.Compressed {
			return []string{name + " (tension)", fmt.Sprintf("%.2f", b.Width), "-", "-", "-", "1.000", fmt.Sprintf("%.2f", b.EffectiveWidth), fmt.Sprintf("%.3f", thickness)}
		}
		return []string{
			name,
			fmt.Sprintf("%.2f", b.Width),
			fmt.Sprintf("%.3f", b.StressRatio),
			fmt.Sprintf("%.3f", b.BucklingFactor),
			fmt.Sprintf("%.3f", b.Slenderness),
			fmt.Sprintf("%.3f", b.Reduction),
			fmt.Sprintf("%.2f", b.EffectiveWidth),
			fmt.Sprintf("%.3f", thickness),
		}
	}

	return [][]string{
		row("Top flange", r.TopFlange.Buckling, core),
		row("Top lip", r.TopLip.Buckling, r.TopLip.Thickness),
		row("Web", r.Web.Buckling, core),
		row("Bottom flange", r.BottomFlange.Buckling, core),
		row("Bottom lip", r.BottomLip.Buckling, r.BottomLip.Thickness),
	}
}
