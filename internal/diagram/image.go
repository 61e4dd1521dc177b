package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	outlineColor   = color.Gray{Y: 170}
	coreColor      = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	reducedColor   = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	grossColor     = color.Black
	effectiveColor = color.RGBA{R: 220, G: 20, B: 60, A: 255}
)

// ExportMeshDiagram exports the effective mesh over the gross outline to an
// image file. The format follows the extension (.png, .svg or .pdf); any
// other name gets ".png" appended.
func ExportMeshDiagram(data MeshDiagramData, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	// Gross centerline
	if len(data.Outline) >= 2 {
		outline := make(plotter.XYs, len(data.Outline))
		for i, v := range data.Outline {
			outline[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		line, err := plotter.NewLine(outline)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = outlineColor
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
	}

	// Effective segments, line width proportional to thickness
	for _, s := range data.Mesh {
		if s.Length() == 0 || s.Thickness <= 0 {
			continue
		}
		seg, err := plotter.NewLine(plotter.XYs{{X: s.I.X, Y: s.I.Y}, {X: s.J.X, Y: s.J.Y}})
		if err != nil {
			return "", err
		}
		ratio := 1.0
		if data.Core > 0 {
			ratio = s.Thickness / data.Core
		}
		seg.LineStyle.Width = vg.Points(4 * ratio)
		seg.LineStyle.Color = coreColor
		if ratio < 1-1e-9 {
			seg.LineStyle.Color = reducedColor
		}
		p.Add(seg)
	}

	// Centroids
	gross, err := plotter.NewScatter(plotter.XYs{{X: data.GrossCentroid.X, Y: data.GrossCentroid.Y}})
	if err != nil {
		return "", err
	}
	gross.GlyphStyle.Color = grossColor
	gross.GlyphStyle.Radius = vg.Points(4)
	gross.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(gross)

	eff, err := plotter.NewScatter(plotter.XYs{{X: data.EffectiveCentroid.X, Y: data.EffectiveCentroid.Y}})
	if err != nil {
		return "", err
	}
	eff.GlyphStyle.Color = effectiveColor
	eff.GlyphStyle.Radius = vg.Points(4)
	eff.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(eff)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: data.GrossCentroid.X + 2, Y: data.GrossCentroid.Y + 2},
			{X: data.EffectiveCentroid.X + 2, Y: data.EffectiveCentroid.Y - 4},
		},
		Labels: []string{
			fmt.Sprintf("G (%.1f, %.1f)", data.GrossCentroid.X, data.GrossCentroid.Y),
			fmt.Sprintf("E (%.1f, %.1f)", data.EffectiveCentroid.X, data.EffectiveCentroid.Y),
		},
	})
	if err != nil {
		return "", err
	}
	p.Add(labels)

	// Same scale on both axes
	minX, maxX, minY, maxY := data.bounds()
	margin := 0.1 * (maxY - minY)
	span := max(maxX-minX, maxY-minY) + 2*margin
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension and
// returns the name actually written
func save(p *plot.Plot, width, height vg.Length, filename string) (string, error) {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
