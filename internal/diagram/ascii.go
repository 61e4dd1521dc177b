package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gocfs/internal/section"
)

// MeshDiagramData holds what is drawn for one effective section
type MeshDiagramData struct {
	Title string

	// Gross rounded-corner centerline, drawn as a thin reference outline
	Outline []section.Point

	// Effective mesh and the core thickness it is compared against
	Mesh section.Mesh
	Core float64 // mm

	GrossCentroid     section.Point
	EffectiveCentroid section.Point
}

// bounds returns the extent of the outline and mesh together
func (d MeshDiagramData) bounds() (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(p section.Point) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for _, p := range d.Outline {
		grow(p)
	}
	for _, s := range d.Mesh {
		grow(s.I)
		grow(s.J)
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, maxX, minY, maxY
}

// DrawASCIIMesh renders the effective mesh on a character grid.
//
//	█  effective at core thickness
//	▓  effective at reduced thickness
//	·  ineffective (gross outline only)
//	G  gross centroid, E effective centroid
func DrawASCIIMesh(data MeshDiagramData, rows int) string {
	if rows < 4 {
		rows = 4
	}
	minX, maxX, minY, maxY := data.bounds()
	height := maxY - minY
	if height <= 0 {
		return ""
	}

	// Character cells are about twice as tall as wide
	scale := float64(rows-1) / height
	cols := int(math.Round((maxX-minX)*scale*2)) + 1

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	cell := func(p section.Point) (int, int) {
		return rows - 1 - int(math.Round((p.Y-minY)*scale)), int(math.Round((p.X - minX) * scale * 2))
	}
	put := func(row, c int, r rune) {
		if row >= 0 && row < rows && c >= 0 && c < cols {
			grid[row][c] = r
		}
	}
	plot := func(p section.Point, r rune) {
		row, c := cell(p)
		put(row, c, r)
	}
	trace := func(a, b section.Point, r rune) {
		steps := int(math.Max(math.Abs(b.X-a.X)*scale*2, math.Abs(b.Y-a.Y)*scale)) + 1
		for i := 0; i <= steps; i++ {
			f := float64(i) / float64(steps)
			plot(section.Point{X: a.X + f*(b.X-a.X), Y: a.Y + f*(b.Y-a.Y)}, r)
		}
	}

	for i := 1; i < len(data.Outline); i++ {
		trace(data.Outline[i-1], data.Outline[i], '·')
	}
	for _, s := range data.Mesh {
		if s.Length() == 0 || s.Thickness <= 0 {
			continue
		}
		r := '█'
		if s.Thickness < data.Core*(1-1e-9) {
			r = '▓'
		}
		trace(s.I, s.J, r)
	}
	// Keep both centroids visible when they share a cell
	gr, gc := cell(data.GrossCentroid)
	er, ec := cell(data.EffectiveCentroid)
	if gr == er && gc == ec {
		ec++
	}
	put(gr, gc, 'G')
	put(er, ec, 'E')

	var sb strings.Builder
	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", utf8.RuneCountInString(data.Title))))
	}
	for _, line := range grid {
		sb.WriteString("    " + strings.TrimRight(string(line), " ") + "\n")
	}
	sb.WriteString("\n    █ core thickness   ▓ reduced thickness   · ineffective   G gross   E effective\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
