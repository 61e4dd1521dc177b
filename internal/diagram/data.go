package diagram

import (
	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/alexiusacademia/gocfs/internal/section"
)

// NewMeshDiagramData collects the drawing data of one load case
func NewMeshDiagramData(a *effective.Analysis, r *effective.Result) MeshDiagramData {
	gross := a.Gross()
	data := MeshDiagramData{
		Title:         r.Mode.Title(),
		Outline:       gross.Nodes,
		Mesh:          r.Mesh,
		Core:          a.Centerline().Core,
		GrossCentroid: section.Point{X: gross.Zgx, Y: gross.Zgy},
	}
	if r.Properties != nil {
		data.EffectiveCentroid = section.Point{X: r.Properties.CentroidX, Y: r.Properties.CentroidY}
	}
	return data
}
