package section

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gocfs/internal/en1993"
)

var (
	// ErrEmptyMesh is returned when a mesh has no segments
	ErrEmptyMesh = errors.New("mesh has no segments")

	// ErrDegenerateMesh is returned when a mesh has zero total area and
	// its centroid is undefined
	ErrDegenerateMesh = errors.New("degenerate mesh: total area is zero")
)

// CalculateProperties computes area, centroid and centroidal second
// moments of area of a thin-walled open mesh. Each segment is integrated
// as a line along its own chord, which is exact for piecewise-linear
// centerlines. Segment order does not affect the result.
func CalculateProperties(m Mesh) (*Properties, error) {
	if len(m) == 0 {
		return nil, ErrEmptyMesh
	}

	props := &Properties{}

	// Find bounding box
	props.MinX, props.MaxX = m[0].I.X, m[0].I.X
	props.MinY, props.MaxY = m[0].I.Y, m[0].I.Y

	// First and second moments about the global axes
	var sx0, sy0, ix0, iy0 float64

	for _, s := range m {
		if s.Thickness < 0 || math.IsNaN(s.Thickness) {
			return nil, fmt.Errorf("%w: segment %d has thickness %g", en1993.ErrInvalidInput, s.ID, s.Thickness)
		}

		for _, p := range [2]Point{s.I, s.J} {
			props.MinX = math.Min(props.MinX, p.X)
			props.MaxX = math.Max(props.MaxX, p.X)
			props.MinY = math.Min(props.MinY, p.Y)
			props.MaxY = math.Max(props.MaxY, p.Y)
		}

		da := s.Thickness * s.Length()
		props.Area += da
		sx0 += (s.I.Y + s.J.Y) * da / 2
		sy0 += (s.I.X + s.J.X) * da / 2
		ix0 += (s.I.Y*s.I.Y + s.J.Y*s.J.Y + s.I.Y*s.J.Y) * da / 3
		iy0 += (s.I.X*s.I.X + s.J.X*s.J.X + s.I.X*s.J.X) * da / 3
	}

	if !(props.Area > 0) {
		return nil, ErrDegenerateMesh
	}

	props.CentroidY = sx0 / props.Area
	props.CentroidX = sy0 / props.Area

	// Parallel axis theorem
	props.Ix = ix0 - props.Area*props.CentroidY*props.CentroidY
	props.Iy = iy0 - props.Area*props.CentroidX*props.CentroidX

	return props, nil
}
