package section

import (
	"math"

	"github.com/alexiusacademia/gocfs/internal/en1993"
)

// LippedChannel represents a cold-formed lipped channel (C-section).
// The section is described by its outer dimensions and nominal thickness;
// all calculations run on the mid-thickness centerline derived from them.
//
//	        ┌────────┐ ─┬─
//	        │        │  C
//	        │          ─┴─
//	        │ A
//	        │
//	        │          ─┬─
//	        │        │  C
//	        └────────┘ ─┴─
//	        |<-- B -->|
type LippedChannel struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Outer dimensions (mm)
	A float64 `json:"a"` // web depth
	B float64 `json:"b"` // flange width
	C float64 `json:"c"` // lip depth
	T float64 `json:"t"` // nominal thickness
	R float64 `json:"r"` // internal corner radius

	// Coating plus tolerance allowance subtracted from T to obtain the core thickness (mm)
	Coating float64 `json:"coating,omitempty"`

	// Material properties (MPa)
	Fy float64 `json:"fy"`           // yield strength
	E  float64 `json:"e,omitempty"`  // modulus of elasticity
	Nu float64 `json:"nu,omitempty"` // Poisson's ratio

	// Applied compressive stress for each load case, zero means fy
	DesignStress DesignStress `json:"design_stress"`
}

// DesignStress holds the applied compressive stress per load case (MPa)
type DesignStress struct {
	Axial          float64 `json:"axial,omitempty"`
	BendingStrong  float64 `json:"bending_strong,omitempty"`
	BendingWeakLip float64 `json:"bending_weak_lip,omitempty"`
	BendingWeakWeb float64 `json:"bending_weak_web,omitempty"`
}

// Centerline holds the idealized mid-thickness dimensions of the section
type Centerline struct {
	Radius float64 // corner radius to mid-thickness (r)

	// Corner-to-corner centerline lengths (sharp corners)
	Web    float64 // aa
	Flange float64 // bb
	Lip    float64 // cc

	// Flat portions between corner arcs
	WebFlat    float64 // a
	FlangeFlat float64 // b
	LipFlat    float64 // c

	Core float64 // design core thickness (tcore)
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Segment is a straight piece of the section wall centerline with an
// assigned, possibly buckling-reduced, thickness.
type Segment struct {
	ID        int     `json:"id"`
	I         Point   `json:"i"`
	J         Point   `json:"j"`
	Thickness float64 `json:"thickness"` // mm
}

// Length returns the chord length of the segment
func (s Segment) Length() float64 {
	return math.Hypot(s.J.X-s.I.X, s.J.Y-s.I.Y)
}

// Mesh is an ordered open polyline of segments tracing the section
// centerline. Segments must be connected by construction; the integrator
// does not check topology.
type Mesh []Segment

// Properties holds the properties of a thin-walled mesh about its own
// centroidal axes
type Properties struct {
	Area      float64 `json:"area"`       // mm²
	CentroidX float64 `json:"centroid_x"` // mm
	CentroidY float64 `json:"centroid_y"` // mm
	Ix        float64 `json:"ix"`         // about the horizontal centroidal axis (mm⁴)
	Iy        float64 `json:"iy"`         // about the vertical centroidal axis (mm⁴)

	// Bounding box of the centerline
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// ExtremeFiberY returns the larger distance from the centroid to the top or
// bottom of the bounding box
func (p *Properties) ExtremeFiberY() float64 {
	return math.Max(p.CentroidY-p.MinY, p.MaxY-p.CentroidY)
}

// ExtremeFiberX returns the larger distance from the centroid to the left or
// right of the bounding box
func (p *Properties) ExtremeFiberX() float64 {
	return math.Max(p.CentroidX-p.MinX, p.MaxX-p.CentroidX)
}

// ApplyDefaults fills material and allowance fields left at zero
func (s *LippedChannel) ApplyDefaults() {
	if s.E == 0 {
		s.E = en1993.Es
	}
	if s.Nu == 0 {
		s.Nu = en1993.Nu
	}
	if s.Coating == 0 {
		s.Coating = en1993.CoatingAllowance
	}
}

// Centerline computes the mid-thickness dimensions of the section
func (s *LippedChannel) Centerline() Centerline {
	r := s.R + s.T/2
	aa := s.A - s.T
	bb := s.B - s.T
	cc := s.C - s.T/2

	return Centerline{
		Radius:     r,
		Web:        aa,
		Flange:     bb,
		Lip:        cc,
		WebFlat:    aa - 2*r,
		FlangeFlat: bb - 2*r,
		LipFlat:    cc - r,
		Core:       s.T - s.Coating,
	}
}
