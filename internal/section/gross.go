package section

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// cornerSteps is the number of chords used to approximate each 90° corner
const cornerSteps = 9

// GrossProperties holds the properties of the gross (unreduced) section,
// computed on the rounded-corner centerline with the nominal thickness
type GrossProperties struct {
	Area float64 `json:"area"` // mm²
	Zgx  float64 `json:"zgx"`  // centroid from the web centerline (mm)
	Zgy  float64 `json:"zgy"`  // centroid from the bottom flange centerline (mm)

	Ix  float64 `json:"ix"`  // strong axis (mm⁴)
	Iy  float64 `json:"iy"`  // weak axis (mm⁴)
	Ixy float64 `json:"ixy"` // product moment (mm⁴)
	Wx  float64 `json:"wx"`  // strong axis modulus, rounded-corner corrected (mm³)
	Wy  float64 `json:"wy"`  // weak axis modulus, rounded-corner corrected (mm³)

	// Principal second moments and the angle of the major axis (rad)
	I1    float64 `json:"i1"`
	I2    float64 `json:"i2"`
	Alpha float64 `json:"alpha"`

	Iw  float64 `json:"iw"`  // sectorial constant
	Xsc float64 `json:"xsc"` // shear centre (mm)
	Ysc float64 `json:"ysc"` // shear centre (mm)
	Cw  float64 `json:"cw"`  // warping constant (mm⁶)
	It  float64 `json:"it"`  // torsion constant (mm⁴)
	Xo  float64 `json:"xo"`  // distance between centroid and shear centre (mm)

	// Rounded-corner factor δ = 0.43·Σr/Σb and the properties reduced by it
	Delta       float64 `json:"delta"`
	AreaReduced float64 `json:"area_reduced"`
	IxReduced   float64 `json:"ix_reduced"`
	IyReduced   float64 `json:"iy_reduced"`
	CwReduced   float64 `json:"cw_reduced"`
	ItReduced   float64 `json:"it_reduced"`

	Nodes []Point `json:"nodes"`
}

// GrossNodes discretizes the rounded-corner centerline from the bottom lip
// tip to the top lip tip. The web lies on x = 0 and the bottom flange on y = 0.
func GrossNodes(cl Centerline) []Point {
	r := cl.Radius
	aa, bb, cc := cl.Web, cl.Flange, cl.Lip

	// arc returns the interior points of a corner centred at (ox, oy),
	// starting from the given angle in degrees
	arc := func(ox, oy, start float64) []Point {
		pts := make([]Point, 0, cornerSteps-1)
		for i := 1; i < cornerSteps; i++ {
			ang := (start + float64(10*i)) * math.Pi / 180
			pts = append(pts, Point{X: ox + r*math.Sin(ang), Y: oy + r*math.Cos(ang)})
		}
		return pts
	}

	var nodes []Point
	nodes = append(nodes, Point{bb, cc}, Point{bb, r})
	nodes = append(nodes, arc(bb-r, r, 90)...)
	nodes = append(nodes, Point{bb - r, 0}, Point{r + cl.FlangeFlat/2, 0}, Point{r, 0})
	nodes = append(nodes, arc(r, r, 180)...)
	nodes = append(nodes, Point{0, r})
	for i := 1; i <= 4; i++ {
		nodes = append(nodes, Point{0, r + cl.WebFlat*float64(i)/4})
	}
	nodes = append(nodes, arc(r, aa-r, 270)...)
	nodes = append(nodes, Point{r, aa}, Point{r + cl.FlangeFlat/2, aa}, Point{bb - r, aa})
	nodes = append(nodes, arc(bb-r, aa-r, 0)...)
	nodes = append(nodes, Point{bb, aa - r}, Point{bb, aa - cc})

	return nodes
}

// CalculateGross computes the gross section properties including the
// sectorial properties needed for torsional checks
func (s *LippedChannel) CalculateGross() (*GrossProperties, error) {
	cl := s.Centerline()
	x := GrossNodes(cl)
	t := s.T
	n := len(x)

	g := &GrossProperties{Nodes: x}

	da := make([]float64, n)
	var length float64
	for i := 1; i < n; i++ {
		l := math.Hypot(x[i].X-x[i-1].X, x[i].Y-x[i-1].Y)
		length += l
		da[i] = l * t
		g.Area += da[i]
	}
	if !(g.Area > 0) {
		return nil, ErrDegenerateMesh
	}

	// Four corners of 90° each
	g.Delta = 0.43 * 4 * cl.Radius / length

	// First moments and centroid
	var sx0, sy0 float64
	for i := 1; i < n; i++ {
		sx0 += (x[i].Y + x[i-1].Y) * da[i] / 2
		sy0 += (x[i].X + x[i-1].X) * da[i] / 2
	}
	g.Zgy = sx0 / g.Area
	g.Zgx = sy0 / g.Area

	// Second moments and product moment
	var ix0, iy0, ixy0 float64
	for i := 1; i < n; i++ {
		xi, yi, xj, yj := x[i-1].X, x[i-1].Y, x[i].X, x[i].Y
		ix0 += (yj*yj + yi*yi + yi*yj) * da[i] / 3
		iy0 += (xj*xj + xi*xi + xi*xj) * da[i] / 3
		ixy0 += (2*xi*yi + 2*xj*yj + xi*yj + xj*yi) * da[i] / 6
	}
	g.Ix = ix0 - g.Area*g.Zgy*g.Zgy
	g.Iy = iy0 - g.Area*g.Zgx*g.Zgx
	g.Ixy = ixy0 - sx0*sy0/g.Area

	if err := g.principal(); err != nil {
		return nil, err
	}

	// Sectorial coordinates with the pole at the origin
	w := make([]float64, n)
	var iw float64
	for i := 1; i < n; i++ {
		w[i] = w[i-1] + x[i-1].X*x[i].Y - x[i].X*x[i-1].Y
		iw += (w[i-1] + w[i]) * da[i] / 2
	}
	g.Iw = iw

	var ixw0, iyw0, iww0 float64
	for i := 1; i < n; i++ {
		xi, yi, xj, yj := x[i-1].X, x[i-1].Y, x[i].X, x[i].Y
		wi, wj := w[i-1], w[i]
		ixw0 += (2*xi*wi + 2*xj*wj + xi*wj + xj*wi) * da[i] / 6
		iyw0 += (2*yi*wi + 2*yj*wj + yi*wj + yj*wi) * da[i] / 6
		iww0 += (wj*wj + wi*wi + wj*wi) * da[i] / 3
	}
	ixw := ixw0 - sy0*iw/g.Area
	iyw := iyw0 - sx0*iw/g.Area
	iww := iww0 - iw*iw/g.Area

	det := g.Ix*g.Iy - g.Ixy*g.Ixy
	if !(det > 0) {
		return nil, ErrDegenerateMesh
	}
	g.Xsc = (iyw*g.Iy - ixw*g.Ixy) / det
	g.Ysc = (-ixw*g.Ix + iyw*g.Ixy) / det
	g.Cw = iww + g.Ysc*ixw - g.Xsc*iyw
	g.It = length * t * t * t / 3
	g.Xo = math.Abs(g.Xsc) + g.Zgx

	// Extreme fibres of the centerline
	var maxX, maxY float64
	for _, p := range x {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	g.AreaReduced = g.Area * (1 - g.Delta)
	g.IxReduced = g.Ix * (1 - 2*g.Delta)
	g.IyReduced = g.Iy * (1 - 2*g.Delta)
	g.CwReduced = g.Cw * (1 - 4*g.Delta)
	g.ItReduced = g.It * (1 - 2*g.Delta)
	g.Wx = g.IxReduced / math.Max(g.Zgy, maxY-g.Zgy)
	g.Wy = g.IyReduced / math.Max(g.Zgx, maxX-g.Zgx)

	return g, nil
}

// principal computes the principal second moments from the eigenvalues of
// the inertia tensor
func (g *GrossProperties) principal() error {
	tensor := mat.NewSymDense(2, []float64{
		g.Ix, -g.Ixy,
		-g.Ixy, g.Iy,
	})

	var eig mat.EigenSym
	if ok := eig.Factorize(tensor, true); !ok {
		return errors.New("principal axes: eigen decomposition failed")
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// Values are in ascending order
	g.I2, g.I1 = values[0], values[1]

	alpha := math.Atan2(vectors.At(1, 1), vectors.At(0, 1))
	if alpha > math.Pi/2 {
		alpha -= math.Pi
	} else if alpha <= -math.Pi/2 {
		alpha += math.Pi
	}
	g.Alpha = alpha

	return nil
}
