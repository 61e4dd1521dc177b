package effective

import (
	"github.com/alexiusacademia/gocfs/internal/en1993"
	"github.com/alexiusacademia/gocfs/internal/section"
)

// Buckling is the outcome of one plate-buckling evaluation of a flat element.
// Elements in tension are not evaluated: Compressed is false, Reduction is 1
// and EffectiveWidth equals the full width.
type Buckling struct {
	Compressed     bool    `json:"compressed"`
	Width          float64 `json:"width"` // notional flat width (mm)
	StressRatio    float64 `json:"stress_ratio"`
	BucklingFactor float64 `json:"buckling_factor"`
	Slenderness    float64 `json:"slenderness"`
	Reduction      float64 `json:"reduction"`
	EffectiveWidth float64 `json:"effective_width"` // mm
}

// FlangeResult holds the effective width of a flange. WebSide and LipSide
// are the contiguous effective lengths measured from the web and from the
// lip; the part between them is ineffective.
type FlangeResult struct {
	Buckling
	Widths   en1993.InternalWidths `json:"widths"`
	WebSide  float64               `json:"web_side"`
	LipSide  float64               `json:"lip_side"`
	Position string                `json:"position"` // top or bottom
}

// Stiffener holds the edge stiffener model of a compressed lip
type Stiffener struct {
	Be        float64 `json:"be"`        // flange part acting with the lip (mm)
	B1        float64 `json:"b1"`        // web-flange junction to stiffener centroid (mm)
	K         float64 `json:"k"`         // spring stiffness (N/mm²)
	Is        float64 `json:"is"`        // mm⁴
	As        float64 `json:"as"`        // mm²
	SigmaCrs  float64 `json:"sigma_crs"` // MPa
	LambdaD   float64 `json:"lambda_d"`  // distortional slenderness
	Reduction float64 `json:"reduction"` // χd
}

// LipResult holds the effective length of a lip together with the
// thickness applied to the lip and the lip-side flange part
type LipResult struct {
	Buckling
	Widths    en1993.OutstandWidths `json:"widths"`
	Ceff      float64               `json:"ceff"`      // mm
	Thickness float64               `json:"thickness"` // χd·tcore (mm)
	Stiffener *Stiffener            `json:"stiffener,omitempty"`
	Position  string                `json:"position"`
}

// WebResult holds the effective parts of the web. Top is measured down
// from the top flange and Bottom up from the bottom flange.
type WebResult struct {
	Buckling
	Widths en1993.InternalWidths `json:"widths"`
	Top    float64               `json:"top"`    // h1 (mm)
	Bottom float64               `json:"bottom"` // h2 (mm)
}

// Warning flags a result that relies on a value outside the validated
// range of the standard, or on an advisory geometric limit
type Warning struct {
	Element string `json:"element"`
	Message string `json:"message"`
}

// Result is the effective section of one load case
type Result struct {
	Mode         Mode    `json:"mode"`
	DesignStress float64 `json:"design_stress"` // MPa

	TopFlange    FlangeResult `json:"top_flange"`
	BottomFlange FlangeResult `json:"bottom_flange"`
	TopLip       LipResult    `json:"top_lip"`
	BottomLip    LipResult    `json:"bottom_lip"`
	Web          WebResult    `json:"web"`

	// Properties of the provisional mesh with the full web, used to locate
	// the neutral axis, and of the final effective mesh
	Provisional *section.Properties `json:"provisional"`
	Properties  *section.Properties `json:"properties"`
	Mesh        section.Mesh        `json:"mesh"`

	Wx float64 `json:"wx"` // mm³
	Wy float64 `json:"wy"` // mm³

	// Shift of the effective centroid from the gross centroid. A positive
	// ShiftX under axial compression moves the centroid away from the web.
	ShiftX float64 `json:"shift_x"`
	ShiftY float64 `json:"shift_y"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// Area returns the effective area
func (r *Result) Area() float64 {
	if r.Properties == nil {
		return 0
	}
	return r.Properties.Area
}
