package effective

// flangeLoad describes the stress distribution across a flange
type flangeLoad int

const (
	flangeUniform       flangeLoad = iota // ψ = 1
	flangeTension                         // fully effective
	flangeLipCompressed                   // σ1 at the lip, neutral axis at the gross centroid
	flangeWebCompressed                   // σ1 at the web, neutral axis at the gross centroid
)

// webLoad describes the stress distribution along the web
type webLoad int

const (
	webUniform     webLoad = iota // ψ = 1
	webTension                    // fully effective
	webNeutralAxis                // ψ from the provisional neutral axis, top edge compressed
)

// plan fixes which elements a load case puts in compression. The
// stages read it and never branch on the Mode itself.
type plan struct {
	topFlange, bottomFlange flangeLoad
	topLip, bottomLip       bool // compressed
	web                     webLoad
	bending                 bool // kf = 0 in the spring stiffness
}

var plans = map[Mode]plan{
	AxialCompression: {
		topFlange: flangeUniform, bottomFlange: flangeUniform,
		topLip: true, bottomLip: true,
		web: webUniform,
	},
	BendingStrong: {
		topFlange: flangeUniform, bottomFlange: flangeTension,
		topLip: true, bottomLip: false,
		web:     webNeutralAxis,
		bending: true,
	},
	BendingWeakLip: {
		topFlange: flangeLipCompressed, bottomFlange: flangeLipCompressed,
		topLip: true, bottomLip: true,
		web:     webTension,
		bending: true,
	},
	BendingWeakWeb: {
		topFlange: flangeWebCompressed, bottomFlange: flangeWebCompressed,
		topLip: false, bottomLip: false,
		web:     webUniform,
		bending: true,
	},
}
