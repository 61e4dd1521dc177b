package effective

import (
	"fmt"
	"strings"
)

// Mode is a load case for which the effective section is evaluated
type Mode int

const (
	// AxialCompression is uniform compression of the whole section
	AxialCompression Mode = iota
	// BendingStrong is bending about the strong axis with the top flange in compression
	BendingStrong
	// BendingWeakLip is bending about the weak axis with the lips in compression
	BendingWeakLip
	// BendingWeakWeb is bending about the weak axis with the web in compression
	BendingWeakWeb
)

// Modes lists every load case in evaluation order
var Modes = []Mode{AxialCompression, BendingStrong, BendingWeakLip, BendingWeakWeb}

var modeNames = map[Mode]string{
	AxialCompression: "axial",
	BendingStrong:    "bending-strong",
	BendingWeakLip:   "bending-weak-lip",
	BendingWeakWeb:   "bending-weak-web",
}

var modeTitles = map[Mode]string{
	AxialCompression: "Axial Compression",
	BendingStrong:    "Bending About Strong Axis",
	BendingWeakLip:   "Bending About Weak Axis, Lips in Compression",
	BendingWeakWeb:   "Bending About Weak Axis, Web in Compression",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Title returns a human readable name for reports
func (m Mode) Title() string {
	if title, ok := modeTitles[m]; ok {
		return title
	}
	return m.String()
}

// MarshalText encodes the mode by name
func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("unknown mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode converts a mode name such as "bending-strong" to a Mode.
// Underscores are accepted in place of hyphens.
func ParseMode(name string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for m, n := range modeNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (expected one of: axial, bending-strong, bending-weak-lip, bending-weak-web)", name)
}
