package modifier

import (
	"strconv"
	"strings"
)

// RayShade casts light rays from the bright parts of a glyph
type RayShade struct {
	Opacity   float64
	Threshold float64
	Strength  float64
	RaysOnly  bool
}

// NewRayShade returns a ray shade with default parameters
func NewRayShade() *RayShade {
	return &RayShade{
		Opacity:   0.5,
		Threshold: 0.0,
		Strength:  0.5,
		RaysOnly:  false,
	}
}

// Key encodes every parameter exactly, Parse restores an equal ray shade
func (r *RayShade) Key() string {
	parts := []string{
		"ray-shade",
		formatFloat(r.Opacity),
		formatFloat(r.Threshold),
		formatFloat(r.Strength),
		strconv.FormatBool(r.RaysOnly),
	}
	return strings.Join(parts, ":")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
