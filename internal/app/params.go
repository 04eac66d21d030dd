package app

import (
	gomath "math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Faultbox/drawshape/pkg/geometry"
)

// Display ranges. Each dimension is wrapped into (0, range].
const (
	LengthRange      = 250.0
	RadiusRange      = 150.0
	TorusRadiusRange = 75.0
)

var numberPattern = regexp.MustCompile(`^[0-9]+([,.][0-9]+)?$`)

// ParseField converts typed text to a number. Anything that is not a plain
// unsigned decimal (comma or point separator) becomes 0.
func ParseField(text string) float64 {
	if !numberPattern.MatchString(text) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return v
}

// Normalize wraps v into the display range k as k/2 + (k/2)*frac(v/k).
// The result lies in [k/2, k), so a shape never collapses or clips. The
// mapping does not preserve ratios between dimensions.
func Normalize(v, k float64) float64 {
	half := k / 2
	q := v / k
	return half + half*(q-gomath.Trunc(q))
}

// NormalizeParams maps raw input values into display ranges. Radius feeds
// both the shape radius and the torus ring radius.
func NormalizeParams(raw geometry.Params) geometry.Params {
	return geometry.Params{
		Length:      Normalize(raw.Length, LengthRange),
		Width:       Normalize(raw.Width, LengthRange),
		Height:      Normalize(raw.Height, LengthRange),
		Radius:      Normalize(raw.Radius, RadiusRange),
		MajorRadius: Normalize(raw.Radius, TorusRadiusRange),
		MinorRadius: Normalize(raw.MinorRadius, TorusRadiusRange),
	}
}
