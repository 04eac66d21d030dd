package geometry

import "github.com/Faultbox/drawshape/pkg/math"

// Params holds the dimensions of a shape. Callers normalize the values
// before building; the generators assume non-negative finite numbers.
type Params struct {
	Length      float64
	Width       float64
	Radius      float64
	Height      float64
	MinorRadius float64
	// MajorRadius is the torus ring radius. It is normalized into a
	// narrower range than Radius so the tube fits on screen.
	MajorRadius float64
}

// Default tessellation settings.
const (
	DefaultConeResolution    = 360
	DefaultRingSegments      = 128
	DefaultTubeSegments      = 64
	DefaultPrimitiveSegments = 64

	// CapThickness is the height of the disk that closes a cone base.
	CapThickness = 0.1

	minSegments = 3
)

// Options controls placement and tessellation.
type Options struct {
	// Center is the display origin shapes are placed at.
	Center math.Vec2
	// ConeResolution is the number of angular steps around the cone base.
	ConeResolution int
	// RingSegments and TubeSegments subdivide the torus.
	RingSegments int
	TubeSegments int
	// PrimitiveSegments is used when tessellating round primitives.
	PrimitiveSegments int
	// LegacyTriangle reproduces the historical triangle vertex list
	// instead of an isosceles triangle.
	LegacyTriangle bool
}

// DefaultOptions returns the settings of a 300x300 display.
func DefaultOptions() Options {
	return Options{
		Center:            math.Vec2{X: 150, Y: 150},
		ConeResolution:    DefaultConeResolution,
		RingSegments:      DefaultRingSegments,
		TubeSegments:      DefaultTubeSegments,
		PrimitiveSegments: DefaultPrimitiveSegments,
	}
}

func clampSegments(n int) int {
	if n < minSegments {
		return minSegments
	}
	return n
}

// withDefaults fills unset tessellation counts. Center is left alone since
// the zero vector is a valid origin.
func (o Options) withDefaults() Options {
	if o.ConeResolution <= 0 {
		o.ConeResolution = DefaultConeResolution
	}
	if o.RingSegments <= 0 {
		o.RingSegments = DefaultRingSegments
	}
	if o.TubeSegments <= 0 {
		o.TubeSegments = DefaultTubeSegments
	}
	if o.PrimitiveSegments <= 0 {
		o.PrimitiveSegments = DefaultPrimitiveSegments
	}
	return o
}
