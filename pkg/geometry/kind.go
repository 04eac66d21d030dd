// Package geometry builds renderable geometry for the supported shapes.
//
// Cone and torus are produced as explicit triangle meshes by parametric
// sweeps. The remaining shapes are described as primitives that a rendering
// backend can draw natively, or that can be tessellated on demand.
package geometry

import (
	"fmt"
	"strings"

	"github.com/Faultbox/drawshape/pkg/math"
)

// Kind identifies a drawable shape.
type Kind int

// Shape kinds. KindNone means no shape was chosen.
const (
	KindNone Kind = iota
	KindCircle
	KindSquare
	KindTriangle
	KindRectangle
	KindSphere
	KindCube
	KindCone
	KindCylinder
	KindTorus
)

var kindNames = [...]string{
	KindNone:      "none",
	KindCircle:    "circle",
	KindSquare:    "square",
	KindTriangle:  "triangle",
	KindRectangle: "rectangle",
	KindSphere:    "sphere",
	KindCube:      "cube",
	KindCone:      "cone",
	KindCylinder:  "cylinder",
	KindTorus:     "torus",
}

// String returns the lower-case shape name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Is3D reports whether the shape is a solid rather than a flat outline.
func (k Kind) Is3D() bool {
	switch k {
	case KindSphere, KindCube, KindCone, KindCylinder, KindTorus:
		return true
	}
	return false
}

// Kinds returns every drawable kind in menu order.
func Kinds() []Kind {
	return []Kind{
		KindCircle, KindSquare, KindTriangle, KindRectangle,
		KindSphere, KindCube, KindCone, KindCylinder, KindTorus,
	}
}

// ParseKind looks up a kind by name, ignoring case and surrounding space.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown shape %q", name)
}

// rotationAxes is the fixed spin axis per shape.
var rotationAxes = map[Kind]math.Vec3{
	KindCircle:    math.YAxis,
	KindSquare:    math.YAxis,
	KindTriangle:  math.YAxis,
	KindRectangle: math.YAxis,
	KindSphere:    math.ZAxis,
	KindCube:      math.XAxis,
	KindCone:      math.XAxis,
	KindCylinder:  math.XAxis,
	KindTorus:     math.XAxis,
}

// RotationAxis returns the axis the shape spins around when displayed.
// KindNone and unknown kinds get the Z axis.
func RotationAxis(k Kind) math.Vec3 {
	if axis, ok := rotationAxes[k]; ok {
		return axis
	}
	return math.ZAxis
}
