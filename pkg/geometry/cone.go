package geometry

import (
	gomath "math"

	"github.com/Faultbox/drawshape/pkg/math"
)

// coneTexCoords is shared by every band of a swept frustum: apex,
// bottom-left, bottom-right.
var coneTexCoords = []math.Vec2{
	{X: 0.5, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// GenerateCone builds the lateral surface of a right circular cone whose
// axis is Z, apex at z=+height/2 and base circle at z=-height/2.
//
// Each of the resolution bands around the axis contributes four points and
// two triangles, so the mesh holds 4*resolution points and 2*resolution
// triangles. Points are not shared between bands. The base is left open;
// see ConeNode for the capped shape.
func GenerateCone(baseRadius, height float64, resolution int) *Mesh {
	return generateFrustum(baseRadius, 0, height, resolution)
}

// generateFrustum sweeps the band between a bottom circle of radius r1 at
// z=-h/2 and a top circle of radius r2 at z=+h/2.
func generateFrustum(r1, r2, h float64, resolution int) *Mesh {
	resolution = clampSegments(resolution)
	step := 360 / float64(resolution)

	points := make([]math.Vec3, 0, resolution*4)
	indices := make([]uint32, 0, resolution*6)
	texIndices := make([]uint32, 0, resolution*6)

	top := float32(h / 2)
	bottom := float32(-h / 2)
	for i := 0; i < resolution; i++ {
		a0 := radians(float64(i) * step)
		a1 := radians(float64(i+1) * step)
		cos0, sin0 := gomath.Cos(a0), gomath.Sin(a0)
		cos1, sin1 := gomath.Cos(a1), gomath.Sin(a1)

		points = append(points,
			math.Vec3{X: float32(cos0 * r2), Y: float32(sin0 * r2), Z: top},
			math.Vec3{X: float32(cos0 * r1), Y: float32(sin0 * r1), Z: bottom},
			math.Vec3{X: float32(cos1 * r1), Y: float32(sin1 * r1), Z: bottom},
			math.Vec3{X: float32(cos1 * r2), Y: float32(sin1 * r2), Z: top},
		)

		base := uint32(i * 4)
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
		texIndices = append(texIndices,
			0, 1, 2,
			0, 1, 2,
		)
	}

	return &Mesh{
		Points:     points,
		TexCoords:  coneTexCoords,
		Indices:    indices,
		TexIndices: texIndices,
	}
}

// ConeNode returns a capped cone standing on the display center. The
// lateral mesh is closed with a thin cylinder disk at its base and the
// group is turned 90 degrees about X so the apex points to -Y, which is
// screen-up on a display whose Y axis grows downward.
func ConeNode(baseRadius, height float64, opts Options) *Node {
	opts = opts.withDefaults()

	lateral := &Node{
		Name: "cone-surface",
		Mesh: GenerateCone(baseRadius, height, opts.ConeResolution),
	}
	baseCap := &Node{
		Name: "cone-base",
		Primitive: &Primitive{
			Kind:   KindCylinder,
			Radius: float32(baseRadius),
			Height: CapThickness,
		},
		Transform: math.Translate(0, 0, float32(-height/2)).
			Mul(math.RotateX(math.Radians(90))),
	}

	return &Node{
		Name: KindCone.String(),
		Transform: math.Translate(opts.Center.X, opts.Center.Y, 0).
			Mul(math.RotateX(math.Radians(90))),
		Children: []*Node{lateral, baseCap},
	}
}

func radians(deg float64) float64 {
	return deg * gomath.Pi / 180
}
