package geometry

import (
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/drawshape/pkg/math"
)

// GenerateTorus builds a torus around the Y axis.
//
// The tube cross-section of ring 0 lies in the z=0 plane; every other ring
// is that cross-section rotated about Y. Both sweeps take segments+1 steps
// and the closing step is not welded to step 0, so the mesh holds
// (ringSegments+1)*(tubeSegments+1) vertices and
// 2*ringSegments*tubeSegments triangles.
//
// Vertices are stored tube-major: index = ring + tube*(ringSegments+1).
// Positions and texture coordinates are parallel and co-indexed.
func GenerateTorus(majorRadius, minorRadius float64, ringSegments, tubeSegments int) *Mesh {
	ringSegments = clampSegments(ringSegments)
	tubeSegments = clampSegments(tubeSegments)
	ringSteps := ringSegments + 1
	tubeSteps := tubeSegments + 1

	ringDelta := 2 * math32.Pi / float32(ringSegments)
	tubeDelta := 2 * math32.Pi / float32(tubeSegments)

	// Cross-section of ring 0.
	section := make([]math.Vec3, tubeSteps)
	for t := range section {
		angle := float64(float32(t) * tubeDelta)
		section[t] = math.Vec3{
			X: float32(majorRadius + minorRadius*gomath.Cos(angle)),
			Y: float32(minorRadius * gomath.Sin(angle)),
		}
	}

	// rings[r][t]; ring 0 is the section itself.
	rings := make([][]math.Vec3, ringSteps)
	rings[0] = section
	for r := 1; r < ringSteps; r++ {
		// Negative angle so the sweep runs from +X toward +Z.
		rot := math.RotateY(-float32(r) * ringDelta)
		ring := make([]math.Vec3, tubeSteps)
		for t, p := range section {
			ring[t] = rot.TransformVec3(p)
		}
		rings[r] = ring
	}

	deltaU := 1 / float32(ringSegments)
	deltaV := 1 / float32(tubeSegments)

	points := make([]math.Vec3, 0, ringSteps*tubeSteps)
	uvs := make([]math.Vec2, 0, ringSteps*tubeSteps)
	for t := 0; t < tubeSteps; t++ {
		for r := 0; r < ringSteps; r++ {
			points = append(points, rings[r][t])
			uvs = append(uvs, math.Vec2{X: float32(r) * deltaU, Y: float32(t) * deltaV})
		}
	}

	indices := make([]uint32, 0, ringSegments*tubeSegments*6)
	for t := 0; t < tubeSegments; t++ {
		for r := 0; r < ringSegments; r++ {
			topLeft := uint32(r + t*ringSteps)
			bottomLeft := uint32(r + (t+1)*ringSteps)
			bottomRight := uint32(r + 1 + (t+1)*ringSteps)
			topRight := uint32(r + 1 + t*ringSteps)

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				bottomLeft, bottomRight, topRight,
			)
		}
	}

	return &Mesh{
		Points:    points,
		TexCoords: uvs,
		Indices:   indices,
	}
}

// TorusNode places a torus mesh on the display center.
func TorusNode(majorRadius, minorRadius float64, opts Options) *Node {
	opts = opts.withDefaults()
	return &Node{
		Name:      KindTorus.String(),
		Transform: math.Translate(opts.Center.X, opts.Center.Y, 0),
		Mesh:      GenerateTorus(majorRadius, minorRadius, opts.RingSegments, opts.TubeSegments),
	}
}
