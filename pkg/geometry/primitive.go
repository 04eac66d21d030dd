package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/drawshape/pkg/math"
)

// Primitive describes a shape a rendering backend can draw natively.
// Dimensions are in display units, centered on the local origin.
//
//   - circle: Radius, in the z=0 plane
//   - square, rectangle: Width along X, Height along Y
//   - triangle: Points, a closed polygon in the z=0 plane
//   - sphere: Radius
//   - cube: Width, Height, Depth
//   - cylinder: Radius, Height along Y
type Primitive struct {
	Kind   Kind
	Radius float32
	Width  float32
	Height float32
	Depth  float32
	Points []math.Vec2
}

// Tessellate converts the primitive into a triangle mesh. Round shapes use
// the given number of segments around their axis.
func (p *Primitive) Tessellate(segments int) *Mesh {
	segments = clampSegments(segments)
	switch p.Kind {
	case KindCircle:
		return diskXY(p.Radius, segments)
	case KindSquare, KindRectangle:
		return rectXY(p.Width, p.Height)
	case KindTriangle:
		return polygonXY(p.Points)
	case KindSphere:
		return uvSphere(p.Radius, segments)
	case KindCube:
		return box(p.Width, p.Height, p.Depth)
	case KindCylinder:
		return cylinderY(p.Radius, p.Height, segments)
	}
	return &Mesh{}
}

// diskXY is a triangle fan facing +Z. Texture coordinates map the disk
// onto the unit square.
func diskXY(radius float32, segments int) *Mesh {
	m := &Mesh{
		Points:    []math.Vec3{{}},
		TexCoords: []math.Vec2{{X: 0.5, Y: 0.5}},
	}
	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		m.Points = append(m.Points, math.Vec3{X: c * radius, Y: s * radius})
		m.TexCoords = append(m.TexCoords, math.Vec2{X: 0.5 + c/2, Y: 0.5 - s/2})
	}
	for i := 1; i <= segments; i++ {
		m.Indices = append(m.Indices, 0, uint32(i), uint32(i+1))
	}
	return m
}

func rectXY(width, height float32) *Mesh {
	w, h := width/2, height/2
	return &Mesh{
		Points: []math.Vec3{
			{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h},
		},
		TexCoords: []math.Vec2{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// polygonXY fans a convex polygon from its first vertex. Texture
// coordinates are the vertices scaled into the polygon's bounding box.
func polygonXY(points []math.Vec2) *Mesh {
	m := &Mesh{}
	if len(points) < 3 {
		return m
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = math.Vec2{X: math32.Min(lo.X, p.X), Y: math32.Min(lo.Y, p.Y)}
		hi = math.Vec2{X: math32.Max(hi.X, p.X), Y: math32.Max(hi.Y, p.Y)}
	}
	size := hi.Sub(lo)
	for _, p := range points {
		m.Points = append(m.Points, p.Vec3(0))
		m.TexCoords = append(m.TexCoords, math.Vec2{
			X: ratio(p.X-lo.X, size.X),
			Y: ratio(p.Y-lo.Y, size.Y),
		})
	}
	for i := 1; i+1 < len(points); i++ {
		m.Indices = append(m.Indices, 0, uint32(i), uint32(i+1))
	}
	return m
}

func ratio(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}

// uvSphere is a latitude/longitude sphere around the Y axis with
// segments slices and segments/2 stacks. The seam column is duplicated
// so texture coordinates wrap cleanly.
func uvSphere(radius float32, segments int) *Mesh {
	slices := segments
	stacks := max(segments/2, 2)

	m := &Mesh{}
	for st := 0; st <= stacks; st++ {
		v := float32(st) / float32(stacks)
		sinPhi, cosPhi := math32.Sincos(math32.Pi * v)
		for sl := 0; sl <= slices; sl++ {
			u := float32(sl) / float32(slices)
			sinTheta, cosTheta := math32.Sincos(2 * math32.Pi * u)
			m.Points = append(m.Points, math.Vec3{
				X: radius * sinPhi * cosTheta,
				Y: radius * cosPhi,
				Z: radius * sinPhi * sinTheta,
			})
			m.TexCoords = append(m.TexCoords, math.Vec2{X: u, Y: v})
		}
	}

	row := uint32(slices + 1)
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			a := uint32(st)*row + uint32(sl)
			b := a + row
			m.Indices = append(m.Indices,
				a, a+1, b,
				b, a+1, b+1,
			)
		}
	}
	return m
}

// box builds a cuboid with four vertices per face so each face gets the
// full texture.
func box(width, height, depth float32) *Mesh {
	x, y, z := width/2, height/2, depth/2
	faces := [6][4]math.Vec3{
		{{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z}, {X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z}},     // +Z
		{{X: x, Y: -y, Z: -z}, {X: -x, Y: -y, Z: -z}, {X: -x, Y: y, Z: -z}, {X: x, Y: y, Z: -z}}, // -Z
		{{X: x, Y: -y, Z: z}, {X: x, Y: -y, Z: -z}, {X: x, Y: y, Z: -z}, {X: x, Y: y, Z: z}},     // +X
		{{X: -x, Y: -y, Z: -z}, {X: -x, Y: -y, Z: z}, {X: -x, Y: y, Z: z}, {X: -x, Y: y, Z: -z}}, // -X
		{{X: -x, Y: y, Z: z}, {X: x, Y: y, Z: z}, {X: x, Y: y, Z: -z}, {X: -x, Y: y, Z: -z}},     // +Y
		{{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z}, {X: x, Y: -y, Z: z}, {X: -x, Y: -y, Z: z}}, // -Y
	}
	quadUV := [4]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	m := &Mesh{}
	for _, face := range faces {
		base := uint32(len(m.Points))
		m.Points = append(m.Points, face[:]...)
		m.TexCoords = append(m.TexCoords, quadUV[:]...)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// cylinderY closes a swept frustum with two fans and stands it on the Y
// axis.
func cylinderY(radius, height float32, segments int) *Mesh {
	side := generateFrustum(float64(radius), float64(radius), float64(height), segments).
		Transform(math.RotateX(math.Radians(-90)))

	top := capFanY(radius, height/2, segments, true)
	bottom := capFanY(radius, -height/2, segments, false)
	return Merge(side, top, bottom)
}

// capFanY is a disk in the plane y=level, facing +Y when up is set.
func capFanY(radius, level float32, segments int, up bool) *Mesh {
	m := &Mesh{
		Points:    []math.Vec3{{Y: level}},
		TexCoords: []math.Vec2{{X: 0.5, Y: 0.5}},
	}
	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		m.Points = append(m.Points, math.Vec3{X: c * radius, Y: level, Z: s * radius})
		m.TexCoords = append(m.TexCoords, math.Vec2{X: 0.5 + c/2, Y: 0.5 + s/2})
	}
	for i := 1; i <= segments; i++ {
		if up {
			m.Indices = append(m.Indices, 0, uint32(i+1), uint32(i))
		} else {
			m.Indices = append(m.Indices, 0, uint32(i), uint32(i+1))
		}
	}
	return m
}
