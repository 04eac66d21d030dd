package geometry

import "github.com/Faultbox/drawshape/pkg/math"

// NoShapeText is shown when no shape was chosen.
const NoShapeText = "No Shape Chosen"

type builder func(p Params, opts Options) *Node

var builders = map[Kind]builder{
	KindCircle:    buildCircle,
	KindSquare:    buildSquare,
	KindTriangle:  buildTriangle,
	KindRectangle: buildRectangle,
	KindSphere:    buildSphere,
	KindCube:      buildCube,
	KindCone:      func(p Params, opts Options) *Node { return ConeNode(p.Radius, p.Height, opts) },
	KindCylinder:  buildCylinder,
	KindTorus:     func(p Params, opts Options) *Node { return TorusNode(p.MajorRadius, p.MinorRadius, opts) },
}

// Build returns the scene tree for a shape. It never fails: an unknown kind
// yields a placeholder node carrying NoShapeText.
func Build(kind Kind, p Params, opts Options) *Node {
	opts = opts.withDefaults()
	b, ok := builders[kind]
	if !ok {
		return &Node{Name: KindNone.String(), Placeholder: NoShapeText}
	}
	return b(p, opts)
}

// primitiveNode wraps a primitive centered on the display origin.
func primitiveNode(kind Kind, prim *Primitive, opts Options) *Node {
	prim.Kind = kind
	return &Node{
		Name:      kind.String(),
		Transform: math.Translate(opts.Center.X, opts.Center.Y, 0),
		Primitive: prim,
	}
}

func buildCircle(p Params, opts Options) *Node {
	return primitiveNode(KindCircle, &Primitive{Radius: float32(p.Radius)}, opts)
}

func buildSquare(p Params, opts Options) *Node {
	l := float32(p.Length)
	return primitiveNode(KindSquare, &Primitive{Width: l, Height: l}, opts)
}

func buildRectangle(p Params, opts Options) *Node {
	return primitiveNode(KindRectangle, &Primitive{
		Width:  float32(p.Width),
		Height: float32(p.Length),
	}, opts)
}

func buildTriangle(p Params, opts Options) *Node {
	return primitiveNode(KindTriangle, &Primitive{
		Points: TrianglePoints(p.Length, opts.LegacyTriangle),
	}, opts)
}

// TrianglePoints returns the triangle outline relative to its center, in
// display coordinates where Y grows downward. The default is an isosceles
// triangle with its base at the bottom and apex at the top. The legacy
// list is the right triangle the first release drew.
func TrianglePoints(length float64, legacy bool) []math.Vec2 {
	h := float32(length / 2)
	if legacy {
		return []math.Vec2{{X: -h, Y: h}, {X: h, Y: h}, {X: h, Y: -h}}
	}
	return []math.Vec2{{X: -h, Y: h}, {X: h, Y: h}, {X: 0, Y: -h}}
}

func buildSphere(p Params, opts Options) *Node {
	return primitiveNode(KindSphere, &Primitive{Radius: float32(p.Radius)}, opts)
}

func buildCube(p Params, opts Options) *Node {
	l := float32(p.Length)
	return primitiveNode(KindCube, &Primitive{Width: l, Height: l, Depth: l}, opts)
}

func buildCylinder(p Params, opts Options) *Node {
	return primitiveNode(KindCylinder, &Primitive{
		Radius: float32(p.Radius),
		Height: float32(p.Height),
	}, opts)
}
