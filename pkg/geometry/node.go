package geometry

import "github.com/Faultbox/drawshape/pkg/math"

// Node is an element of a shape's scene tree. A node carries at most one
// of Mesh, Primitive or Placeholder, plus any number of children. The
// zero Transform is treated as identity.
type Node struct {
	Name        string
	Transform   math.Mat4
	Mesh        *Mesh
	Primitive   *Primitive
	Placeholder string
	Children    []*Node
}

// LocalTransform returns the node transform, substituting identity for an
// unset matrix.
func (n *Node) LocalTransform() math.Mat4 {
	if n.Transform == (math.Mat4{}) {
		return math.Identity()
	}
	return n.Transform
}

// Walk visits the node and its descendants depth-first, passing each node
// with its accumulated world transform.
func (n *Node) Walk(fn func(node *Node, world math.Mat4)) {
	n.walk(math.Identity(), fn)
}

func (n *Node) walk(parent math.Mat4, fn func(*Node, math.Mat4)) {
	world := parent.Mul(n.LocalTransform())
	fn(n, world)
	for _, child := range n.Children {
		child.walk(world, fn)
	}
}

// Flatten bakes the tree into a single mesh in world coordinates.
// Primitives are tessellated with the given segment count; placeholders
// contribute nothing.
func (n *Node) Flatten(segments int) *Mesh {
	var parts []*Mesh
	n.Walk(func(node *Node, world math.Mat4) {
		var local []*Mesh
		if node.Mesh != nil {
			local = append(local, node.Mesh)
		}
		if node.Primitive != nil {
			local = append(local, node.Primitive.Tessellate(segments))
		}
		for _, m := range local {
			if !world.IsIdentity() {
				m = m.Transform(world)
			}
			parts = append(parts, m)
		}
	})
	return Merge(parts...)
}

// Stats summarizes the geometry held by a tree.
type Stats struct {
	Nodes      int
	Meshes     int
	Primitives int
	Vertices   int
	Triangles  int
}

// Stats counts nodes and explicit mesh geometry. Primitives are counted but
// not tessellated.
func (n *Node) Stats() Stats {
	var s Stats
	n.Walk(func(node *Node, _ math.Mat4) {
		s.Nodes++
		if node.Mesh != nil {
			s.Meshes++
			s.Vertices += node.Mesh.VertexCount()
			s.Triangles += node.Mesh.TriangleCount()
		}
		if node.Primitive != nil {
			s.Primitives++
		}
	})
	return s
}
