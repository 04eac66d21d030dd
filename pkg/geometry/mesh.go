package geometry

import (
	"errors"
	"fmt"

	"github.com/Faultbox/drawshape/pkg/math"
)

// Mesh validation errors.
var (
	ErrIndexCount      = errors.New("index count is not a multiple of 3")
	ErrTexIndexCount   = errors.New("texture index count does not match position index count")
	ErrPointIndexRange = errors.New("position index out of range")
	ErrTexIndexRange   = errors.New("texture coordinate index out of range")
)

// Mesh is an indexed triangle mesh.
//
// Indices holds three position indices per triangle. TexIndices holds the
// matching texture coordinate indices; it is nil when Points and TexCoords
// are parallel arrays addressed by the same index.
type Mesh struct {
	Points     []math.Vec3
	TexCoords  []math.Vec2
	Indices    []uint32
	TexIndices []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// VertexCount returns the number of positions.
func (m *Mesh) VertexCount() int {
	return len(m.Points)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// CoIndexed reports whether positions and texture coordinates share indices.
func (m *Mesh) CoIndexed() bool {
	return m.TexIndices == nil
}

// texIndex returns the texture coordinate index of the i-th face corner.
func (m *Mesh) texIndex(i int) uint32 {
	if m.TexIndices == nil {
		return m.Indices[i]
	}
	return m.TexIndices[i]
}

// Validate checks that every face corner refers to an existing position and
// texture coordinate.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return ErrIndexCount
	}
	if m.TexIndices != nil && len(m.TexIndices) != len(m.Indices) {
		return ErrTexIndexCount
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Points) {
			return fmt.Errorf("%w: corner %d refers to %d of %d", ErrPointIndexRange, i, idx, len(m.Points))
		}
		if t := m.texIndex(i); int(t) >= len(m.TexCoords) {
			return fmt.Errorf("%w: corner %d refers to %d of %d", ErrTexIndexRange, i, t, len(m.TexCoords))
		}
	}
	return nil
}

// Faces returns the interleaved face stream p0,t0,p1,t1,p2,t2 per triangle
// used by renderers that take separate index streams per attribute.
// Co-indexed meshes repeat each index in both slots.
func (m *Mesh) Faces() []uint32 {
	faces := make([]uint32, 0, len(m.Indices)*2)
	for i, idx := range m.Indices {
		faces = append(faces, idx, m.texIndex(i))
	}
	return faces
}

// Bounds returns the bounding box of the referenced positions.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Points[0], Max: m.Points[0]}
	for _, p := range m.Points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Transform returns a copy of the mesh with every position transformed.
// Index slices are shared since meshes are not modified after building.
func (m *Mesh) Transform(mat math.Mat4) *Mesh {
	points := make([]math.Vec3, len(m.Points))
	for i, p := range m.Points {
		points[i] = mat.TransformVec3(p)
	}
	return &Mesh{
		Points:     points,
		TexCoords:  m.TexCoords,
		Indices:    m.Indices,
		TexIndices: m.TexIndices,
	}
}

// Equal reports whether two meshes are identical element by element.
func (m *Mesh) Equal(other *Mesh) bool {
	if len(m.Points) != len(other.Points) || len(m.TexCoords) != len(other.TexCoords) ||
		len(m.Indices) != len(other.Indices) || len(m.TexIndices) != len(other.TexIndices) ||
		m.CoIndexed() != other.CoIndexed() {
		return false
	}
	for i := range m.Points {
		if m.Points[i] != other.Points[i] {
			return false
		}
	}
	for i := range m.TexCoords {
		if m.TexCoords[i] != other.TexCoords[i] {
			return false
		}
	}
	for i := range m.Indices {
		if m.Indices[i] != other.Indices[i] {
			return false
		}
	}
	for i := range m.TexIndices {
		if m.TexIndices[i] != other.TexIndices[i] {
			return false
		}
	}
	return true
}

// Merge concatenates meshes into one, rebasing indices. The result is
// co-indexed only when every input is.
func Merge(meshes ...*Mesh) *Mesh {
	coIndexed := true
	for _, m := range meshes {
		if !m.CoIndexed() {
			coIndexed = false
			break
		}
	}

	out := &Mesh{}
	if !coIndexed {
		out.TexIndices = []uint32{}
	}
	for _, m := range meshes {
		pointBase := uint32(len(out.Points))
		texBase := uint32(len(out.TexCoords))
		out.Points = append(out.Points, m.Points...)
		out.TexCoords = append(out.TexCoords, m.TexCoords...)
		for i, idx := range m.Indices {
			out.Indices = append(out.Indices, idx+pointBase)
			if !coIndexed {
				out.TexIndices = append(out.TexIndices, m.texIndex(i)+texBase)
			}
		}
	}
	return out
}
