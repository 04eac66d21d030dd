package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/drawshape/pkg/geometry"
	"github.com/Faultbox/drawshape/pkg/math"
)

// STL format errors.
var (
	ErrTruncatedSTLData = errors.New("truncated STL data")
	ErrASCIISTL         = errors.New("ASCII STL is not supported")
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50 // normal + 3 vertices (12 float32) + uint16 attribute
)

// STLTriangle is one facet of a binary STL file.
type STLTriangle struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// STL represents a parsed binary STL file.
type STL struct {
	Header    string
	Triangles []STLTriangle
}

// ParseSTL parses a binary STL file from raw bytes.
func ParseSTL(data []byte) (*STL, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, ErrTruncatedSTLData
	}
	if bytes.HasPrefix(data, []byte("solid")) && bytes.Contains(data[:min(len(data), 512)], []byte("facet")) {
		return nil, ErrASCIISTL
	}

	header := strings.TrimRight(string(data[:stlHeaderSize]), " \x00")
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])

	want := stlHeaderSize + 4 + int(count)*stlTriangleSize
	if len(data) < want {
		return nil, fmt.Errorf("%w: %d triangles need %d bytes, have %d", ErrTruncatedSTLData, count, want, len(data))
	}

	stl := &STL{
		Header:    header,
		Triangles: make([]STLTriangle, count),
	}
	r := bytes.NewReader(data[stlHeaderSize+4:])
	for i := range stl.Triangles {
		if err := binary.Read(r, binary.LittleEndian, &stl.Triangles[i]); err != nil {
			return nil, fmt.Errorf("%w: reading triangle %d", ErrTruncatedSTLData, i)
		}
	}
	return stl, nil
}

// ParseSTLFile parses an STL file from disk.
func ParseSTLFile(path string) (*STL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}
	return ParseSTL(data)
}

// Mesh converts the facets into an indexed mesh, merging identical
// vertices. STL carries no texture coordinates, so every vertex gets (0,0).
func (s *STL) Mesh() *geometry.Mesh {
	m := &geometry.Mesh{}
	seen := make(map[[3]float32]uint32)
	for _, tri := range s.Triangles {
		for _, v := range tri.Vertices {
			idx, ok := seen[v]
			if !ok {
				idx = uint32(len(m.Points))
				seen[v] = idx
				m.Points = append(m.Points, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
				m.TexCoords = append(m.TexCoords, math.Vec2{})
			}
			m.Indices = append(m.Indices, idx)
		}
	}
	return m
}

// WriteSTL encodes the mesh as binary STL with per-facet normals.
func WriteSTL(w io.Writer, m *geometry.Mesh, header string) error {
	bw := bufio.NewWriter(w)

	var head [stlHeaderSize]byte
	copy(head[:], header)
	if _, err := bw.Write(head[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return err
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Points[m.Indices[i]]
		b := m.Points[m.Indices[i+1]]
		c := m.Points[m.Indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()

		tri := STLTriangle{
			Normal: [3]float32{n.X, n.Y, n.Z},
			Vertices: [3][3]float32{
				{a.X, a.Y, a.Z},
				{b.X, b.Y, b.Z},
				{c.X, c.Y, c.Z},
			},
		}
		if err := binary.Write(bw, binary.LittleEndian, &tri); err != nil {
			return fmt.Errorf("writing triangle %d: %w", i/3, err)
		}
	}
	return bw.Flush()
}
