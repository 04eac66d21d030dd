package formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/drawshape/pkg/geometry"
)

// WriteOBJ encodes the mesh as a Wavefront OBJ object. Faces reference
// both a position and a texture coordinate (f v/vt ...); OBJ indices are
// 1-based.
func WriteOBJ(w io.Writer, m *geometry.Mesh, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for _, p := range m.Points {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	for _, uv := range m.TexCoords {
		fmt.Fprintf(bw, "vt %s %s\n", ftoa(uv.X), ftoa(uv.Y))
	}

	faces := m.Faces()
	for i := 0; i+5 < len(faces); i += 6 {
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n",
			faces[i]+1, faces[i+1]+1,
			faces[i+2]+1, faces[i+3]+1,
			faces[i+4]+1, faces[i+5]+1,
		)
	}
	return bw.Flush()
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
