package geom

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the mesh as Wavefront OBJ text. Positions, normals
// and texture coordinates are emitted per vertex; faces reference all
// three (OBJ indices are 1-based).
func WriteOBJ(w io.Writer, m *Mesh, name string) error {
	bw := bufio.NewWriter(w)

	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}
