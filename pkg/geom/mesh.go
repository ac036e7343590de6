package geom

// VertexCount is the fixed size of the vertex buffer: six faces with
// four inset corners each.
const VertexCount = 24

// Index counts per fidelity level.
const (
	indexCountBasic   = len(faceTriangles) * 6
	indexCountPartial = indexCountBasic + partialEdgeCount*6
	indexCountFull    = indexCountBasic + len(edgeBands)*6 + len(cornerTriangles)*3
)

// BuildMesh creates the beveled box mesh for the given box and fidelity.
// Pure function: no shared state, deterministic, fresh buffers per call.
func BuildMesh(box Box, fidelity Fidelity) *Mesh {
	r := box.EdgeRadius

	// Y-up right-handed, camera looking from +Z toward -Z. Each face
	// keeps its own axis at the box extreme and insets the two tangent
	// axes by the edge radius, leaving room for the bevel bands.
	vertices := []Vertex{
		// Front (+Z)
		{Position: [3]float32{box.MinX + r, box.MinY + r, box.MaxZ}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{box.MaxX - r, box.MinY + r, box.MaxZ}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{box.MaxX - r, box.MaxY - r, box.MaxZ}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{box.MinX + r, box.MaxY - r, box.MaxZ}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{0, 1}},
		// Back (-Z)
		{Position: [3]float32{box.MinX + r, box.MaxY - r, box.MinZ}, Normal: [3]float32{0, 0, -1}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{box.MaxX - r, box.MaxY - r, box.MinZ}, Normal: [3]float32{0, 0, -1}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{box.MaxX - r, box.MinY + r, box.MinZ}, Normal: [3]float32{0, 0, -1}, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{box.MinX + r, box.MinY + r, box.MinZ}, Normal: [3]float32{0, 0, -1}, TexCoord: [2]float32{1, 1}},
		// Right (+X)
		{Position: [3]float32{box.MaxX, box.MinY + r, box.MinZ + r}, Normal: [3]float32{1, 0, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{box.MaxX, box.MaxY - r, box.MinZ + r}, Normal: [3]float32{1, 0, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{box.MaxX, box.MaxY - r, box.MaxZ - r}, Normal: [3]float32{1, 0, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{box.MaxX, box.MinY + r, box.MaxZ - r}, Normal: [3]float32{1, 0, 0}, TexCoord: [2]float32{0, 1}},
		// Left (-X)
		{Position: [3]float32{box.MinX, box.MinY + r, box.MaxZ - r}, Normal: [3]float32{-1, 0, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{box.MinX, box.MaxY - r, box.MaxZ - r}, Normal: [3]float32{-1, 0, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{box.MinX, box.MaxY - r, box.MinZ + r}, Normal: [3]float32{-1, 0, 0}, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{box.MinX, box.MinY + r, box.MinZ + r}, Normal: [3]float32{-1, 0, 0}, TexCoord: [2]float32{1, 1}},
		// Top (+Y)
		{Position: [3]float32{box.MaxX - r, box.MaxY, box.MinZ + r}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{box.MinX + r, box.MaxY, box.MinZ + r}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{box.MinX + r, box.MaxY, box.MaxZ - r}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{box.MaxX - r, box.MaxY, box.MaxZ - r}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 1}},
		// Bottom (-Y)
		{Position: [3]float32{box.MaxX - r, box.MinY, box.MaxZ - r}, Normal: [3]float32{0, -1, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{box.MinX + r, box.MinY, box.MaxZ - r}, Normal: [3]float32{0, -1, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{box.MinX + r, box.MinY, box.MinZ + r}, Normal: [3]float32{0, -1, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{box.MaxX - r, box.MinY, box.MinZ + r}, Normal: [3]float32{0, -1, 0}, TexCoord: [2]float32{0, 1}},
	}

	capacity := indexCountBasic
	switch fidelity {
	case FidelityPartial:
		capacity = indexCountPartial
	case FidelityFull:
		capacity = indexCountFull
	}

	indices := make([]uint32, 0, capacity)
	for f := Face(0); f < faceCount; f++ {
		indices = append(indices, faceTriangles[f][:]...)
	}

	bands := 0
	switch fidelity {
	case FidelityPartial:
		bands = partialEdgeCount
	case FidelityFull:
		bands = int(edgeCount)
	}
	for e := Edge(0); e < Edge(bands); e++ {
		indices = append(indices, edgeBands[e][:]...)
	}

	if fidelity == FidelityFull {
		for c := Corner(0); c < cornerCount; c++ {
			indices = append(indices, cornerTriangles[c][:]...)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
	}
}
