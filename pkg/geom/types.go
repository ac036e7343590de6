package geom

// Vertex is a single mesh vertex with all attributes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds vertex and index buffers ready for GPU upload.
// Buffers are freshly allocated per build and never shared.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Fidelity selects how much bevel connectivity the mesh includes.
type Fidelity int

const (
	// FidelityBasic emits the six inset faces only. Edge and corner
	// gaps are left open.
	FidelityBasic Fidelity = iota
	// FidelityPartial adds the four left-side edge bands
	// (front/left, top/left, back/left, bottom/left) and nothing else.
	FidelityPartial
	// FidelityFull adds all twelve edge bands and the eight corner
	// triangles, closing the surface.
	FidelityFull
)

// String returns a human-readable fidelity name.
func (f Fidelity) String() string {
	switch f {
	case FidelityBasic:
		return "basic"
	case FidelityPartial:
		return "partial"
	case FidelityFull:
		return "full"
	}
	return "unknown"
}

// ParseFidelity converts a config string to a Fidelity.
// Unrecognized values fall back to FidelityFull.
func ParseFidelity(s string) Fidelity {
	switch s {
	case "basic":
		return FidelityBasic
	case "partial":
		return FidelityPartial
	default:
		return FidelityFull
	}
}
