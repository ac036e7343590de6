// Package geom builds beveled box meshes from a fixed 24-vertex layout.
package geom

// Box describes an axis-aligned box with beveled edges.
// Extents are symmetric around the origin when built via NewBox.
// EdgeRadius is the bevel inset; it is not validated, a radius at or
// beyond half the smallest side produces self-intersecting geometry.
type Box struct {
	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32
	EdgeRadius float32
}

// NewBox creates a box centered at the origin with the given side lengths.
func NewBox(xLength, yLength, zLength, edgeRadius float32) Box {
	return Box{
		MinX:       -xLength / 2,
		MaxX:       xLength / 2,
		MinY:       -yLength / 2,
		MaxY:       yLength / 2,
		MinZ:       -zLength / 2,
		MaxZ:       zLength / 2,
		EdgeRadius: edgeRadius,
	}
}

// DefaultBox returns the 3x3x3 box with a 0.5 bevel used by the demo scenes.
func DefaultBox() Box {
	return NewBox(3.0, 3.0, 3.0, 0.5)
}

// MinExtent returns the smallest side length.
func (b Box) MinExtent() float32 {
	m := b.MaxX - b.MinX
	if dy := b.MaxY - b.MinY; dy < m {
		m = dy
	}
	if dz := b.MaxZ - b.MinZ; dz < m {
		m = dz
	}
	return m
}
