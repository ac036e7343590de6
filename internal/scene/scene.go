// Package scene assembles mesh instances from the generated point sets.
package scene

import (
	"fmt"

	"github.com/Faultbox/bevelbox/pkg/geom"
	"github.com/Faultbox/bevelbox/pkg/lattice"
	"github.com/Faultbox/bevelbox/pkg/math"
)

// Variant selects which layout the scene is built from.
type Variant string

// Scene variants.
const (
	VariantSingle Variant = "single" // one shape, as in the shapes demo
	VariantWalk   Variant = "walk"   // boxes along a random lattice walk
	VariantMap    Variant = "map"    // boxes from the built-in ASCII map
)

// Config holds everything needed to build a scene.
type Config struct {
	Variant    Variant
	Fidelity   geom.Fidelity
	Box        geom.Box
	CellSize   float32 // world units per lattice step
	WalkLength int
	Seed       int64
	WallMarker rune
}

// Instance places one copy of the scene mesh in the world.
type Instance struct {
	Translation math.Vec3
}

// Scene is the drawable result: one shared mesh, one instance per
// placement point, plus the ground plane.
type Scene struct {
	Mesh      *geom.Mesh
	Instances []Instance
	Ground    *geom.Mesh
}

// singleShapeAt is where the shapes demo places its lone box.
var singleShapeAt = math.Vec3{X: 1.9, Y: 2.0, Z: 0}

// Build creates the scene for the given config. The box mesh is built
// once and shared by every instance.
func Build(cfg Config) (*Scene, error) {
	s := &Scene{
		Mesh:   geom.BuildMesh(cfg.Box, cfg.Fidelity),
		Ground: groundPlane(50.0),
	}

	switch cfg.Variant {
	case VariantSingle, "":
		s.Instances = []Instance{{Translation: singleShapeAt}}

	case VariantWalk:
		points := lattice.Walk(lattice.WalkConfig{
			Length: cfg.WalkLength,
			Seed:   cfg.Seed,
		})
		s.Instances = placeAll(points, cfg.CellSize)

	case VariantMap:
		points := lattice.FromMap(DemoMap(), cfg.WallMarker)
		s.Instances = placeAll(points, cfg.CellSize)

	default:
		return nil, fmt.Errorf("unknown scene variant %q", cfg.Variant)
	}

	return s, nil
}

// placeAll scales lattice points by the cell size into world translations.
func placeAll(points []lattice.Point, cellSize float32) []Instance {
	instances := make([]Instance, len(points))
	for i, p := range points {
		instances[i] = Instance{
			Translation: math.Vec3{
				X: float32(p.X) * cellSize,
				Y: float32(p.Y) * cellSize,
				Z: float32(p.Z) * cellSize,
			},
		}
	}
	return instances
}

// groundPlane builds a flat XZ quad of the given side length, centered
// at the origin, facing up.
func groundPlane(size float32) *geom.Mesh {
	h := size / 2
	return &geom.Mesh{
		Vertices: []geom.Vertex{
			{Position: [3]float32{-h, 0, h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{h, 0, h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{h, 0, -h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-h, 0, -h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	}
}
