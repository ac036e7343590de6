package lattice

import (
	"math/rand"
	"time"
)

// walkOrigin is where every walk starts.
var walkOrigin = Point{X: 0, Y: 5, Z: 0}

// directions are the six unit axis steps. Indexed directly by the
// random draw so there is no unreachable default branch.
var directions = [6]Point{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// WalkConfig configures a random walk.
type WalkConfig struct {
	Length int
	Seed   int64 // 0 = time-based
}

// Walk generates a random walk using a source seeded from cfg.Seed.
func Walk(cfg WalkConfig) []Point {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return WalkWith(cfg.Length, rand.New(rand.NewSource(seed)))
}

// WalkWith generates a random walk of the given length on the integer
// lattice, starting at (0, 5, 0). Each step moves one unit along a
// uniformly chosen axis direction. The walk is not self-avoiding:
// points may repeat and steps may immediately reverse.
//
// The origin is appended before the length is checked, so the result
// always contains at least one point.
func WalkWith(length int, rng *rand.Rand) []Point {
	points := make([]Point, 0, max(length, 1))
	points = append(points, walkOrigin)

	for len(points) < length {
		step := directions[rng.Intn(6)]
		points = append(points, points[len(points)-1].Add(step))
	}

	return points
}
