package lattice

import (
	"math/rand"
	"testing"
)

func TestWalkLengthOne(t *testing.T) {
	points := WalkWith(1, rand.New(rand.NewSource(1)))

	if len(points) != 1 {
		t.Fatalf("len = %d, want 1", len(points))
	}
	want := Point{X: 0, Y: 5, Z: 0}
	if points[0] != want {
		t.Errorf("origin = %v, want %v", points[0], want)
	}
}

func TestWalkZeroLengthStillYieldsOrigin(t *testing.T) {
	// The origin is appended before the length bound is checked.
	points := WalkWith(0, rand.New(rand.NewSource(1)))
	if len(points) != 1 {
		t.Fatalf("len = %d, want 1", len(points))
	}
}

func TestWalkUnitSteps(t *testing.T) {
	points := WalkWith(500, rand.New(rand.NewSource(42)))

	if len(points) != 500 {
		t.Fatalf("len = %d, want 500", len(points))
	}
	for i := 1; i < len(points); i++ {
		d := manhattan(points[i-1], points[i])
		if d != 1 {
			t.Fatalf("step %d: distance %d, want 1 (%v -> %v)",
				i, d, points[i-1], points[i])
		}
	}
}

func TestWalkSeedReproducible(t *testing.T) {
	a := Walk(WalkConfig{Length: 100, Seed: 7})
	b := Walk(WalkConfig{Length: 100, Seed: 7})

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestWalkCoversAllDirections(t *testing.T) {
	// A long walk should step along every axis in both signs.
	points := WalkWith(2000, rand.New(rand.NewSource(3)))

	seen := make(map[Point]bool)
	for i := 1; i < len(points); i++ {
		seen[Point{
			X: points[i].X - points[i-1].X,
			Y: points[i].Y - points[i-1].Y,
			Z: points[i].Z - points[i-1].Z,
		}] = true
	}

	for _, d := range directions {
		if !seen[d] {
			t.Errorf("direction %v never drawn", d)
		}
	}
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
