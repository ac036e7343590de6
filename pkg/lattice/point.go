// Package lattice generates integer lattice point sets used to place
// mesh instances: a random walk and an ASCII-map layout.
package lattice

// Point is a position on the 3D integer lattice. Comparable by value.
type Point struct {
	X, Y, Z int
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}
