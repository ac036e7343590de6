package lattice

// FromMap converts a rectangular character map into lattice points.
// Rows map to Z (top row is z=0), columns to X starting at 1. Every
// cell emits a floor point at y=-1; cells matching wall additionally
// emit a wall point at y=0, after the cell's floor point. Rows may
// have differing lengths; no validation is performed.
func FromMap(rows []string, wall rune) []Point {
	var points []Point

	for z, row := range rows {
		x := 1
		for _, ch := range row {
			points = append(points, Point{X: x, Y: -1, Z: z})
			if ch == wall {
				points = append(points, Point{X: x, Y: 0, Z: z})
			}
			x++
		}
	}

	return points
}
