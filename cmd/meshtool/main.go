// meshtool is a CLI utility for inspecting and exporting bevelbox geometry.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/bevelbox/pkg/geom"
	"github.com/Faultbox/bevelbox/pkg/lattice"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "obj":
		cmdObj(args)
	case "walk":
		cmdWalk(args)
	case "map":
		cmdMap(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - beveled box geometry utility

Usage:
  meshtool <command> [options]

Commands:
  info [fidelity]                      Show mesh statistics (basic, partial, full)
  obj <fidelity> [x y z radius]        Write a Wavefront OBJ mesh to stdout
  walk <length> [seed]                 Dump random walk lattice points
  map <file> [wall-char]               Dump lattice points for an ASCII map file

Examples:
  meshtool info full
  meshtool obj full 3 3 3 0.5 > box.obj
  meshtool walk 40 12345
  meshtool map room.txt X`)
}

func cmdInfo(args []string) {
	fidelities := []geom.Fidelity{geom.FidelityBasic, geom.FidelityPartial, geom.FidelityFull}
	if len(args) >= 1 {
		fidelities = []geom.Fidelity{geom.ParseFidelity(args[0])}
	}

	box := geom.DefaultBox()
	warnRadius(box)

	for _, f := range fidelities {
		mesh := geom.BuildMesh(box, f)
		fmt.Printf("Fidelity: %s\n", f)
		fmt.Printf("  Vertices:  %d\n", len(mesh.Vertices))
		fmt.Printf("  Indices:   %d\n", len(mesh.Indices))
		fmt.Printf("  Triangles: %d\n", mesh.TriangleCount())
	}
}

func cmdObj(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool obj <fidelity> [x y z radius]")
		os.Exit(1)
	}

	fidelity := geom.ParseFidelity(args[0])
	box := geom.DefaultBox()
	if len(args) >= 5 {
		box = geom.NewBox(
			parseFloat(args[1]), parseFloat(args[2]),
			parseFloat(args[3]), parseFloat(args[4]),
		)
	}
	warnRadius(box)

	mesh := geom.BuildMesh(box, fidelity)
	if err := geom.WriteOBJ(os.Stdout, mesh, "bevelbox"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdWalk(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool walk <length> [seed]")
		os.Exit(1)
	}

	length, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid length: %v\n", err)
		os.Exit(1)
	}
	var seed int64
	if len(args) >= 2 {
		seed, err = strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid seed: %v\n", err)
			os.Exit(1)
		}
	}

	points := lattice.Walk(lattice.WalkConfig{Length: length, Seed: seed})
	printPoints(points)
}

func cmdMap(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool map <file> [wall-char]")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	wall := 'X'
	if len(args) >= 2 && args[1] != "" {
		wall = []rune(args[1])[0]
	}

	points := lattice.FromMap(splitLines(string(data)), wall)
	printPoints(points)
}

func printPoints(points []lattice.Point) {
	for _, p := range points {
		fmt.Printf("%d %d %d\n", p.X, p.Y, p.Z)
	}
	fmt.Fprintf(os.Stderr, "%d points\n", len(points))
}

// splitLines splits on newlines, dropping a trailing empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func parseFloat(s string) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid number %q: %v\n", s, err)
		os.Exit(1)
	}
	return float32(v)
}

// warnRadius flags a bevel radius large enough to self-intersect.
// The mesh is still generated; the geometry is just not valid.
func warnRadius(box geom.Box) {
	if box.EdgeRadius >= box.MinExtent()/2 {
		fmt.Fprintf(os.Stderr, "Warning: edge radius %g >= half the smallest side; geometry will self-intersect\n",
			box.EdgeRadius)
	}
}
