package lattice

import (
	"testing"
)

func TestFromMapSingleRow(t *testing.T) {
	got := FromMap([]string{"X "}, 'X')

	want := []Point{
		{X: 1, Y: -1, Z: 0}, // floor under the wall cell
		{X: 1, Y: 0, Z: 0},  // the wall itself
		{X: 2, Y: -1, Z: 0}, // floor-only cell
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromMapRoom(t *testing.T) {
	rows := []string{
		"XXXXXXXXXXXXXX",
		"X  X         X",
		"X  X   XX    X",
		"X      XX    X",
		"X  XX        X",
		"X            X",
		"XXXXXXXXXXXXXX",
	}

	walls := 0
	for _, row := range rows {
		for _, ch := range row {
			if ch == 'X' {
				walls++
			}
		}
	}

	got := FromMap(rows, 'X')

	// One floor point per cell plus one wall point per 'X'.
	wantLen := 14*7 + walls
	if len(got) != wantLen {
		t.Fatalf("len = %d, want %d", len(got), wantLen)
	}

	floors, wallPoints := 0, 0
	for _, p := range got {
		switch p.Y {
		case -1:
			floors++
		case 0:
			wallPoints++
		default:
			t.Fatalf("unexpected y in %v", p)
		}
		if p.X < 1 || p.X > 14 {
			t.Errorf("x out of range in %v", p)
		}
		if p.Z < 0 || p.Z > 6 {
			t.Errorf("z out of range in %v", p)
		}
	}
	if floors != 14*7 {
		t.Errorf("floor points = %d, want %d", floors, 14*7)
	}
	if wallPoints != walls {
		t.Errorf("wall points = %d, want %d", wallPoints, walls)
	}
}

func TestFromMapColumnsStartAtOne(t *testing.T) {
	got := FromMap([]string{"ab"}, 'z')

	if got[0].X != 1 {
		t.Errorf("first column x = %d, want 1", got[0].X)
	}
	if got[1].X != 2 {
		t.Errorf("second column x = %d, want 2", got[1].X)
	}
}

func TestFromMapRaggedRows(t *testing.T) {
	got := FromMap([]string{"XXX", "X"}, 'X')

	// 3 cells in row 0, 1 in row 1, every cell a wall: 4 floors + 4 walls.
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	last := got[len(got)-1]
	if (last != Point{X: 1, Y: 0, Z: 1}) {
		t.Errorf("last point = %v, want {1 0 1}", last)
	}
}

func TestFromMapEmpty(t *testing.T) {
	if got := FromMap(nil, 'X'); len(got) != 0 {
		t.Errorf("nil rows: len = %d, want 0", len(got))
	}
	if got := FromMap([]string{""}, 'X'); len(got) != 0 {
		t.Errorf("empty row: len = %d, want 0", len(got))
	}
}
