package navigation

import (
	"testing"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/vmath"
)

func mustParse(t *testing.T, rows ...string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(rows)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

func TestSolve_Corridor(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#.....#",
		"#######",
	)
	f := Solve(vmath.Vec2{X: 1.5, Y: 1.5}, g)

	for x := 1; x <= 5; x++ {
		if got := f.At(x, 1); got != x-1 {
			t.Errorf("At(%d, 1) = %d, want %d", x, got, x-1)
		}
	}
	if f.At(0, 1) != Unreachable || f.At(3, 0) != Unreachable {
		t.Error("Expected walls to be unreachable")
	}
}

func TestSolve_OutOfBoundsOrigin(t *testing.T) {
	g := maze.New(11, 11, 3)

	for _, origin := range []vmath.Vec2{{X: -0.5, Y: 1}, {X: 1, Y: 11.2}, {X: 40, Y: 40}} {
		f := Solve(origin, g)
		if f.Valid {
			t.Errorf("origin %v: expected invalid field", origin)
		}
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if f.At(x, y) != Unreachable {
					t.Fatalf("origin %v: cell (%d, %d) = %d, want Unreachable", origin, x, y, f.At(x, y))
				}
			}
		}
	}
}

func TestSolve_FieldProperties(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := maze.New(21, 21, seed)
		cells := g.FloorCells()
		origin := cells[int(seed)*7%len(cells)]
		f := Solve(vmath.Center(origin.X, origin.Y), g)

		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				d := f.At(x, y)
				if d == 0 && (x != origin.X || y != origin.Y) {
					t.Fatalf("seed %d: zero distance at (%d, %d), origin %v", seed, x, y, origin)
				}
				if !g.IsFloor(x, y) {
					continue
				}
				if d == Unreachable {
					t.Fatalf("seed %d: floor cell (%d, %d) unreachable in a perfect maze", seed, x, y)
				}
				for _, v := range dirVectors {
					nx, ny := x+v[0], y+v[1]
					if !g.IsFloor(nx, ny) {
						continue
					}
					diff := d - f.At(nx, ny)
					if diff > 1 || diff < -1 {
						t.Fatalf("seed %d: adjacent cells (%d, %d)=%d and (%d, %d)=%d differ by more than 1",
							seed, x, y, d, nx, ny, f.At(nx, ny))
					}
				}
			}
		}
		if f.At(origin.X, origin.Y) != 0 {
			t.Errorf("seed %d: origin distance %d, want 0", seed, f.At(origin.X, origin.Y))
		}
	}
}

func TestSolve_DisconnectedPocket(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#..#..#",
		"#######",
	)
	f := Solve(vmath.Vec2{X: 1.5, Y: 1.5}, g)
	if f.Reachable(4, 1) || f.Reachable(5, 1) {
		t.Error("Expected pocket behind wall to be unreachable")
	}
	if !f.Reachable(2, 1) {
		t.Error("Expected neighbor of origin to be reachable")
	}
}

func TestField_Path(t *testing.T) {
	g := mustParse(t,
		"#####",
		"#...#",
		"###.#",
		"#...#",
		"#####",
	)
	f := Solve(vmath.Vec2{X: 1.5, Y: 1.5}, g)
	path := f.Path(1, 3)

	want := []maze.Point{{1, 3}, {2, 3}, {3, 3}, {3, 2}, {3, 1}, {2, 1}, {1, 1}}
	if len(path) != len(want) {
		t.Fatalf("Expected path length %d, got %d: %v", len(want), len(path), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}

	if f.Path(0, 0) != nil {
		t.Error("Expected nil path from a wall")
	}
}
