package maze

import (
	"strings"
	"testing"

	"github.com/lixenwraith/vi-maze/vmath"
)

func TestParse(t *testing.T) {
	g, err := Parse([]string{
		"#####",
		"#...#",
		"#.#.#",
		"#####",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if g.Width() != 5 || g.Height() != 4 {
		t.Fatalf("Expected 5x4, got %dx%d", g.Width(), g.Height())
	}
	if !g.IsFloor(1, 1) || !g.IsWall(2, 2) {
		t.Error("Cells parsed incorrectly")
	}
	if g.FloorCount() != 5 {
		t.Errorf("Expected 5 floor cells, got %d", g.FloorCount())
	}
	if cells := g.FloorCells(); len(cells) != 5 || cells[0] != (Point{1, 1}) {
		t.Errorf("Unexpected floor cells %v", cells)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"###", "#.", "###"}},
		{"bad rune", []string{"###", "#x#", "###"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.rows); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestGrid_OutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(3, 3, Floor)
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if !g.IsWall(p.X, p.Y) {
			t.Errorf("Expected out-of-bounds %v to read as wall", p)
		}
		if g.InBounds(p.X, p.Y) {
			t.Errorf("Expected %v out of bounds", p)
		}
	}
	if !g.IsFloorAt(vmath.Vec2{X: 2.9, Y: 0.1}) {
		t.Error("Expected continuous position to index floor cell (2, 0)")
	}
	if g.IsFloorAt(vmath.Vec2{X: -0.1, Y: 1}) {
		t.Error("Expected negative coordinate to floor into an out-of-bounds cell")
	}
}

func TestGrid_String(t *testing.T) {
	g, _ := Parse([]string{"###", "#.#", "###"})
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[1] != "█ █" {
		t.Errorf("Unexpected middle row %q", lines[1])
	}
}
