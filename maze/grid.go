package maze

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-maze/vmath"
)

// Cell is the occupancy state of one grid cell
type Cell uint8

const (
	Floor Cell = iota
	Wall
)

// Point is an integer cell coordinate
type Point struct {
	X, Y int
}

// Grid is a row-major occupancy matrix
// Immutable once generated; only this package writes cells
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid creates a grid with every cell set to fill
func NewGrid(width, height int, fill Cell) *Grid {
	cells := make([]Cell, width*height)
	if fill != Floor {
		for i := range cells {
			cells[i] = fill
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Parse builds a grid from rows of '#' (wall) and '.' or ' ' (floor)
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	width := len(rows[0])
	g := NewGrid(width, len(rows), Wall)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '#':
			case '.', ' ':
				g.set(x, y, Floor)
			default:
				return nil, fmt.Errorf("invalid cell %q at (%d, %d)", row[x], x, y)
			}
		}
	}
	return g, nil
}

// Width returns column count
func (g *Grid) Width() int {
	return g.width
}

// Height returns row count
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) indexes a cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at (x, y); out of bounds reads as Wall
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// IsWall reports whether (x, y) blocks movement, out of bounds included
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == Wall
}

// IsFloor reports whether (x, y) is an in-bounds floor cell
func (g *Grid) IsFloor(x, y int) bool {
	return g.At(x, y) == Floor
}

// IsFloorAt reports whether the cell containing p is floor
func (g *Grid) IsFloorAt(p vmath.Vec2) bool {
	x, y := p.Cell()
	return g.IsFloor(x, y)
}

// FloorCount returns the number of floor cells
func (g *Grid) FloorCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Floor {
			n++
		}
	}
	return n
}

// FloorCells returns every floor cell in row-major order
func (g *Grid) FloorCells() []Point {
	cells := make([]Point, 0, g.FloorCount())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Floor {
				cells = append(cells, Point{x, y})
			}
		}
	}
	return cells
}

// String draws walls as full blocks, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width*3 + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Wall {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) set(x, y int, c Cell) {
	g.cells[y*g.width+x] = c
}
