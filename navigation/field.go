package navigation

import (
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/vmath"
)

// Unreachable marks cells with no floor path to the origin
const Unreachable = -1

// Neighbor offsets in expansion and tie-break order: +x, -x, +y, -y
var dirVectors = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Field stores BFS step counts from an origin cell over 4-connected floor
type Field struct {
	Width, Height int
	Distances     []int // Per-cell steps from origin, Unreachable if none

	OriginX, OriginY int
	Valid            bool // False when the origin was outside the grid

	queue []int
}

// NewField creates an all-unreachable field for the given dimensions
func NewField(width, height int) *Field {
	f := &Field{
		Width:     width,
		Height:    height,
		Distances: make([]int, width*height),
		OriginX:   -1,
		OriginY:   -1,
		queue:     make([]int, 0, width*height/2),
	}
	f.reset()
	return f
}

// Solve returns a fresh field of shortest path step counts from the cell containing origin
func Solve(origin vmath.Vec2, g *maze.Grid) *Field {
	f := NewField(g.Width(), g.Height())
	x, y := origin.Cell()
	f.Compute(x, y, g)
	return f
}

func (f *Field) reset() {
	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}
	f.Valid = false
}

// Compute refills the field with BFS from cell (ox, oy)
// Origin out of bounds leaves every cell Unreachable; an origin on a wall still seeds the search
func (f *Field) Compute(ox, oy int, g *maze.Grid) {
	if g.Width() != f.Width || g.Height() != f.Height {
		f.Width, f.Height = g.Width(), g.Height()
		f.Distances = make([]int, f.Width*f.Height)
	}
	f.reset()
	f.OriginX, f.OriginY = ox, oy

	if !g.InBounds(ox, oy) {
		return
	}

	w := f.Width
	start := oy*w + ox
	f.Distances[start] = 0

	// Head index instead of re-slicing keeps the backing array reusable
	f.queue = append(f.queue[:0], start)
	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		cx, cy := idx%w, idx/w
		d := f.Distances[idx]

		for _, v := range dirVectors {
			nx, ny := cx+v[0], cy+v[1]
			if !g.IsFloor(nx, ny) {
				continue
			}
			nIdx := ny*w + nx
			if f.Distances[nIdx] != Unreachable {
				continue
			}
			f.Distances[nIdx] = d + 1
			f.queue = append(f.queue, nIdx)
		}
	}

	f.Valid = true
}

// At returns the step count at (x, y), Unreachable outside the field
func (f *Field) At(x, y int) int {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Unreachable
	}
	return f.Distances[y*f.Width+x]
}

// Reachable reports whether (x, y) has a path to the origin
func (f *Field) Reachable(x, y int) bool {
	return f.At(x, y) != Unreachable
}

// Path walks downhill from (x, y) to the origin, both ends included
// Returns nil when (x, y) is unreachable
func (f *Field) Path(x, y int) []maze.Point {
	d := f.At(x, y)
	if d == Unreachable {
		return nil
	}

	path := make([]maze.Point, 0, d+1)
	path = append(path, maze.Point{X: x, Y: y})
	for d > 0 {
		for _, v := range dirVectors {
			nx, ny := x+v[0], y+v[1]
			if nd := f.At(nx, ny); nd != Unreachable && nd < d {
				x, y, d = nx, ny, nd
				break
			}
		}
		path = append(path, maze.Point{X: x, Y: y})
	}
	return path
}
