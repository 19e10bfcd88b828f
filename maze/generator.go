package maze

import (
	"math/rand"
	"time"
)

// MinSize is the smallest generated side length
const MinSize = 5

type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze/tree) to 1.0 (no dead ends).
	// Higher values add cycles. Plaza/pillar constraints take precedence.
	Braiding float64

	Seed int64 // Optional (0 = Random)
}

// Origin is the first carved cell; always floor in a generated grid
var Origin = Point{1, 1}

// New generates a perfect maze of the given size
func New(width, height int, seed int64) *Grid {
	return Generate(Config{Width: width, Height: height, Seed: seed})
}

// Generate carves a maze by randomized depth-first search over the odd lattice.
// The outer border is never carved. With Braiding 0 the floor cells form a spanning tree rooted at Origin.
func Generate(cfg Config) *Grid {
	// Round down to odd to stay within requested bounds
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	grid := NewGrid(cols, rows, Wall)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	recursiveBacktracker(grid, Origin, rng)

	if cfg.Braiding > 0 {
		applySmartBraiding(grid, cfg.Braiding, rng)
	}

	return grid
}

// --- Core Algorithms ---

// carveDirs order: N, E, S, W
var carveDirs = [4]Point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

func recursiveBacktracker(grid *Grid, start Point, rng *rand.Rand) {
	cols, rows := grid.width, grid.height

	stack := []Point{start}
	grid.set(start.X, start.Y, Floor)

	candidates := make([]Point, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range carveDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave 1 cell border for walls
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 {
				if grid.At(nx, ny) == Wall {
					candidates = append(candidates, d)
				}
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := Point{curr.X + d.X, curr.Y + d.Y}

		grid.set(curr.X+d.X/2, curr.Y+d.Y/2, Floor)
		grid.set(next.X, next.Y, Floor)

		stack = append(stack, next)
	}
}

func applySmartBraiding(grid *Grid, probability float64, rng *rand.Rand) {
	cols, rows := grid.width, grid.height
	ortho := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	// Odd nodes only (rooms)
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid.At(x, y) == Wall {
				continue
			}

			// Dead end: exactly one floor neighbor
			exits := 0
			for _, d := range ortho {
				if grid.At(x+d.X, y+d.Y) == Floor {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 4)
			for _, jd := range carveDirs {
				nx, ny := x+jd.X, y+jd.Y
				wx, wy := x+jd.X/2, y+jd.Y/2

				// Never open the border
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if grid.At(nx, ny) == Floor && grid.At(wx, wy) == Wall && canSafelyRemoveWall(grid, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid.set(c.X, c.Y, Floor)
			}
		}
	}
}

// canSafelyRemoveWall checks if opening (x, y) creates prohibited topology:
// 1. Plazas (2x2 floor).
// 2. Pillars (isolated walls).
func canSafelyRemoveWall(grid *Grid, x, y int) bool {
	isF := grid.IsFloor

	// Plazas: the four 2x2 quadrants containing (x, y)
	if isF(x-1, y-1) && isF(x, y-1) && isF(x-1, y) {
		return false
	}
	if isF(x, y-1) && isF(x+1, y-1) && isF(x+1, y) {
		return false
	}
	if isF(x-1, y) && isF(x-1, y+1) && isF(x, y+1) {
		return false
	}
	if isF(x+1, y) && isF(x, y+1) && isF(x+1, y+1) {
		return false
	}

	// Pillars: every orthogonal wall neighbor keeps another wall connection
	ortho := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if !grid.InBounds(nx, ny) || grid.At(nx, ny) != Wall {
			continue
		}

		wallConnections := 0
		for _, d2 := range ortho {
			nnx, nny := nx+d2.X, ny+d2.Y
			// (x, y) is about to become floor
			if nnx == x && nny == y {
				continue
			}
			if grid.InBounds(nnx, nny) && grid.At(nnx, nny) == Wall {
				wallConnections++
			}
		}
		if wallConnections == 0 {
			return false
		}
	}

	return true
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
