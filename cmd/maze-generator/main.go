package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/navigation"
	"github.com/lixenwraith/vi-maze/vmath"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE GENERATOR ===")

		w := getInt(reader, "Width [Odd prefered] (default 35): ", 35)
		h := getInt(reader, "Height [Odd prefered] (default 19): ", 19)
		braid := getFloat(reader, "Braiding Factor [0.0 - 1.0] (default 0.2): ", 0.2)
		seed := int64(getInt(reader, "Seed (default 0 = random): ", 0))

		cfg := maze.Config{
			Width:    w,
			Height:   h,
			Braiding: braid,
			Seed:     seed,
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		grid := maze.Generate(cfg)
		field := navigation.Solve(vmath.Center(maze.Origin.X, maze.Origin.Y), grid)
		dur := time.Since(startT)

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid Dimensions: %dx%d, %d floor cells\n", grid.Width(), grid.Height(), grid.FloorCount())

		end, dist := farthest(grid, field)
		path := field.Path(end.X, end.Y)
		fmt.Printf("Farthest cell %v: %d steps\n", end, dist)

		draw(grid, path)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// farthest returns the reachable floor cell with the longest path from the origin
func farthest(grid *maze.Grid, field *navigation.Field) (maze.Point, int) {
	best, dist := maze.Origin, 0
	for _, p := range grid.FloorCells() {
		if d := field.At(p.X, p.Y); d > dist {
			best, dist = p, d
		}
	}
	return best, dist
}

func draw(grid *maze.Grid, path []maze.Point) {
	pathMap := make(map[maze.Point]bool, len(path))
	for _, p := range path {
		pathMap[p] = true
	}
	var end maze.Point
	if len(path) > 0 {
		end = path[0]
	}

	var sb strings.Builder
	for y := range grid.Height() {
		for x := range grid.Width() {
			p := maze.Point{X: x, Y: y}

			switch {
			case p == maze.Origin:
				sb.WriteString("S")
			case len(path) > 0 && p == end:
				sb.WriteString("E")
			case grid.IsWall(x, y):
				sb.WriteString("█")
			case pathMap[p]:
				sb.WriteString("•")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return max(0, min(1, v))
}
