package navigation

import (
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/vmath"
)

// NudgeStep is the per-axis offset used when no path step exists
const NudgeStep = 0.1

// NextWaypoint solves a field from player and returns the enemy's next target
func NextWaypoint(enemy, player vmath.Vec2, g *maze.Grid) vmath.Vec2 {
	return Solve(player, g).NextWaypoint(enemy, player, g)
}

// NextWaypoint descends the field one cell from the enemy's cell toward the origin.
// Neighbors are tried +x, -x, +y, -y; only a strictly smaller value replaces the
// current best, so the first of several equal improvements wins.
// Falls back to a direct nudge toward player when the enemy has no reachable
// neighbor or is already standing on the chosen cell center.
func (f *Field) NextWaypoint(enemy, player vmath.Vec2, g *maze.Grid) vmath.Vec2 {
	cx, cy := enemy.Cell()
	best := f.At(cx, cy)
	target := vmath.Center(cx, cy)

	for _, v := range dirVectors {
		nx, ny := cx+v[0], cy+v[1]
		if !g.IsFloor(nx, ny) {
			continue
		}
		if d := f.At(nx, ny); closer(d, best) {
			best = d
			target = vmath.Center(nx, ny)
		}
	}

	if best == Unreachable || target == enemy {
		return vmath.Vec2{
			X: vmath.Step(enemy.X, player.X, NudgeStep),
			Y: vmath.Step(enemy.Y, player.Y, NudgeStep),
		}
	}
	return target
}

// closer compares step counts treating Unreachable as infinity
func closer(d, than int) bool {
	if d == Unreachable {
		return false
	}
	return than == Unreachable || d < than
}
