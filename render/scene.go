package render

import (
	"math"

	"github.com/lixenwraith/vi-maze/component"
	"github.com/lixenwraith/vi-maze/core"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/raycast"
	"github.com/lixenwraith/vi-maze/vmath"
)

var colorMiniEnemy = core.MustHex("#ff0000")

// Minimap describes overview layout in surface pixels
type Minimap struct {
	Span        float64
	MinTile     float64
	Margin      float64
	Pad         float64
	Marker      float64
	EnemyMarker float64
}

// DefaultMinimap returns the layout for full-resolution surfaces
func DefaultMinimap() Minimap {
	return Minimap{
		Span:        parameter.MinimapSpan,
		MinTile:     parameter.MinimapMinTile,
		Margin:      parameter.MinimapMargin,
		Pad:         parameter.MinimapPad,
		Marker:      parameter.MinimapMarker,
		EnemyMarker: parameter.MinimapEnemyMarker,
	}
}

// CompactMinimap returns a one-pixel-per-tile layout for character-cell surfaces
func CompactMinimap() Minimap {
	return Minimap{Span: 0, MinTile: 1, Margin: 1, Pad: 1, Marker: 1, EnemyMarker: 1}
}

// tile returns the side length of one map cell
func (m Minimap) tile(mapWidth int) float64 {
	if mapWidth <= 0 {
		return m.MinTile
	}
	return math.Max(m.MinTile, m.Span/float64(mapWidth))
}

// Scene is everything visible in one frame
type Scene struct {
	View    View
	Frame   raycast.Frame
	Sprites []Draw

	Grid        *maze.Grid
	Enemies     []vmath.Vec2
	Goal        vmath.Vec2
	GoalVisible bool
}

// BuildScene emits the full frame in painter's order: sky and ground, wall strips,
// sprites, then the minimap overlay
func BuildScene(s Scene, mm Minimap) []Command {
	v := s.View
	cmds := make([]Command, 0, 3+len(s.Frame.Heights)+len(s.Sprites)+64)

	horizon := v.Height/2 + v.Pitch
	cmds = append(cmds,
		Rect(0, 0, v.Width, horizon, ColorSky.Opaque()),
		Rect(0, horizon, v.Width, v.Height/2-v.Pitch, ColorGround.Opaque()),
	)

	rays := len(s.Frame.Heights)
	if rays > 0 {
		colW := v.Width / float64(rays)
		for i, h := range s.Frame.Heights {
			cmds = append(cmds, Rect(
				float64(i)*colW,
				(v.Height-h)/2+v.Pitch,
				colW+1,
				h,
				core.Shade(s.Frame.Shades[i]).Opaque(),
			))
		}
	}

	for _, d := range s.Sprites {
		cmds = append(cmds, d.Command)
	}

	if s.Grid != nil {
		cmds = appendMinimap(cmds, s, mm)
	}
	return cmds
}

// appendMinimap anchors the overview at the bottom-right corner
func appendMinimap(cmds []Command, s Scene, mm Minimap) []Command {
	v := s.View
	w, h := s.Grid.Width(), s.Grid.Height()
	ts := mm.tile(w)
	ox := v.Width - float64(w)*ts - mm.Margin
	oy := v.Height - float64(h)*ts - mm.Margin

	cmds = append(cmds, Rect(ox-mm.Pad, oy-mm.Pad, float64(w)*ts+2*mm.Pad, float64(h)*ts+2*mm.Pad, ColorMiniBack))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.Grid.IsWall(x, y) {
				cmds = append(cmds, Rect(ox+float64(x)*ts, oy+float64(y)*ts, ts, ts, ColorMiniWall.Opaque()))
			}
		}
	}

	marker := func(p vmath.Vec2, size float64, c RGB) Command {
		return Rect(ox+p.X*ts-size/2, oy+p.Y*ts-size/2, size, size, c.Opaque())
	}
	if s.GoalVisible {
		cmds = append(cmds, marker(s.Goal, mm.Marker, component.ColorGoal))
	}
	for _, e := range s.Enemies {
		cmds = append(cmds, marker(e, mm.EnemyMarker, colorMiniEnemy))
	}
	cmds = append(cmds, marker(v.Pos, mm.Marker, component.ColorPlayer))
	return cmds
}
