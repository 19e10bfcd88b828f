package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vi-maze/render"
)

// Debug font cell size in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

type textOp struct {
	col, row int
	s        string
	fg       render.RGB
}

// ebitenSurface rasterizes draw commands onto the frame image Draw receives
// Text is queued and drawn over the commands on Show
type ebitenSurface struct {
	target  *ebiten.Image
	width   int
	height  int
	texts   []textOp
	scratch *ebiten.Image
}

func (s *ebitenSurface) begin(target *ebiten.Image) {
	s.target = target
	b := target.Bounds()
	s.width, s.height = b.Dx(), b.Dy()
	s.texts = s.texts[:0]
}

func (s *ebitenSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *ebitenSurface) TextSize() (int, int) {
	return s.width / glyphWidth, s.height / glyphHeight
}

func (s *ebitenSurface) Render(cmds []render.Command) {
	for _, c := range cmds {
		col := toColor(c.Color)
		switch c.Op {
		case render.OpClear:
			s.target.Fill(col)
		case render.OpRect:
			vector.DrawFilledRect(s.target, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), col, false)
		case render.OpDisc:
			vector.DrawFilledCircle(s.target, float32(c.X), float32(c.Y), float32(c.R), col, true)
		}
	}
}

func (s *ebitenSurface) Text(col, row int, str string, fg render.RGB) {
	s.texts = append(s.texts, textOp{col: col, row: row, s: str, fg: fg})
}

// Show draws queued text; the debug font is white so each line is printed to a
// scratch image and tinted on the way to the target
func (s *ebitenSurface) Show() {
	if len(s.texts) == 0 {
		return
	}
	if s.scratch == nil || s.scratch.Bounds().Dx() < s.width {
		s.scratch = ebiten.NewImage(max(s.width, glyphWidth), glyphHeight)
	}
	for _, t := range s.texts {
		s.scratch.Clear()
		ebitenutil.DebugPrint(s.scratch, t.s)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.col*glyphWidth), float64(t.row*glyphHeight))
		op.ColorScale.ScaleWithColor(color.RGBA{R: t.fg.R, G: t.fg.G, B: t.fg.B, A: 255})
		s.target.DrawImage(s.scratch, op)
	}
	s.texts = s.texts[:0]
}

func toColor(c render.RGBA) color.NRGBA {
	a := max(0, min(1, c.A))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
