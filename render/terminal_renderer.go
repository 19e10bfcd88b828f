package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// upperHalf draws the top pixel as foreground over the bottom pixel as background
const upperHalf = '▀'

type textCell struct {
	r   rune
	fg  RGB
	set bool
}

// TerminalRenderer is a Surface over a tcell screen
// Each character cell holds two vertically stacked pixels
type TerminalRenderer struct {
	screen tcell.Screen
	pixels *PixelBuffer
	text   []textCell
	cols   int
	rows   int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, pixels: NewPixelBuffer(0, 0)}
	r.Sync()
	return r
}

// Sync resizes buffers to the current screen size
func (r *TerminalRenderer) Sync() {
	cols, rows := r.screen.Size()
	if cols == r.cols && rows == r.rows && len(r.text) == cols*rows {
		return
	}
	r.cols, r.rows = cols, rows
	r.pixels.Resize(cols, rows*2)
	r.text = make([]textCell, cols*rows)
}

// Size implements Surface
func (r *TerminalRenderer) Size() (int, int) {
	return r.cols, r.rows * 2
}

// TextSize implements Surface
func (r *TerminalRenderer) TextSize() (int, int) {
	return r.cols, r.rows
}

// Render implements Surface
func (r *TerminalRenderer) Render(cmds []Command) {
	r.pixels.Apply(cmds)
}

// Text implements Surface, advancing by display width so wide runes occupy two cells
func (r *TerminalRenderer) Text(col, row int, s string, fg RGB) {
	if row < 0 || row >= r.rows {
		return
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= r.cols {
			r.text[row*r.cols+col] = textCell{r: ch, fg: fg, set: true}
			for k := 1; k < w; k++ {
				r.text[row*r.cols+col+k] = textCell{set: true}
			}
		}
		col += w
	}
}

// Cell resolves the glyph and colors written for one character cell
func (r *TerminalRenderer) Cell(col, row int) (ch rune, fg, bg RGB) {
	top := r.pixels.At(col, row*2)
	bottom := r.pixels.At(col, row*2+1)
	if row >= 0 && row < r.rows && col >= 0 && col < r.cols {
		if t := r.text[row*r.cols+col]; t.set {
			return t.r, t.fg, top.Blend(bottom, 0.5)
		}
	}
	return upperHalf, top, bottom
}

// Show implements Surface: flushes pixels and text to the screen and resets the text layer
func (r *TerminalRenderer) Show() {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			ch, fg, bg := r.Cell(col, row)
			if ch == 0 {
				// Trailing half of a wide rune
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
	r.screen.Show()
	clear(r.text)
}

func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
