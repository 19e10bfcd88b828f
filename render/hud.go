package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// HUD is the heads-up overlay content
type HUD struct {
	Score   int
	Seconds int
	Message string // Transient pickup message, empty when none
}

// Line formats the score and time readout
func (h HUD) Line() string {
	return fmt.Sprintf("SCORE: %d | TIME: %ds", h.Score, h.Seconds)
}

// DrawHUD writes the readout top-left and any message centered in the upper third
func DrawHUD(s Surface, h HUD) {
	s.Text(1, 0, h.Line(), ColorHUDText)
	if h.Message != "" {
		_, rows := s.TextSize()
		DrawCentered(s, rows/3, h.Message, ColorHUDMsg)
	}
}

// DrawCentered writes s horizontally centered on row
func DrawCentered(s Surface, row int, text string, fg RGB) {
	cols, _ := s.TextSize()
	col := (cols - runewidth.StringWidth(text)) / 2
	s.Text(max(col, 0), row, text, fg)
}
