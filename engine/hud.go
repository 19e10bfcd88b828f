package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/render"
)

// showMessage replaces the current HUD message; it expires after MessageDuration
// of session time
func (s *Session) showMessage(text string) {
	s.message = text
	s.messageUntil = s.Elapsed + parameter.MessageDuration.Seconds()
}

// Message returns the active HUD message or ""
func (s *Session) Message() string {
	if s.message == "" || s.Elapsed >= s.messageUntil {
		return ""
	}
	return s.message
}

// RemainingSeconds is the displayed clock: ceiling of time left, never negative
func (s *Session) RemainingSeconds() int {
	return int(math.Ceil(max(0, s.TimeLeft)))
}

// HUD returns the overlay content for this frame
func (s *Session) HUD() render.HUD {
	return render.HUD{
		Score:   s.Score,
		Seconds: s.RemainingSeconds(),
		Message: s.Message(),
	}
}

// Result is the end-of-session banner
func (s *Session) Result() string {
	if s.Status == StatusWon {
		return fmt.Sprintf("%s SCORE: %d", s.Status, s.Score)
	}
	return s.Status.String()
}
