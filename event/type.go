package event

import (
	"fmt"

	"github.com/lixenwraith/vi-maze/component"
	"github.com/lixenwraith/vi-maze/vmath"
)

// EventType represents the type of session event
type EventType int

const (
	// EventItemCollected fires once per pickup
	// Trigger: player within pickup radius | Payload: *ItemCollectedPayload
	EventItemCollected EventType = iota

	// EventGoalRevealed fires when the goal becomes visible in normal mode
	// Trigger: elapsed reaches the reveal time | Payload: nil
	EventGoalRevealed

	// EventSessionEnded fires once when the session leaves Playing
	// Payload: *SessionEndedPayload
	EventSessionEnded
)

var typeNames = map[EventType]string{
	EventItemCollected: "item_collected",
	EventGoalRevealed:  "goal_revealed",
	EventSessionEnded:  "session_ended",
}

func (t EventType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// GameEvent is one queued session event
type GameEvent struct {
	Type    EventType
	Frame   uint64 // Session frame that raised the event
	Payload any
}

// ItemCollectedPayload describes a pickup
type ItemCollectedPayload struct {
	Kind component.ItemKind
	Pos  vmath.Vec2
}

// SessionEndedPayload carries the terminal status text and final score
type SessionEndedPayload struct {
	Status string
	Score  int
}

func (e GameEvent) String() string {
	switch p := e.Payload.(type) {
	case *ItemCollectedPayload:
		return fmt.Sprintf("%s@%d %s %.1f,%.1f", e.Type, e.Frame, p.Kind, p.Pos.X, p.Pos.Y)
	case *SessionEndedPayload:
		return fmt.Sprintf("%s@%d %s score=%d", e.Type, e.Frame, p.Status, p.Score)
	default:
		return fmt.Sprintf("%s@%d", e.Type, e.Frame)
	}
}
