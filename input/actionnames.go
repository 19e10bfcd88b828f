package input

// Action is a bindable player command
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionTurnLeft
	ActionTurnRight
	ActionLookUp
	ActionLookDown
	ActionTitle
	ActionQuit

	actionCount
)

// actionRegistry maps canonical action names to actions
// Used by the key config loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"forward":    ActionForward,
	"back":       ActionBack,
	"turn_left":  ActionTurnLeft,
	"turn_right": ActionTurnRight,
	"look_up":    ActionLookUp,
	"look_down":  ActionLookDown,

	"title": ActionTitle,
	"quit":  ActionQuit,
}

// ActionByName returns the action for a canonical name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// String returns the canonical name
func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
