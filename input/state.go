package input

import "time"

// KeyState tracks which actions are held
// Terminals report presses and auto-repeats but never releases, so a press holds
// its action for a window that each repeat extends. The first press of a burst
// gets a longer window to bridge the auto-repeat delay.
// Surfaces with real release events use Set instead
type KeyState struct {
	until   [actionCount]time.Time
	down    [actionCount]bool
	hold    time.Duration
	initial time.Duration
}

// NewKeyState creates a tracker with the given repeat and initial hold windows
func NewKeyState(hold, initial time.Duration) *KeyState {
	return &KeyState{hold: hold, initial: max(hold, initial)}
}

// Press records a press or repeat at now
func (k *KeyState) Press(a Action, now time.Time) {
	if a >= actionCount {
		return
	}
	if now.Before(k.until[a]) {
		k.until[a] = now.Add(k.hold)
	} else {
		k.until[a] = now.Add(k.initial)
	}
	// Opposite action releases immediately
	if o := opposite(a); o != ActionNone {
		k.Release(o)
	}
}

// Set records an explicit level from a surface that reports releases
func (k *KeyState) Set(a Action, down bool) {
	if a < actionCount {
		k.down[a] = down
	}
}

// Release drops a held action
func (k *KeyState) Release(a Action) {
	if a < actionCount {
		k.until[a] = time.Time{}
		k.down[a] = false
	}
}

// Held reports whether a is down at now
func (k *KeyState) Held(a Action, now time.Time) bool {
	if a >= actionCount {
		return false
	}
	return k.down[a] || now.Before(k.until[a])
}

// Reset releases everything
func (k *KeyState) Reset() {
	k.until = [actionCount]time.Time{}
	k.down = [actionCount]bool{}
}

func opposite(a Action) Action {
	switch a {
	case ActionForward:
		return ActionBack
	case ActionBack:
		return ActionForward
	case ActionTurnLeft:
		return ActionTurnRight
	case ActionTurnRight:
		return ActionTurnLeft
	default:
		return ActionNone
	}
}
