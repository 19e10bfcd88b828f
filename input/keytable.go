package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable keys, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionForward,
			tcell.KeyDown:   ActionBack,
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyPgUp:   ActionLookUp,
			tcell.KeyPgDn:   ActionLookDown,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			't': ActionTitle,
		},
	}
}

// Lookup resolves a key event to its action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
