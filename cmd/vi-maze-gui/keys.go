package main

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-maze/input"
)

// binding maps one window key to an action
type binding struct {
	key    ebiten.Key
	action input.Action
}

var specialKeys = map[tcell.Key]ebiten.Key{
	tcell.KeyUp:     ebiten.KeyArrowUp,
	tcell.KeyDown:   ebiten.KeyArrowDown,
	tcell.KeyLeft:   ebiten.KeyArrowLeft,
	tcell.KeyRight:  ebiten.KeyArrowRight,
	tcell.KeyPgUp:   ebiten.KeyPageUp,
	tcell.KeyPgDn:   ebiten.KeyPageDown,
	tcell.KeyEscape: ebiten.KeyEscape,
	tcell.KeyEnter:  ebiten.KeyEnter,
	tcell.KeyTab:    ebiten.KeyTab,
	tcell.KeyHome:   ebiten.KeyHome,
	tcell.KeyEnd:    ebiten.KeyEnd,
}

// windowBindings translates a terminal key table to window keys
// Control chords and runes without a physical key are skipped
func windowBindings(kt *input.KeyTable) []binding {
	var out []binding
	for k, a := range kt.SpecialKeys {
		if ek, ok := specialKeys[k]; ok {
			out = append(out, binding{key: ek, action: a})
		}
	}
	for r, a := range kt.Runes {
		if ek, ok := runeKey(r); ok {
			out = append(out, binding{key: ek, action: a})
		}
	}
	return out
}

func runeKey(r rune) (ebiten.Key, bool) {
	var name string
	switch {
	case r == ' ':
		name = "Space"
	case r >= '0' && r <= '9':
		name = "Digit" + string(r)
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		name = strings.ToUpper(string(r))
	default:
		return 0, false
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return k, true
}

// continuous reports whether an action follows key level rather than presses
func continuous(a input.Action) bool {
	switch a {
	case input.ActionForward, input.ActionBack, input.ActionTurnLeft, input.ActionTurnRight:
		return true
	}
	return false
}
