package input

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in the [keys] section
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"pgup":   tcell.KeyPgUp,
	"pgdn":   tcell.KeyPgDn,
	"home":   tcell.KeyHome,
	"end":    tcell.KeyEnd,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"esc":    tcell.KeyEscape,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

// LoadKeyConfig converts key name → action name bindings into a sparse override KeyTable
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for keyStr, actionName := range bindings {
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", keyStr)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			kt.SpecialKeys[k] = action
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, err
		}
		kt.Runes[unicode.ToLower(r)] = action
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	// Named alias
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	// Single character
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, errors.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, errors.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with ActionNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
