package component

import (
	"github.com/lixenwraith/vi-maze/core"
	"github.com/lixenwraith/vi-maze/vmath"
)

// ItemKind discriminates pickup effects
type ItemKind uint8

const (
	ItemCoin ItemKind = iota
	ItemTimeBonus
)

// String returns the kind name used in logs
func (k ItemKind) String() string {
	switch k {
	case ItemCoin:
		return "coin"
	case ItemTimeBonus:
		return "time"
	default:
		return "unknown"
	}
}

// Item is a collectible removed on overlap
type Item struct {
	Pos   vmath.Vec2
	Kind  ItemKind
	Color core.RGB
}

// NewItem creates an item with its kind color
func NewItem(pos vmath.Vec2, kind ItemKind) Item {
	c := ColorCoin
	if kind == ItemTimeBonus {
		c = ColorTimeBonus
	}
	return Item{Pos: pos, Kind: kind, Color: c}
}

// Position implements Renderable
func (i Item) Position() vmath.Vec2 { return i.Pos }

func (Item) renderable() {}
