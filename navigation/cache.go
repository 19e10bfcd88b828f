package navigation

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/status"
	"github.com/lixenwraith/vi-maze/vmath"
)

// FieldCache memoizes one field per frame and origin cell
// Enemies planning in the same frame toward the same player cell share one BFS
type FieldCache struct {
	field *Field
	frame uint64
	valid bool

	statSolves *atomic.Int64
	statHits   *atomic.Int64
}

// NewFieldCache creates a cache sized for g; reg may be nil
func NewFieldCache(g *maze.Grid, reg *status.Registry) *FieldCache {
	c := &FieldCache{
		field: NewField(g.Width(), g.Height()),
	}
	if reg != nil {
		c.statSolves = reg.Ints.Get(status.KeyFieldSolve)
		c.statHits = reg.Ints.Get(status.KeyFieldHit)
	}
	return c
}

// Get returns the field for origin in frame, computing it on first request
func (c *FieldCache) Get(frame uint64, origin vmath.Vec2, g *maze.Grid) *Field {
	ox, oy := origin.Cell()
	if c.valid && c.frame == frame && c.field.OriginX == ox && c.field.OriginY == oy {
		if c.statHits != nil {
			c.statHits.Add(1)
		}
		return c.field
	}

	c.field.Compute(ox, oy, g)
	c.frame = frame
	c.valid = true
	if c.statSolves != nil {
		c.statSolves.Add(1)
	}
	return c.field
}

// Invalidate forces recomputation on next Get
func (c *FieldCache) Invalidate() {
	c.valid = false
}
