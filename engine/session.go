package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-maze/component"
	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/event"
	"github.com/lixenwraith/vi-maze/logging"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/navigation"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/status"
	"github.com/lixenwraith/vi-maze/vmath"
)

// Status is the session outcome
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusCaught
	StatusTimeUp
)

// String returns the result banner text
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "PLAYING"
	case StatusWon:
		return "GOAL!!"
	case StatusCaught:
		return "GAME OVER"
	case StatusTimeUp:
		return "TIME UP!"
	default:
		return fmt.Sprintf("status(%d)", s)
	}
}

// Over reports whether the session has ended
func (s Status) Over() bool {
	return s != StatusPlaying
}

// Options tune session construction
type Options struct {
	// Grid replaces generation when set
	Grid *maze.Grid

	// Controls defaults to config.DefaultControls
	Controls *config.Controls

	// Registry receives navigation metrics; may be nil
	Registry *status.Registry

	// Events receives pickups, the goal reveal and the end of the session; may be nil
	Events *event.Queue
}

// Session owns all state of one game
type Session struct {
	ID       uuid.UUID
	Config   config.Session
	Controls config.Controls
	Seed     int64

	Grid    *maze.Grid
	Player  component.Player
	Enemies []component.Enemy
	Items   []component.Item
	Goal    component.Goal

	Score    int
	TimeLeft float64 // Seconds, decreases by dt, increased by time bonuses
	Elapsed  float64 // Seconds of play, drives the goal reveal
	Status   Status
	Frame    uint64

	message      string
	messageUntil float64

	rng        *rand.Rand
	fields     *navigation.FieldCache
	startField *navigation.Field
	events     *event.Queue
	revealed   bool
}

// NewSession generates a maze and places the player, goal, enemies and items
func NewSession(cfg config.Session, opts Options) (*Session, error) {
	if opts.Grid == nil {
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrap(err, "new session")
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctl := config.DefaultControls()
	if opts.Controls != nil {
		ctl = *opts.Controls
	}

	s := &Session{
		ID:       uuid.New(),
		Config:   cfg,
		Controls: ctl,
		Seed:     seed,
		TimeLeft: cfg.StartTime,
		rng:      rand.New(rand.NewSource(seed)),
		events:   opts.Events,
	}

	s.Grid = opts.Grid
	if s.Grid == nil {
		s.Grid = maze.Generate(maze.Config{
			Width:    cfg.MapSize,
			Height:   cfg.MapSize,
			Braiding: cfg.Braiding,
			Seed:     seed,
		})
	}

	s.Player = component.Player{Pos: vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY}}
	if !s.Grid.IsFloorAt(s.Player.Pos) {
		return nil, errors.Errorf("new session: start cell %v is not floor", maze.Origin)
	}
	s.fields = navigation.NewFieldCache(s.Grid, opts.Registry)
	s.startField = navigation.Solve(s.Player.Pos, s.Grid)

	s.Goal = component.Goal{
		Pos:   s.spawnPoint(s.Grid.Width() / 2),
		Color: component.ColorGoal,
	}

	s.Enemies = make([]component.Enemy, 0, cfg.EnemyCount)
	for range cfg.EnemyCount {
		s.Enemies = append(s.Enemies, component.NewEnemy(s.spawnPoint(parameter.EnemySpawnMinDistance)))
	}

	s.Items = make([]component.Item, 0, cfg.ItemCount+parameter.TimeBonusCount)
	for range cfg.ItemCount {
		s.Items = append(s.Items, component.NewItem(s.spawnPoint(parameter.CoinSpawnMinDistance), component.ItemCoin))
	}
	for range parameter.TimeBonusCount {
		s.Items = append(s.Items, component.NewItem(s.spawnPoint(parameter.TimeBonusSpawnMinDistance), component.ItemTimeBonus))
	}

	logging.Log.Infof("session %s: mode=%s size=%dx%d seed=%d enemies=%d items=%d",
		s.ID, cfg.Mode, s.Grid.Width(), s.Grid.Height(), seed, len(s.Enemies), len(s.Items))
	return s, nil
}

// spawnPoint returns a floor cell center at least minDist path steps from the start
// Random sampling first, then a random pick among all qualifying cells, then the
// farthest reachable cell when nothing qualifies
func (s *Session) spawnPoint(minDist int) vmath.Vec2 {
	w, h := s.Grid.Width(), s.Grid.Height()
	qualifies := func(x, y int) bool {
		return s.Grid.IsFloor(x, y) && s.startField.At(x, y) >= minDist
	}

	for range parameter.SpawnTries {
		x, y := s.rng.Intn(w), s.rng.Intn(h)
		if qualifies(x, y) {
			return vmath.Center(x, y)
		}
	}

	var candidates []maze.Point
	farthest, best := maze.Origin, 0
	for _, p := range s.Grid.FloorCells() {
		d := s.startField.At(p.X, p.Y)
		if d >= minDist {
			candidates = append(candidates, p)
		}
		if d > best {
			farthest, best = p, d
		}
	}
	if len(candidates) > 0 {
		p := candidates[s.rng.Intn(len(candidates))]
		return vmath.Center(p.X, p.Y)
	}
	logging.Log.Debugf("session %s: no cell at distance %d, using %v at %d", s.ID, minDist, farthest, best)
	return vmath.Center(farthest.X, farthest.Y)
}

// emit pushes a session event when a queue is attached
func (s *Session) emit(t event.EventType, payload any) {
	if s.events != nil {
		s.events.Push(event.GameEvent{Type: t, Frame: s.Frame, Payload: payload})
	}
}

// GoalVisible reports whether the goal is drawn and can be reached
func (s *Session) GoalVisible() bool {
	return s.Config.GoalAlwaysVisible() || s.Elapsed >= parameter.GoalRevealElapsed.Seconds()
}

// Renderables lists the sprites to draw this frame: items, enemies, then the goal if visible
func (s *Session) Renderables() []component.Renderable {
	out := make([]component.Renderable, 0, len(s.Items)+len(s.Enemies)+1)
	for _, it := range s.Items {
		out = append(out, it)
	}
	for _, e := range s.Enemies {
		out = append(out, e)
	}
	if s.GoalVisible() {
		out = append(out, s.Goal)
	}
	return out
}

// EnemyPositions returns enemy positions for overlays
func (s *Session) EnemyPositions() []vmath.Vec2 {
	out := make([]vmath.Vec2, len(s.Enemies))
	for i, e := range s.Enemies {
		out[i] = e.Pos
	}
	return out
}
