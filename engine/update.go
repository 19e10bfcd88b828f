package engine

import (
	"github.com/lixenwraith/vi-maze/component"
	"github.com/lixenwraith/vi-maze/event"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/logging"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/vmath"
)

// Pickup messages
const (
	MessageCoin = "COIN +100!"
	MessageTime = "TIME +25s!"
)

// Update advances the session by dt seconds under intent and returns the status
// Order: clock, look, movement, enemies, pickups, win, then catch and time-up
// A finished session is not advanced
func (s *Session) Update(dt float64, in input.Intent) Status {
	if s.Status.Over() {
		return s.Status
	}
	dt = vmath.Clamp(dt, 0, parameter.MaxFrameDelta.Seconds())
	s.Frame++
	s.TimeLeft -= dt
	s.Elapsed += dt

	s.steer(dt, in)
	s.updateEnemies(dt)
	s.collectItems()

	if !s.revealed && s.GoalVisible() {
		s.revealed = true
		if !s.Config.GoalAlwaysVisible() {
			s.emit(event.EventGoalRevealed, nil)
		}
	}

	if s.GoalVisible() && vmath.Distance(s.Player.Pos, s.Goal.Pos) < parameter.GoalRadius {
		s.finish(StatusWon)
		return s.Status
	}

	switch {
	case s.TimeLeft <= 0:
		s.finish(StatusTimeUp)
	case s.caught():
		s.finish(StatusCaught)
	}
	return s.Status
}

// steer applies turn, look and collision-checked movement
func (s *Session) steer(dt float64, in input.Intent) {
	p := &s.Player
	p.Heading = vmath.WrapHeading(p.Heading + in.Turn*s.Controls.RotSpeed*dt + in.Yaw)
	p.Pitch = vmath.Clamp(p.Pitch+in.Pitch, -s.Controls.PitchLimit, s.Controls.PitchLimit)

	if in.Move == 0 {
		return
	}
	next := p.Pos.Add(vmath.FromAngle(p.Heading, s.Controls.PlayerSpeed*dt*float64(in.Move)))
	if s.Grid.IsFloorAt(next) {
		p.Pos = next
	}
}

// updateEnemies snaps and replans enemies near their waypoint, then advances all
// Replanning shares one distance field per frame
func (s *Session) updateEnemies(dt float64) {
	step := s.Config.EnemySpeed * dt
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if vmath.Distance(e.Pos, e.Target) < parameter.EnemyWaypointSnap {
			e.Pos = e.Target
			field := s.fields.Get(s.Frame, s.Player.Pos, s.Grid)
			e.Target = field.NextWaypoint(e.Pos, s.Player.Pos, s.Grid)
		}

		remaining := vmath.Distance(e.Pos, e.Target)
		switch {
		case remaining <= parameter.EnemyArrivedEpsilon:
		case step >= remaining:
			// Never overshoot, so fast enemies still land inside the snap radius
			e.Pos = e.Target
		default:
			e.Pos = e.Pos.Add(vmath.FromAngle(e.Target.Sub(e.Pos).Angle(), step))
		}
	}
}

// collectItems removes every item within pickup range and applies its effect
func (s *Session) collectItems() {
	kept := make([]component.Item, 0, len(s.Items))
	for _, it := range s.Items {
		if vmath.Distance(it.Pos, s.Player.Pos) >= parameter.PickupRadius {
			kept = append(kept, it)
			continue
		}
		switch it.Kind {
		case component.ItemCoin:
			s.Score += parameter.CoinScore
			s.showMessage(MessageCoin)
		case component.ItemTimeBonus:
			s.TimeLeft += parameter.TimeBonusSeconds
			s.showMessage(MessageTime)
		}
		s.emit(event.EventItemCollected, &event.ItemCollectedPayload{Kind: it.Kind, Pos: it.Pos})
		logging.Log.Debugf("session %s: picked %s at %.1f,%.1f", s.ID, it.Kind, it.Pos.X, it.Pos.Y)
	}
	s.Items = kept
}

func (s *Session) caught() bool {
	for _, e := range s.Enemies {
		if vmath.Distance(e.Pos, s.Player.Pos) < parameter.EnemyCatchRadius {
			return true
		}
	}
	return false
}

func (s *Session) finish(st Status) {
	s.Status = st
	s.emit(event.EventSessionEnded, &event.SessionEndedPayload{Status: st.String(), Score: s.Score})
	logging.Log.Infof("session %s: %s score=%d elapsed=%.1fs", s.ID, st, s.Score, s.Elapsed)
}
