package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-maze/component"
	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/event"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/vmath"
)

var zeroIntent input.Intent

func TestItemPickup(t *testing.T) {
	s := newRoomSession(t, config.ModeNormal)
	s.Items = []component.Item{
		component.NewItem(vmath.Vec2{X: 2.5, Y: 1.5}, component.ItemCoin),
		component.NewItem(vmath.Vec2{X: 2.5, Y: 2.5}, component.ItemTimeBonus),
	}

	s.Player.Pos = vmath.Vec2{X: 2.3, Y: 1.5}
	s.Update(0.1, zeroIntent)
	assert.Equal(t, 100, s.Score)
	assert.Equal(t, MessageCoin, s.Message())
	require.Len(t, s.Items, 1)
	assert.Equal(t, component.ItemTimeBonus, s.Items[0].Kind)

	before := s.TimeLeft
	s.Player.Pos = vmath.Vec2{X: 2.5, Y: 2.2}
	s.Update(0.1, zeroIntent)
	assert.InDelta(t, before-0.1+25, s.TimeLeft, 1e-9)
	assert.Equal(t, 100, s.Score)
	assert.Equal(t, MessageTime, s.Message())
	assert.Empty(t, s.Items)
}

func TestItemPickupLeavesHeldSliceIntact(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)
	held := []component.Item{
		component.NewItem(vmath.Vec2{X: 2.5, Y: 1.5}, component.ItemCoin),
		component.NewItem(vmath.Vec2{X: 5.5, Y: 2.5}, component.ItemTimeBonus),
	}
	s.Items = held
	s.Player.Pos = vmath.Vec2{X: 2.3, Y: 1.5}

	s.Update(0.01, zeroIntent)
	require.Len(t, s.Items, 1)
	assert.Equal(t, component.ItemTimeBonus, s.Items[0].Kind)
	require.Len(t, held, 2)
	assert.Equal(t, component.ItemCoin, held[0].Kind)
	assert.Equal(t, component.ItemTimeBonus, held[1].Kind)
}

func TestItemOutsideRadiusKept(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)
	s.Items = []component.Item{component.NewItem(vmath.Vec2{X: 2.5, Y: 1.5}, component.ItemCoin)}
	s.Player.Pos = vmath.Vec2{X: 2.0, Y: 1.5}

	s.Update(0.01, zeroIntent)
	assert.Len(t, s.Items, 1, "exactly 0.5 away is not a pickup")
	assert.Equal(t, 0, s.Score)
}

func TestMessageExpires(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)
	s.Items = []component.Item{component.NewItem(vmath.Vec2{X: 1.5, Y: 1.5}, component.ItemCoin)}
	s.Update(0.05, zeroIntent)
	require.Equal(t, MessageCoin, s.Message())

	for range 7 {
		s.Update(0.1, zeroIntent)
	}
	assert.Equal(t, MessageCoin, s.Message())

	s.Update(0.1, zeroIntent)
	s.Update(0.1, zeroIntent)
	assert.Empty(t, s.Message())
	assert.Equal(t, 100, s.HUD().Score)
}

func TestGoalRevealNormalMode(t *testing.T) {
	s := newRoomSession(t, config.ModeNormal)
	s.Player.Pos = s.Goal.Pos

	s.Elapsed = 29
	assert.False(t, s.GoalVisible())
	assert.Equal(t, StatusPlaying, s.Update(0.01, zeroIntent), "hidden goal cannot be reached")

	s.Elapsed = 31
	assert.True(t, s.GoalVisible())
	assert.Equal(t, StatusWon, s.Update(0.01, zeroIntent))
	assert.Equal(t, "GOAL!! SCORE: 0", s.Result())
}

func TestGoalVisibleStaysAfterTimeBonus(t *testing.T) {
	s := newRoomSession(t, config.ModeNormal)
	s.Elapsed = 31
	s.Items = []component.Item{component.NewItem(s.Player.Pos, component.ItemTimeBonus)}
	s.Update(0.01, zeroIntent)
	assert.True(t, s.GoalVisible())
}

func TestGoalEasyModeAlwaysVisible(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)
	assert.True(t, s.GoalVisible())

	s.Player.Pos = s.Goal.Pos.Add(vmath.Vec2{X: -0.6})
	s.Score = 300
	assert.Equal(t, StatusWon, s.Update(0.01, zeroIntent))
	assert.Equal(t, "GOAL!! SCORE: 300", s.Result())
}

func TestCaughtAndTimeUp(t *testing.T) {
	t.Run("caught", func(t *testing.T) {
		s := newRoomSession(t, config.ModeNormal)
		s.Enemies = []component.Enemy{component.NewEnemy(s.Player.Pos.Add(vmath.Vec2{X: 0.3}))}
		assert.Equal(t, StatusCaught, s.Update(0.01, zeroIntent))
		assert.Equal(t, "GAME OVER", s.Result())
	})

	t.Run("time_up", func(t *testing.T) {
		s := newRoomSession(t, config.ModeNormal)
		s.TimeLeft = 0.05
		assert.Equal(t, StatusTimeUp, s.Update(0.1, zeroIntent))
		assert.Equal(t, 0, s.RemainingSeconds())
		assert.Equal(t, "TIME UP!", s.Result())
	})

	t.Run("time_up_wins_over_caught", func(t *testing.T) {
		s := newRoomSession(t, config.ModeNormal)
		s.TimeLeft = 0.05
		s.Enemies = []component.Enemy{component.NewEnemy(s.Player.Pos)}
		assert.Equal(t, StatusTimeUp, s.Update(0.1, zeroIntent))
	})

	t.Run("win_checked_first", func(t *testing.T) {
		s := newRoomSession(t, config.ModeEasy)
		s.Player.Pos = s.Goal.Pos
		s.Enemies = []component.Enemy{component.NewEnemy(s.Goal.Pos)}
		s.TimeLeft = 0.05
		assert.Equal(t, StatusWon, s.Update(0.1, zeroIntent))
	})
}

func TestFinishedSessionFrozen(t *testing.T) {
	s := newRoomSession(t, config.ModeNormal)
	s.TimeLeft = 0.01
	s.Update(0.1, zeroIntent)
	require.True(t, s.Status.Over())

	pos, left := s.Player.Pos, s.TimeLeft
	s.Update(0.1, input.Intent{Move: 1})
	assert.Equal(t, pos, s.Player.Pos)
	assert.Equal(t, left, s.TimeLeft)
}

func TestFrameDeltaClamped(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)
	s.Update(5, zeroIntent)
	assert.InDelta(t, 60-parameter.MaxFrameDelta.Seconds(), s.TimeLeft, 1e-9)
	assert.InDelta(t, parameter.MaxFrameDelta.Seconds(), s.Elapsed, 1e-9)
}

func TestSteering(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)

	s.Update(0.1, input.Intent{Turn: 1, Yaw: 0.05})
	assert.InDelta(t, 0.28+0.05, s.Player.Heading, 1e-9)

	s.Update(0.01, input.Intent{Pitch: 1000})
	assert.Equal(t, parameter.PitchLimit, s.Player.Pitch)
	s.Update(0.01, input.Intent{Pitch: -2000})
	assert.Equal(t, -parameter.PitchLimit, s.Player.Pitch)
}

func TestHeadingWrapsNonNegative(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)
	s.Player.Heading = 0

	s.Update(0.1, input.Intent{Turn: -1})
	assert.InDelta(t, vmath.Tau-0.28, s.Player.Heading, 1e-9)

	s.Update(0.01, input.Intent{Yaw: -3 * vmath.Tau})
	assert.GreaterOrEqual(t, s.Player.Heading, 0.0)
	assert.Less(t, s.Player.Heading, vmath.Tau)
}

func TestMovementCollision(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)
	s.Goal.Pos = vmath.Vec2{X: 7.5, Y: 1.5}

	s.Update(0.1, input.Intent{Move: 1})
	assert.InDelta(t, 1.85, s.Player.Pos.X, 1e-9)

	// Face west into the border wall
	s.Player.Heading = math.Pi
	for range 20 {
		s.Update(0.1, input.Intent{Move: 1})
	}
	assert.GreaterOrEqual(t, s.Player.Pos.X, 1.0)
	assert.True(t, s.Grid.IsFloorAt(s.Player.Pos))

	// Backing up moves east
	x := s.Player.Pos.X
	s.Update(0.1, input.Intent{Move: -1})
	assert.Greater(t, s.Player.Pos.X, x)
}

func TestEnemyPursuit(t *testing.T) {
	s := newRoomSession(t, config.ModeNormal)
	s.Enemies = []component.Enemy{component.NewEnemy(vmath.Vec2{X: 5.5, Y: 1.5})}

	s.Update(0.1, zeroIntent)
	e := s.Enemies[0]
	assert.Equal(t, vmath.Vec2{X: 4.5, Y: 1.5}, e.Target)
	assert.InDelta(t, 5.5-parameter.EnemySpeedNormal*0.1, e.Pos.X, 1e-9)

	for range 100 {
		if s.Update(0.1, zeroIntent) != StatusPlaying {
			break
		}
	}
	assert.Equal(t, StatusCaught, s.Status)
}

func TestEnemyNoOvershoot(t *testing.T) {
	s := newRoomSession(t, config.ModeNormal)
	s.Config.EnemySpeed = 50
	s.Enemies = []component.Enemy{component.NewEnemy(vmath.Vec2{X: 7.5, Y: 3.5})}

	s.Update(0.1, zeroIntent)
	e := s.Enemies[0]
	assert.Equal(t, e.Target, e.Pos, "fast enemy lands on its waypoint")
}

func TestRemainingSeconds(t *testing.T) {
	s := newRoomSession(t, config.ModeEasy)
	tests := []struct {
		left float64
		want int
	}{
		{42.2, 43},
		{42, 42},
		{0.01, 1},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		s.TimeLeft = tt.left
		assert.Equal(t, tt.want, s.RemainingSeconds(), "time left %v", tt.left)
	}
}

func TestSessionEvents(t *testing.T) {
	s := newRoomSession(t, config.ModeNormal)
	q := event.NewQueue()
	s.events = q
	s.Items = []component.Item{component.NewItem(s.Player.Pos, component.ItemCoin)}

	s.Update(0.05, zeroIntent)
	evs := q.Drain(nil)
	require.Len(t, evs, 1)
	assert.Equal(t, event.EventItemCollected, evs[0].Type)
	p, ok := evs[0].Payload.(*event.ItemCollectedPayload)
	require.True(t, ok)
	assert.Equal(t, component.ItemCoin, p.Kind)

	s.Elapsed = parameter.GoalRevealElapsed.Seconds()
	s.Update(0.05, zeroIntent)
	evs = q.Drain(evs[:0])
	require.Len(t, evs, 1)
	assert.Equal(t, event.EventGoalRevealed, evs[0].Type)

	s.Player.Pos = s.Goal.Pos
	require.Equal(t, StatusWon, s.Update(0.05, zeroIntent))
	evs = q.Drain(evs[:0])
	require.Len(t, evs, 1)
	assert.Equal(t, event.EventSessionEnded, evs[0].Type)
	assert.Equal(t, &event.SessionEndedPayload{Status: "GOAL!!", Score: 100}, evs[0].Payload)

	// Finished sessions raise nothing further
	s.Update(0.05, zeroIntent)
	assert.Zero(t, q.Len())
}
