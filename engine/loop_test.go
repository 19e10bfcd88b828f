package engine

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/status"
)

// TestLoopStepDelta verifies dt is measured between steps and clamped
func TestLoopStepDelta(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	var got []float64
	l := NewLoop(clock, 10*time.Millisecond, func(dt float64) bool {
		got = append(got, dt)
		return true
	}, nil)

	if l.State() != LoopIdle {
		t.Fatalf("Expected idle, got %d", l.State())
	}
	l.Start(clock.Now())
	l.Step(clock.Advance(16 * time.Millisecond))
	l.Step(clock.Advance(time.Second))

	if len(got) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(got))
	}
	if got[0] != 0.016 {
		t.Errorf("Expected dt 0.016, got %f", got[0])
	}
	if got[1] != 0.1 {
		t.Errorf("Expected dt clamped to 0.1, got %f", got[1])
	}
	if l.State() != LoopRunning {
		t.Errorf("Expected running, got %d", l.State())
	}
}

// TestLoopFirstStepStarts verifies an idle loop starts on its first step with zero dt
func TestLoopFirstStepStarts(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	var dt0 = -1.0
	l := NewLoop(clock, 0, func(dt float64) bool {
		dt0 = dt
		return true
	}, nil)

	if !l.Step(clock.Now()) {
		t.Fatal("Expected loop to keep running")
	}
	if dt0 != 0 {
		t.Errorf("Expected zero dt on first step, got %f", dt0)
	}
}

// TestLoopFrameStops verifies a false frame result stops the loop
func TestLoopFrameStops(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	frames := 0
	l := NewLoop(clock, 0, func(float64) bool {
		frames++
		return frames < 2
	}, nil)

	l.Start(clock.Now())
	if !l.Step(clock.Advance(time.Millisecond)) {
		t.Error("Expected first step to continue")
	}
	if l.Step(clock.Advance(time.Millisecond)) {
		t.Error("Expected second step to stop")
	}
	if l.State() != LoopStopped {
		t.Errorf("Expected stopped, got %d", l.State())
	}
	if l.Step(clock.Advance(time.Millisecond)) || frames != 2 {
		t.Errorf("Expected no frames after stop, got %d", frames)
	}
	if l.Start(clock.Now()) {
		t.Error("Expected stopped loop not to restart")
	}
}

// TestLoopStopCooperative verifies Stop is observed at the next frame boundary
func TestLoopStopCooperative(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	frames := 0
	var l *Loop
	l = NewLoop(clock, 0, func(float64) bool {
		frames++
		l.Stop()
		return true
	}, nil)

	l.Step(clock.Now())
	l.Step(clock.Advance(time.Millisecond))
	l.Stop()
	if frames != 1 {
		t.Errorf("Expected 1 frame, got %d", frames)
	}
}

// TestLoopMetrics verifies tick and fps counters
func TestLoopMetrics(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	reg := status.NewRegistry()
	l := NewLoop(clock, 0, func(float64) bool { return true }, reg)

	l.Start(clock.Now())
	for range 3 {
		l.Step(clock.Advance(50 * time.Millisecond))
	}

	if ticks := reg.Ints.Get(status.KeyTicks).Load(); ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", ticks)
	}
	if fps := reg.Floats.Get(status.KeyFPS).Get(); fps < 19.9 || fps > 20.1 {
		t.Errorf("Expected ~20 fps, got %f", fps)
	}
}

// TestLoopRun verifies Run ticks on the real clock until the frame stops it
func TestLoopRun(t *testing.T) {
	frames := 0
	l := NewLoop(NewTimeProvider(), time.Millisecond, func(float64) bool {
		frames++
		return frames < 3
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.Run(ctx, nil, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if frames != 3 {
		t.Errorf("Expected 3 frames, got %d", frames)
	}
}

// TestLoopRunEvents verifies events are handled on the loop goroutine
func TestLoopRunEvents(t *testing.T) {
	events := make(chan tcell.Event, 1)
	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	var seen []tcell.Event
	l := NewLoop(NewTimeProvider(), time.Millisecond, func(float64) bool {
		return len(seen) == 0
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.Run(ctx, events, func(ev tcell.Event) { seen = append(seen, ev) }); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(seen) != 1 {
		t.Errorf("Expected 1 event, got %d", len(seen))
	}
}

// TestLoopRunCancel verifies context cancellation stops the loop
func TestLoopRunCancel(t *testing.T) {
	l := NewLoop(NewTimeProvider(), time.Millisecond, func(float64) bool { return true }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	if err := l.Run(ctx, nil, nil); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if l.State() != LoopStopped {
		t.Errorf("Expected stopped, got %d", l.State())
	}
}
