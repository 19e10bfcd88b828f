package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/status"
)

// LoopState is the controller lifecycle: Idle → Running → Stopped
type LoopState int32

const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopStopped
)

// FrameFunc advances one frame by dt seconds; returning false stops the loop
type FrameFunc func(dt float64) bool

// Loop drives frames on a fixed tick from a Clock
// All frame work runs on the goroutine calling Run or Step
type Loop struct {
	clock    Clock
	interval time.Duration
	frame    FrameFunc

	state    atomic.Int32
	last     time.Time
	deadline time.Time

	stopChan chan struct{}
	stopOnce sync.Once

	// Cached metric pointers
	statTicks   *atomic.Int64
	statFPS     *status.AtomicFloat
	statFrameMs *status.AtomicFloat
}

// NewLoop creates an idle loop ticking every interval; reg may be nil
func NewLoop(clock Clock, interval time.Duration, frame FrameFunc, reg *status.Registry) *Loop {
	if interval <= 0 {
		interval = time.Second / parameter.DefaultFPS
	}
	l := &Loop{
		clock:    clock,
		interval: interval,
		frame:    frame,
		stopChan: make(chan struct{}),
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	l.statTicks = reg.Ints.Get(status.KeyTicks)
	l.statFPS = reg.Floats.Get(status.KeyFPS)
	l.statFrameMs = reg.Floats.Get(status.KeyFrameMs)
	return l
}

// State returns the lifecycle state
func (l *Loop) State() LoopState {
	return LoopState(l.state.Load())
}

// Start moves an idle loop to running and anchors frame timing at now
func (l *Loop) Start(now time.Time) bool {
	if !l.state.CompareAndSwap(int32(LoopIdle), int32(LoopRunning)) {
		return false
	}
	l.last = now
	l.deadline = now.Add(l.interval)
	return true
}

// Stop requests termination; the next frame boundary observes it
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.state.Store(int32(LoopStopped))
		close(l.stopChan)
	})
}

// Step runs one frame at now with dt since the previous frame, clamped to MaxFrameDelta
// Returns false once the loop is stopped
func (l *Loop) Step(now time.Time) bool {
	if l.State() == LoopIdle {
		l.Start(now)
	}
	if l.State() != LoopRunning {
		return false
	}

	elapsed := now.Sub(l.last)
	l.last = now
	dt := min(max(elapsed, 0), parameter.MaxFrameDelta)

	ok := l.frame(dt.Seconds())

	l.statTicks.Add(1)
	if elapsed > 0 {
		// Exponential moving average over roughly ten frames
		fps := 1 / elapsed.Seconds()
		if prev := l.statFPS.Get(); prev > 0 {
			fps = prev*0.9 + fps*0.1
		}
		l.statFPS.Set(fps)
	}
	l.statFrameMs.Set(float64(l.clock.Now().Sub(now).Microseconds()) / 1000)

	if !ok {
		l.Stop()
	}
	return l.State() == LoopRunning
}

// Run ticks until the frame function returns false, Stop is called or ctx ends
// Terminal events are drained between frames on the same goroutine; events may be nil
func (l *Loop) Run(ctx context.Context, events <-chan tcell.Event, onEvent func(tcell.Event)) error {
	l.Start(l.clock.Now())

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()

		case <-l.stopChan:
			return nil

		case ev := <-events:
			if onEvent != nil {
				onEvent(ev)
			}

		case <-timer.C:
			now := l.clock.Now()
			if !l.Step(now) {
				return nil
			}

			// Drift correction: fall back to now when more than two ticks behind
			l.deadline = l.deadline.Add(l.interval)
			if now.Sub(l.deadline) > l.interval*2 {
				l.deadline = now.Add(l.interval)
			}
			timer.Reset(max(l.deadline.Sub(l.clock.Now()), 0))
		}
	}
}
