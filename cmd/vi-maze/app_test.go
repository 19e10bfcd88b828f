package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/raycast"
)

func newSimApp(t *testing.T, cols, rows int, opts options) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	a := newApp(screen, input.DefaultKeyTable(), opts)
	a.renderer.Sync()
	return a, screen
}

func TestResizeRefitsTouchZonesAndRays(t *testing.T) {
	a, screen := newSimApp(t, 80, 24, options{})
	p := raycast.NewProjector(parameter.FOV, 80)
	m := input.NewMachine(a.keys, config.DefaultControls())
	m.SetWidth(80)

	screen.SetSize(200, 30)
	a.resize(p, m)

	if p.Rays != 200 {
		t.Errorf("Expected 200 rays after resize, got %d", p.Rays)
	}
	if cols, rows := a.renderer.TextSize(); cols != 200 || rows != 30 {
		t.Errorf("Expected 200x30 text grid, got %dx%d", cols, rows)
	}

	// Column 70 is the right edge at 80 wide but the walk zone at 200
	now := time.Unix(0, 0)
	m.HandleEvent(tcell.NewEventMouse(70, 5, tcell.Button1, tcell.ModNone), now)
	in := m.Intent(now)
	if in.Move != 1 || in.Turn != 0 {
		t.Errorf("Expected walk zone after resize, got move=%d turn=%v", in.Move, in.Turn)
	}
}

func TestResizeKeepsFixedRays(t *testing.T) {
	a, screen := newSimApp(t, 80, 24, options{rays: 64})
	p := raycast.NewProjector(parameter.FOV, 64)
	m := input.NewMachine(a.keys, config.DefaultControls())

	screen.SetSize(120, 40)
	a.resize(p, m)

	if p.Rays != 64 {
		t.Errorf("Expected fixed ray count 64, got %d", p.Rays)
	}
}
