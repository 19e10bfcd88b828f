package main

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/core"
	"github.com/lixenwraith/vi-maze/engine"
	"github.com/lixenwraith/vi-maze/event"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/logging"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/raycast"
	"github.com/lixenwraith/vi-maze/render"
	"github.com/lixenwraith/vi-maze/status"
)

type options struct {
	configPath string
	seed       int64
	rays       int
	fps        int
	stats      bool
	mouseLook  bool
}

// outcome is how a screen ended
type outcome int

const (
	outcomeNext outcome = iota
	outcomeTitle
	outcomeQuit
)

var (
	colorMenuBack  = core.MustHex("#101820")
	colorMenuTitle = core.MustHex("#ff66ff")
	colorMenuText  = core.RGBWhite
	colorMenuHint  = core.MustHex("#9a9a9a")
)

type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.KeyTable
	opts     options
	registry *status.Registry
	queue    *event.Queue
	drained  []event.GameEvent

	events chan tcell.Event
}

func newApp(screen tcell.Screen, keys *input.KeyTable, opts options) *app {
	return &app{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		keys:     keys,
		opts:     opts,
		registry: status.NewRegistry(),
		queue:    event.NewQueue(),
		events:   make(chan tcell.Event, 100),
	}
}

// run cycles title, rules, game and result screens until the player quits
// With skipTitle the first round starts directly in mode
func (a *app) run(skipTitle bool, mode config.Mode) error {
	// Event polling goroutine, PollEvent returns nil after Fini
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			a.events <- ev
		}
	})

	for {
		if !skipTitle {
			m, out := a.title()
			if out == outcomeQuit {
				return nil
			}
			mode = m
			if a.rules(mode) == outcomeQuit {
				return nil
			}
		}
		skipTitle = false

		res, err := config.Load(mode, a.opts.configPath)
		if err != nil {
			return errors.Wrap(err, "resolve mode")
		}
		if a.opts.seed != 0 {
			res.Session.Seed = a.opts.seed
		}

		session, out, err := a.play(res)
		if err != nil {
			return err
		}
		switch out {
		case outcomeQuit:
			return nil
		case outcomeTitle:
			continue
		}
		if a.result(session.Result()) == outcomeQuit {
			return nil
		}
	}
}

// play runs one session to its end, a title request or quit
func (a *app) play(res *config.Resolved) (*engine.Session, outcome, error) {
	session, err := engine.NewSession(res.Session, engine.Options{
		Controls: &res.Controls,
		Registry: a.registry,
		Events:   a.queue,
	})
	if err != nil {
		return nil, outcomeQuit, err
	}

	a.renderer.Sync()
	cols, _ := a.renderer.TextSize()
	rays := a.opts.rays
	if rays <= 0 {
		rays = cols
	}
	projector := raycast.NewProjector(parameter.FOV, rays)

	machine := input.NewMachine(a.keys, res.Controls)
	machine.MouseLook = a.opts.mouseLook
	machine.SetWidth(cols)

	clock := engine.NewTimeProvider()
	interval := time.Duration(0)
	if a.opts.fps > 0 {
		interval = time.Second / time.Duration(a.opts.fps)
	}

	out := outcomeNext
	frame := func(dt float64) bool {
		in := machine.Intent(clock.Now())
		switch {
		case in.Quit:
			out = outcomeQuit
			return false
		case in.Title:
			out = outcomeTitle
			return false
		}
		st := session.Update(dt, in)
		a.logEvents()
		a.drawGame(session, projector)
		return !st.Over()
	}

	onEvent := func(ev tcell.Event) {
		if _, ok := ev.(*tcell.EventResize); ok {
			a.resize(projector, machine)
			return
		}
		machine.HandleEvent(ev, clock.Now())
	}

	loop := engine.NewLoop(clock, interval, frame, a.registry)
	if err := loop.Run(context.Background(), a.events, onEvent); err != nil {
		return nil, outcomeQuit, err
	}
	logging.Log.Infof("session %s ended: %s score=%d", session.ID, session.Status, session.Score)
	return session, out, nil
}

// resize refits the renderer, touch zones and auto ray count to the screen
func (a *app) resize(p *raycast.Projector, m *input.Machine) {
	a.screen.Sync()
	a.renderer.Sync()
	cols, _ := a.renderer.TextSize()
	m.SetWidth(cols)
	if a.opts.rays <= 0 {
		p.Rays = cols
	}
}

func (a *app) drawGame(s *engine.Session, p *raycast.Projector) {
	w, h := a.renderer.Size()
	cmds := s.Scene(p, engine.Viewport{
		Width:      float64(w),
		Height:     float64(h),
		PitchScale: float64(h) / parameter.PitchReferenceHeight,
		Minimap:    render.CompactMinimap(),
	})
	a.renderer.Render(cmds)
	render.DrawHUD(a.renderer, s.HUD())
	if a.opts.stats {
		_, rows := a.renderer.TextSize()
		a.renderer.Text(0, rows-1, a.registry.Line(), colorMenuHint)
	}
	a.renderer.Show()
}

// logEvents drains session events into the debug log and the event counter
func (a *app) logEvents() {
	a.drained = a.queue.Drain(a.drained[:0])
	if len(a.drained) == 0 {
		return
	}
	a.registry.Ints.Get(status.KeyEvents).Add(int64(len(a.drained)))
	for _, ev := range a.drained {
		logging.Log.Debugf("event %s", ev)
	}
}

// title shows mode selection
func (a *app) title() (config.Mode, outcome) {
	lines := []menuLine{
		{"3D MAZE", colorMenuTitle},
		{"", colorMenuText},
		{"[1] EASY     goal always visible", colorMenuText},
		{"[2] NORMAL   goal revealed after 30s", colorMenuText},
		{"[3] CUSTOM   from config file and environment", colorMenuText},
		{"", colorMenuText},
		{"Esc to quit", colorMenuHint},
	}
	for {
		a.drawMenu(lines)
		ev, ok := a.waitKey()
		if !ok {
			return 0, outcomeQuit
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return 0, outcomeQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case '1', 'e', 'E':
				return config.ModeEasy, outcomeNext
			case '2', 'n', 'N':
				return config.ModeNormal, outcomeNext
			case '3', 'c', 'C':
				return config.ModeCustom, outcomeNext
			case 'q', 'Q':
				return 0, outcomeQuit
			}
		}
	}
}

// rules explains controls and pickups before a round
func (a *app) rules(mode config.Mode) outcome {
	reveal := "The magenta goal is visible from the start"
	if !config.Preset(mode).GoalAlwaysVisible() {
		reveal = "The magenta goal appears after 30 seconds"
	}
	lines := []menuLine{
		{"MODE: " + strings.ToUpper(mode.String()), colorMenuTitle},
		{"", colorMenuText},
		{"W/S or Up/Down: move    A/D or Left/Right: turn", colorMenuText},
		{"PgUp/PgDn: look    Mouse: left side walks, right side turns", colorMenuText},
		{"T: back to title    Esc: quit", colorMenuText},
		{"", colorMenuText},
		{"Yellow coins +100    Cyan clocks +25s", colorMenuText},
		{"Red enemies chase you, do not get caught", colorMenuText},
		{reveal, colorMenuText},
		{"", colorMenuText},
		{"Press Enter to start", colorMenuHint},
	}
	for {
		a.drawMenu(lines)
		ev, ok := a.waitKey()
		if !ok {
			return outcomeQuit
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return outcomeQuit
		case tcell.KeyEnter:
			return outcomeNext
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				return outcomeNext
			}
		}
	}
}

// result shows the round outcome until a key is pressed
func (a *app) result(text string) outcome {
	lines := []menuLine{
		{text, colorMenuTitle},
		{"", colorMenuText},
		{"Press any key", colorMenuHint},
	}
	a.drawMenu(lines)
	// Drop keys still buffered from play
	time.Sleep(parameter.ResultScreenDelay)
	a.drain()
	a.drawMenu(lines)

	for {
		ev, ok := a.waitKey()
		if !ok || ev.Key() == tcell.KeyCtrlC {
			return outcomeQuit
		}
		if ev.Key() != tcell.KeyNUL {
			return outcomeNext
		}
		a.drawMenu(lines)
	}
}

type menuLine struct {
	text  string
	color core.RGB
}

func (a *app) drawMenu(lines []menuLine) {
	a.renderer.Sync()
	a.renderer.Render([]render.Command{render.Clear(colorMenuBack)})
	_, rows := a.renderer.TextSize()
	top := (rows - len(lines)) / 2
	for i, l := range lines {
		if l.text != "" {
			render.DrawCentered(a.renderer, top+i, l.text, l.color)
		}
	}
	a.renderer.Show()
}

// waitKey blocks for the next key event; a resize yields KeyNUL so callers redraw
func (a *app) waitKey() (*tcell.EventKey, bool) {
	for ev := range a.events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			a.screen.Sync()
			return tcell.NewEventKey(tcell.KeyNUL, 0, tcell.ModNone), true
		}
	}
	return nil, false
}

func (a *app) drain() {
	for {
		select {
		case <-a.events:
		default:
			return
		}
	}
}
