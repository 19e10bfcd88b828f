package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/core"
	"github.com/lixenwraith/vi-maze/engine"
	"github.com/lixenwraith/vi-maze/event"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/logging"
	"github.com/lixenwraith/vi-maze/parameter"
	"github.com/lixenwraith/vi-maze/raycast"
	"github.com/lixenwraith/vi-maze/render"
)

type screenState int

const (
	stateTitle screenState = iota
	stateRules
	statePlaying
	stateResult
)

var (
	colorMenuBack  = core.MustHex("#101820")
	colorMenuTitle = core.MustHex("#ff66ff")
	colorMenuText  = core.RGBWhite
	colorMenuHint  = core.MustHex("#9a9a9a")
)

type game struct {
	opts     options
	keys     *input.KeyTable
	bindings []binding

	state    screenState
	mode     config.Mode
	session  *engine.Session
	machine  *input.Machine
	proj     *raycast.Projector
	queue    *event.Queue
	drained  []event.GameEvent
	result   string
	resultAt time.Time
	err      error

	surface ebitenSurface
	width   int
	height  int
	last    time.Time

	captured     bool
	cursorX      int
	cursorY      int
	touchIDs     []ebiten.TouchID
	activeTouch  ebiten.TouchID
	touching     bool
	touchDevice  bool
	pressedScrap []ebiten.Key
}

func newGame(keys *input.KeyTable, opts options) *game {
	return &game{
		opts:     opts,
		keys:     keys,
		bindings: windowBindings(keys),
		queue:    event.NewQueue(),
		last:     time.Now(),
	}
}

func (g *game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	switch g.state {
	case stateTitle:
		return g.updateTitle()
	case stateRules:
		g.updateRules()
	case statePlaying:
		return g.updatePlaying(now, dt)
	case stateResult:
		g.updateResult(now)
	}
	return g.err
}

func (g *game) updateTitle() error {
	switch {
	case justPressed(ebiten.KeyDigit1, ebiten.KeyE):
		g.mode, g.state = config.ModeEasy, stateRules
	case justPressed(ebiten.KeyDigit2, ebiten.KeyN):
		g.mode, g.state = config.ModeNormal, stateRules
	case justPressed(ebiten.KeyDigit3, ebiten.KeyC):
		g.mode, g.state = config.ModeCustom, stateRules
	case justPressed(ebiten.KeyEscape, ebiten.KeyQ):
		return ebiten.Termination
	}
	return nil
}

func (g *game) updateRules() {
	switch {
	case justPressed(ebiten.KeyEnter, ebiten.KeySpace) || g.tapped():
		g.start()
	case justPressed(ebiten.KeyEscape):
		g.state = stateTitle
	}
}

// start resolves the selected mode and begins a session
func (g *game) start() {
	res, err := config.Load(g.mode, g.opts.configPath)
	if err != nil {
		g.err = err
		return
	}
	if g.opts.seed != 0 {
		res.Session.Seed = g.opts.seed
	}
	s, err := engine.NewSession(res.Session, engine.Options{Controls: &res.Controls, Events: g.queue})
	if err != nil {
		g.err = err
		return
	}

	rays := parameter.RayCount
	if g.touchDevice {
		rays = parameter.RayCountTouch
	}
	g.session = s
	g.proj = raycast.NewProjector(parameter.FOV, rays)
	g.machine = input.NewMachine(g.keys, res.Controls)
	g.state = statePlaying
}

func (g *game) updatePlaying(now time.Time, dt float64) error {
	g.pollKeys(now)
	g.pollPointer()
	g.pollTouches()

	in := g.machine.Intent(now)
	switch {
	case in.Quit:
		return ebiten.Termination
	case in.Title:
		g.endPlay()
		g.state = stateTitle
		return nil
	}

	st := g.session.Update(dt, in)
	g.drained = g.queue.Drain(g.drained[:0])
	for _, ev := range g.drained {
		logging.Log.Debugf("event %s", ev)
	}
	if st.Over() {
		g.result = g.session.Result()
		g.resultAt = now
		logging.Log.Infof("session %s ended: %s score=%d", g.session.ID, st, g.session.Score)
		g.endPlay()
		g.state = stateResult
	}
	return nil
}

func (g *game) endPlay() {
	if g.captured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		g.captured = false
	}
	g.touching = false
}

func (g *game) updateResult(now time.Time) {
	if now.Sub(g.resultAt) < parameter.ResultScreenDelay {
		return
	}
	g.pressedScrap = inpututil.AppendJustPressedKeys(g.pressedScrap[:0])
	if len(g.pressedScrap) > 0 || g.tapped() || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.state = stateTitle
	}
}

// pollKeys folds window key levels and edges into the machine
func (g *game) pollKeys(now time.Time) {
	down := make(map[input.Action]bool, 4)
	for _, b := range g.bindings {
		if continuous(b.action) {
			down[b.action] = down[b.action] || ebiten.IsKeyPressed(b.key)
			continue
		}
		if inpututil.IsKeyJustPressed(b.key) {
			g.machine.Press(b.action, now)
		}
	}
	for _, a := range []input.Action{input.ActionForward, input.ActionBack, input.ActionTurnLeft, input.ActionTurnRight} {
		g.machine.Keys().Set(a, down[a])
	}
}

// pollPointer captures the cursor on click and turns relative motion into look
func (g *game) pollPointer() {
	if g.touchDevice {
		return
	}
	x, y := ebiten.CursorPosition()
	if !g.captured {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			g.captured = true
			g.cursorX, g.cursorY = x, y
		}
		return
	}
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		g.captured = false
		return
	}
	g.machine.Look(float64(x-g.cursorX), float64(y-g.cursorY))
	g.cursorX, g.cursorY = x, y
}

// pollTouches drives the single-finger gesture from the first touch
func (g *game) pollTouches() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		g.touchDevice = true
	}

	if g.touching {
		for _, id := range g.touchIDs {
			if id == g.activeTouch {
				x, y := ebiten.TouchPosition(id)
				g.machine.TouchMove(float64(x), float64(y))
				return
			}
		}
		g.touching = false
		g.machine.TouchEnd()
		return
	}

	if len(g.touchIDs) > 0 {
		g.activeTouch = g.touchIDs[0]
		g.touching = true
		x, y := ebiten.TouchPosition(g.activeTouch)
		g.machine.TouchStart(float64(x), float64(y), float64(g.width))
	}
}

func (g *game) tapped() bool {
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.begin(screen)

	switch g.state {
	case stateTitle:
		g.drawMenu([]menuLine{
			{"3D MAZE", colorMenuTitle},
			{"", colorMenuText},
			{"[1] EASY     goal always visible", colorMenuText},
			{"[2] NORMAL   goal revealed after 30s", colorMenuText},
			{"[3] CUSTOM   from config file and environment", colorMenuText},
			{"", colorMenuText},
			{"Esc to quit", colorMenuHint},
		})
	case stateRules:
		reveal := "The magenta goal is visible from the start"
		if !config.Preset(g.mode).GoalAlwaysVisible() {
			reveal = "The magenta goal appears after 30 seconds"
		}
		g.drawMenu([]menuLine{
			{"MODE: " + strings.ToUpper(g.mode.String()), colorMenuTitle},
			{"", colorMenuText},
			{"W/S or Up/Down: move    A/D or Left/Right: turn", colorMenuText},
			{"Click to capture the mouse and look around", colorMenuText},
			{"Touch: left side walks, right side turns, swipe to look", colorMenuText},
			{"T: back to title    Esc: quit", colorMenuText},
			{"", colorMenuText},
			{"Yellow coins +100    Cyan clocks +25s", colorMenuText},
			{"Red enemies chase you, do not get caught", colorMenuText},
			{reveal, colorMenuText},
			{"", colorMenuText},
			{"Press Enter or tap to start", colorMenuHint},
		})
	case statePlaying:
		g.drawPlaying()
	case stateResult:
		g.drawMenu([]menuLine{
			{g.result, colorMenuTitle},
			{"", colorMenuText},
			{"Press any key", colorMenuHint},
		})
	}

	g.surface.Show()
}

func (g *game) drawPlaying() {
	w, h := g.surface.Size()
	cmds := g.session.Scene(g.proj, engine.Viewport{
		Width:      float64(w),
		Height:     float64(h),
		PitchScale: float64(h) / parameter.PitchReferenceHeight,
		Minimap:    render.DefaultMinimap(),
	})
	g.surface.Render(cmds)
	render.DrawHUD(&g.surface, g.session.HUD())
	if g.opts.stats {
		_, rows := g.surface.TextSize()
		g.surface.Text(0, rows-1, fmt.Sprintf("FPS: %0.1f TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), colorMenuHint)
	}
}

type menuLine struct {
	text  string
	color core.RGB
}

func (g *game) drawMenu(lines []menuLine) {
	g.surface.Render([]render.Command{render.Clear(colorMenuBack)})
	_, rows := g.surface.TextSize()
	top := (rows - len(lines)) / 2
	for i, l := range lines {
		if l.text != "" {
			render.DrawCentered(&g.surface, top+i, l.text, l.color)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
