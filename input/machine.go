package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/parameter"
)

// Machine folds raw device events into per-frame Intents
// Held state persists across frames; look deltas and the title/quit latches
// accumulate until the next Intent call
type Machine struct {
	keys  *KeyTable
	state *KeyState
	touch Touch

	yawPerPixel float64
	pitchFactor float64

	// MouseLook enables hover-motion look on terminals
	MouseLook bool

	width      int // Surface width in cells for touch zones
	mouseX     int
	mouseY     int
	mouseSeen  bool
	buttonDown bool

	yaw   float64
	pitch float64
	title bool
	quit  bool
}

// NewMachine creates a machine with the given bindings and look tuning
func NewMachine(keys *KeyTable, ctl config.Controls) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{
		keys:        keys,
		state:       NewKeyState(parameter.KeyHoldWindow, parameter.KeyInitialHold),
		yawPerPixel: ctl.YawPerPixel(),
		pitchFactor: ctl.PitchFactor,
	}
}

// Keys exposes held state for surfaces that report releases
func (m *Machine) Keys() *KeyState {
	return m.state
}

// SetWidth records the surface width in cells
func (m *Machine) SetWidth(w int) {
	m.width = w
}

// HandleEvent routes a tcell event
func (m *Machine) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		m.Press(m.keys.Lookup(ev), now)
	case *tcell.EventMouse:
		m.handleMouse(ev)
	case *tcell.EventResize:
		w, _ := ev.Size()
		m.width = w
	}
}

// Press applies one action press at now
func (m *Machine) Press(a Action, now time.Time) {
	switch a {
	case ActionNone:
	case ActionTitle:
		m.title = true
	case ActionQuit:
		m.quit = true
	case ActionLookUp:
		m.pitch += parameter.PitchKeyStep
	case ActionLookDown:
		m.pitch -= parameter.PitchKeyStep
	default:
		m.state.Press(a, now)
	}
}

// handleMouse treats the primary button as a touch and hover motion as look
func (m *Machine) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	px := float64(x) * parameter.TerminalCellPixelsX
	py := float64(y) * parameter.TerminalCellPixelsY

	if ev.Buttons()&tcell.Button1 != 0 {
		if !m.buttonDown {
			m.buttonDown = true
			m.TouchStart(px, py, float64(m.width)*parameter.TerminalCellPixelsX)
		} else {
			m.TouchMove(px, py)
		}
	} else if m.buttonDown {
		m.buttonDown = false
		m.TouchEnd()
	} else if m.MouseLook && m.mouseSeen {
		m.Look(float64(x-m.mouseX)*parameter.TerminalCellPixelsX, float64(y-m.mouseY)*parameter.TerminalCellPixelsY)
	}

	m.mouseX, m.mouseY = x, y
	m.mouseSeen = true
}

// Look applies relative pointer motion in pixels
func (m *Machine) Look(dx, dy float64) {
	m.yaw += dx * m.yawPerPixel
	m.pitch -= dy * m.pitchFactor
}

// TouchStart begins a touch gesture
func (m *Machine) TouchStart(x, y, width float64) {
	m.touch.Start(x, y, width)
}

// TouchMove applies swipe look
func (m *Machine) TouchMove(x, y float64) {
	yaw, pitch := m.touch.Move(x, y)
	m.yaw += yaw
	m.pitch += pitch
}

// TouchEnd releases the touch gesture
func (m *Machine) TouchEnd() {
	m.touch.End()
}

// Intent snapshots controls at now and resets the accumulators
func (m *Machine) Intent(now time.Time) Intent {
	in := Intent{
		Yaw:   m.yaw,
		Pitch: m.pitch,
		Title: m.title,
		Quit:  m.quit,
	}

	switch {
	case m.state.Held(ActionForward, now) || m.touch.Forward:
		in.Move = 1
	case m.state.Held(ActionBack, now):
		in.Move = -1
	}

	if m.state.Held(ActionTurnLeft, now) {
		in.Turn--
	}
	if m.state.Held(ActionTurnRight, now) {
		in.Turn++
	}
	in.Turn += float64(m.touch.Turn)
	in.Turn = max(-1, min(1, in.Turn))

	m.yaw, m.pitch = 0, 0
	m.title, m.quit = false, false
	return in
}

// Reset drops all held and pending input
func (m *Machine) Reset() {
	m.state.Reset()
	m.touch.End()
	m.buttonDown = false
	m.yaw, m.pitch = 0, 0
	m.title, m.quit = false, false
}
