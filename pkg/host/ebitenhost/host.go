// Package ebitenhost drives a control.InputHandler from Ebiten's polled input state.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leterax/citywalk/pkg/control"
	"github.com/leterax/citywalk/pkg/host"
	"github.com/sirupsen/logrus"
)

var keyMap = []struct {
	ebiten  ebiten.Key
	control control.Key
}{
	{ebiten.KeyArrowUp, control.KeyArrowUp},
	{ebiten.KeyArrowDown, control.KeyArrowDown},
	{ebiten.KeyArrowLeft, control.KeyArrowLeft},
	{ebiten.KeyArrowRight, control.KeyArrowRight},
	{ebiten.KeyEscape, control.KeyEscape},
}

var buttonMap = []struct {
	ebiten  ebiten.MouseButton
	control control.Button
}{
	{ebiten.MouseButtonLeft, control.ButtonPrimary},
	{ebiten.MouseButtonRight, control.ButtonSecondary},
	{ebiten.MouseButtonMiddle, control.ButtonMiddle},
}

// Host implements control.Host for an Ebiten game. Ebiten has no input
// callbacks, so Update must be called at the start of every game tick.
type Host struct {
	log logrus.FieldLogger

	handler  control.InputHandler
	captured bool

	cursor  host.CursorTracker
	hover   host.HoverTracker
	stick   host.StickFeed
	width   int
	height  int
	lastX   int
	lastY   int
	moved   bool
	gamepad []ebiten.GamepadID
}

var _ control.Host = &Host{}

// New creates a host for a viewport of width x height logical pixels
func New(width, height int, log logrus.FieldLogger) *Host {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Host{
		log:    log,
		width:  width,
		height: height,
	}
}

// SetViewport updates the logical screen size, typically from Game.Layout
func (h *Host) SetViewport(width, height int) {
	h.width = width
	h.height = height
}

// SetInputHandler installs the event receiver; nil stops dispatching
func (h *Host) SetInputHandler(ih control.InputHandler) {
	h.handler = ih
	h.cursor.Reset()
	h.moved = false
}

// RequestCapture switches Ebiten to the captured cursor mode
func (h *Host) RequestCapture() error {
	if h.captured {
		return nil
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	h.setCaptured(true)
	return nil
}

// ExitCapture restores the visible cursor
func (h *Host) ExitCapture() {
	if !h.captured {
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	h.setCaptured(false)
}

// Captured reports whether the cursor is captured
func (h *Host) Captured() bool {
	return h.captured
}

func (h *Host) setCaptured(captured bool) {
	h.captured = captured
	h.cursor.Reset()
	h.moved = false
	h.log.WithField("captured", captured).Debug("ebiten cursor capture changed")
	if h.handler != nil {
		h.handler.CaptureChanged(captured)
	}
}

// Update translates this tick's input state into handler events
func (h *Host) Update() {
	if h.handler == nil {
		return
	}

	// The platform can drop capture on its own, e.g. on focus loss
	if h.captured && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		h.setCaptured(false)
	}

	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			h.handler.KeyDown(k.control)
		}
		if inpututil.IsKeyJustReleased(k.ebiten) {
			h.handler.KeyUp(k.control)
		}
	}

	h.updatePointer()

	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			h.handler.PointerDown(b.control)
		}
	}

	h.updateGamepad()
}

func (h *Host) updatePointer() {
	x, y := ebiten.CursorPosition()
	if !h.captured {
		entered, left := h.hover.Update(float32(x), float32(y), h.width, h.height)
		switch {
		case entered:
			h.cursor.Reset()
			h.handler.PointerEnter()
		case left:
			h.cursor.Reset()
			h.handler.PointerLeave()
		}
	}
	if h.moved && x == h.lastX && y == h.lastY {
		return
	}
	h.lastX, h.lastY, h.moved = x, y, true
	h.handler.PointerMove(h.cursor.Sample(float32(x), float32(y)))
}

func (h *Host) updateGamepad() {
	h.gamepad = ebiten.AppendGamepadIDs(h.gamepad[:0])
	for _, id := range h.gamepad {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		// Standard layout reports stick up as negative
		h.stick.Feed(h.handler, float32(x), float32(-y))
		return
	}
	h.stick.Lost(h.handler)
}
