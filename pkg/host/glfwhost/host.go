// Package glfwhost connects a GLFW window to a control.InputHandler.
package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/citywalk/pkg/control"
	"github.com/leterax/citywalk/pkg/host"
	"github.com/sirupsen/logrus"
)

// Host implements control.Host on top of a GLFW window. Pointer capture
// maps to the disabled cursor mode.
type Host struct {
	win *glfw.Window
	log logrus.FieldLogger

	handler  control.InputHandler
	captured bool
	cursor   host.CursorTracker
	stick    host.StickFeed

	closeOnEscape bool
	onScroll      func(yoffset float64)
	onResize      func(width, height int)
	gamepad       glfw.Joystick
}

var _ control.Host = &Host{}

// Option configures a Host
type Option func(*Host)

// WithLogger sets the host logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(h *Host) {
		h.log = log
	}
}

// WithCloseOnEscape closes the window when Escape is pressed while the pointer is free
func WithCloseOnEscape() Option {
	return func(h *Host) {
		h.closeOnEscape = true
	}
}

// WithScrollHandler forwards scroll wheel offsets to fn
func WithScrollHandler(fn func(yoffset float64)) Option {
	return func(h *Host) {
		h.onScroll = fn
	}
}

// WithResizeHandler forwards framebuffer size changes to fn
func WithResizeHandler(fn func(width, height int)) Option {
	return func(h *Host) {
		h.onResize = fn
	}
}

// WithGamepad selects the joystick slot polled for analog movement
func WithGamepad(joy glfw.Joystick) Option {
	return func(h *Host) {
		h.gamepad = joy
	}
}

// New creates a host for win. Window level callbacks (scroll, resize, focus)
// are installed immediately; input callbacks only once a handler is set.
func New(win *glfw.Window, opts ...Option) *Host {
	h := &Host{
		win:     win,
		log:     logrus.StandardLogger(),
		gamepad: glfw.Joystick1,
	}
	for _, opt := range opts {
		opt(h)
	}
	if win == nil {
		return h
	}

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if h.onScroll != nil {
			h.onScroll(yoff)
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if h.onResize != nil {
			h.onResize(width, height)
		}
	})
	// Losing focus drops capture, like a browser does with pointer lock
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			h.ExitCapture()
		}
	})
	return h
}

// SetInputHandler installs ih as the receiver of input events, or removes
// every input callback when ih is nil
func (h *Host) SetInputHandler(ih control.InputHandler) {
	h.handler = ih
	if h.win == nil {
		return
	}
	if ih == nil {
		h.win.SetKeyCallback(nil)
		h.win.SetCursorPosCallback(nil)
		h.win.SetCursorEnterCallback(nil)
		h.win.SetMouseButtonCallback(nil)
		return
	}
	h.cursor.Reset()
	h.win.SetKeyCallback(h.keyCallback)
	h.win.SetCursorPosCallback(h.cursorPosCallback)
	h.win.SetCursorEnterCallback(h.cursorEnterCallback)
	h.win.SetMouseButtonCallback(h.mouseButtonCallback)
}

// RequestCapture disables the cursor so the window receives unbounded motion
func (h *Host) RequestCapture() error {
	if h.win == nil {
		return control.ErrNoCaptureTarget
	}
	if h.captured {
		return nil
	}
	if glfw.RawMouseMotionSupported() {
		h.win.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	h.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	h.setCaptured(true)
	return nil
}

// ExitCapture restores the normal cursor
func (h *Host) ExitCapture() {
	if h.win == nil || !h.captured {
		return
	}
	h.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	h.setCaptured(false)
}

// Captured reports whether the cursor is disabled
func (h *Host) Captured() bool {
	return h.captured
}

func (h *Host) setCaptured(captured bool) {
	h.captured = captured
	h.cursor.Reset()
	h.log.WithField("captured", captured).Debug("glfw cursor capture changed")
	if h.handler != nil {
		h.handler.CaptureChanged(captured)
	}
}

// Poll feeds the first connected gamepad's left stick to the handler.
// Call once per frame after glfw.PollEvents.
func (h *Host) Poll() {
	if h.handler == nil {
		return
	}
	var state *glfw.GamepadState
	if h.gamepad.Present() && h.gamepad.IsGamepad() {
		state = h.gamepad.GetGamepadState()
	}
	if state == nil {
		h.stick.Lost(h.handler)
		return
	}
	// GLFW reports stick up as negative Y
	h.stick.Feed(h.handler, state.Axes[glfw.AxisLeftX], -state.Axes[glfw.AxisLeftY])
}

// Callback functions
func (h *Host) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if h.handler == nil {
		return
	}
	if key == glfw.KeyEscape && action == glfw.Press && h.closeOnEscape && !h.captured {
		h.win.SetShouldClose(true)
		return
	}
	k := mapKey(key)
	if k == control.KeyUnknown {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		h.handler.KeyDown(k)
	case glfw.Release:
		h.handler.KeyUp(k)
	}
}

func (h *Host) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if h.handler == nil {
		return
	}
	h.handler.PointerMove(h.cursor.Sample(float32(xpos), float32(ypos)))
}

func (h *Host) cursorEnterCallback(_ *glfw.Window, entered bool) {
	if h.handler == nil {
		return
	}
	h.cursor.Reset()
	if entered {
		h.handler.PointerEnter()
	} else {
		h.handler.PointerLeave()
	}
}

func (h *Host) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if h.handler == nil || action != glfw.Press {
		return
	}
	switch button {
	case glfw.MouseButtonLeft:
		h.handler.PointerDown(control.ButtonPrimary)
	case glfw.MouseButtonRight:
		h.handler.PointerDown(control.ButtonSecondary)
	case glfw.MouseButtonMiddle:
		h.handler.PointerDown(control.ButtonMiddle)
	}
}

func mapKey(key glfw.Key) control.Key {
	switch key {
	case glfw.KeyUp:
		return control.KeyArrowUp
	case glfw.KeyDown:
		return control.KeyArrowDown
	case glfw.KeyLeft:
		return control.KeyArrowLeft
	case glfw.KeyRight:
		return control.KeyArrowRight
	case glfw.KeyEscape:
		return control.KeyEscape
	}
	return control.KeyUnknown
}
