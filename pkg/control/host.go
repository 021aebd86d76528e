package control

import "errors"

// ErrNoCaptureTarget is returned by hosts that cannot capture the pointer
var ErrNoCaptureTarget = errors.New("pointer capture not available")

// Key identifies the keys the controller reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEscape
)

// Button identifies a pointer button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent carries one pointer-move sample.
// X and Y are the pointer position in window coordinates, MovementX and
// MovementY the raw device delta since the previous sample.
type PointerEvent struct {
	X, Y                 float32
	MovementX, MovementY float32
}

// CaptureTarget is the platform pointer-capture primitive
type CaptureTarget interface {
	// RequestCapture asks the platform for exclusive pointer capture.
	// The request may be rejected; the host reports the outcome through
	// InputHandler.CaptureChanged.
	RequestCapture() error
	// ExitCapture releases pointer capture if held
	ExitCapture()
	// Captured reports whether the pointer is currently captured
	Captured() bool
}

// Host is the input backend a controller attaches to
type Host interface {
	CaptureTarget
	// SetInputHandler installs the handler for all input events.
	// A nil handler removes every listener.
	SetInputHandler(h InputHandler)
}

// InputHandler receives host input events. All calls happen on the frame
// loop goroutine.
type InputHandler interface {
	KeyDown(k Key)
	KeyUp(k Key)
	PointerMove(ev PointerEvent)
	PointerEnter()
	PointerLeave()
	PointerDown(b Button)
	CaptureChanged(captured bool)
}

// AnalogInput is implemented by handlers that accept an analog stick vector
type AnalogInput interface {
	AnalogMove(x, y float32)
}
