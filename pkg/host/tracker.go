// Package host holds the backend-independent pieces shared by the input hosts.
package host

import "github.com/leterax/citywalk/pkg/control"

// CursorTracker turns absolute cursor positions into movement deltas.
// The first sample after a reset reports no movement.
type CursorTracker struct {
	lastX, lastY float32
	primed       bool
}

// Sample records a cursor position and returns the pointer event for it
func (t *CursorTracker) Sample(x, y float32) control.PointerEvent {
	ev := control.PointerEvent{X: x, Y: y}
	if t.primed {
		ev.MovementX = x - t.lastX
		ev.MovementY = y - t.lastY
	}
	t.lastX, t.lastY = x, y
	t.primed = true
	return ev
}

// Reset forgets the previous position
func (t *CursorTracker) Reset() {
	t.primed = false
}

// HoverTracker derives enter/leave transitions from cursor positions
type HoverTracker struct {
	inside bool
}

// Update reports whether the cursor entered or left the w x h viewport
func (h *HoverTracker) Update(x, y float32, w, ht int) (entered, left bool) {
	inside := x >= 0 && y >= 0 && x < float32(w) && y < float32(ht)
	entered = inside && !h.inside
	left = !inside && h.inside
	h.inside = inside
	return entered, left
}

// Set forces the hover state, for backends that report enter/leave directly
func (h *HoverTracker) Set(inside bool) {
	h.inside = inside
}

// Inside reports the last known hover state
func (h *HoverTracker) Inside() bool {
	return h.inside
}
