package control

import (
	"github.com/go-gl/mathgl/mgl32"
)

// KeyDown handles a key press. Repeats of a held key are harmless.
func (c *Controller) KeyDown(k Key) {
	if k == KeyEscape {
		if c.host != nil && c.host.Captured() {
			c.host.ExitCapture()
		}
		return
	}
	c.setKey(k, true)
}

// KeyUp handles a key release
func (c *Controller) KeyUp(k Key) {
	c.setKey(k, false)
}

func (c *Controller) setKey(k Key, down bool) {
	wasHeld := c.keys.Any()
	if !c.keys.set(k, down) {
		return
	}
	c.hold.update(wasHeld, c.keys.Any(), c.s.now())
}

// PointerMove accumulates look deltas. While captured the raw device
// movement is used; while hovering the difference from the previous
// position is used, and the first sample only seeds the baseline.
func (c *Controller) PointerMove(ev PointerEvent) {
	if c.host != nil && c.host.Captured() {
		c.dx += ev.MovementX
		c.dy += ev.MovementY
		return
	}
	if !c.hovering {
		return
	}
	if !c.hasBaseline {
		c.lastX, c.lastY = ev.X, ev.Y
		c.hasBaseline = true
		return
	}
	c.dx += ev.X - c.lastX
	c.dy += ev.Y - c.lastY
	c.lastX, c.lastY = ev.X, ev.Y
}

// PointerEnter marks the pointer as hovering the viewport
func (c *Controller) PointerEnter() {
	c.hovering = true
	c.hasBaseline = false
}

// PointerLeave marks the pointer as outside the viewport
func (c *Controller) PointerLeave() {
	c.hovering = false
	c.hasBaseline = false
}

// PointerDown toggles pointer capture on a primary button press
func (c *Controller) PointerDown(b Button) {
	if b != ButtonPrimary || c.host == nil {
		return
	}
	if c.host.Captured() {
		c.host.ExitCapture()
		return
	}
	if err := c.host.RequestCapture(); err != nil {
		c.s.log.WithError(err).Debug("pointer capture request rejected")
	}
}

// CaptureChanged must be called by the host after every capture change.
// Pending deltas and the hover baseline are dropped, and the first
// acquisition teleports the camera to the street when enabled.
func (c *Controller) CaptureChanged(captured bool) {
	c.dx, c.dy = 0, 0
	c.hasBaseline = false

	if captured && c.s.teleportOnFirstLock && !c.teleported {
		c.teleport()
	}
	c.phase = c.phase.next(captured)

	c.s.log.WithField("phase", c.phase).Debug("pointer capture changed")
	if c.s.onCaptureChange != nil {
		c.s.onCaptureChange(captured)
	}
}

// AnalogMove sets the analog stick vector, x right and y forward, each in [-1, 1]
func (c *Controller) AnalogMove(x, y float32) {
	c.analog = ApplyRadialDeadzone(mgl32.Vec2{x, y}, c.s.deadzone)
}
