package control

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// KeyState holds one flag per arrow key
type KeyState struct {
	Up, Down, Left, Right bool
}

// set updates the flag for k and reports whether k is an arrow key
func (ks *KeyState) set(k Key, down bool) bool {
	switch k {
	case KeyArrowUp:
		ks.Up = down
	case KeyArrowDown:
		ks.Down = down
	case KeyArrowLeft:
		ks.Left = down
	case KeyArrowRight:
		ks.Right = down
	default:
		return false
	}
	return true
}

// Any reports whether at least one arrow is held
func (ks KeyState) Any() bool {
	return ks.Up || ks.Down || ks.Left || ks.Right
}

// Vector returns the movement vector (x = right, y = forward), never longer than 1
func (ks KeyState) Vector() mgl32.Vec2 {
	var v mgl32.Vec2
	if ks.Right {
		v[0]++
	}
	if ks.Left {
		v[0]--
	}
	if ks.Up {
		v[1]++
	}
	if ks.Down {
		v[1]--
	}
	return clampLength(v)
}

// clampLength normalizes v when it is longer than 1
func clampLength(v mgl32.Vec2) mgl32.Vec2 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1])
	if l > 1 {
		return v.Mul(1 / l)
	}
	return v
}

// holdTimer tracks how long the arrows have been held without a full release
type holdTimer struct {
	start time.Time
	set   bool
}

// update records the start on the none-to-any transition and clears it on any-to-none
func (h *holdTimer) update(wasHeld, held bool, now time.Time) {
	switch {
	case !wasHeld && held:
		h.start = now
		h.set = true
	case wasHeld && !held:
		h.clear()
	}
}

func (h *holdTimer) clear() {
	h.start = time.Time{}
	h.set = false
}

// held returns the continuous hold duration, zero when unset
func (h *holdTimer) held(now time.Time) time.Duration {
	if !h.set {
		return 0
	}
	return now.Sub(h.start)
}
