package control

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ApplyDeadzone zeroes magnitudes below deadzone and rescales the rest
// linearly onto [0, 1], keeping the sign of v.
func ApplyDeadzone(v, deadzone float32) float32 {
	mag := math32.Abs(v)
	if mag <= deadzone {
		return 0
	}
	out := (mag - deadzone) / (1 - deadzone)
	if out > 1 {
		out = 1
	}
	return math32.Copysign(out, v)
}

// ApplyRadialDeadzone applies ApplyDeadzone to the length of a stick vector
// and keeps its direction
func ApplyRadialDeadzone(v mgl32.Vec2, deadzone float32) mgl32.Vec2 {
	l := v.Len()
	if l <= deadzone {
		return mgl32.Vec2{}
	}
	return v.Mul(ApplyDeadzone(l, deadzone) / l)
}
