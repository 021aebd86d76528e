package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/citywalk/internal/config"
	"github.com/leterax/citywalk/pkg/decor"
	"github.com/leterax/citywalk/pkg/host"
)

// mascot animates the decorative cube near the spawn point. Only the
// pose returned by update is ever drawn.
type mascot struct {
	params   config.Mascot
	rest     mgl32.Mat4
	hover    host.HoverTracker
	smoother decor.Smoother
	elapsed  float32
}

func newMascot(params config.Mascot, spawn mgl32.Vec3, yaw float32) *mascot {
	return &mascot{
		params:   params,
		rest:     mascotRest(spawn, yaw),
		smoother: decor.Smoother{Rate: params.Smoothing},
	}
}

// update advances the animation by dt and returns the model matrix. The
// cursor is in window coordinates; following only happens while the
// pointer is free and inside the window.
func (m *mascot) update(dt, cursorX, cursorY float32, width, height int, captured bool) mgl32.Mat4 {
	m.elapsed += dt
	m.hover.Update(cursorX, cursorY, width, height)

	idle := decor.IdleBob(m.elapsed, m.params.BobAmplitude, m.params.BobFrequency)
	var target decor.Pose
	active := !captured && m.hover.Inside() && width > 0 && height > 0
	if active {
		nx := cursorX/float32(width)*2 - 1
		ny := cursorY/float32(height)*2 - 1
		target = decor.Follow(nx, ny, mascotMaxYaw, mascotMaxPitch)
	}

	pose := m.smoother.Step(decor.Blend(idle, target, active, m.params.FollowWeight), dt)
	return m.rest.Mul4(pose.Matrix())
}
