// Package decor computes the pose of the decorative mascot shown at the street spawn.
//
// Idle motion and pointer following are combined by Blend into one pose per
// frame, so no caller ever writes a partial pose.
package decor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is an offset from the mascot's rest transform
type Pose struct {
	Offset mgl32.Vec3
	Yaw    float32
	Pitch  float32
}

// Add returns the component-wise sum of two poses
func (p Pose) Add(o Pose) Pose {
	return Pose{
		Offset: p.Offset.Add(o.Offset),
		Yaw:    p.Yaw + o.Yaw,
		Pitch:  p.Pitch + o.Pitch,
	}
}

// Lerp interpolates between p and o
func (p Pose) Lerp(o Pose, t float32) Pose {
	return Pose{
		Offset: p.Offset.Add(o.Offset.Sub(p.Offset).Mul(t)),
		Yaw:    p.Yaw + (o.Yaw-p.Yaw)*t,
		Pitch:  p.Pitch + (o.Pitch-p.Pitch)*t,
	}
}

// Matrix returns the model transform of the pose
func (p Pose) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(p.Offset[0], p.Offset[1], p.Offset[2]).
		Mul4(mgl32.HomogRotate3DY(p.Yaw)).
		Mul4(mgl32.HomogRotate3DX(p.Pitch))
}

// IdleBob is a vertical bob with a slow sideways sway at time t seconds
func IdleBob(t, amplitude, frequency float32) Pose {
	phase := 2 * math32.Pi * frequency * t
	return Pose{
		Offset: mgl32.Vec3{0, amplitude * math32.Sin(phase), 0},
		Yaw:    0.1 * math32.Sin(phase*0.5),
	}
}

// Follow turns the mascot toward a pointer position normalized to [-1, 1]
// on both axes, +x right and +y down
func Follow(x, y, maxYaw, maxPitch float32) Pose {
	x = mgl32.Clamp(x, -1, 1)
	y = mgl32.Clamp(y, -1, 1)
	return Pose{
		Yaw:   -x * maxYaw,
		Pitch: -y * maxPitch,
	}
}

// Blend returns the idle pose when inactive, and moves from idle toward
// idle+target by weight when active
func Blend(idle, target Pose, active bool, weight float32) Pose {
	if !active {
		return idle
	}
	return idle.Lerp(idle.Add(target), mgl32.Clamp(weight, 0, 1))
}

// Smoother eases the published pose toward each new blend result
type Smoother struct {
	Rate float32

	pose Pose
	init bool
}

// Step advances the smoothed pose by dt seconds toward goal
func (s *Smoother) Step(goal Pose, dt float32) Pose {
	if !s.init || s.Rate <= 0 {
		s.pose = goal
		s.init = true
		return s.pose
	}
	s.pose = s.pose.Lerp(goal, 1-math32.Exp(-s.Rate*dt))
	return s.pose
}
