package control

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// PoseSink receives the camera pose once per frame
type PoseSink interface {
	SetPosition(pos mgl32.Vec3)
	SetOrientation(q mgl32.Quat)
}

// Controller is a first-person camera controller. It turns arrow keys and
// pointer movement into yaw/pitch and planar movement, and moves the camera
// from an overview vantage point to a street spawn the first time the
// pointer is captured.
//
// Event handlers and Update must be called from the same goroutine.
type Controller struct {
	s settings

	position mgl32.Vec3
	yaw      float32
	pitch    float32

	// pointer deltas accumulated since the last Update
	dx, dy float32

	keys   KeyState
	hold   holdTimer
	analog mgl32.Vec2

	hovering    bool
	hasBaseline bool
	lastX       float32
	lastY       float32

	phase      Phase
	teleported bool

	host Host
}

var (
	_ InputHandler = &Controller{}
	_ AnalogInput  = &Controller{}
)

// NewController creates a controller placed at the overview pose
func NewController(opts ...Option) *Controller {
	c := &Controller{s: defaultSettings()}
	for _, opt := range opts {
		opt(&c.s)
	}
	c.Reset()
	return c
}

// Configure applies opts on top of the current settings and resets the controller
func (c *Controller) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&c.s)
	}
	c.Reset()
}

// Reset puts the controller back at the overview pose and forgets the
// teleport, the hold timer and every pending input delta. When the host
// is still captured the reset counts as a fresh first acquisition and
// the street teleport fires at once.
func (c *Controller) Reset() {
	c.position = c.s.overviewPos
	c.yaw = c.s.overviewYaw
	c.pitch = c.s.overviewPitch
	c.dx, c.dy = 0, 0
	c.keys = KeyState{}
	c.hold.clear()
	c.analog = mgl32.Vec2{}
	c.hasBaseline = false
	c.teleported = false
	c.phase = PhaseOverview
	c.applyPose()
	if c.host != nil && c.host.Captured() {
		c.phase = PhaseCaptured
		if c.s.teleportOnFirstLock {
			c.teleport()
		}
	}
	c.s.log.WithFields(logrus.Fields{
		"position": c.position,
		"yaw":      c.yaw,
		"pitch":    c.pitch,
	}).Debug("camera controller reset")
}

// Attach installs the controller's input handlers on h. It reports false and
// does nothing when h is nil.
func (c *Controller) Attach(h Host) bool {
	if h == nil {
		return false
	}
	if c.host != nil {
		c.Detach()
	}
	c.host = h
	h.SetInputHandler(c)
	return true
}

// Detach removes the controller's handlers from its host and releases
// pointer capture if held
func (c *Controller) Detach() {
	if c.host == nil {
		return
	}
	h := c.host
	// release first so the host still reports the change to us
	if h.Captured() {
		h.ExitCapture()
	}
	h.SetInputHandler(nil)
	c.host = nil
	c.hovering = false
	c.hasBaseline = false
}

// Position returns the camera position
func (c *Controller) Position() mgl32.Vec3 {
	return c.position
}

// Orientation returns yaw and pitch in radians
func (c *Controller) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// Rotation returns the camera orientation: yaw about +Y, then pitch about the local X axis
func (c *Controller) Rotation() mgl32.Quat {
	return orientation(c.yaw, c.pitch)
}

// Phase returns the capture phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Teleported reports whether the first-lock teleport has happened
func (c *Controller) Teleported() bool {
	return c.teleported
}

// Keys returns the current arrow key state
func (c *Controller) Keys() KeyState {
	return c.keys
}

// Sprinting reports whether the arrows have been held long enough to sprint
func (c *Controller) Sprinting() bool {
	return c.hold.set && c.hold.held(c.s.now()) >= c.s.sprintAfter
}

// MoveVector returns the combined keyboard and analog movement vector
func (c *Controller) MoveVector() mgl32.Vec2 {
	return clampLength(c.keys.Vector().Add(c.analog))
}

// Update integrates one frame of input. dt is in seconds.
func (c *Controller) Update(dt float32) {
	dx, dy := c.dx, c.dy
	c.dx, c.dy = 0, 0

	if dx != 0 || dy != 0 {
		sign := float32(1)
		if c.s.invertY {
			sign = -1
		}
		c.yaw -= dx * c.s.lookSensitivity
		c.pitch -= dy * c.s.lookSensitivity * sign
		c.pitch = mgl32.Clamp(c.pitch, c.s.minPitch, c.s.maxPitch)
	}

	move := c.MoveVector()
	if move[0] != 0 || move[1] != 0 {
		speed := c.s.speed
		if c.Sprinting() {
			speed *= c.s.sprintMultiplier
		}
		forward, right := planarAxes(c.yaw)
		step := right.Mul(move[0]).Add(forward.Mul(move[1])).Mul(speed * dt)
		c.position = c.position.Add(step)
	}

	if c.teleported {
		c.position[1] = c.s.playerHeight
	}

	c.applyPose()
}

func (c *Controller) applyPose() {
	if c.s.camera == nil {
		return
	}
	c.s.camera.SetPosition(c.position)
	c.s.camera.SetOrientation(orientation(c.yaw, c.pitch))
}

// teleport moves the camera to the street spawn
func (c *Controller) teleport() {
	c.position = c.s.streetPos
	c.yaw = c.s.streetYaw
	c.pitch = 0
	c.teleported = true
	c.applyPose()
	c.s.log.WithField("position", c.position).Debug("camera teleported to street")
}

// orientation composes yaw about +Y with pitch about the yawed X axis, no roll
func orientation(yaw, pitch float32) mgl32.Quat {
	qYaw := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
	qPitch := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	return qYaw.Mul(qPitch)
}

// planarAxes returns horizontal forward and right unit vectors for yaw.
// Yaw 0 looks down -Z.
func planarAxes(yaw float32) (forward, right mgl32.Vec3) {
	sin, cos := math32.Sin(yaw), math32.Cos(yaw)
	forward = mgl32.Vec3{-sin, 0, -cos}
	right = mgl32.Vec3{cos, 0, -sin}
	return forward, right
}
