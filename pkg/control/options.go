package control

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// settings holds everything an Option can change
type settings struct {
	overviewPos   mgl32.Vec3
	overviewYaw   float32
	overviewPitch float32

	streetPos mgl32.Vec3
	streetYaw float32

	playerHeight float32

	speed            float32
	sprintAfter      time.Duration
	sprintMultiplier float32

	lookSensitivity float32
	minPitch        float32
	maxPitch        float32
	invertY         bool

	teleportOnFirstLock bool
	deadzone            float32

	now             func() time.Time
	log             logrus.FieldLogger
	onCaptureChange func(captured bool)
	camera          PoseSink
}

func defaultSettings() settings {
	return settings{
		overviewPos:   mgl32.Vec3{DefaultOverviewX, DefaultOverviewY, DefaultOverviewZ},
		overviewYaw:   DefaultOverviewYaw,
		overviewPitch: DefaultOverviewPitch,

		streetPos: mgl32.Vec3{DefaultStreetX, DefaultStreetY, DefaultStreetZ},
		streetYaw: DefaultStreetYaw,

		playerHeight: DefaultPlayerHeight,

		speed:            DefaultSpeed,
		sprintAfter:      DefaultSprintAfter,
		sprintMultiplier: DefaultSprintMultiplier,

		lookSensitivity: DefaultLookSensitivity,
		minPitch:        DefaultMinPitch,
		maxPitch:        DefaultMaxPitch,

		teleportOnFirstLock: true,
		deadzone:            DefaultDeadzone,

		now: time.Now,
		log: logrus.StandardLogger(),
	}
}

// Option configures a Controller
type Option func(*settings)

// WithOverview sets the initial camera pose
func WithOverview(pos mgl32.Vec3, yaw, pitch float32) Option {
	return func(s *settings) {
		s.overviewPos = pos
		s.overviewYaw = yaw
		s.overviewPitch = pitch
	}
}

// WithStreet sets the pose applied by the first-lock teleport
func WithStreet(pos mgl32.Vec3, yaw float32) Option {
	return func(s *settings) {
		s.streetPos = pos
		s.streetYaw = yaw
	}
}

// WithPlayerHeight sets the eye height pinned after the teleport
func WithPlayerHeight(h float32) Option {
	return func(s *settings) {
		s.playerHeight = h
	}
}

// WithSpeed sets the base movement speed in units per second
func WithSpeed(speed float32) Option {
	return func(s *settings) {
		s.speed = speed
	}
}

// WithLookSensitivity sets the radians turned per pixel of pointer movement
func WithLookSensitivity(sensitivity float32) Option {
	return func(s *settings) {
		s.lookSensitivity = sensitivity
	}
}

// WithPitchLimits sets the pitch clamp bounds in radians. min must not exceed max.
func WithPitchLimits(min, max float32) Option {
	return func(s *settings) {
		s.minPitch = min
		s.maxPitch = max
	}
}

// WithInvertY flips the vertical look direction
func WithInvertY(invert bool) Option {
	return func(s *settings) {
		s.invertY = invert
	}
}

// WithSprint sets how long the arrows must be held before sprinting and the
// speed multiplier applied from then on
func WithSprint(after time.Duration, multiplier float32) Option {
	return func(s *settings) {
		s.sprintAfter = after
		s.sprintMultiplier = multiplier
	}
}

// WithTeleportOnFirstLock enables or disables the one-shot street teleport
func WithTeleportOnFirstLock(enabled bool) Option {
	return func(s *settings) {
		s.teleportOnFirstLock = enabled
	}
}

// WithDeadzone sets the analog stick dead band in [0, 1)
func WithDeadzone(deadzone float32) Option {
	return func(s *settings) {
		s.deadzone = deadzone
	}
}

// WithClock replaces time.Now for the hold timer
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// WithLogger sets the logger used for state transitions
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithCaptureListener registers fn to be called on every capture state change
func WithCaptureListener(fn func(captured bool)) Option {
	return func(s *settings) {
		s.onCaptureChange = fn
	}
}

// WithCamera sets the pose sink written every frame
func WithCamera(cam PoseSink) Option {
	return func(s *settings) {
		s.camera = cam
	}
}
