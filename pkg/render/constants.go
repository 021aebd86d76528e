package render

import "github.com/go-gl/mathgl/mgl32"

// Scene defaults
var (
	DefaultSkyColor    = mgl32.Vec4{0.62, 0.74, 0.86, 1.0}
	DefaultGroundColor = mgl32.Vec3{0.24, 0.25, 0.27}
	DefaultMascotColor = mgl32.Vec3{0.95, 0.55, 0.20}
	DefaultLightDir    = mgl32.Vec3{-0.4, -1.0, -0.3}
)

const (
	DefaultFogDensity = 0.008
	// ground extends this far past the outermost street
	groundMargin = 60
	// mascot cube edge length and its distance ahead of the spawn
	mascotSize     = 0.6
	mascotDistance = 4
	// pointer follow limits
	mascotMaxYaw   = 0.6
	mascotMaxPitch = 0.35
	// longest frame step fed to the controller, in seconds
	maxFrameStep = 0.1
)
