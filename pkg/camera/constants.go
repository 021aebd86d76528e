package camera

// Camera constants
const (
	// Field of view in degrees
	DefaultFOV = 60.0
	MinFOV     = 20.0
	MaxFOV     = 75.0

	// Clipping planes
	DefaultNear = 0.1
	DefaultFar  = 1000.0

	// Window size used until the first resize
	DefaultWidth  = 800
	DefaultHeight = 600
)
