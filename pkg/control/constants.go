package control

import (
	"math"
	"time"
)

// Controller defaults
const (
	// Overview vantage point
	DefaultOverviewX     = 0.0
	DefaultOverviewY     = 30.0
	DefaultOverviewZ     = 40.0
	DefaultOverviewYaw   = math.Pi
	DefaultOverviewPitch = -0.65

	// Street spawn point
	DefaultStreetX   = 0.0
	DefaultStreetY   = 1.8
	DefaultStreetZ   = 10.0
	DefaultStreetYaw = 0.0

	DefaultPlayerHeight = 1.8

	// Movement
	DefaultSpeed            = 3.8
	DefaultSprintAfter      = 4000 * time.Millisecond
	DefaultSprintMultiplier = 1.75

	// Look
	DefaultLookSensitivity = 0.0022
	DefaultMaxPitch        = 85.0 * math.Pi / 180.0
	DefaultMinPitch        = -DefaultMaxPitch

	// Analog stick dead band
	DefaultDeadzone = 0.15
)
