package control

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a YAML friendly [x, y, z] triple
type Vec3 [3]float32

// Pose is a YAML pose block
type Pose struct {
	Position Vec3    `yaml:"position"`
	Yaw      float32 `yaml:"yaw"`
	Pitch    float32 `yaml:"pitch,omitempty"`
}

// Config is the file form of the controller options
type Config struct {
	Overview            Pose    `yaml:"overview"`
	Street              Pose    `yaml:"street"`
	PlayerHeight        float32 `yaml:"player_height"`
	Speed               float32 `yaml:"speed"`
	LookSensitivity     float32 `yaml:"look_sensitivity"`
	MinPitchDeg         float32 `yaml:"min_pitch_deg"`
	MaxPitchDeg         float32 `yaml:"max_pitch_deg"`
	InvertY             bool    `yaml:"invert_y"`
	SprintAfterMs       int     `yaml:"sprint_after_ms"`
	SprintMultiplier    float32 `yaml:"sprint_multiplier"`
	TeleportOnFirstLock bool    `yaml:"teleport_on_first_lock"`
	Deadzone            float32 `yaml:"deadzone"`
}

// DefaultConfig returns the controller defaults in file form
func DefaultConfig() Config {
	return Config{
		Overview: Pose{
			Position: Vec3{DefaultOverviewX, DefaultOverviewY, DefaultOverviewZ},
			Yaw:      DefaultOverviewYaw,
			Pitch:    DefaultOverviewPitch,
		},
		Street: Pose{
			Position: Vec3{DefaultStreetX, DefaultStreetY, DefaultStreetZ},
			Yaw:      DefaultStreetYaw,
		},
		PlayerHeight:        DefaultPlayerHeight,
		Speed:               DefaultSpeed,
		LookSensitivity:     DefaultLookSensitivity,
		MinPitchDeg:         -85,
		MaxPitchDeg:         85,
		SprintAfterMs:       int(DefaultSprintAfter / time.Millisecond),
		SprintMultiplier:    DefaultSprintMultiplier,
		TeleportOnFirstLock: true,
		Deadzone:            DefaultDeadzone,
	}
}

// Options converts the config into controller options
func (cfg Config) Options() []Option {
	return []Option{
		WithOverview(mgl32.Vec3(cfg.Overview.Position), cfg.Overview.Yaw, cfg.Overview.Pitch),
		WithStreet(mgl32.Vec3(cfg.Street.Position), cfg.Street.Yaw),
		WithPlayerHeight(cfg.PlayerHeight),
		WithSpeed(cfg.Speed),
		WithLookSensitivity(cfg.LookSensitivity),
		WithPitchLimits(mgl32.DegToRad(cfg.MinPitchDeg), mgl32.DegToRad(cfg.MaxPitchDeg)),
		WithInvertY(cfg.InvertY),
		WithSprint(time.Duration(cfg.SprintAfterMs)*time.Millisecond, cfg.SprintMultiplier),
		WithTeleportOnFirstLock(cfg.TeleportOnFirstLock),
		WithDeadzone(cfg.Deadzone),
	}
}
