package config

import (
	_ "embed"
)

//go:embed defaults/skate.yaml
var defaultSkateYAML []byte

//go:embed defaults/surf.yaml
var defaultSurfYAML []byte

// DefaultSkateConfig returns the default skate mode configuration.
func DefaultSkateConfig() SkateConfig {
	return SkateConfig{
		Physics: ModePhysics{
			Gravity:      0.6,
			Friction:     0.95,
			MaxSpeed:     8,
			Acceleration: 0.5,
			JumpForce:    12,
		},
		Trick: TrickTuning{
			Skyline:         300,
			HeightWeight:    0.5,
			SteepnessWeight: 0,
			SpeedWeight:     2,
		},
	}
}

// DefaultSurfConfig returns the default surf mode configuration.
func DefaultSurfConfig() SurfConfig {
	return SurfConfig{
		Physics: ModePhysics{
			Gravity:      0.45,
			Friction:     0.97,
			MaxSpeed:     10,
			Acceleration: 0.4,
			JumpForce:    10,
		},
		Wave: WaveTuning{
			Force:      0.08,
			Amplitude:  30,
			Steepness:  1.0,
			WaterLevel: 300,
		},
		Trick: TrickTuning{
			Skyline:         0,
			HeightWeight:    0,
			SteepnessWeight: 80,
			SpeedWeight:     2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a mode.
func GetDefaultYAML(mode string) []byte {
	switch mode {
	case "surf":
		return defaultSurfYAML
	default:
		return defaultSkateYAML
	}
}
