// Package config provides YAML-based configuration loading for the two
// shred game modes and their difficulty handling.
package config

// ModePhysics defines the mode-specific physics constants.
// Velocities are world units per frame at the 60Hz reference rate.
type ModePhysics struct {
	Gravity      float64 `yaml:"gravity"`
	Friction     float64 `yaml:"friction"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"`
	JumpForce    float64 `yaml:"jump_force"`
}

// TrickTuning defines the weights of the physics trick-score bonus.
type TrickTuning struct {
	// Skyline is the y above which the skate height bonus bottoms out.
	Skyline         float64 `yaml:"skyline"`
	HeightWeight    float64 `yaml:"height_weight"`
	SteepnessWeight float64 `yaml:"steepness_weight"`
	SpeedWeight     float64 `yaml:"speed_weight"`
}

// WaveTuning defines the global wave animation used by surf physics.
// This is the wall-clock undulation, distinct from per-segment terrain.
type WaveTuning struct {
	Force      float64 `yaml:"force"`       // horizontal nudge per unit slope
	Amplitude  float64 `yaml:"amplitude"`   // undulation height
	Steepness  float64 `yaml:"steepness"`   // slope scale
	WaterLevel float64 `yaml:"water_level"` // baseline y of the water surface
}

// SkateConfig contains all configuration for skate mode.
type SkateConfig struct {
	Physics ModePhysics `yaml:"physics"`
	Trick   TrickTuning `yaml:"trick"`
}

// SurfConfig contains all configuration for surf mode.
type SurfConfig struct {
	Physics ModePhysics `yaml:"physics"`
	Wave    WaveTuning  `yaml:"wave"`
	Trick   TrickTuning `yaml:"trick"`
}
