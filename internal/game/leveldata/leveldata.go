// Package leveldata holds the static, authored level definitions and the
// loader for custom level files. Definitions are configuration data only;
// the level package turns them into live level state.
package leveldata

// GoalType enumerates the special objective kinds a level can carry.
type GoalType string

const (
	GoalPerformTrick GoalType = "PERFORM_TRICK"
	GoalCombo        GoalType = "COMBO"
	GoalCollectibles GoalType = "COLLECTIBLES"
	GoalScore        GoalType = "SCORE"
)

// GoalDef is an authored special goal.
type GoalDef struct {
	Type    GoalType `yaml:"type"`
	TrickID string   `yaml:"trick_id,omitempty"`
	Count   int      `yaml:"count,omitempty"`
	Label   string   `yaml:"label"`
}

// Objectives are the completion requirements for a level.
type Objectives struct {
	ScoreTarget        int       `yaml:"score_target"`
	CollectiblesTarget int       `yaml:"collectibles_target"`
	SpecialGoals       []GoalDef `yaml:"special_goals,omitempty"`
}

// Layout carries the procedural generation parameters.
type Layout struct {
	Length float64 `yaml:"length"`

	// GroundVariation overrides the difficulty-derived ramp bound when
	// non-zero (skate mode).
	GroundVariation float64 `yaml:"ground_variation,omitempty"`

	// WaveHeight is the base wave amplitude (surf mode).
	WaveHeight float64 `yaml:"wave_height,omitempty"`

	ObstacleFrequency    float64 `yaml:"obstacle_frequency"`
	CollectibleFrequency float64 `yaml:"collectible_frequency"`
}

// ObstacleDef is an authored fixed obstacle.
type ObstacleDef struct {
	Kind string  `yaml:"kind"` // rail, ramp, box, rock, buoy, driftwood
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y,omitempty"` // 0 means sit on the terrain
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`

	Moving    bool    `yaml:"moving,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty"` // sway of moving obstacles

	TrickBonus int     `yaml:"trick_bonus,omitempty"` // rail
	LaunchVX   float64 `yaml:"launch_vx,omitempty"`   // ramp
	LaunchVY   float64 `yaml:"launch_vy,omitempty"`   // ramp
}

// ZoneDef is an authored special zone.
type ZoneDef struct {
	Kind       string  `yaml:"kind"` // halfpipe, speed, tube
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Multiplier float64 `yaml:"multiplier,omitempty"` // halfpipe/tube score boost
	Seconds    int     `yaml:"seconds,omitempty"`    // special mode duration
	Boost      float64 `yaml:"boost,omitempty"`      // speed zone velocity kick
}

// WaveSectionDef is an authored wave segment (surf mode).
type WaveSectionDef struct {
	Kind      string  `yaml:"kind"` // normal, breaking, choppy
	Amplitude float64 `yaml:"amplitude,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`
}

// Def is a complete authored level definition, keyed by (mode, index).
type Def struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Mode       string `yaml:"mode"` // skate or surf
	Difficulty string `yaml:"difficulty"`
	TimeLimit  int    `yaml:"time_limit"` // seconds, 0 means untimed

	Objectives Objectives `yaml:"objectives"`
	Layout     Layout     `yaml:"layout"`

	Obstacles    []ObstacleDef    `yaml:"obstacles,omitempty"`
	WaveSections []WaveSectionDef `yaml:"wave_sections,omitempty"`
	SpecialZones []ZoneDef        `yaml:"special_zones,omitempty"`
}
