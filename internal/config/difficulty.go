package config

// Difficulty is a named level difficulty band.
type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

// ParseDifficulty maps a user-supplied string to a difficulty band.
// Unknown values fall back to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return Difficulty(s)
	default:
		return DifficultyMedium
	}
}

// GroundVariation returns the maximum ramp delta, in world units, that
// procedural terrain generation may apply per segment at this difficulty.
func (d Difficulty) GroundVariation() float64 {
	switch d {
	case DifficultyLow:
		return 20
	case DifficultyHigh:
		return 60
	default:
		return 40
	}
}
