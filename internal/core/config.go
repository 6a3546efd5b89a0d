package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic level generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int     // Current level score
	TotalScore    int     // Score accumulated across the whole run
	HighScore     int     // Best stored score for the active mode
	Multiplier    float64 // Current scoring multiplier
	Combo         int     // Current combo length (character-side counter)
	Level         int     // Zero-based level index
	LevelComplete bool    // All objectives of the current level met
	GameOver      bool    // Run ended (finished or time expired)
	Paused        bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred this tick,
// in the order they fired. The platform drains them once per frame.
type StepResult struct {
	State  GameState
	Events []Event
}
