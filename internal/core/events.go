package core

// Event is a simulation event surfaced to the platform layer once per tick.
// Events replace callback wiring between the simulation subsystems and the
// UI: each concrete type is a tagged variant, consumed by type switch.
type Event interface {
	event()
}

// TrickPerformed fires when the character successfully starts a trick.
type TrickPerformed struct {
	TrickID string
	Name    string
	Score   int
	Combo   int // character-side combo counter at the time of the trick
}

// ComboEnded fires when the character's combo window expires with more
// than one trick landed.
type ComboEnded struct {
	Count int
}

// ComboCashed fires when the scoring combo window expires and combo
// points are banked.
type ComboCashed struct {
	Length int
	Points int
}

// CollectibleCollected fires when the player's bounding box first touches
// a collectible.
type CollectibleCollected struct {
	Kind  string
	Value int
}

// ZoneEntered fires on the tick the player's x-position enters a special
// zone's span.
type ZoneEntered struct {
	Kind string
}

// SpecialStarted fires when a timed score multiplier activates.
type SpecialStarted struct {
	Multiplier float64
	Seconds    int
}

// LevelCompleted fires once per level instance when all objectives are met.
type LevelCompleted struct {
	Level int
	Score int
}

// TimeExpired fires when the level time limit runs out before completion.
type TimeExpired struct {
	Level int
	Score int
}

// NewHighScore fires when a finished level beats the stored best for the
// active mode.
type NewHighScore struct {
	Score int
}

func (TrickPerformed) event()       {}
func (ComboEnded) event()           {}
func (ComboCashed) event()          {}
func (CollectibleCollected) event() {}
func (ZoneEntered) event()          {}
func (SpecialStarted) event()       {}
func (LevelCompleted) event()       {}
func (TimeExpired) event()          {}
func (NewHighScore) event()         {}
