// Package scoring implements point accumulation, the multiplier/combo
// economy, timed special modes, objective tracking and level-completion
// determination.
package scoring

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/leveldata"
	"github.com/vovakirdan/tui-shred/internal/game/tricks"
)

const (
	// ComboWindow is the scoring-side combo window in frames. It is
	// longer than the character controller's 90-frame window; the two
	// timers are distinct state on purpose and may diverge.
	ComboWindow = 120

	// MaxMultiplier caps the combo-derived multiplier.
	MaxMultiplier = 10.0

	// historyLimit bounds the points history kept for breakdowns.
	historyLimit = 50

	// comboLengthBonus is awarded per combo entry when a combo cashes out.
	comboLengthBonus = 100
)

// Source tags a points award for breakdown reporting.
type Source string

const (
	SourceTrick       Source = "trick"
	SourceCollectible Source = "collectible"
	SourceCombo       Source = "combo"
	SourceSpecial     Source = "special"
	SourceGeneric     Source = "generic"
)

// Record is one bounded-history points entry.
type Record struct {
	Base   int
	Total  int
	Source Source
	Tick   uint64
}

// ComboEntry is one trick inside the current scoring combo.
type ComboEntry struct {
	TrickID string
	Score   int
	Tick    uint64
}

// GoalProgress tracks a single special goal toward completion.
type GoalProgress struct {
	Type     leveldata.GoalType
	TrickID  string
	Label    string
	Current  int
	Target   int
	Complete bool
}

// Store is the persistence collaborator. Failures are non-fatal: scores
// degrade to session-only state.
type Store interface {
	HighScore(mode string) (int, error)
	SaveScore(mode string, score int) (int64, error)
}

// System owns all scoring state for one level instance.
type System struct {
	mode       string
	objectives leveldata.Objectives
	store      Store
	logger     *log.Logger

	Score      int
	Multiplier float64

	combo       []ComboEntry
	comboTimer  int
	comboPoints int
	maxCombo    int

	specialActive     bool
	specialTimer      int
	specialMultiplier float64

	goals map[string]*GoalProgress

	collectiblesGathered int
	levelComplete        bool
	highScorePersisted   bool

	history []Record
	tick    uint64

	events []core.Event
}

// New creates a fresh scoring system for a level. store may be nil
// (session-only scores).
func New(mode string, objectives leveldata.Objectives, store Store, logger *log.Logger) *System {
	if logger == nil {
		logger = log.Default()
	}
	s := &System{
		mode:              mode,
		objectives:        objectives,
		store:             store,
		logger:            logger,
		Multiplier:        1,
		specialMultiplier: 1,
		goals:             make(map[string]*GoalProgress),
	}
	for _, g := range objectives.SpecialGoals {
		key := goalKey(g.Type, g.TrickID)
		s.goals[key] = &GoalProgress{
			Type:    g.Type,
			TrickID: g.TrickID,
			Label:   g.Label,
			Target:  g.Count,
		}
	}
	return s
}

func goalKey(t leveldata.GoalType, trickID string) string {
	if t == leveldata.GoalPerformTrick {
		return fmt.Sprintf("%s:%s", t, trickID)
	}
	return string(t)
}

// AddPoints awards base points scaled by the combo multiplier and the
// special-mode multiplier, floored. Every call appends one history entry.
func (s *System) AddPoints(base int, source Source) int {
	total := int(math.Floor(float64(base) * s.Multiplier * s.specialMultiplier))
	s.Score += total

	s.history = append(s.history, Record{Base: base, Total: total, Source: source, Tick: s.tick})
	if len(s.history) > historyLimit {
		s.history = s.history[len(s.history)-historyLimit:]
	}

	if g, ok := s.goals[string(leveldata.GoalScore)]; ok {
		s.advanceGoal(g, s.Score)
	}
	if s.objectives.ScoreTarget > 0 && s.Score >= s.objectives.ScoreTarget {
		s.CheckLevelComplete()
	}
	return total
}

// RecordTrick appends a landed trick to the current combo, restarts the
// scoring combo window, recomputes the multiplier and awards the trick's
// points. Updates PERFORM_TRICK and COMBO goal progress.
func (s *System) RecordTrick(trick *tricks.Def, trickScore int) {
	if trick == nil {
		return
	}

	s.combo = append(s.combo, ComboEntry{TrickID: trick.ID, Score: trickScore, Tick: s.tick})
	s.comboTimer = ComboWindow
	s.Multiplier = math.Min(MaxMultiplier, 1+0.5*float64(len(s.combo)-1))
	s.comboPoints += trickScore
	if len(s.combo) > s.maxCombo {
		s.maxCombo = len(s.combo)
	}

	if g, ok := s.goals[goalKey(leveldata.GoalPerformTrick, trick.ID)]; ok {
		s.advanceGoal(g, g.Current+1)
	}
	if len(s.combo) >= 3 {
		if g, ok := s.goals[string(leveldata.GoalCombo)]; ok {
			// Combo goals take the longest combo observed, not a sum.
			s.advanceGoal(g, core.Max(g.Current, len(s.combo)))
		}
	}

	s.AddPoints(trickScore, SourceTrick)
}

// RecordCollectible awards a collectible's value, counts it and updates
// the COLLECTIBLES goal (uncapped accumulation).
func (s *System) RecordCollectible(value int) {
	s.AddPoints(value, SourceCollectible)
	s.collectiblesGathered++

	if g, ok := s.goals[string(leveldata.GoalCollectibles)]; ok {
		s.advanceGoal(g, g.Current+1)
	}
	s.CheckLevelComplete()
}

func (s *System) advanceGoal(g *GoalProgress, current int) {
	g.Current = current
	if !g.Complete && g.Target > 0 && g.Current >= g.Target {
		g.Complete = true
		s.CheckLevelComplete()
	}
}

// StartSpecialMode activates a timed global score multiplier. The timer
// runs in frames (duration seconds at the 60Hz reference rate).
func (s *System) StartSpecialMode(durationSeconds int, multiplier float64) {
	s.specialActive = true
	s.specialTimer = durationSeconds * 60
	s.specialMultiplier = multiplier
	s.events = append(s.events, core.SpecialStarted{Multiplier: multiplier, Seconds: durationSeconds})
}

// SpecialActive reports whether a special-mode multiplier is running.
func (s *System) SpecialActive() bool {
	return s.specialActive
}

// finalizeCombo cashes out the current combo: combos longer than one
// trick bank their accumulated points plus a per-length bonus through
// AddPoints while the combo multiplier is still live; only then do the
// multiplier and the combo list reset.
func (s *System) finalizeCombo() {
	if length := len(s.combo); length > 1 {
		bonus := s.comboPoints + length*comboLengthBonus
		total := s.AddPoints(bonus, SourceCombo)
		s.events = append(s.events, core.ComboCashed{Length: length, Points: total})
	}
	s.combo = s.combo[:0]
	s.comboPoints = 0
	s.Multiplier = 1
}

// Update advances the scoring timers by one frame. The combo timer and
// the special-mode timer decrement independently.
func (s *System) Update() {
	s.tick++

	if s.comboTimer > 0 {
		s.comboTimer--
		if s.comboTimer == 0 {
			s.finalizeCombo()
		}
	}

	if s.specialActive && s.specialTimer > 0 {
		s.specialTimer--
		if s.specialTimer == 0 {
			s.specialActive = false
			s.specialMultiplier = 1
		}
	}
}

// CheckLevelComplete evaluates the completion predicate: score target
// met (or absent), collectibles target met (or absent) and every special
// goal complete. The first transition to true persists a new high score
// when the level score beats the stored best for the mode. Repeated
// calls without intervening state change return the same result.
func (s *System) CheckLevelComplete() bool {
	if s.levelComplete {
		return true
	}

	if s.objectives.ScoreTarget > 0 && s.Score < s.objectives.ScoreTarget {
		return false
	}
	if s.objectives.CollectiblesTarget > 0 && s.collectiblesGathered < s.objectives.CollectiblesTarget {
		return false
	}
	for _, g := range s.goals {
		if !g.Complete {
			return false
		}
	}

	s.levelComplete = true
	s.persistHighScore()
	return true
}

// persistHighScore writes the level score through the storage
// collaborator when it beats the stored best. Storage failures degrade
// to session-only scores.
func (s *System) persistHighScore() {
	if s.highScorePersisted || s.store == nil {
		return
	}
	s.highScorePersisted = true

	best, err := s.store.HighScore(s.mode)
	if err != nil {
		s.logger.Warn("could not read high score, treating as none", "mode", s.mode, "error", err)
		best = 0
	}
	if s.Score <= best {
		return
	}
	if _, err := s.store.SaveScore(s.mode, s.Score); err != nil {
		s.logger.Warn("could not persist high score", "mode", s.mode, "error", err)
		return
	}
	s.events = append(s.events, core.NewHighScore{Score: s.Score})
}

// DrainEvents returns and clears the queued scoring events. The
// orchestrator drains them once per frame.
func (s *System) DrainEvents() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}

// LevelComplete reports whether the level objectives have all been met.
// Terminal: once true it stays true for this level instance.
func (s *System) LevelComplete() bool {
	return s.levelComplete
}

// ComboLength returns the current scoring combo length.
func (s *System) ComboLength() int {
	return len(s.combo)
}

// MaxCombo returns the longest combo observed this level.
func (s *System) MaxCombo() int {
	return s.maxCombo
}

// CollectiblesGathered returns how many collectibles were picked up.
func (s *System) CollectiblesGathered() int {
	return s.collectiblesGathered
}

// Goals returns the live goal progress map, keyed by goal key.
func (s *System) Goals() map[string]*GoalProgress {
	return s.goals
}

// History returns the bounded points history (most recent last).
func (s *System) History() []Record {
	return s.history
}

// Breakdown sums the recorded history per source.
func (s *System) Breakdown() map[Source]int {
	out := make(map[Source]int)
	for _, r := range s.history {
		out[r.Source] += r.Total
	}
	return out
}
