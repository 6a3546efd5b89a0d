// Package session orchestrates a run: it owns the physics, character,
// level and scoring systems, advances them in a fixed order each tick
// and exposes the whole thing through the registry.Game interface.
//
// The session is single-goroutine by construction. The platform calls
// Step once per tick; all simulation state lives behind that call.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shred/internal/config"
	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/character"
	"github.com/vovakirdan/tui-shred/internal/game/level"
	"github.com/vovakirdan/tui-shred/internal/game/leveldata"
	"github.com/vovakirdan/tui-shred/internal/game/physics"
	"github.com/vovakirdan/tui-shred/internal/game/scoring"
	"github.com/vovakirdan/tui-shred/internal/game/tricks"
	"github.com/vovakirdan/tui-shred/internal/registry"
	"github.com/vovakirdan/tui-shred/internal/storage"
)

// Player bounding box in world units.
const (
	playerW = 20.0
	playerH = 30.0

	playerStartX = 50.0
)

// Store is the persistence collaborator for high scores and run records.
// *storage.Store satisfies it; nil means session-only scores.
type Store interface {
	scoring.Store
	SaveRun(run storage.RunRecord) (int64, error)
}

// Package-level knobs set by the CLI before a session starts.
var (
	configPath   string
	levelsDir    string
	startLevelID string
	difficulty   string
	store        Store
	logger       = log.Default()
)

// SetConfigPath sets the custom physics config path for loading.
func SetConfigPath(path string) { configPath = path }

// SetLevelsDir points the session at a directory of custom level files.
// When empty the built-in campaign is used.
func SetLevelsDir(dir string) { levelsDir = dir }

// SetStartLevel selects the level to start from by ID.
func SetStartLevel(id string) { startLevelID = id }

// SetDifficulty overrides every level's difficulty preset.
func SetDifficulty(preset string) { difficulty = preset }

// SetStore wires the persistence layer. A nil store keeps scores
// session-only.
func SetStore(s Store) { store = s }

// SetLogger replaces the session logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Run is one playthrough of a mode's level campaign.
type Run struct {
	mode  string
	title string

	runtime core.RuntimeConfig
	seed    int64

	skateCfg config.SkateConfig
	surfCfg  config.SurfConfig

	levels   []leveldata.Def
	levelIdx int

	phys  *physics.Controller
	char  *character.Controller
	lvl   *level.System
	score *scoring.System

	timeRemaining float64 // seconds, counts down when the level is timed
	levelElapsed  float64
	tricksLanded  int

	paused        bool
	levelComplete bool
	gameOver      bool

	totalScore int
	highScore  int

	// Zone membership from the previous frame, for enter detection.
	activeZones map[*level.SpecialZone]bool
	inTube      bool

	runSaved bool

	started bool
	lastNow time.Time
	nowMs   float64
}

// New creates a run for the given mode.
func New(mode, title string) *Run {
	return &Run{mode: mode, title: title}
}

// ID returns the mode identifier.
func (r *Run) ID() string {
	return r.mode
}

// Title returns the display name.
func (r *Run) Title() string {
	return r.title
}

// Reset loads configuration and levels and starts the campaign over.
func (r *Run) Reset(cfg core.RuntimeConfig) {
	r.runtime = cfg
	r.seed = cfg.Seed
	if r.seed == 0 {
		r.seed = time.Now().UnixNano()
	}

	r.loadConfigs()
	r.loadLevels()

	r.levelIdx = 0
	if startLevelID != "" {
		found := false
		for i, def := range r.levels {
			if def.ID == startLevelID {
				r.levelIdx = i
				found = true
				break
			}
		}
		if !found {
			logger.Warn("start level not found, using first", "level", startLevelID, "mode", r.mode)
		}
	}

	r.totalScore = 0
	r.gameOver = false
	r.paused = false
	r.started = false

	r.highScore = 0
	if store != nil {
		best, err := store.HighScore(r.mode)
		if err != nil {
			logger.Warn("could not read high score", "mode", r.mode, "error", err)
		} else {
			r.highScore = best
		}
	}

	r.loadLevel(r.levelIdx)
}

// loadConfigs reads the physics tuning for the active mode. A missing or
// broken config file degrades to the embedded defaults with a warning.
func (r *Run) loadConfigs() {
	switch r.mode {
	case "surf":
		cfg, err := config.LoadSurf(configPath)
		if err != nil {
			logger.Warn("could not load surf config, using defaults", "error", err)
			cfg = config.DefaultSurfConfig()
		}
		r.surfCfg = cfg
	default:
		cfg, err := config.LoadSkate(configPath)
		if err != nil {
			logger.Warn("could not load skate config, using defaults", "error", err)
			cfg = config.DefaultSkateConfig()
		}
		r.skateCfg = cfg
	}
}

// loadLevels picks the level list: a custom directory when configured,
// otherwise the built-in campaign for the mode.
func (r *Run) loadLevels() {
	r.levels = nil

	if levelsDir != "" {
		defs, err := leveldata.NewLoader(levelsDir).LoadAll()
		if err != nil {
			logger.Warn("could not load custom levels, using campaign", "dir", levelsDir, "error", err)
		} else {
			for _, def := range defs {
				if def.Mode == r.mode {
					r.levels = append(r.levels, def)
				}
			}
			if len(r.levels) == 0 {
				logger.Warn("no custom levels for mode, using campaign", "dir", levelsDir, "mode", r.mode)
			}
		}
	}

	if len(r.levels) == 0 {
		r.levels = leveldata.ByMode(r.mode)
	}

	if difficulty != "" {
		preset := string(config.ParseDifficulty(difficulty))
		for i := range r.levels {
			r.levels[i].Difficulty = preset
		}
	}
}

// loadLevel builds fresh simulation state for the level at idx.
func (r *Run) loadLevel(idx int) {
	def := r.levels[idx]

	switch r.mode {
	case "surf":
		r.phys = physics.NewSurf(r.surfCfg, playerW, playerH)
	default:
		r.phys = physics.NewSkate(r.skateCfg, playerW, playerH)
	}

	r.lvl = level.New(def, r.seed+int64(idx))

	r.phys.X = playerStartX
	r.phys.Y = r.lvl.TerrainYAt(playerStartX+playerW/2, 0) - playerH
	r.phys.Grounded = true

	r.char = character.New(r.mode, r.phys)
	r.score = scoring.New(r.mode, def.Objectives, store, logger)

	r.timeRemaining = float64(def.TimeLimit)
	r.levelElapsed = 0
	r.tricksLanded = 0
	r.levelComplete = false
	r.runSaved = false
	r.activeZones = make(map[*level.SpecialZone]bool)
	r.inTube = false
	r.started = false
}

// Step advances the simulation. now is the wall-clock time of this tick;
// elapsed time between calls drives integration and the wave animation.
func (r *Run) Step(in core.InputFrame, now time.Time) core.StepResult {
	var events []core.Event

	if in.Has(core.ActionRestart) {
		r.restart(now)
		return core.StepResult{State: r.State()}
	}

	if in.Has(core.ActionPause) && !r.gameOver && !r.levelComplete {
		r.paused = !r.paused
	}

	if r.gameOver || r.paused {
		r.lastNow = now
		return core.StepResult{State: r.State()}
	}

	if r.levelComplete {
		r.lastNow = now
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			r.advance()
		}
		return core.StepResult{State: r.State()}
	}

	dt := r.delta(now)
	r.nowMs = float64(now.UnixNano()) / 1e6

	r.phys.Update(dt, r.nowMs)

	// Terrain and obstacles resolve before the character steps so the
	// trick state machine sees this frame's grounded/rail state.
	report := r.lvl.CheckCollisions(r.phys.Bounds(), r.nowMs)
	if report.OnGround {
		r.phys.HandleGroundCollision(report.GroundY)
	}
	for _, hit := range report.Obstacles {
		if ramp, ok := hit.Obstacle.Props.(level.RampProps); ok {
			r.phys.Launch(ramp.LaunchVX, ramp.LaunchVY)
			continue
		}
		r.phys.HandleObstacleCollision(hit.Obstacle, hit.Overlap)
	}

	for _, c := range report.Collected {
		r.score.RecordCollectible(c.Value)
		events = append(events, core.CollectibleCollected{Kind: c.Kind, Value: c.Value})
	}
	events = append(events, r.applyZones(report.Zones)...)

	env := character.Surroundings{
		WaveY:  r.lvl.WaveYAt(r.phys.X+playerW/2, r.nowMs),
		InTube: r.inTube,
	}
	charEvents := r.char.Update(in, r.nowMs, env)
	for _, ev := range charEvents {
		tp, ok := ev.(core.TrickPerformed)
		if !ok {
			continue
		}
		def := tricks.Lookup(r.mode, tp.TrickID)
		r.score.RecordTrick(def, tp.Score)
		r.tricksLanded++
		if def != nil && def.GrindTrick {
			r.railBonus(report)
		}
	}
	events = append(events, charEvents...)

	// Grinds and tube rides pay out continuously while they hold.
	if pts := r.char.ContinuousPoints(); pts > 0 {
		r.score.AddPoints(pts, scoring.SourceTrick)
	}

	r.lvl.Update(r.phys.X, r.nowMs)
	r.score.Update()
	events = append(events, r.score.DrainEvents()...)

	r.levelElapsed += dt
	if r.lvl.Def().TimeLimit > 0 && !r.score.LevelComplete() {
		r.timeRemaining -= dt
		if r.timeRemaining <= 0 {
			r.timeRemaining = 0
			r.gameOver = true
			events = append(events, core.TimeExpired{Level: r.levelIdx, Score: r.score.Score})
			r.saveRun(false)
		}
	}

	if !r.gameOver && !r.levelComplete && r.score.LevelComplete() {
		r.levelComplete = true
		r.totalScore += r.score.Score
		if r.score.Score > r.highScore {
			r.highScore = r.score.Score
		}
		events = append(events, core.LevelCompleted{Level: r.levelIdx, Score: r.score.Score})
		r.saveRun(true)
	}

	return core.StepResult{State: r.State(), Events: events}
}

// delta returns the wall-clock seconds since the previous Step. The
// first tick of a level uses the nominal tick interval.
func (r *Run) delta(now time.Time) float64 {
	defer func() { r.lastNow = now }()

	if !r.started {
		r.started = true
		rate := r.runtime.TickRate
		if rate <= 0 {
			rate = 60
		}
		return 1.0 / float64(rate)
	}

	dt := now.Sub(r.lastNow).Seconds()
	if dt <= 0 {
		dt = 1.0 / 60
	}
	return dt
}

// applyZones processes zone membership for this frame. Effects fire on
// entry only; leaving and re-entering a zone re-triggers them.
func (r *Run) applyZones(zones []*level.SpecialZone) []core.Event {
	var events []core.Event

	current := make(map[*level.SpecialZone]bool, len(zones))
	inTube := false

	for _, z := range zones {
		current[z] = true
		if _, ok := z.Props.(level.TubeProps); ok {
			inTube = true
		}
		if r.activeZones[z] {
			continue
		}

		switch p := z.Props.(type) {
		case level.HalfPipeProps:
			r.score.StartSpecialMode(p.Seconds, p.Multiplier)
		case level.TubeProps:
			r.score.StartSpecialMode(p.Seconds, p.Multiplier)
		case level.SpeedProps:
			boost := p.Boost
			if r.char != nil && r.char.Facing == character.FacingLeft {
				boost = -boost
			}
			r.phys.ApplyBoost(boost)
		}
		events = append(events, core.ZoneEntered{Kind: z.Kind})
	}

	r.activeZones = current
	r.inTube = inTube
	return events
}

// railBonus pays a rail's authored bonus when a grind starts on it.
func (r *Run) railBonus(report level.Report) {
	for _, hit := range report.Obstacles {
		if rail, ok := hit.Obstacle.Props.(level.RailProps); ok && rail.TrickBonus > 0 {
			r.score.AddPoints(rail.TrickBonus, scoring.SourceTrick)
			return
		}
	}
}

// advance moves to the next level, or ends the run after the last one.
func (r *Run) advance() {
	r.levelIdx++
	if r.levelIdx >= len(r.levels) {
		r.levelIdx = len(r.levels) - 1
		r.gameOver = true
		return
	}
	r.loadLevel(r.levelIdx)
}

// restart replays the current level from scratch with a fresh seed.
func (r *Run) restart(now time.Time) {
	r.seed = now.UnixNano()
	r.gameOver = false
	r.paused = false
	r.loadLevel(r.levelIdx)
}

// saveRun records the level outcome. Persistence failures are logged
// and otherwise ignored.
func (r *Run) saveRun(completed bool) {
	if r.runSaved || store == nil {
		return
	}
	r.runSaved = true

	_, err := store.SaveRun(storage.RunRecord{
		Mode:         r.mode,
		LevelID:      r.lvl.Def().ID,
		Score:        r.score.Score,
		MaxCombo:     r.score.MaxCombo(),
		Tricks:       r.tricksLanded,
		Collectibles: r.score.CollectiblesGathered(),
		Completed:    completed,
		Duration:     int(r.levelElapsed),
	})
	if err != nil {
		logger.Warn("could not save run record", "mode", r.mode, "error", err)
	}
}

// State returns the platform-facing snapshot of the run.
func (r *Run) State() core.GameState {
	st := core.GameState{
		TotalScore:    r.totalScore,
		HighScore:     r.highScore,
		Multiplier:    1,
		Level:         r.levelIdx,
		LevelComplete: r.levelComplete,
		GameOver:      r.gameOver,
		Paused:        r.paused,
	}
	if r.score != nil {
		st.Score = r.score.Score
		st.Multiplier = r.score.Multiplier
	}
	if r.char != nil {
		st.Combo = r.char.ComboCounter
	}
	return st
}

func init() {
	registry.Register("skate", func() registry.Game {
		return New("skate", "Street Shred")
	})
	registry.Register("surf", func() registry.Game {
		return New("surf", "Wave Rider")
	})
}
