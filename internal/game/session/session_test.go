package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/level"
	"github.com/vovakirdan/tui-shred/internal/registry"
	"github.com/vovakirdan/tui-shred/internal/storage"
)

type fakeStore struct {
	scores []int
	runs   []storage.RunRecord
}

func (f *fakeStore) HighScore(mode string) (int, error) { return 0, nil }

func (f *fakeStore) SaveScore(mode string, score int) (int64, error) {
	f.scores = append(f.scores, score)
	return int64(len(f.scores)), nil
}

func (f *fakeStore) SaveRun(run storage.RunRecord) (int64, error) {
	f.runs = append(f.runs, run)
	return int64(len(f.runs)), nil
}

// resetKnobs clears the package-level configuration between tests.
func resetKnobs(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetConfigPath("")
		SetLevelsDir("")
		SetStartLevel("")
		SetDifficulty("")
		SetStore(nil)
	})
}

func newRun(t *testing.T, mode string, seed int64) *Run {
	t.Helper()
	resetKnobs(t)
	r := New(mode, "Test Run")
	r.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return r
}

var baseTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// tick advances the run one frame at the nominal 60Hz cadence.
func tick(r *Run, n int, in core.InputFrame) core.StepResult {
	return r.Step(in, baseTime.Add(time.Duration(n)*time.Second/60))
}

func TestModesRegistered(t *testing.T) {
	for _, mode := range []string{"skate", "surf"} {
		if !registry.Exists(mode) {
			t.Fatalf("mode %q not registered", mode)
		}
		game, err := registry.Create(mode)
		if err != nil {
			t.Fatalf("Create(%q): %v", mode, err)
		}
		if game.ID() != mode {
			t.Errorf("game ID = %q, want %q", game.ID(), mode)
		}
	}
}

func TestResetStartsGrounded(t *testing.T) {
	r := newRun(t, "skate", 42)

	if !r.phys.Grounded {
		t.Error("player should start grounded")
	}
	if r.phys.X != playerStartX {
		t.Errorf("player X = %v, want %v", r.phys.X, playerStartX)
	}

	st := r.State()
	if st.Score != 0 || st.GameOver || st.Paused || st.Level != 0 {
		t.Errorf("initial state = %+v", st)
	}
	if st.Multiplier != 1 {
		t.Errorf("initial multiplier = %v, want 1", st.Multiplier)
	}
}

func TestDeterministicSimulation(t *testing.T) {
	run := func() (float64, int) {
		r := New("skate", "Test Run")
		r.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})

		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			in.Hold(core.ActionRight)
			if i == 30 {
				in.Press(core.ActionJump)
			}
			if i == 35 {
				in.Press(core.ActionTrick1)
			}
			tick(r, i, in)
		}
		return r.phys.X, r.State().Score
	}
	resetKnobs(t)

	x1, score1 := run()
	x2, score2 := run()

	if x1 != x2 {
		t.Errorf("positions diverged: %v vs %v", x1, x2)
	}
	if score1 != score2 {
		t.Errorf("scores diverged: %d vs %d", score1, score2)
	}
}

func TestJumpSetsVelocity(t *testing.T) {
	r := newRun(t, "skate", 7)

	in := core.NewInputFrame()
	in.Press(core.ActionJump)
	tick(r, 0, in)

	if r.phys.VY != -12 {
		t.Errorf("VY after jump = %v, want -12", r.phys.VY)
	}
	if r.phys.Grounded {
		t.Error("player should be airborne after a jump")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	r := newRun(t, "skate", 7)

	in := core.NewInputFrame()
	in.Press(core.ActionPause)
	res := tick(r, 0, in)
	if !res.State.Paused {
		t.Fatal("pause press should pause the run")
	}

	x := r.phys.X
	moving := core.NewInputFrame()
	moving.Hold(core.ActionRight)
	for i := 1; i <= 10; i++ {
		tick(r, i, moving)
	}
	if r.phys.X != x {
		t.Errorf("player moved while paused: %v -> %v", x, r.phys.X)
	}

	res = tick(r, 11, in.Clone())
	if res.State.Paused {
		t.Error("second pause press should resume")
	}
}

func TestRestartResetsLevel(t *testing.T) {
	r := newRun(t, "skate", 7)

	moving := core.NewInputFrame()
	moving.Hold(core.ActionRight)
	for i := 0; i < 60; i++ {
		tick(r, i, moving)
	}
	r.score.AddPoints(500, "generic")
	if r.State().Score == 0 || r.phys.X == playerStartX {
		t.Fatal("run did not progress before restart")
	}

	in := core.NewInputFrame()
	in.Press(core.ActionRestart)
	res := tick(r, 61, in)

	if res.State.Score != 0 {
		t.Errorf("score after restart = %d, want 0", res.State.Score)
	}
	if r.phys.X != playerStartX {
		t.Errorf("player X after restart = %v, want %v", r.phys.X, playerStartX)
	}
}

func TestStartLevelSelection(t *testing.T) {
	resetKnobs(t)
	SetStartLevel("skate-2")

	r := New("skate", "Test Run")
	r.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	if r.levelIdx != 1 || r.lvl.Def().ID != "skate-2" {
		t.Errorf("started at level %d (%s), want skate-2", r.levelIdx, r.lvl.Def().ID)
	}
}

func TestUnknownStartLevelFallsBack(t *testing.T) {
	resetKnobs(t)
	SetStartLevel("skate-99")

	r := New("skate", "Test Run")
	r.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	if r.levelIdx != 0 {
		t.Errorf("unknown start level picked index %d, want 0", r.levelIdx)
	}
}

func TestCustomLevelsDirectory(t *testing.T) {
	resetKnobs(t)
	dir := t.TempDir()
	levelYAML := "id: custom-1\nname: Custom\nmode: skate\nlayout:\n  length: 3000\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(levelYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	SetLevelsDir(dir)

	r := New("skate", "Test Run")
	r.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	if len(r.levels) != 1 || r.levels[0].ID != "custom-1" {
		t.Errorf("levels = %+v, want only custom-1", r.levels)
	}
}

func TestEmptyCustomDirFallsBackToCampaign(t *testing.T) {
	resetKnobs(t)
	SetLevelsDir(t.TempDir())

	r := New("surf", "Test Run")
	r.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	if len(r.levels) != 3 || r.levels[0].ID != "surf-1" {
		t.Errorf("expected the surf campaign, got %d levels", len(r.levels))
	}
}

func TestTimeExpiryEndsRun(t *testing.T) {
	resetKnobs(t)
	fake := &fakeStore{}
	SetStore(fake)

	r := New("skate", "Test Run")
	r.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	r.timeRemaining = 0.001

	res := tick(r, 0, core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("run should end when the timer expires")
	}
	var expired bool
	for _, ev := range res.Events {
		if _, ok := ev.(core.TimeExpired); ok {
			expired = true
		}
	}
	if !expired {
		t.Error("expected a TimeExpired event")
	}
	if len(fake.runs) != 1 || fake.runs[0].Completed {
		t.Errorf("saved runs = %+v, want one incomplete record", fake.runs)
	}
	if fake.runs[0].LevelID != "skate-1" {
		t.Errorf("run level = %q, want skate-1", fake.runs[0].LevelID)
	}
}

func TestLevelCompleteAdvances(t *testing.T) {
	r := newRun(t, "skate", 1)
	r.levelComplete = true
	r.totalScore = 2500

	in := core.NewInputFrame()
	in.Press(core.ActionConfirm)
	res := tick(r, 0, in)

	if res.State.Level != 1 {
		t.Errorf("level after advance = %d, want 1", res.State.Level)
	}
	if res.State.LevelComplete {
		t.Error("fresh level should not be complete")
	}
	if res.State.Score != 0 {
		t.Errorf("fresh level score = %d, want 0", res.State.Score)
	}
	if res.State.TotalScore != 2500 {
		t.Errorf("total score = %d, want carried 2500", res.State.TotalScore)
	}
}

func TestCampaignEndsAfterLastLevel(t *testing.T) {
	r := newRun(t, "skate", 1)
	r.levelIdx = len(r.levels) - 1
	r.levelComplete = true

	in := core.NewInputFrame()
	in.Press(core.ActionConfirm)
	res := tick(r, 0, in)

	if !res.State.GameOver {
		t.Error("finishing the last level should end the run")
	}
}

func TestZoneEntryEffects(t *testing.T) {
	r := newRun(t, "skate", 1)
	r.phys.VX = 0

	speed := &level.SpecialZone{Kind: "speed", Props: level.SpeedProps{Boost: 3}}
	events := r.applyZones([]*level.SpecialZone{speed})

	if len(events) != 1 {
		t.Fatalf("got %d events on entry, want 1", len(events))
	}
	if _, ok := events[0].(core.ZoneEntered); !ok {
		t.Errorf("event = %T, want ZoneEntered", events[0])
	}
	if r.phys.VX != 3 {
		t.Errorf("VX after speed zone = %v, want 3", r.phys.VX)
	}

	// Staying inside must not re-trigger.
	if events := r.applyZones([]*level.SpecialZone{speed}); len(events) != 0 {
		t.Errorf("got %d events while inside, want 0", len(events))
	}

	// Leaving and re-entering does.
	r.applyZones(nil)
	if events := r.applyZones([]*level.SpecialZone{speed}); len(events) != 1 {
		t.Errorf("got %d events on re-entry, want 1", len(events))
	}
}

func TestTubeZoneSetsSurroundings(t *testing.T) {
	r := newRun(t, "surf", 1)

	tube := &level.SpecialZone{Kind: "tube", Props: level.TubeProps{Multiplier: 2, Seconds: 8}}
	r.applyZones([]*level.SpecialZone{tube})
	if !r.inTube {
		t.Error("inTube should be set while inside a tube zone")
	}
	if !r.score.SpecialActive() {
		t.Error("tube entry should start special mode")
	}

	r.applyZones(nil)
	if r.inTube {
		t.Error("inTube should clear after leaving")
	}
}

func TestSpeedBoostFollowsFacing(t *testing.T) {
	r := newRun(t, "skate", 1)
	r.char.Facing = "left"
	r.phys.VX = 0

	speed := &level.SpecialZone{Kind: "speed", Props: level.SpeedProps{Boost: 3}}
	r.applyZones([]*level.SpecialZone{speed})

	if r.phys.VX != -3 {
		t.Errorf("VX for a left-facing player = %v, want -3", r.phys.VX)
	}
}

func TestDifficultyOverride(t *testing.T) {
	resetKnobs(t)
	SetDifficulty("high")

	r := New("skate", "Test Run")
	r.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	for i, def := range r.levels {
		if def.Difficulty != "high" {
			t.Errorf("level %d difficulty = %q, want high", i, def.Difficulty)
		}
	}
}
