package storage

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := testStore(t)

	for _, score := range []int{300, 100, 500, 200} {
		if _, err := store.SaveScore("skate", score); err != nil {
			t.Fatalf("SaveScore(%d): %v", score, err)
		}
	}
	if _, err := store.SaveScore("surf", 900); err != nil {
		t.Fatalf("SaveScore(surf): %v", err)
	}

	entries, err := store.TopScores("skate", 3)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	wantOrder := []int{500, 300, 200}
	for i, want := range wantOrder {
		if entries[i].Score != want {
			t.Errorf("entry %d score = %d, want %d", i, entries[i].Score, want)
		}
		if entries[i].Mode != "skate" {
			t.Errorf("entry %d mode = %q, want skate", i, entries[i].Mode)
		}
	}
}

func TestHighScore(t *testing.T) {
	store := testStore(t)

	score, err := store.HighScore("skate")
	if err != nil {
		t.Fatalf("HighScore on empty db: %v", err)
	}
	if score != 0 {
		t.Errorf("empty high score = %d, want 0", score)
	}

	store.SaveScore("skate", 400)
	store.SaveScore("skate", 700)
	store.SaveScore("surf", 9000)

	score, err = store.HighScore("skate")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if score != 700 {
		t.Errorf("high score = %d, want 700", score)
	}
}

func TestClearScores(t *testing.T) {
	store := testStore(t)
	store.SaveScore("skate", 100)
	store.SaveScore("surf", 200)

	if err := store.ClearScores("skate"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	entries, _ := store.TopScores("skate", 10)
	if len(entries) != 0 {
		t.Errorf("skate scores after clear = %d, want 0", len(entries))
	}
	entries, _ = store.TopScores("surf", 10)
	if len(entries) != 1 {
		t.Errorf("surf scores after clearing skate = %d, want 1", len(entries))
	}
}

func TestSaveAndQueryRuns(t *testing.T) {
	store := testStore(t)

	runs := []RunRecord{
		{Mode: "skate", LevelID: "skate-1", Score: 2500, MaxCombo: 4, Tricks: 12, Collectibles: 6, Completed: true, Duration: 95},
		{Mode: "skate", LevelID: "skate-1", Score: 1800, MaxCombo: 2, Tricks: 8, Collectibles: 3, Completed: false, Duration: 120},
		{Mode: "surf", LevelID: "surf-1", Score: 3100, MaxCombo: 5, Tricks: 10, Collectibles: 5, Completed: true, Duration: 88},
	}
	for i, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun %d: %v", i, err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d recent runs, want 3", len(recent))
	}

	best, err := store.LevelRuns("skate-1", 10)
	if err != nil {
		t.Fatalf("LevelRuns: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("got %d runs for skate-1, want 2", len(best))
	}
	if best[0].Score != 2500 || best[1].Score != 1800 {
		t.Errorf("level runs not ordered by score: %d, %d", best[0].Score, best[1].Score)
	}
	if !best[0].Completed || best[0].MaxCombo != 4 {
		t.Errorf("run fields lost: %+v", best[0])
	}
}

func TestModeStats(t *testing.T) {
	store := testStore(t)
	store.SaveScore("skate", 100)
	store.SaveScore("skate", 300)

	stats, err := store.GetModeStats("skate")
	if err != nil {
		t.Fatalf("GetModeStats: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}

	empty, err := store.GetModeStats("surf")
	if err != nil {
		t.Fatalf("GetModeStats(empty): %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestGetAllModeStats(t *testing.T) {
	store := testStore(t)
	store.SaveScore("skate", 100)
	store.SaveScore("surf", 250)
	store.SaveScore("surf", 150)

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got stats for %d modes, want 2", len(all))
	}
	if all["surf"].GamesCount != 2 || all["surf"].HighScore != 250 {
		t.Errorf("surf stats = %+v", all["surf"])
	}
}

func TestOpenCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open with nested path: %v", err)
	}
	store.Close()
}
