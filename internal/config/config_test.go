package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"low", DifficultyLow},
		{"medium", DifficultyMedium},
		{"high", DifficultyHigh},
		{"", DifficultyMedium},
		{"nightmare", DifficultyMedium},
	}
	for _, tc := range cases {
		if got := ParseDifficulty(tc.in); got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGroundVariationBands(t *testing.T) {
	if DifficultyLow.GroundVariation() != 20 {
		t.Errorf("low variation = %v, want 20", DifficultyLow.GroundVariation())
	}
	if DifficultyMedium.GroundVariation() != 40 {
		t.Errorf("medium variation = %v, want 40", DifficultyMedium.GroundVariation())
	}
	if DifficultyHigh.GroundVariation() != 60 {
		t.Errorf("high variation = %v, want 60", DifficultyHigh.GroundVariation())
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var skate SkateConfig
	if err := yaml.Unmarshal(GetDefaultYAML("skate"), &skate); err != nil {
		t.Fatalf("parsing embedded skate defaults: %v", err)
	}
	if skate != DefaultSkateConfig() {
		t.Errorf("embedded skate defaults = %+v, want %+v", skate, DefaultSkateConfig())
	}

	var surf SurfConfig
	if err := yaml.Unmarshal(GetDefaultYAML("surf"), &surf); err != nil {
		t.Fatalf("parsing embedded surf defaults: %v", err)
	}
	if surf != DefaultSurfConfig() {
		t.Errorf("embedded surf defaults = %+v, want %+v", surf, DefaultSurfConfig())
	}
}

func TestGetDefaultYAMLUnknownModeFallsBack(t *testing.T) {
	if string(GetDefaultYAML("bmx")) != string(GetDefaultYAML("skate")) {
		t.Error("unknown mode should return the skate defaults")
	}
}

func TestLoadSkateCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skate.yaml")
	content := `
physics:
  gravity: 0.8
  friction: 0.9
  max_speed: 6
  acceleration: 0.3
  jump_force: 14
trick:
  skyline: 280
  height_weight: 0.6
  speed_weight: 1.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSkate(path)
	if err != nil {
		t.Fatalf("LoadSkate: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 || cfg.Physics.JumpForce != 14 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Trick.Skyline != 280 {
		t.Errorf("trick tuning = %+v", cfg.Trick)
	}
}

func TestLoadSurfCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surf.yaml")
	content := `
physics:
  gravity: 0.5
  friction: 0.96
  max_speed: 11
  acceleration: 0.5
  jump_force: 9
wave:
  force: 0.1
  amplitude: 35
  steepness: 1.2
  water_level: 310
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSurf(path)
	if err != nil {
		t.Fatalf("LoadSurf: %v", err)
	}
	if cfg.Wave.WaterLevel != 310 || cfg.Wave.Force != 0.1 {
		t.Errorf("wave tuning = %+v", cfg.Wave)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := LoadSkate(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadSkate with a missing explicit path should fail")
	}
	if _, err := LoadSurf(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadSurf with a missing explicit path should fail")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSkate(path); err == nil {
		t.Error("LoadSkate with broken YAML should fail")
	}
}
