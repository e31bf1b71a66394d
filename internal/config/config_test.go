package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultInvadersConfig())
	}
}

func TestLoadInvadersFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("config = %+v, expected defaults", cfg)
	}
}

func TestLoadInvadersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".invaders", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("gameplay:\n  lives: 7\n")
	if err := os.WriteFile(filepath.Join(dir, "invaders.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Formation.Rows != 4 {
		t.Errorf("Rows = %d, expected 4 (untouched keys keep defaults)", cfg.Formation.Rows)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("formation:\n  rows: 2\n  cols: 3\nenemy_fire:\n  probability: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if cfg.Formation.Rows != 2 || cfg.Formation.Cols != 3 {
		t.Errorf("formation = %dx%d, expected 2x3", cfg.Formation.Rows, cfg.Formation.Cols)
	}
	if cfg.EnemyFire.Probability != 0.5 {
		t.Errorf("Probability = %v, expected 0.5", cfg.EnemyFire.Probability)
	}
	if cfg.Playfield.Width != 800 {
		t.Errorf("Playfield.Width = %v, expected 800", cfg.Playfield.Width)
	}
}

func TestLoadInvadersCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("formation: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(invalid); err == nil {
		t.Error("expected validation error for zero lives")
	}
}

func TestLoadInvadersWithPresetValidatesResult(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	// The preset replaces the invalid file value before validation.
	stopped := write("stopped.yaml", "formation:\n  speed: 0\n")
	cfg, err := LoadInvadersWithPreset(stopped, DifficultyHard)
	if err != nil {
		t.Fatalf("LoadInvadersWithPreset(hard) failed: %v", err)
	}
	if cfg.Formation.Speed != 1.5 || cfg.Gameplay.Lives != 2 {
		t.Errorf("speed/lives = %v/%d, expected 1.5/2", cfg.Formation.Speed, cfg.Gameplay.Lives)
	}

	// A preset that leaves the bad value in place still fails.
	if _, err := LoadInvadersWithPreset(stopped, DifficultyEasy); err == nil {
		t.Error("expected validation error for zero formation speed under easy")
	}
	if _, err := LoadInvadersWithPreset(stopped, ""); err == nil {
		t.Error("expected validation error for zero formation speed without a preset")
	}

	noLives := write("nolives.yaml", "gameplay:\n  lives: 0\n")
	cfg, err = LoadInvadersWithPreset(noLives, DifficultyEasy)
	if err != nil {
		t.Fatalf("LoadInvadersWithPreset(easy) failed: %v", err)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		substr string
	}{
		{"zero playfield", func(c *InvadersConfig) { c.Playfield.Width = 0 }, "playfield"},
		{"no rows", func(c *InvadersConfig) { c.Formation.Rows = 0 }, "row"},
		{"zero speed", func(c *InvadersConfig) { c.Formation.Speed = 0 }, "formation speed"},
		{"probability above one", func(c *InvadersConfig) { c.EnemyFire.Probability = 1.5 }, "probability"},
		{"negative cooldown", func(c *InvadersConfig) { c.EnemyFire.CooldownMS = -1 }, "cooldown"},
		{"formation too wide", func(c *InvadersConfig) { c.Formation.Cols = 20 }, "wider than the playfield"},
		{"empty key", func(c *InvadersConfig) { c.Gameplay.HighScoreKey = "" }, "high score key"},
	}

	if err := Validate(DefaultInvadersConfig()); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error = %q, expected it to mention %q", err, tt.substr)
			}
		})
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	easy := DefaultInvadersConfig()
	ApplyInvadersPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 {
		t.Errorf("easy Lives = %d, expected 5", easy.Gameplay.Lives)
	}
	if easy.EnemyFire.Cooldown() != 1500*time.Millisecond {
		t.Errorf("easy Cooldown = %v, expected 1.5s", easy.EnemyFire.Cooldown())
	}

	hard := DefaultInvadersConfig()
	ApplyInvadersPreset(&hard, DifficultyHard)
	if hard.EnemyFire.Probability <= DefaultInvadersConfig().EnemyFire.Probability {
		t.Errorf("hard Probability = %v, expected more than default", hard.EnemyFire.Probability)
	}
	if err := Validate(hard); err != nil {
		t.Errorf("hard preset should validate: %v", err)
	}

	normal := DefaultInvadersConfig()
	ApplyInvadersPreset(&normal, DifficultyNormal)
	if normal != DefaultInvadersConfig() {
		t.Error("normal preset should leave defaults unchanged")
	}

	fixed := DefaultInvadersConfig()
	ApplyInvadersPreset(&fixed, DifficultyFixed)
	if WaveSpeed(fixed.Formation, 5) != fixed.Formation.Speed {
		t.Errorf("fixed WaveSpeed(5) = %v, expected %v", WaveSpeed(fixed.Formation, 5), fixed.Formation.Speed)
	}
}

func TestWaveSpeed(t *testing.T) {
	f := DefaultInvadersConfig().Formation
	tests := []struct {
		wave     int
		expected float64
	}{
		{0, 1},
		{1, 1},
		{2, 1.5},
		{5, 3},
	}
	for _, tt := range tests {
		if got := WaveSpeed(f, tt.wave); got != tt.expected {
			t.Errorf("WaveSpeed(%d) = %v, expected %v", tt.wave, got, tt.expected)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
