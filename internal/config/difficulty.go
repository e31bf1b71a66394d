package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// An empty string means "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Presets only pick starting parameters; the per-wave speed increment is the
// only progression, and "fixed" turns even that off.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.EnemyFire.Probability = 0.01
		cfg.EnemyFire.CooldownMS = 1500
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.EnemyFire.Probability = 0.04
		cfg.EnemyFire.CooldownMS = 600
		cfg.Formation.Speed = 1.5
	case DifficultyFixed:
		cfg.Formation.SpeedIncrement = 0
	}
}

// WaveSpeed returns the formation speed for a 1-based wave number.
func WaveSpeed(f FormationConfig, wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return f.Speed + float64(wave-1)*f.SpeedIncrement
}
