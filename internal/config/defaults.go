package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default game configuration.
// Mirrors defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:     80,
			Height:    40,
			Speed:     5,
			MuzzleGap: 10,
		},
		Projectiles: ProjectileConfig{
			Width:  3,
			Height: 15,
			Speed:  7,
		},
		Formation: FormationConfig{
			Rows:           4,
			Cols:           8,
			EnemyWidth:     40,
			EnemyHeight:    25,
			Spacing:        30,
			TopMargin:      50,
			Speed:          1,
			SpeedIncrement: 0.5,
			DropDistance:   30,
		},
		EnemyFire: EnemyFireConfig{
			CooldownMS:  1000,
			Probability: 0.02,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			PointsPerRank: 10,
			HighScoreKey:  "highScore",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
