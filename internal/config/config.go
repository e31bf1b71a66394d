// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

import "time"

// InvadersConfig contains all configuration for the game.
type InvadersConfig struct {
	Playfield   PlayfieldConfig  `yaml:"playfield"`
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Formation   FormationConfig  `yaml:"formation"`
	EnemyFire   EnemyFireConfig  `yaml:"enemy_fire"`
	Gameplay    GameplayConfig   `yaml:"gameplay"`
}

// PlayfieldConfig defines the playfield size in playfield units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`      // Units per tick while a direction is held
	MuzzleGap float64 `yaml:"muzzle_gap"` // Distance above the craft's top edge where shots spawn
}

// ProjectileConfig defines both player and enemy shots.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// FormationConfig defines the enemy grid and its motion.
type FormationConfig struct {
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`
	EnemyWidth     float64 `yaml:"enemy_width"`
	EnemyHeight    float64 `yaml:"enemy_height"`
	Spacing        float64 `yaml:"spacing"`
	TopMargin      float64 `yaml:"top_margin"`
	Speed          float64 `yaml:"speed"`           // Horizontal units per tick at wave 1
	SpeedIncrement float64 `yaml:"speed_increment"` // Added after every cleared wave
	DropDistance   float64 `yaml:"drop_distance"`
}

// EnemyFireConfig defines how often the formation shoots back.
type EnemyFireConfig struct {
	CooldownMS  int     `yaml:"cooldown_ms"`
	Probability float64 `yaml:"probability"` // Per-tick chance of attempting a shot
}

// Cooldown returns the enemy fire cooldown as a duration.
func (c EnemyFireConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// GameplayConfig defines lives, scoring and persistence keys.
type GameplayConfig struct {
	Lives         int    `yaml:"lives"`
	PointsPerRank int    `yaml:"points_per_rank"`
	HighScoreKey  string `yaml:"high_score_key"`
}
