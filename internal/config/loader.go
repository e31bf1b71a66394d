package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the game configuration without a difficulty preset.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. A custom path that cannot be read or parsed is an error;
// the other locations are skipped silently.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return LoadInvadersWithPreset(customPath, "")
}

// LoadInvadersWithPreset loads the configuration like LoadInvaders, applies
// the preset and validates the result.
func LoadInvadersWithPreset(customPath string, preset DifficultyPreset) (InvadersConfig, error) {
	cfg, err := loadInvaders(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyInvadersPreset(&cfg, preset)
	return cfg, Validate(cfg)
}

// loadInvaders finds and decodes the configuration file.
func loadInvaders(customPath string) (InvadersConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("invaders.yaml"), filepath.Join("configs", "invaders.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() InvadersConfig {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// Validate reports configurations the simulation cannot run with.
func Validate(cfg InvadersConfig) error {
	var errs []error

	if cfg.Playfield.Width <= 0 || cfg.Playfield.Height <= 0 {
		errs = append(errs, errors.New("playfield size must be positive"))
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 || cfg.Player.Speed <= 0 {
		errs = append(errs, errors.New("player size and speed must be positive"))
	}
	if cfg.Player.Width > cfg.Playfield.Width {
		errs = append(errs, errors.New("player is wider than the playfield"))
	}
	if cfg.Projectiles.Width <= 0 || cfg.Projectiles.Height <= 0 || cfg.Projectiles.Speed <= 0 {
		errs = append(errs, errors.New("projectile size and speed must be positive"))
	}

	f := cfg.Formation
	if f.Rows <= 0 || f.Cols <= 0 {
		errs = append(errs, errors.New("formation needs at least one row and column"))
	}
	if f.EnemyWidth <= 0 || f.EnemyHeight <= 0 || f.Speed <= 0 || f.DropDistance <= 0 {
		errs = append(errs, errors.New("enemy size, formation speed and drop distance must be positive"))
	}
	if f.Spacing < 0 || f.SpeedIncrement < 0 || f.TopMargin < 0 {
		errs = append(errs, errors.New("spacing, speed increment and top margin must not be negative"))
	}
	if float64(f.Cols)*(f.EnemyWidth+f.Spacing) > cfg.Playfield.Width {
		errs = append(errs, errors.New("formation is wider than the playfield"))
	}

	if cfg.EnemyFire.CooldownMS < 0 {
		errs = append(errs, errors.New("enemy fire cooldown must not be negative"))
	}
	if cfg.EnemyFire.Probability < 0 || cfg.EnemyFire.Probability > 1 {
		errs = append(errs, errors.New("enemy fire probability must be within [0, 1]"))
	}
	if cfg.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}
	if cfg.Gameplay.HighScoreKey == "" {
		errs = append(errs, errors.New("high score key must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
