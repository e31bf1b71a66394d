package invaders

import "github.com/vovakirdan/invaders/internal/config"

// buildFormation creates the starting grid, centered horizontally.
// Enemies are ordered row by row from the back, which is also the order
// player shots test them in.
func buildFormation(cfg config.InvadersConfig) []Enemy {
	f := cfg.Formation
	cellW := f.EnemyWidth + f.Spacing
	cellH := f.EnemyHeight + f.Spacing
	startX := (cfg.Playfield.Width - float64(f.Cols)*cellW) / 2

	enemies := make([]Enemy, 0, f.Rows*f.Cols)
	for row := range f.Rows {
		for col := range f.Cols {
			enemies = append(enemies, Enemy{
				X:    startX + float64(col)*cellW,
				Y:    f.TopMargin + float64(row)*cellH,
				W:    f.EnemyWidth,
				H:    f.EnemyHeight,
				Rank: row,
			})
		}
	}
	return enemies
}

// moveFormation advances the formation by one tick.
// On a drop tick every enemy moves down and no edge test runs. Otherwise every
// enemy moves sideways; any contact with an edge reverses the direction and
// schedules a drop for the next tick. Enemies may end up past the edge.
func (s *Simulation) moveFormation() {
	if s.stepDown {
		for i := range s.enemies {
			s.enemies[i].Y += s.cfg.Formation.DropDistance
		}
		s.stepDown = false
		return
	}

	dx := s.speed * float64(s.direction)
	touched := false
	for i := range s.enemies {
		e := &s.enemies[i]
		e.X += dx
		if e.X <= 0 || e.X+e.W >= s.cfg.Playfield.Width {
			touched = true
		}
	}

	if touched {
		s.direction = -s.direction
		s.stepDown = true
	}
}

// formationLanded reports whether any enemy reached the player's row.
func (s *Simulation) formationLanded() bool {
	limit := s.cfg.Playfield.Height - s.cfg.Player.Height
	for _, e := range s.enemies {
		if e.Y+e.H >= limit {
			return true
		}
	}
	return false
}

// pointsFor returns the score for destroying an enemy of the given rank.
func (s *Simulation) pointsFor(rank int) int {
	return (s.cfg.Formation.Rows - rank) * s.cfg.Gameplay.PointsPerRank
}
