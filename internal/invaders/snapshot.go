package invaders

import "math"

// Snapshot contains the complete simulation state.
// Positions are flattened into float slices for stable comparison.
type Snapshot struct {
	Tick      uint64
	State     string
	PlayerX   float64
	Score     int
	Lives     int
	HighScore int
	Wave      int
	Speed     float64
	Direction int
	StepDown  bool

	// Each enemy is 3 values: X, Y, Rank
	EnemyCount int
	EnemyData  []float64

	// Each shot is 2 values: X, Y
	PlayerShotData []float64
	EnemyShotData  []float64

	LastEnemyShotUnixNano int64

	// RNG state when the generator exposes it, otherwise 0
	RNGState uint64
}

// stater is implemented by generators that can report their internal state.
type stater interface {
	State() uint64
}

// Snapshot returns the current simulation state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(s.enemies)*3)
	for _, e := range s.enemies {
		enemyData = append(enemyData, e.X, e.Y, float64(e.Rank))
	}

	snap := Snapshot{
		Tick:           s.tick,
		State:          s.state.String(),
		PlayerX:        s.player.X,
		Score:          s.score,
		Lives:          s.lives,
		HighScore:      s.highScore,
		Wave:           s.wave,
		Speed:          s.speed,
		Direction:      s.direction,
		StepDown:       s.stepDown,
		EnemyCount:     len(s.enemies),
		EnemyData:      enemyData,
		PlayerShotData: flattenShots(s.playerShots),
		EnemyShotData:  flattenShots(s.enemyShots),
	}

	if !s.lastEnemyShot.IsZero() {
		snap.LastEnemyShotUnixNano = s.lastEnemyShot.UnixNano()
	}
	if st, ok := s.rng.(stater); ok {
		snap.RNGState = st.State()
	}
	return snap
}

func flattenShots(shots []Projectile) []float64 {
	data := make([]float64, 0, len(shots)*2)
	for _, p := range shots {
		data = append(data, p.X, p.Y)
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + uint64(snap.Direction+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)  //#nosec G115 -- hash computation
	if snap.StepDown {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(len(snap.PlayerShotData)) //#nosec G115 -- hash computation
	for _, v := range snap.PlayerShotData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(len(snap.EnemyShotData)) //#nosec G115 -- hash computation
	for _, v := range snap.EnemyShotData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.LastEnemyShotUnixNano) //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState

	return h
}
