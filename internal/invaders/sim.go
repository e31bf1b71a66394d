package invaders

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// Simulation is the game world. It is not safe for concurrent use; frontends
// call Advance exactly once per frame from a single goroutine.
type Simulation struct {
	cfg    config.InvadersConfig
	rng    core.RNG
	sink   ScoreSink
	store  HighScoreStore
	logger *log.Logger
	key    string

	state     State
	player    Player
	lives     int
	score     int
	highScore int
	wave      int
	tick      uint64

	enemies     []Enemy
	playerShots []Projectile
	enemyShots  []Projectile

	direction     int // +1 right, -1 left
	stepDown      bool
	speed         float64
	lastEnemyShot time.Time

	events []Event
}

// NewSimulation creates a simulation and resets it.
func NewSimulation(cfg config.InvadersConfig, deps Deps) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		rng:    deps.RNG,
		sink:   deps.Sink,
		store:  deps.Store,
		logger: deps.Logger,
		key:    deps.HighScoreKey,
	}

	if s.rng == nil {
		s.rng = core.NewSimpleRNG(time.Now().UnixNano())
	}
	if s.sink == nil {
		s.sink = nopSink{}
	}
	if s.store == nil {
		s.store = NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.key == "" {
		s.key = cfg.Gameplay.HighScoreKey
	}

	s.Reset()
	return s
}

// Reset puts the world back to its starting layout in the NotStarted state.
// Reads the stored high score and pushes the initial scoreboard to the sink.
func (s *Simulation) Reset() {
	s.player = Player{
		X: (s.cfg.Playfield.Width - s.cfg.Player.Width) / 2,
		Y: s.cfg.Playfield.Height - s.cfg.Player.Height,
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
	s.lives = s.cfg.Gameplay.Lives
	s.score = 0
	s.wave = 1
	s.tick = 0
	s.speed = config.WaveSpeed(s.cfg.Formation, 1)
	s.enemies = buildFormation(s.cfg)
	s.direction = 1
	s.stepDown = false
	s.playerShots = nil
	s.enemyShots = nil
	s.lastEnemyShot = time.Time{}
	s.events = nil
	s.state = StateNotStarted

	stored, err := s.store.HighScore(s.key)
	if err != nil {
		s.logger.Warn("failed to load high score", "key", s.key, "err", err)
	} else {
		s.highScore = stored
	}

	s.publish()
}

// Start begins a fresh game. Does nothing while a game is running.
func (s *Simulation) Start() bool {
	if s.state == StateRunning {
		return false
	}
	s.Reset()
	s.state = StateRunning
	s.logger.Debug("game started", "high_score", s.highScore)
	return true
}

// Fire launches a player shot from the muzzle. There is no cooldown.
func (s *Simulation) Fire() bool {
	if s.state != StateRunning {
		return false
	}

	w := s.cfg.Projectiles.Width
	s.playerShots = append(s.playerShots, Projectile{
		X:  s.player.X + s.player.W/2 - w/2,
		Y:  s.cfg.Playfield.Height - s.player.H - s.cfg.Player.MuzzleGap,
		W:  w,
		H:  s.cfg.Projectiles.Height,
		DY: -s.cfg.Projectiles.Speed,
	})
	s.emit(Event{Kind: EventPlayerFired})
	return true
}

// EnemyFire makes a random surviving enemy shoot, unless the cooldown since
// the previous enemy shot has not elapsed.
func (s *Simulation) EnemyFire(now time.Time) bool {
	if len(s.enemies) == 0 {
		return false
	}
	if !s.lastEnemyShot.IsZero() && now.Sub(s.lastEnemyShot) < s.cfg.EnemyFire.Cooldown() {
		return false
	}

	e := s.enemies[s.rng.Intn(len(s.enemies))]
	w := s.cfg.Projectiles.Width
	s.enemyShots = append(s.enemyShots, Projectile{
		X:  e.X + e.W/2 - w/2,
		Y:  e.Y + e.H,
		W:  w,
		H:  s.cfg.Projectiles.Height,
		DY: s.cfg.Projectiles.Speed,
	})
	s.lastEnemyShot = now
	s.emit(Event{Kind: EventEnemyFired})
	return true
}

// Advance runs one frame of the game. Does nothing unless running.
func (s *Simulation) Advance(in Input, now time.Time) {
	if s.state != StateRunning {
		return
	}
	s.tick++

	if in.Fire {
		s.Fire()
	}

	s.movePlayer(in)
	s.moveProjectiles()
	s.moveFormation()

	if s.formationLanded() {
		s.endGame("formation landed")
	}

	score, lives := s.score, s.lives
	s.resolvePlayerShots()
	s.resolveEnemyShots()

	if s.rng.Float64() < s.cfg.EnemyFire.Probability {
		s.EnemyFire(now)
	}

	if len(s.enemies) == 0 {
		s.nextWave()
	}

	if s.score != score || s.lives != lives {
		s.publish()
	}
}

func (s *Simulation) movePlayer(in Input) {
	if in.Left {
		s.player.X -= s.cfg.Player.Speed
	}
	if in.Right {
		s.player.X += s.cfg.Player.Speed
	}
	s.player.X = core.ClampF(s.player.X, 0, s.cfg.Playfield.Width-s.player.W)
}

func (s *Simulation) moveProjectiles() {
	s.playerShots = moveShots(s.playerShots, func(p Projectile) bool {
		return p.Y+p.H > 0
	})
	s.enemyShots = moveShots(s.enemyShots, func(p Projectile) bool {
		return p.Y < s.cfg.Playfield.Height
	})
}

// moveShots moves every shot and keeps those still inside the playfield.
func moveShots(shots []Projectile, inside func(Projectile) bool) []Projectile {
	kept := shots[:0]
	for _, p := range shots {
		p.Y += p.DY
		if inside(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// resolvePlayerShots removes each player shot together with the first enemy it
// overlaps, in formation order.
func (s *Simulation) resolvePlayerShots() {
	if len(s.playerShots) == 0 {
		return
	}

	dead := make([]bool, len(s.enemies))
	shots := make([]Projectile, 0, len(s.playerShots))
	for _, shot := range s.playerShots {
		hit := -1
		for i, e := range s.enemies {
			if !dead[i] && shot.Rect().Intersects(e.Rect()) {
				hit = i
				break
			}
		}
		if hit < 0 {
			shots = append(shots, shot)
			continue
		}

		dead[hit] = true
		points := s.pointsFor(s.enemies[hit].Rank)
		s.score += points
		s.emit(Event{Kind: EventEnemyDestroyed, Points: points})
	}
	s.playerShots = shots

	survivors := make([]Enemy, 0, len(s.enemies))
	for i, e := range s.enemies {
		if !dead[i] {
			survivors = append(survivors, e)
		}
	}
	s.enemies = survivors
}

// resolveEnemyShots removes every enemy shot that overlaps the player and
// takes a life for each.
func (s *Simulation) resolveEnemyShots() {
	if len(s.enemyShots) == 0 {
		return
	}

	hitbox := s.player.Rect()
	shots := make([]Projectile, 0, len(s.enemyShots))
	for _, shot := range s.enemyShots {
		if !shot.Rect().Intersects(hitbox) {
			shots = append(shots, shot)
			continue
		}

		s.lives = max(s.lives-1, 0)
		s.emit(Event{Kind: EventPlayerHit})
		if s.lives == 0 {
			s.endGame("out of lives")
		}
	}
	s.enemyShots = shots
}

// nextWave rebuilds the formation and speeds it up. Score and lives carry over.
func (s *Simulation) nextWave() {
	s.emit(Event{Kind: EventWaveCleared})
	s.enemies = buildFormation(s.cfg)
	s.stepDown = false
	s.wave++
	s.speed = config.WaveSpeed(s.cfg.Formation, s.wave)
	s.logger.Info("wave cleared", "wave", s.wave, "speed", s.speed, "score", s.score)
}

func (s *Simulation) endGame(reason string) {
	if s.state == StateGameOver {
		return
	}
	s.state = StateGameOver
	s.emit(Event{Kind: EventGameOver})
	s.logger.Info("game over", "reason", reason, "score", s.score, "wave", s.wave)
}

// publish pushes the scoreboard to the sink and persists a new best score.
func (s *Simulation) publish() {
	if s.score > s.highScore {
		s.highScore = s.score
		if err := s.store.SetHighScore(s.key, s.score); err != nil {
			s.logger.Warn("failed to save high score", "key", s.key, "err", err)
		}
	}
	s.sink.ScoreChanged(s.Scoreboard())
}

func (s *Simulation) emit(e Event) {
	e.Tick = s.tick
	if e.Wave == 0 {
		e.Wave = s.wave
	}
	s.events = append(s.events, e)
}

// DrainEvents returns the events recorded since the last call and forgets them.
func (s *Simulation) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}

// Scoreboard returns the numbers a score display shows.
func (s *Simulation) Scoreboard() Scoreboard {
	return Scoreboard{
		Score:     s.score,
		Lives:     s.lives,
		HighScore: s.highScore,
		Wave:      s.wave,
	}
}

// State returns the lifecycle state.
func (s *Simulation) State() State { return s.state }

// Player returns the player craft.
func (s *Simulation) Player() Player { return s.player }

// Enemies returns a copy of the surviving formation.
func (s *Simulation) Enemies() []Enemy { return slices.Clone(s.enemies) }

// PlayerShots returns a copy of the live player shots.
func (s *Simulation) PlayerShots() []Projectile { return slices.Clone(s.playerShots) }

// EnemyShots returns a copy of the live enemy shots.
func (s *Simulation) EnemyShots() []Projectile { return slices.Clone(s.enemyShots) }

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Simulation) Lives() int { return s.lives }

// HighScore returns the best score known to this simulation.
func (s *Simulation) HighScore() int { return s.highScore }

// Wave returns the 1-based wave number.
func (s *Simulation) Wave() int { return s.wave }

// Speed returns the current horizontal formation speed.
func (s *Simulation) Speed() float64 { return s.speed }

// Direction returns +1 when the formation moves right and -1 when it moves left.
func (s *Simulation) Direction() int { return s.direction }

// StepDownPending reports whether the next tick is a drop tick.
func (s *Simulation) StepDownPending() bool { return s.stepDown }

// Tick returns the number of frames advanced since the last reset.
func (s *Simulation) Tick() uint64 { return s.tick }

// Playfield returns the playfield size.
func (s *Simulation) Playfield() (w, h float64) {
	return s.cfg.Playfield.Width, s.cfg.Playfield.Height
}

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.InvadersConfig { return s.cfg }
