// Package invaders implements the fixed-shooter simulation and its terminal adapter.
//
// Simulation owns every piece of mutable state and is advanced once per frame
// by a frontend. It has no knowledge of terminals, windows or storage; those
// are reached through the ScoreSink and HighScoreStore interfaces.
package invaders

import "github.com/vovakirdan/invaders/internal/core"

// State is the simulation lifecycle state.
type State int

const (
	StateNotStarted State = iota // Waiting for Start
	StateRunning                 // Advance mutates the world
	StateGameOver                // Frozen until Start or Reset
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player is the craft at the bottom of the playfield.
type Player struct {
	X float64
	Y float64
	W float64
	H float64
}

// Rect returns the player hitbox.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Projectile is a shot fired by the player (DY < 0) or by an enemy (DY > 0).
type Projectile struct {
	X  float64
	Y  float64
	W  float64
	H  float64
	DY float64
}

// Rect returns the projectile hitbox.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Enemy is one member of the formation.
type Enemy struct {
	X    float64
	Y    float64
	W    float64
	H    float64
	Rank int // Row index at creation, 0 = back row
}

// Rect returns the enemy hitbox.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Input is the per-frame control snapshot.
// Left and Right are held states; Fire is true only on the frame the key was pressed.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// InputFromFrame converts platform actions into a simulation input.
func InputFromFrame(in core.InputFrame) Input {
	return Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	}
}
