package invaders

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventPlayerFired EventKind = iota + 1
	EventEnemyFired
	EventEnemyDestroyed
	EventPlayerHit
	EventWaveCleared
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPlayerFired:
		return "player_fired"
	case EventEnemyFired:
		return "enemy_fired"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventWaveCleared:
		return "wave_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records one happening. Frontends drain events for sound and logging.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Points int // Score awarded, EventEnemyDestroyed only
	Wave   int // Wave number at the time of the event
}
