package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/invaders/internal/invaders"
)

// SampleRate is the output rate used for all cues.
const SampleRate = beep.SampleRate(44100)

// maxVoices caps how many cues play at once so rapid fire does not pile up.
const maxVoices = 8

// SoundManager plays event cues through a shared mixer.
// A nil *SoundManager is valid and silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a manager at the given master volume (0..1).
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all sounds and releases the audio device.
func (sm *SoundManager) Close() {
	if sm == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue.
func (sm *SoundManager) Play(c Cue) {
	if sm == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := NewCue(c, SampleRate, sm.volume)
	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(streamer)
	}
	speaker.Unlock()
}

// HandleEvents plays the cue for every event that has one.
func (sm *SoundManager) HandleEvents(events []invaders.Event) {
	if sm == nil {
		return
	}
	for _, ev := range events {
		if c, ok := CueFor(ev.Kind); ok {
			sm.logger.Debug("cue", "cue", c, "event", ev.Kind, "tick", ev.Tick)
			sm.Play(c)
		}
	}
}

// CueFor maps a simulation event to its sound.
func CueFor(kind invaders.EventKind) (Cue, bool) {
	switch kind {
	case invaders.EventPlayerFired:
		return CueShoot, true
	case invaders.EventEnemyFired:
		return CueEnemyShoot, true
	case invaders.EventEnemyDestroyed:
		return CueExplosion, true
	case invaders.EventPlayerHit:
		return CuePlayerHit, true
	case invaders.EventWaveCleared:
		return CueWaveCleared, true
	case invaders.EventGameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}
