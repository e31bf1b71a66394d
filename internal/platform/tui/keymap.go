package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Start, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.Keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.Keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.Keys.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.Keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.Keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// DefaultHoldWindow is how long a direction stays held after its last key event.
// Terminals report no key releases, only auto-repeat presses.
const DefaultHoldWindow = 200 * time.Millisecond

// HoldTracker turns repeated direction presses into a held state.
// A direction counts as held until the window passes without another press;
// pressing the opposite direction releases it immediately.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker; a non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time, 2),
	}
}

// Press records a press of a level action at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	default:
		return
	}
	h.until[a] = now.Add(h.window)
}

// Apply sets every action still held at now on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release forgets all held actions.
func (h *HoldTracker) Release() {
	clear(h.until)
}
