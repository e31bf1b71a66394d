package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/invaders/internal/core"
)

// keySource reports keyboard state for the current frame.
type keySource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenKeys) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

// Held keys are level-triggered, the rest fire once per press.
var (
	heldKeys = map[core.Action][]ebiten.Key{
		core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	}
	pressedKeys = map[core.Action][]ebiten.Key{
		core.ActionFire:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		core.ActionStart:   {ebiten.KeyEnter},
		core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
		core.ActionRestart: {ebiten.KeyR},
		core.ActionQuit:    {ebiten.KeyQ},
	}
)

// readInput builds the input frame for one tick.
func readInput(keys keySource) core.InputFrame {
	frame := core.NewInputFrame()
	for action, ks := range heldKeys {
		for _, k := range ks {
			if keys.IsKeyPressed(k) {
				frame.Set(action)
			}
		}
	}
	for action, ks := range pressedKeys {
		for _, k := range ks {
			if keys.IsKeyJustPressed(k) {
				frame.Set(action)
			}
		}
	}
	// A click starts the game from the title and game over screens.
	if keys.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionStart)
	}
	return frame
}
