package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBinding maps a key to the intent it produces.
type keyBinding struct {
	key    ebiten.Key
	intent Intent
}

// keyBindings is checked in order; the first just-pressed key wins so a
// frame never carries more than one intent.
var keyBindings = []keyBinding{
	{ebiten.KeySpace, ConfirmIntent()},
	{ebiten.KeyEnter, ConfirmIntent()},
	{ebiten.KeyArrowUp, MoveIntent(DirUp)},
	{ebiten.KeyW, MoveIntent(DirUp)},
	{ebiten.KeyArrowDown, MoveIntent(DirDown)},
	{ebiten.KeyS, MoveIntent(DirDown)},
	{ebiten.KeyArrowLeft, MoveIntent(DirLeft)},
	{ebiten.KeyA, MoveIntent(DirLeft)},
	{ebiten.KeyArrowRight, MoveIntent(DirRight)},
	{ebiten.KeyD, MoveIntent(DirRight)},
}

// intentFor returns the intent of the first bound key reported by
// justPressed.
func intentFor(justPressed func(ebiten.Key) bool) (Intent, bool) {
	for _, b := range keyBindings {
		if justPressed(b.key) {
			return b.intent, true
		}
	}
	return Intent{}, false
}

// pollIntent reads this frame's edge-triggered keyboard input.
func pollIntent() (Intent, bool) {
	return intentFor(inpututil.IsKeyJustPressed)
}
