package controls

import (
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionMoveUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	cfg.ActionMoveDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	cfg.ActionPause:     {ebiten.KeyEscape, ebiten.KeyP},
	cfg.ActionConfirm:   {ebiten.KeySpace, ebiten.KeyEnter},
	cfg.ActionDebug:     {ebiten.KeyF3},
}

// Poll reads the keyboard into the input component of the world.
// Must run before the session update.
func Poll(w donburi.World) {
	var pressed [cfg.ActionCount]bool
	for action, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				pressed[action] = true
			}
		}
	}
	systems.SetInput(w, pressed)
}
