package systems

import (
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateInput returns the singleton input component, creating it on first use.
func GetOrCreateInput(w donburi.World) *components.InputData {
	if _, ok := components.Input.First(w); !ok {
		ent := w.Entry(w.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{})
	}

	entry, _ := components.Input.First(w)
	return components.Input.Get(entry)
}

// GetAction returns the state of an action, with JustPressed/JustReleased
// derived from the previous frame.
func GetAction(w donburi.World, action cfg.ActionID) components.ActionState {
	input := GetOrCreateInput(w)
	return actionState(input, action)
}

func actionState(input *components.InputData, action cfg.ActionID) components.ActionState {
	curr := input.Current[action]
	prev := input.Previous[action]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// SetInput records this frame's pressed actions. The previous frame is kept
// for edge detection.
func SetInput(w donburi.World, pressed [cfg.ActionCount]bool) {
	input := GetOrCreateInput(w)
	input.Previous = input.Current
	input.Current = pressed
}

// MoveIntent converts the held movement actions into a direction. Right wins
// over left and down wins over up when both are held.
func MoveIntent(w donburi.World) components.Vector {
	input := GetOrCreateInput(w)

	var dir components.Vector
	if input.Current[cfg.ActionMoveLeft] {
		dir.X = -1
	}
	if input.Current[cfg.ActionMoveRight] {
		dir.X = 1
	}
	if input.Current[cfg.ActionMoveUp] {
		dir.Y = -1
	}
	if input.Current[cfg.ActionMoveDown] {
		dir.Y = 1
	}
	return dir
}
