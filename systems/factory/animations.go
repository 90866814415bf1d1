package factory

import (
	"fmt"

	"github.com/automoto/dungeon-escape/assets/animations"
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
)

// GenerateAnimations creates an AnimationData component from the frame lists of
// a character. The idle animation is selected.
func GenerateAnimations(set cfg.AnimationSet) *components.AnimationData {
	if len(set) == 0 {
		panic(fmt.Sprintf("no animation definitions for set %v", set))
	}

	animData := &components.AnimationData{
		Animations: make(map[cfg.StateID]*animations.Animation, len(set)),
	}
	for state, frames := range set {
		animData.Animations[state] = animations.NewAnimation(frames, set.FPS(state))
	}
	animData.SetAnimation(cfg.Idle)

	return animData
}
