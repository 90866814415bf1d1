package components

import (
	"github.com/automoto/dungeon-escape/assets/animations"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     cfg.StateID
	Animations       map[cfg.StateID]*animations.Animation
}

// SetAnimation switches to the animation of the given state. The animation
// of the previous state keeps its frame position.
func (a *AnimationData) SetAnimation(state cfg.StateID) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	a.CurrentState = state
	a.CurrentAnimation = a.Animations[state]
}

// Frame returns the frame identifier to draw, or "" when nothing is playing.
func (a *AnimationData) Frame() string {
	if a.CurrentAnimation == nil {
		return ""
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
