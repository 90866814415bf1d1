package components

import (
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// CharacterData is the movement state shared by the player and every slime.
// X and Y are the center of the hitbox in pixels.
type CharacterData struct {
	X, Y       float64
	Speed      float64 // pixels per second
	Direction  Vector  // per-frame intent, each axis in [-1, 1]
	State      cfg.StateID
	HitboxSize float64
}

// Position returns the center of the character.
func (c *CharacterData) Position() Vector {
	return Vector{X: c.X, Y: c.Y}
}

var Character = donburi.NewComponentType[CharacterData]()
