package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Health      int
	MaxHealth   int
	InvulnTimer float64 // seconds of invulnerability left
}

// Invulnerable reports whether damage is currently ignored.
func (p *PlayerData) Invulnerable() bool {
	return p.InvulnTimer > 0
}

var Player = donburi.NewComponentType[PlayerData]()
