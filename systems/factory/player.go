package factory

import (
	"github.com/automoto/dungeon-escape/archetypes"
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer creates a player at full health centered on (x, y).
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	size := float64(cfg.Player.HitboxSize)
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Character.SetValue(player, components.CharacterData{
		X:          x,
		Y:          y,
		Speed:      cfg.Player.Speed,
		State:      cfg.Idle,
		HitboxSize: size,
	})
	components.Player.SetValue(player, components.PlayerData{
		Health:    cfg.Player.Health,
		MaxHealth: cfg.Player.Health,
	})
	components.Animation.Set(player, GenerateAnimations(cfg.PlayerAnimations()))

	addToSpace(w, obj)

	return player
}

// PlacePlayer puts the player on the spawn point of a new level. An existing
// player keeps its health; otherwise a fresh one is created.
func PlacePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player, ok := tags.Player.First(w)
	if !ok {
		return CreatePlayer(w, x, y)
	}

	char := components.Character.Get(player)
	char.X = x
	char.Y = y
	char.Direction = components.Vector{}
	char.State = cfg.Idle

	components.Player.Get(player).InvulnTimer = 0
	components.Animation.Get(player).SetAnimation(cfg.Idle)

	obj := components.Object.Get(player)
	obj.X = x - char.HitboxSize/2
	obj.Y = y - char.HitboxSize/2
	// The previous level's space is gone; join the new one.
	addToSpace(w, obj.Object)

	return player
}

// RemovePlayer discards the player so the next level starts a new one.
func RemovePlayer(w donburi.World) {
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Remove(player.Entity())
}
