package archetypes

import (
	"github.com/automoto/dungeon-escape/components"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Character,
		components.Object,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Character,
		components.Object,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Tile,
	)
	Key = newArchetype(
		tags.Key,
		components.Key,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.DoorPulse,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
