package factory

import (
	"github.com/automoto/dungeon-escape/archetypes"
	"github.com/automoto/dungeon-escape/components"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/yohamta/donburi"
)

// CreateKey creates the key of a level centered on (x, y).
func CreateKey(w donburi.World, x, y float64) *donburi.Entry {
	key := archetypes.Key.Spawn(w)
	components.Key.SetValue(key, components.KeyData{X: x, Y: y})
	return key
}

// CreateDoor creates the closed exit of a level centered on (x, y).
func CreateDoor(w donburi.World, x, y float64) *donburi.Entry {
	door := archetypes.Door.Spawn(w)
	components.Door.SetValue(door, components.DoorData{X: x, Y: y})
	return door
}

// ClearLevel removes every entity that belongs to the current level: walls,
// floors, enemies, the key, the door and the collision space. The player is
// kept.
func ClearLevel(w donburi.World) {
	var doomed []donburi.Entity
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Wall, tags.Floor, tags.Enemy, tags.Key, tags.Door} {
		tag.Each(w, func(e *donburi.Entry) {
			doomed = append(doomed, e.Entity())
		})
	}
	components.Space.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})

	for _, entity := range doomed {
		w.Remove(entity)
	}
}
