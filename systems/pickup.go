package systems

import (
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/yohamta/donburi"
)

// UpdatePickups collects the key on contact and takes the player through the
// door once the key is held.
func UpdatePickups(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	hitbox := Hitbox(components.Character.Get(playerEntry))

	if keyEntry, ok := tags.Key.First(w); ok {
		key := components.Key.Get(keyEntry)
		if !key.Collected && hitbox.Overlaps(CenteredRect(key.X, key.Y, cfg.Pickup.KeySize)) {
			key.Collected = true
			PlaySFX(w, cfg.SoundPickup)
			openDoor(w)
		}
	}

	if !KeyCollected(w) {
		return
	}
	if doorEntry, ok := tags.Door.First(w); ok {
		door := components.Door.Get(doorEntry)
		if hitbox.Overlaps(CenteredRect(door.X, door.Y, cfg.Pickup.DoorSize)) {
			NextLevel(w)
		}
	}
}

// KeyCollected reports whether the key of the current level has been picked up.
func KeyCollected(w donburi.World) bool {
	keyEntry, ok := tags.Key.First(w)
	if !ok {
		return false
	}
	return components.Key.Get(keyEntry).Collected
}

func openDoor(w donburi.World) {
	doorEntry, ok := tags.Door.First(w)
	if !ok {
		return
	}
	components.Door.Get(doorEntry).Open = true
	components.DoorPulse.SetValue(doorEntry, components.DoorPulseData{Sequence: newDoorPulse()})
}
