package systems

import (
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer runs one frame of the player: invulnerability countdown,
// input-driven direction, movement and animation.
func UpdatePlayer(w donburi.World, dt float64) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	if player.InvulnTimer > 0 {
		player.InvulnTimer -= dt
	}

	components.Character.Get(playerEntry).Direction = MoveIntent(w)
	Move(w, playerEntry, dt)
	animate(playerEntry, dt)
}

// DamagePlayer applies one hit unless the player is invulnerable. A hit
// opens the invulnerability window, and the last one ends the run.
// It reports whether the hit landed.
func DamagePlayer(w donburi.World, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.Invulnerable() {
		return false
	}

	player.Health--
	player.InvulnTimer = cfg.Player.InvulnSeconds
	PlaySFX(w, cfg.SoundHit)

	if player.Health <= 0 {
		gameOver(w)
	}
	return true
}

// PlayerVisible reports whether the player is drawn this frame. The sprite
// blinks while invulnerable.
func PlayerVisible(player *components.PlayerData) bool {
	return player.InvulnTimer <= 0 || int(player.InvulnTimer*10)%2 == 0
}
