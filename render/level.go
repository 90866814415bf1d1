package render

import (
	"image/color"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the play area: tiles, pickups, slimes and the player.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World
	screen.Fill(cfg.C.BackgroundColor)

	floor := sprite(cfg.C.FloorSprite)
	tags.Floor.Each(w, func(e *donburi.Entry) {
		t := components.Tile.Get(e)
		drawAt(screen, floor, t.X, t.Y)
	})

	wall := sprite(cfg.C.WallSprite)
	tags.Wall.Each(w, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		drawAt(screen, wall, o.X, o.Y)
	})

	drawDoor(w, screen)

	if keyEntry, ok := tags.Key.First(w); ok {
		key := components.Key.Get(keyEntry)
		if !key.Collected {
			drawCentered(screen, sprite(cfg.Pickup.KeySprite), key.X, key.Y, false)
		}
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		drawCharacter(screen, e)
	})

	if playerEntry, ok := tags.Player.First(w); ok {
		if systems.PlayerVisible(components.Player.Get(playerEntry)) {
			drawCharacter(screen, playerEntry)
		}
	}
}

func drawDoor(w donburi.World, screen *ebiten.Image) {
	doorEntry, ok := tags.Door.First(w)
	if !ok {
		return
	}
	door := components.Door.Get(doorEntry)

	if !door.Open {
		drawCentered(screen, sprite(cfg.Pickup.DoorClosedSprite), door.X, door.Y, false)
		return
	}

	glow := components.DoorPulse.Get(doorEntry).Glow
	size := float32(cfg.Pickup.DoorSize)
	halo := color.NRGBA{R: cfg.Yellow.R, G: cfg.Yellow.G, B: cfg.Yellow.B, A: uint8(glow * 160)}
	vector.FillRect(screen,
		float32(door.X)-size/2-4, float32(door.Y)-size/2-4,
		size+8, size+8, halo, false)
	drawCentered(screen, sprite(cfg.Pickup.DoorOpenSprite), door.X, door.Y, false)
}

func drawCharacter(screen *ebiten.Image, e *donburi.Entry) {
	char := components.Character.Get(e)
	anim := components.Animation.Get(e)
	drawCentered(screen, sprite(anim.Frame()), char.X, char.Y, char.Direction.X < 0)
}
