package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/fonts"
	"github.com/automoto/dungeon-escape/systems"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the bottom bar: hearts on the left, the level in the middle
// and the key icon on the right once the key is collected.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World
	top := float64(cfg.C.PlayAreaHeight())
	width := float64(cfg.C.Width)

	vector.FillRect(screen, 0, float32(top), float32(width), float32(cfg.C.HUDHeight), cfg.HUD.BackgroundColor, false)

	iconY := top + float64(cfg.C.HUDHeight-cfg.HUD.IconSize)/2
	if playerEntry, ok := tags.Player.First(w); ok {
		player := components.Player.Get(playerEntry)
		for i := 0; i < player.MaxHealth; i++ {
			id := cfg.HUD.HeartSprite
			if i >= player.Health {
				id = cfg.HUD.HeartEmpty
			}
			drawAt(screen, sprite(id), cfg.HUD.HeartX+float64(i)*cfg.HUD.HeartSpacing, iconY)
		}
	}

	if systems.KeyCollected(w) {
		drawAt(screen, sprite(cfg.Pickup.KeySprite), width-cfg.HUD.KeyIconOffset, iconY)
	}

	face := fonts.HUD.Get()
	label := fmt.Sprintf("Level %d", systems.GetOrCreateSession(w).Level)
	x := (cfg.C.Width - fonts.Width(face, label)) / 2
	y := int(top) + cfg.C.HUDHeight/2 + 8
	text.Draw(screen, label, face, x, y, cfg.HUD.TextColor)
}

// DrawBanner renders the fading "Level N" caption over the play area.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	banner := systems.GetOrCreateBanner(ecs.World)
	if banner.Alpha <= 0 || banner.Text == "" {
		return
	}

	c := cfg.Banner.Color
	col := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * banner.Alpha)}
	face := fonts.Banner.Get()
	x := (cfg.C.Width - fonts.Width(face, banner.Text)) / 2
	text.Draw(screen, banner.Text, face, x, cfg.C.PlayAreaHeight()/2, col)
}
