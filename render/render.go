package render

import (
	"fmt"

	"github.com/automoto/dungeon-escape/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only draw layer. Renderers run in the order they were
// added.
const LayerDefault ecs.LayerID = 0

var (
	sprites = map[string]*ebiten.Image{}
	drawOp  = &ebiten.DrawImageOptions{}
)

// LoadSprites uploads every generated sprite to the GPU. Must be called once
// before the first draw.
func LoadSprites() error {
	images, err := assets.LoadSprites()
	if err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}
	for id, img := range images {
		sprites[id] = ebiten.NewImageFromImage(img)
	}
	return nil
}

// sprite returns the image of a frame identifier, or nil if it was never
// loaded.
func sprite(id string) *ebiten.Image {
	return sprites[id]
}

// drawCentered draws img centered on (x, y), mirrored horizontally when flip
// is set.
func drawCentered(screen, img *ebiten.Image, x, y float64, flip bool) {
	if img == nil {
		return
	}
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if flip {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(w, 0)
	}
	drawOp.GeoM.Translate(x-w/2, y-h/2)
	screen.DrawImage(img, drawOp)
}

func drawAt(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}
