package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	cfg "github.com/automoto/dungeon-escape/config"
)

// ColorPalette defines the colors of the generated sprites
var ColorPalette = struct {
	Floor      color.RGBA
	FloorGrout color.RGBA
	Wall       color.RGBA
	WallMortar color.RGBA

	Key       color.RGBA
	DoorWood  color.RGBA
	DoorFrame color.RGBA
	DoorOpen  color.RGBA

	Heart      color.RGBA
	HeartEmpty color.RGBA

	Eye     color.RGBA
	Outline color.RGBA
}{
	Floor:      color.RGBA{70, 62, 72, 255},
	FloorGrout: color.RGBA{55, 48, 58, 255},
	Wall:       color.RGBA{120, 110, 105, 255},
	WallMortar: color.RGBA{80, 72, 70, 255},

	Key:       cfg.Yellow,
	DoorWood:  color.RGBA{120, 80, 45, 255},
	DoorFrame: color.RGBA{70, 50, 30, 255},
	DoorOpen:  color.RGBA{15, 10, 20, 255},

	Heart:      color.RGBA{220, 40, 60, 255},
	HeartEmpty: color.RGBA{70, 60, 65, 255},

	Eye:     color.RGBA{20, 20, 20, 255},
	Outline: color.RGBA{25, 20, 25, 255},
}

// Generate draws the placeholder sprite for a frame identifier such as
// "wall", "enemies/slime_fire_walk_a" or "hud_heart". ok is false for an
// unknown identifier.
func Generate(id string) (img *image.RGBA, ok bool) {
	tile := cfg.C.TileSize
	sprite := cfg.C.SpriteSize

	switch id {
	case cfg.C.FloorSprite:
		return CreateFloorTile(tile), true
	case cfg.C.WallSprite:
		return CreateWallTile(tile), true
	case cfg.Pickup.KeySprite:
		return CreateKey(sprite), true
	case cfg.Pickup.DoorClosedSprite:
		return CreateDoor(tile, false), true
	case cfg.Pickup.DoorOpenSprite:
		return CreateDoor(tile, true), true
	case cfg.HUD.HeartSprite:
		return CreateHeart(cfg.HUD.IconSize, ColorPalette.Heart), true
	case cfg.HUD.HeartEmpty:
		return CreateHeart(cfg.HUD.IconSize, ColorPalette.HeartEmpty), true
	}

	if strings.HasPrefix(id, "characters/") {
		return CreateCharacter(sprite, cfg.Beige, frameStep(id)), true
	}
	if strings.HasPrefix(id, "enemies/") {
		for _, t := range cfg.Enemy.Types {
			if containsFrame(t.IdleFrames, id) || containsFrame(t.MoveFrames, id) {
				return CreateSlime(sprite, t.TintColor, frameStep(id)), true
			}
		}
	}
	return nil, false
}

// frameStep returns the bounce offset of a walk frame. Rest frames sit still.
func frameStep(id string) int {
	switch {
	case strings.HasSuffix(id, "_walk_a"):
		return -2
	case strings.HasSuffix(id, "_walk_b"):
		return 1
	}
	return 0
}

func containsFrame(frames []string, id string) bool {
	for _, f := range frames {
		if f == id {
			return true
		}
	}
	return false
}

func newImage(size int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Src)
}

// CreateFloorTile creates a flagstone floor tile
func CreateFloorTile(size int) *image.RGBA {
	img := newImage(size)
	fillRect(img, img.Bounds(), ColorPalette.FloorGrout)
	half := size / 2
	for _, r := range []image.Rectangle{
		image.Rect(1, 1, half, half),
		image.Rect(half+1, 1, size-1, half),
		image.Rect(1, half+1, half, size-1),
		image.Rect(half+1, half+1, size-1, size-1),
	} {
		fillRect(img, r, ColorPalette.Floor)
	}
	return img
}

// CreateWallTile creates a brick wall tile
func CreateWallTile(size int) *image.RGBA {
	img := newImage(size)
	fillRect(img, img.Bounds(), ColorPalette.WallMortar)

	rows := 4
	brickH := size / rows
	brickW := size / 2
	for row := 0; row < rows; row++ {
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		y := row * brickH
		for x := -offset; x < size; x += brickW {
			fillRect(img, image.Rect(x+1, y+1, x+brickW-1, y+brickH-1), ColorPalette.Wall)
		}
	}
	return img
}

// CreateKey creates a key lying on its side
func CreateKey(size int) *image.RGBA {
	img := newImage(size)
	mid := size / 2

	// Bow
	for y := 0; y < size; y++ {
		for x := 0; x < size/2; x++ {
			dx, dy := x-size/4, y-mid
			d := dx*dx + dy*dy
			r := size / 4
			if d <= r*r && d >= (r/2)*(r/2) {
				img.Set(x, y, ColorPalette.Key)
			}
		}
	}
	// Shaft and teeth
	fillRect(img, image.Rect(size/2-2, mid-2, size-2, mid+2), ColorPalette.Key)
	fillRect(img, image.Rect(size-8, mid+2, size-6, mid+7), ColorPalette.Key)
	fillRect(img, image.Rect(size-4, mid+2, size-2, mid+5), ColorPalette.Key)
	return img
}

// CreateDoor creates a door tile. An open door shows a dark passage.
func CreateDoor(size int, open bool) *image.RGBA {
	img := newImage(size)
	fillRect(img, img.Bounds(), ColorPalette.DoorFrame)

	inner := image.Rect(4, 4, size-4, size)
	if open {
		fillRect(img, inner, ColorPalette.DoorOpen)
		return img
	}

	fillRect(img, inner, ColorPalette.DoorWood)
	for x := inner.Min.X + 6; x < inner.Max.X; x += 8 {
		fillRect(img, image.Rect(x, inner.Min.Y, x+1, inner.Max.Y), ColorPalette.DoorFrame)
	}
	fillRect(img, image.Rect(size-11, size/2, size-8, size/2+3), ColorPalette.Key)
	return img
}

// CreateHeart creates a HUD heart icon
func CreateHeart(size int, col color.RGBA) *image.RGBA {
	img := newImage(size)
	s := float64(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Implicit heart curve on [-1.2, 1.2]
			fx := (float64(x)+0.5)/s*2.4 - 1.2
			fy := 1.2 - (float64(y)+0.5)/s*2.4
			a := fx*fx + fy*fy - 1
			if a*a*a-fx*fx*fy*fy*fy <= 0 {
				img.Set(x, y, col)
			}
		}
	}
	return img
}

// CreateCharacter creates the player figure, shifted vertically by step.
func CreateCharacter(size int, body color.RGBA, step int) *image.RGBA {
	img := newImage(size)
	u := size / 8

	head := image.Rect(2*u, u+step, 6*u, 4*u+step)
	torso := image.Rect(2*u, 4*u+step, 6*u, 6*u+step)
	fillRect(img, head.Inset(-1), ColorPalette.Outline)
	fillRect(img, head, body)
	fillRect(img, torso, body)
	fillRect(img, image.Rect(3*u, 2*u+step, 3*u+2, 2*u+2+step), ColorPalette.Eye)
	fillRect(img, image.Rect(5*u-2, 2*u+step, 5*u, 2*u+2+step), ColorPalette.Eye)

	// Legs alternate with the walk frames
	left, right := 2*u, 5*u
	if step < 0 {
		left, right = 3*u, 4*u
	}
	fillRect(img, image.Rect(left, 6*u, left+u, 8*u), ColorPalette.Outline)
	fillRect(img, image.Rect(right, 6*u, right+u, 8*u), ColorPalette.Outline)
	return img
}

// CreateSlime creates a slime blob tinted with col, squashed by step.
func CreateSlime(size int, col color.RGBA, step int) *image.RGBA {
	img := newImage(size)
	cx := float64(size) / 2
	cy := float64(size)*0.6 + float64(step)
	rx := float64(size)*0.42 - float64(step)
	ry := float64(size)*0.32 + float64(step)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dy > 0.6 {
				dy = 0.6 // flat bottom
			}
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, col)
			}
		}
	}

	eyeY := int(cy) - size/10
	fillRect(img, image.Rect(int(cx)-6, eyeY, int(cx)-3, eyeY+4), ColorPalette.Eye)
	fillRect(img, image.Rect(int(cx)+3, eyeY, int(cx)+6, eyeY+4), ColorPalette.Eye)
	return img
}
