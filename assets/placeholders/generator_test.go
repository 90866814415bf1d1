package placeholders

import (
	"testing"

	cfg "github.com/automoto/dungeon-escape/config"
)

func TestGenerateSizes(t *testing.T) {
	tests := []struct {
		id   string
		size int
	}{
		{"floor", cfg.C.TileSize},
		{"wall", cfg.C.TileSize},
		{"door_closed", cfg.C.TileSize},
		{"door_open", cfg.C.TileSize},
		{"key_yellow", cfg.C.SpriteSize},
		{"hud_heart", cfg.HUD.IconSize},
		{"hud_heart_empty", cfg.HUD.IconSize},
		{"characters/character_beige_walk_a", cfg.C.SpriteSize},
		{"enemies/slime_spike_rest", cfg.C.SpriteSize},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			img, ok := Generate(tt.id)
			if !ok {
				t.Fatalf("expected a sprite for %q", tt.id)
			}
			b := img.Bounds()
			if b.Dx() != tt.size || b.Dy() != tt.size {
				t.Errorf("expected %dx%d, got %dx%d", tt.size, tt.size, b.Dx(), b.Dy())
			}
		})
	}
}

func TestGenerateUnknown(t *testing.T) {
	if _, ok := Generate("enemies/dragon_rest"); ok {
		t.Errorf("expected no sprite for an unknown enemy")
	}
	if _, ok := Generate("nope"); ok {
		t.Errorf("expected no sprite for an unknown id")
	}
}

func TestSlimeUsesKindColor(t *testing.T) {
	fire := cfg.Enemy.Types[cfg.SlimeFire]
	img, ok := Generate(fire.IdleFrames[0])
	if !ok {
		t.Fatal("expected a fire slime sprite")
	}

	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == fire.TintColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Errorf("expected fire slime pixels in %v", fire.TintColor)
	}
}

func TestWalkFramesDiffer(t *testing.T) {
	a, _ := Generate("enemies/slime_normal_walk_a")
	b, _ := Generate("enemies/slime_normal_walk_b")
	if string(a.Pix) == string(b.Pix) {
		t.Errorf("expected walk frames to differ")
	}
}

func TestOpenDoorIsDark(t *testing.T) {
	img, _ := Generate("door_open")
	mid := cfg.C.TileSize / 2
	if got := img.RGBAAt(mid, mid); got != ColorPalette.DoorOpen {
		t.Errorf("expected the open doorway %v, got %v", ColorPalette.DoorOpen, got)
	}
}
