package assets

import (
	"fmt"
	"image"
	"sort"

	"github.com/automoto/dungeon-escape/assets/placeholders"
	cfg "github.com/automoto/dungeon-escape/config"
)

// SpriteIDs lists every frame identifier the game draws, sorted.
func SpriteIDs() []string {
	set := map[string]struct{}{
		cfg.C.FloorSprite:           {},
		cfg.C.WallSprite:            {},
		cfg.Pickup.KeySprite:        {},
		cfg.Pickup.DoorClosedSprite: {},
		cfg.Pickup.DoorOpenSprite:   {},
		cfg.HUD.HeartSprite:         {},
		cfg.HUD.HeartEmpty:          {},
	}

	sets := []cfg.AnimationSet{cfg.PlayerAnimations()}
	for kind := cfg.EnemyKind(0); kind < cfg.EnemyKindCount; kind++ {
		sets = append(sets, cfg.EnemyAnimations(kind))
	}
	for _, s := range sets {
		for _, frames := range s {
			for _, f := range frames {
				set[f] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadSprites generates the image of every sprite the game draws.
func LoadSprites() (map[string]*image.RGBA, error) {
	sprites := make(map[string]*image.RGBA)
	for _, id := range SpriteIDs() {
		img, ok := placeholders.Generate(id)
		if !ok {
			return nil, fmt.Errorf("no placeholder for sprite %q", id)
		}
		sprites[id] = img
	}
	return sprites, nil
}
