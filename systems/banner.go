package systems

import (
	"fmt"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// GetOrCreateBanner returns the singleton level banner.
func GetOrCreateBanner(w donburi.World) *components.BannerData {
	if _, ok := components.Banner.First(w); !ok {
		w.Entry(w.Create(components.Banner))
	}

	entry, _ := components.Banner.First(w)
	return components.Banner.Get(entry)
}

// ShowBanner starts the "Level N" caption of a level.
func ShowBanner(w donburi.World, level int) {
	banner := GetOrCreateBanner(w)
	banner.Text = fmt.Sprintf("Level %d", level)
	banner.Alpha = 1
	banner.Tween = gween.New(1, 0, float32(cfg.Banner.Duration), ease.InQuad)
}

// UpdateTweens advances the level banner fade and the glow of an open door.
func UpdateTweens(w donburi.World, dt float64) {
	banner := GetOrCreateBanner(w)
	if banner.Tween != nil {
		alpha, done := banner.Tween.Update(float32(dt))
		banner.Alpha = alpha
		if done {
			banner.Tween = nil
			banner.Alpha = 0
		}
	}

	if doorEntry, ok := tags.Door.First(w); ok {
		pulse := components.DoorPulse.Get(doorEntry)
		if pulse.Sequence != nil {
			glow, _, seqDone := pulse.Sequence.Update(float32(dt))
			pulse.Glow = glow
			if seqDone {
				pulse.Sequence.Reset()
			}
		}
	}
}

// newDoorPulse builds one brighten/dim cycle of the open door glow.
func newDoorPulse() *gween.Sequence {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, 0.6, ease.InOutSine),
		gween.New(1, 0, 0.6, ease.InOutSine),
	)
	return seq
}
