package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the "Level N" caption faded out at the start of each level.
type BannerData struct {
	Text  string
	Tween *gween.Tween
	Alpha float32
}

// DoorPulseData drives the glow of an open door.
type DoorPulseData struct {
	Sequence *gween.Sequence
	Glow     float32
}

var Banner = donburi.NewComponentType[BannerData]()
var DoorPulse = donburi.NewComponentType[DoorPulseData]()
