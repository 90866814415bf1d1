package components

import (
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component).
// Game logic only queues requests here; playback happens elsewhere.
type AudioData struct {
	MusicEnabled bool
	SoundEnabled bool

	// MusicWanted is true while the background loop should be playing.
	MusicWanted bool
	PendingSFX  []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
