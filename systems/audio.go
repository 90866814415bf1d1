package systems

import (
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateAudio returns the singleton audio component. Music and sound
// effects start enabled.
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	if _, ok := components.Audio.First(w); !ok {
		ent := w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(ent, components.AudioData{
			MusicEnabled: true,
			SoundEnabled: true,
			PendingSFX:   make([]cfg.SoundID, 0, 4),
		})
	}

	entry, _ := components.Audio.First(w)
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect for playback. Nothing is queued while sound
// effects are disabled.
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	audio := GetOrCreateAudio(w)
	if !audio.SoundEnabled {
		return
	}
	audio.PendingSFX = append(audio.PendingSFX, sound)
}

// StartMusic requests the background loop if music is enabled.
func StartMusic(w donburi.World) {
	audio := GetOrCreateAudio(w)
	if audio.MusicEnabled {
		audio.MusicWanted = true
	}
}

// StopMusic stops the background loop.
func StopMusic(w donburi.World) {
	GetOrCreateAudio(w).MusicWanted = false
}

// DrainSFX returns the queued sound effects and empties the queue.
func DrainSFX(w donburi.World) []cfg.SoundID {
	audio := GetOrCreateAudio(w)
	pending := audio.PendingSFX
	audio.PendingSFX = make([]cfg.SoundID, 0, cap(pending))
	return pending
}
