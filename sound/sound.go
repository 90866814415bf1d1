package sound

import (
	"bytes"
	"log"
	"sync"

	"github.com/automoto/dungeon-escape/assets"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalBank         *assets.SoundBank
	globalMusicPlayer  *audio.Player
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	audioInitOnce      sync.Once
	audioDisabled      bool
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalBank = assets.NewSoundBank(cfg.Audio.SampleRate)
	})
}

// Update plays the sound effects queued by the game logic and keeps the music
// loop in line with the audio component. Playback failures are logged once and
// the game goes on silently.
func Update(w donburi.World) {
	initGlobalAudio()

	for _, id := range systems.DrainSFX(w) {
		playSFX(id)
	}

	if systems.GetOrCreateAudio(w).MusicWanted {
		startMusic()
	} else {
		fadeMusic()
	}
}

func playSFX(id cfg.SoundID) {
	if audioDisabled || globalSFXVolume <= 0 {
		return
	}

	pcm, ok := globalBank.SFX(id)
	if !ok {
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	volume := globalSFXVolume
	if tone, ok := cfg.Sound.SFX[id]; ok {
		volume *= tone.Volume
	}
	player.SetVolume(volume)
	player.Play()
}

func startMusic() {
	if audioDisabled {
		return
	}

	if globalMusicPlayer != nil {
		if globalFadeTimer > 0 {
			globalFadeTimer = 0
			globalMusicPlayer.SetVolume(globalMusicVolume)
		}
		return
	}

	music := globalBank.Music()
	loop := audio.NewInfiniteLoop(bytes.NewReader(music), int64(len(music)))
	player, err := globalAudioContext.NewPlayer(loop)
	if err != nil {
		disable(err)
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
}

func fadeMusic() {
	if globalMusicPlayer == nil {
		return
	}

	if globalFadeTimer == 0 {
		globalFadeTimer = cfg.MusicFadeFrames
	}
	globalFadeTimer--

	progress := float64(globalFadeTimer) / float64(cfg.MusicFadeFrames)
	globalMusicPlayer.SetVolume(globalMusicVolume * progress)

	if globalFadeTimer == 0 {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
}

func disable(err error) {
	log.Printf("audio disabled: %v", err)
	audioDisabled = true
}
