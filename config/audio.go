package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundStart
	SoundPickup
	SoundHit
	SoundNextLevel
	SoundGameOver
	SoundVictory
	SoundToggle
	SoundCount // Must be last - used for array sizing
)

// Waveform selects the oscillator used to synthesize a tone.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveTriangle
	WaveNoise
)

// Note is a single synthesized step of a sound.
type Note struct {
	Freq     float64 // Hz, 0 = rest
	Duration float64 // seconds
}

// ToneConfig describes how a sound is synthesized.
type ToneConfig struct {
	Wave   Waveform
	Notes  []Note
	Volume float64 // 0.0 - 1.0, relative to the SFX volume
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	AttackSeconds   float64 // envelope fade in/out per note, avoids clicks
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	SFX        map[SoundID]ToneConfig
	Background ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.35,
		DefaultSFXVol:   0.8,
		AttackSeconds:   0.005,
	}

	Sound = SoundConfig{
		SFX: map[SoundID]ToneConfig{
			SoundStart: {Wave: WaveSquare, Volume: 0.6, Notes: []Note{
				{Freq: 523.25, Duration: 0.08}, {Freq: 659.25, Duration: 0.08}, {Freq: 783.99, Duration: 0.14},
			}},
			SoundPickup: {Wave: WaveSine, Volume: 0.8, Notes: []Note{
				{Freq: 987.77, Duration: 0.06}, {Freq: 1318.51, Duration: 0.12},
			}},
			SoundHit: {Wave: WaveNoise, Volume: 0.7, Notes: []Note{
				{Freq: 220, Duration: 0.15},
			}},
			SoundNextLevel: {Wave: WaveTriangle, Volume: 0.8, Notes: []Note{
				{Freq: 392.00, Duration: 0.1}, {Freq: 523.25, Duration: 0.1}, {Freq: 659.25, Duration: 0.1}, {Freq: 1046.50, Duration: 0.2},
			}},
			SoundGameOver: {Wave: WaveSquare, Volume: 0.6, Notes: []Note{
				{Freq: 392.00, Duration: 0.2}, {Freq: 311.13, Duration: 0.2}, {Freq: 261.63, Duration: 0.4},
			}},
			SoundVictory: {Wave: WaveTriangle, Volume: 0.8, Notes: []Note{
				{Freq: 523.25, Duration: 0.12}, {Freq: 659.25, Duration: 0.12}, {Freq: 783.99, Duration: 0.12},
				{Freq: 1046.50, Duration: 0.3}, {Freq: 0, Duration: 0.05}, {Freq: 1046.50, Duration: 0.3},
			}},
			SoundToggle: {Wave: WaveSine, Volume: 0.5, Notes: []Note{
				{Freq: 880, Duration: 0.05},
			}},
		},
		// Slow minor arpeggio, looped while a run is in progress.
		Background: ToneConfig{Wave: WaveTriangle, Volume: 1.0, Notes: []Note{
			{Freq: 220.00, Duration: 0.4}, {Freq: 261.63, Duration: 0.4}, {Freq: 329.63, Duration: 0.4}, {Freq: 261.63, Duration: 0.4},
			{Freq: 174.61, Duration: 0.4}, {Freq: 220.00, Duration: 0.4}, {Freq: 261.63, Duration: 0.4}, {Freq: 220.00, Duration: 0.4},
			{Freq: 196.00, Duration: 0.4}, {Freq: 246.94, Duration: 0.4}, {Freq: 293.66, Duration: 0.4}, {Freq: 246.94, Duration: 0.4},
			{Freq: 164.81, Duration: 0.4}, {Freq: 207.65, Duration: 0.4}, {Freq: 246.94, Duration: 0.4}, {Freq: 0, Duration: 0.4},
		}},
	}
}

// MusicFadeFrames is the number of ticks the music takes to fade out when it
// is stopped.
const MusicFadeFrames = 30
