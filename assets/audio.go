package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/dungeon-escape/config"
)

// BytesPerFrame is the size of one 16-bit stereo sample frame.
const BytesPerFrame = 4

// SoundBank holds every sound of the game as 16-bit little-endian stereo PCM,
// the format ebiten's audio context plays directly.
type SoundBank struct {
	sampleRate int
	sfx        map[cfg.SoundID][]byte
	music      []byte
}

// NewSoundBank synthesizes the sound effects and the background loop.
func NewSoundBank(sampleRate int) *SoundBank {
	// Fixed seed keeps the noise bursts identical between runs.
	rng := rand.New(rand.NewPCG(1, 2))

	b := &SoundBank{
		sampleRate: sampleRate,
		sfx:        make(map[cfg.SoundID][]byte, len(cfg.Sound.SFX)),
	}
	for id, tone := range cfg.Sound.SFX {
		b.sfx[id] = encodePCM(Synthesize(tone, sampleRate, rng), tone.Volume)
	}
	b.music = encodePCM(Synthesize(cfg.Sound.Background, sampleRate, rng), cfg.Sound.Background.Volume)
	return b
}

// SFX returns the PCM of a sound effect.
func (b *SoundBank) SFX(id cfg.SoundID) ([]byte, bool) {
	pcm, ok := b.sfx[id]
	return pcm, ok
}

// Music returns the PCM of one pass of the background loop.
func (b *SoundBank) Music() []byte {
	return b.music
}

// SampleRate returns the rate the bank was synthesized at.
func (b *SoundBank) SampleRate() int {
	return b.sampleRate
}

// Synthesize renders the notes of a tone as mono samples in [-1, 1].
// Rests (Freq 0) render as silence.
func Synthesize(tone cfg.ToneConfig, sampleRate int, rng *rand.Rand) []float64 {
	var out []float64
	attack := int(cfg.Audio.AttackSeconds * float64(sampleRate))
	for _, n := range tone.Notes {
		samples := int(n.Duration * float64(sampleRate))
		if n.Freq <= 0 {
			out = append(out, make([]float64, samples)...)
			continue
		}
		buf := oscillator(tone.Wave, n.Freq, samples, sampleRate, rng)
		applyEnvelope(buf, attack)
		out = append(out, buf...)
	}
	return out
}

// oscillator generates raw waveform samples
func oscillator(wave cfg.Waveform, freq float64, samples, sampleRate int, rng *rand.Rand) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := range buf {
		switch wave {
		case cfg.WaveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case cfg.WaveSquare:
			if phase < 0.5 {
				buf[i] = 0.5
			} else {
				buf[i] = -0.5
			}
		case cfg.WaveTriangle:
			buf[i] = 4*math.Abs(phase-0.5) - 1
		case cfg.WaveNoise:
			// Noise decays over the note for a thud rather than a hiss
			buf[i] = (rng.Float64()*2 - 1) * (1 - float64(i)/float64(samples))
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope fades the first and last attack samples in place
func applyEnvelope(buf []float64, attack int) {
	total := len(buf)
	if attack <= 0 {
		return
	}
	if attack > total/2 {
		attack = total / 2
	}
	for i := 0; i < attack; i++ {
		vol := float64(i) / float64(attack)
		buf[i] *= vol
		buf[total-1-i] *= vol
	}
}

// encodePCM converts mono samples to 16-bit stereo, scaled by volume.
func encodePCM(samples []float64, volume float64) []byte {
	out := make([]byte, len(samples)*BytesPerFrame)
	for i, s := range samples {
		v := int16(math.Max(-1, math.Min(1, s*volume)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame+2:], uint16(v))
	}
	return out
}
