package assets

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"testing"

	cfg "github.com/automoto/dungeon-escape/config"
)

func TestSoundBankHasEverySound(t *testing.T) {
	bank := NewSoundBank(cfg.Audio.SampleRate)

	for id := cfg.SoundStart; id < cfg.SoundCount; id++ {
		pcm, ok := bank.SFX(id)
		if !ok {
			t.Errorf("expected sound %d in the bank", id)
			continue
		}
		if len(pcm) == 0 || len(pcm)%BytesPerFrame != 0 {
			t.Errorf("sound %d: expected whole stereo frames, got %d bytes", id, len(pcm))
		}
	}

	if _, ok := bank.SFX(cfg.SoundNone); ok {
		t.Errorf("expected no sound for SoundNone")
	}
	if len(bank.Music()) == 0 {
		t.Errorf("expected background music")
	}
}

func TestSynthesizeLength(t *testing.T) {
	tone := cfg.ToneConfig{Wave: cfg.WaveSine, Volume: 1, Notes: []cfg.Note{
		{Freq: 440, Duration: 0.5},
		{Freq: 0, Duration: 0.25},
	}}

	got := Synthesize(tone, 1000, rand.New(rand.NewPCG(1, 1)))

	if len(got) != 750 {
		t.Fatalf("expected 750 samples, got %d", len(got))
	}
	for i, s := range got[500:] {
		if s != 0 {
			t.Fatalf("expected silence in the rest, got %f at %d", s, 500+i)
		}
	}
	for i, s := range got {
		if s < -1 || s > 1 {
			t.Fatalf("sample %d out of range: %f", i, s)
		}
	}
}

func TestEnvelopeStartsAndEndsSilent(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	applyEnvelope(buf, 2)

	want := []float64{0, 0.5, 1, 1, 1, 1, 0.5, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("sample %d: expected %f, got %f", i, want[i], buf[i])
		}
	}
}

func TestEncodePCMDuplicatesChannels(t *testing.T) {
	pcm := encodePCM([]float64{0.5, -2}, 1)

	if len(pcm) != 2*BytesPerFrame {
		t.Fatalf("expected %d bytes, got %d", 2*BytesPerFrame, len(pcm))
	}
	if !bytes.Equal(pcm[0:2], pcm[2:4]) {
		t.Errorf("expected left and right to match")
	}
	if got := int16(binary.LittleEndian.Uint16(pcm[4:])); got != -32767 {
		t.Errorf("expected clipped sample -32767, got %d", got)
	}
}

func TestSoundBankIsDeterministic(t *testing.T) {
	a, _ := NewSoundBank(8000).SFX(cfg.SoundHit)
	b, _ := NewSoundBank(8000).SFX(cfg.SoundHit)
	if !bytes.Equal(a, b) {
		t.Errorf("expected identical noise between banks")
	}
}
