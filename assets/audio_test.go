package assets

import (
	"testing"
	"time"

	cfg "github.com/automoto/dashdodge/config"
)

func TestSynthesizePCMLength(t *testing.T) {
	notes := []cfg.Note{
		{Freq: 440, Duration: 100 * time.Millisecond},
		{Freq: 0, Duration: 50 * time.Millisecond},
	}

	pcm, err := SynthesizePCM(notes, 44100)
	if err != nil {
		t.Fatalf("SynthesizePCM: %v", err)
	}

	// 150ms at 44.1kHz, 2 channels, 2 bytes per sample
	want := 6615 * 4
	if len(pcm) != want {
		t.Errorf("len(pcm) = %d, want %d", len(pcm), want)
	}

	// The rest must be silent.
	restStart := 4410 * 4
	for i := restStart; i < len(pcm); i++ {
		if pcm[i] != 0 {
			t.Fatalf("byte %d of rest = %d, want 0", i, pcm[i])
		}
	}
}

func TestSynthesizePCMToneIsAudible(t *testing.T) {
	pcm, err := SynthesizePCM([]cfg.Note{{Freq: 440, Duration: 20 * time.Millisecond}}, 44100)
	if err != nil {
		t.Fatalf("SynthesizePCM: %v", err)
	}

	nonZero := 0
	for _, b := range pcm {
		if b != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("tone rendered as silence")
	}
}

func TestSynthesizePCMRejectsUnplayableTone(t *testing.T) {
	// SineTone refuses frequencies at or above the Nyquist limit.
	_, err := SynthesizePCM([]cfg.Note{{Freq: 30000, Duration: 10 * time.Millisecond}}, 44100)
	if err == nil {
		t.Fatal("expected an error for a tone above the Nyquist limit")
	}
}

func TestAllConfiguredSoundsSynthesize(t *testing.T) {
	for id, notes := range cfg.Sound.SFX {
		if _, err := SynthesizePCM(notes, cfg.Audio.SampleRate); err != nil {
			t.Errorf("sound %d: %v", id, err)
		}
	}
	if _, err := SynthesizePCM(cfg.Sound.GameMusic, cfg.Audio.SampleRate); err != nil {
		t.Errorf("music: %v", err)
	}
}

func TestGridLines(t *testing.T) {
	lines := GridLines(800, 80)
	if len(lines) != 10 {
		t.Fatalf("len = %d, want 10", len(lines))
	}
	if lines[0] != 0 || lines[9] != 720 {
		t.Errorf("lines = %v", lines)
	}
	if GridLines(800, 0) != nil {
		t.Error("zero spacing should produce no lines")
	}
}
