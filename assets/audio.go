package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/dashdodge/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Amplitude applied to every synthesized tone so sequences never clip.
const toneGain = 0.3

// AudioLoader synthesizes and caches every sound the game plays
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // 16-bit stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a
// player. Call this at startup to avoid a hitch on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	notes, ok := cfg.Sound.SFX[id]
	if !ok {
		return fmt.Errorf("no notes for sound %d", id)
	}

	pcm, err := SynthesizePCM(notes, l.context.SampleRate())
	if err != nil {
		return fmt.Errorf("failed to synthesize sound %d: %w", id, err)
	}

	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// LoadMusic returns a looping player for the background music.
func (l *AudioLoader) LoadMusic(notes []cfg.Note) (*audio.Player, error) {
	pcm, err := SynthesizePCM(notes, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize music: %w", err)
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}

// SynthesizePCM renders notes back to back as signed 16-bit little-endian
// stereo PCM, the format ebiten's audio players expect.
func SynthesizePCM(notes []cfg.Note, sampleRate int) ([]byte, error) {
	sr := beep.SampleRate(sampleRate)

	streamers := make([]beep.Streamer, 0, len(notes))
	total := 0
	for _, n := range notes {
		samples := sr.N(n.Duration)
		total += samples
		if n.Freq <= 0 {
			streamers = append(streamers, generators.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.Freq, err)
		}
		streamers = append(streamers, beep.Take(samples, tone))
	}

	buf := make([][2]float64, total)
	filled := 0
	seq := beep.Seq(streamers...)
	for filled < total {
		n, ok := seq.Stream(buf[filled:])
		filled += n
		if !ok {
			break
		}
	}

	out := make([]byte, 0, filled*4)
	for _, frame := range buf[:filled] {
		for _, v := range frame {
			out = binary.LittleEndian.AppendUint16(out, uint16(toPCM16(v*toneGain)))
		}
	}
	return out, nil
}

func toPCM16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
