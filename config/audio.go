package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCollision
	SoundCollect
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// Note is one synthesized tone.
type Note struct {
	Freq     float64 // Hz, 0 = rest
	Duration time.Duration
}

// SoundConfig maps sound IDs to the notes they are synthesized from.
// There are no audio files; every sound is generated at startup.
type SoundConfig struct {
	GameMusic         []Note
	SFX               map[SoundID][]Note
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.35,
		DefaultSFXVol:   0.8,
	}

	beat := 200 * time.Millisecond
	Sound = SoundConfig{
		GameMusic: []Note{
			{220, beat}, {261.63, beat}, {329.63, beat}, {261.63, beat},
			{196, beat}, {246.94, beat}, {293.66, beat}, {246.94, beat},
			{174.61, beat}, {220, beat}, {261.63, beat}, {220, beat},
			{196, beat}, {246.94, beat}, {293.66, beat}, {0, beat},
		},
		SFX: map[SoundID][]Note{
			SoundCollision: {
				{110, 80 * time.Millisecond},
				{82.41, 160 * time.Millisecond},
			},
			SoundCollect: {
				{880, 60 * time.Millisecond},
				{1318.51, 90 * time.Millisecond},
			},
			SoundMenuNavigate: {
				{660, 40 * time.Millisecond},
			},
			SoundMenuSelect: {
				{523.25, 50 * time.Millisecond},
				{783.99, 70 * time.Millisecond},
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCollision: 1.25,
		},
	}
}
