package systems

import (
	"log"
	"sync"

	"github.com/automoto/dashdodge/assets"
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once).
// It reports false when sound is disabled.
func initGlobalAudio() bool {
	if cfg.Debug.Mute {
		return false
	}
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
	return true
}

// PreloadAllSFX synthesizes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	if !initGlobalAudio() {
		return
	}

	for id := range cfg.Sound.SFX {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio plays the sounds queued during the previous frame and honors
// a pending music stop.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	if audioData.StopMusic {
		StopMusic()
		audioData.StopMusic = false
	}

	if initGlobalAudio() {
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Printf("Warning: could not play sound %d: %v", soundID, err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts the looping game music unless it is already playing.
func PlayMusic() {
	if !initGlobalAudio() {
		return
	}
	if globalMusicPlayer != nil {
		return
	}

	player, err := globalAudioLoader.LoadMusic(cfg.Sound.GameMusic)
	if err != nil {
		log.Printf("Warning: could not start music: %v", err)
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
}

// PlaySFX queues a sound effect to be played on the next UpdateAudio.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// RequestStopMusic asks UpdateAudio to stop the music on its next run.
func RequestStopMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).StopMusic = true
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
