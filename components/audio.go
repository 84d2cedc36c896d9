package components

import (
	cfg "github.com/automoto/dashdodge/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound requests made by gameplay systems during a frame.
// UpdateAudio drains the queue at the start of the next frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
	StopMusic  bool
}

var Audio = donburi.NewComponentType[AudioData]()
