package systems

import (
	cfg "github.com/automoto/dashdodge/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateQuit ends the program when the quit action is pressed.
func NewUpdateQuit(sceneChanger SceneChanger) ecs.System {
	return func(e *ecs.ECS) {
		if GetAction(getOrCreateInput(e), cfg.ActionQuit).JustPressed {
			sceneChanger.Quit()
		}
	}
}
