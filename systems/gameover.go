package systems

import (
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver, ok := GetGameOver(e)
		if !ok {
			return
		}

		if !updateSelection(e, &gameOver.SelectionData, cfg.GameOver.BlinkFrames) {
			return
		}

		switch components.GameOverOption(gameOver.Selected) {
		case components.GameOverRestart:
			sceneChanger.ChangeScene(createWorldScene())
		case components.GameOverQuit:
			sceneChanger.Quit()
		}
	}
}

// CreateGameOver adds the game over menu state carrying the run's score.
func CreateGameOver(e *ecs.ECS, finalScore int) *components.GameOverData {
	entry := e.World.Entry(e.World.Create(components.GameOver))
	components.GameOver.SetValue(entry, components.GameOverData{
		SelectionData: components.SelectionData{
			Selected:   int(components.GameOverRestart),
			NumOptions: len(cfg.GameOver.MenuOptions),
		},
		FinalScore: finalScore,
	})
	return components.GameOver.Get(entry)
}

// GetGameOver returns the game over menu state, if present.
func GetGameOver(e *ecs.ECS) (*components.GameOverData, bool) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return nil, false
	}
	return components.GameOver.Get(entry), true
}
