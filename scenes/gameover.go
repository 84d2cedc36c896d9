package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/systems"
	"github.com/automoto/dashdodge/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the final score and the restart/quit choice
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	finalScore   int
	resultsUI    *ui.ResultsUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, finalScore int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, finalScore: finalScore}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.resultsUI.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.resultsUI.UI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawBackground)

	gameOver := systems.CreateGameOver(gs.ecs, gs.finalScore)
	gs.resultsUI = ui.NewResultsUI(gameOver)

	systems.StopMusic()
}
