package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/dashdodge/assets"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/systems"
	"github.com/automoto/dashdodge/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one session from spawn to collision
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      factory.SessionOptions
	once         sync.Once
}

// NewWorldScene creates a fresh run seeded from the debug config
func NewWorldScene(sc SceneChanger) *WorldScene {
	return NewWorldSceneWithOptions(sc, factory.DefaultSessionOptions(cfg.Debug.Seed))
}

// NewWorldSceneWithOptions creates a run with an explicit clock, random
// source and playfield.
func NewWorldSceneWithOptions(sc SceneChanger, opts factory.SessionOptions) *WorldScene {
	return &WorldScene{sceneChanger: sc, options: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	session, ok := systems.GetSession(ws.ecs)
	if !ok || !session.GameOver {
		return
	}

	// Flush the collision sound before this world is dropped.
	systems.UpdateAudio(ws.ecs)
	ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, session.FinalScore))
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: falling back to untinted sprites: %v", err)
	}

	ws.ecs = NewWorldECS(ws.sceneChanger, ws.options)
	systems.PlayMusic()
}

// NewWorldECS builds the world with its session and the per-frame system
// order: sound, input, clock, player, pickup, difficulty, enemies, proxies,
// collisions, effects.
func NewWorldECS(sc SceneChanger, opts factory.SessionOptions) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateQuit(sc))
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateCollectible)
	e.AddSystem(systems.UpdateDifficulty)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateEffects)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateSession(e, opts)
	return e
}
