package systems

import (
	"image/color"

	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)

		if !updateSelection(e, &menu.SelectionData, cfg.Menu.BlinkFrames) {
			return
		}

		switch components.MainMenuOption(menu.Selected) {
		case components.MainMenuStart:
			sceneChanger.ChangeScene(createWorldScene())
		case components.MainMenuQuit:
			sceneChanger.Quit()
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	width := screen.Bounds().Dx()

	titleFont := fonts.Title.Get()
	drawCentered(screen, cfg.Menu.Title, titleFont, width, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.Menu.MenuOptions {
		if i == menu.Selected && menu.BlinkHidden {
			continue
		}
		textColor := cfg.Menu.TextColorNormal
		if i == menu.Selected {
			textColor = cfg.Menu.TextColorSelected
		}
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemGap
		drawCentered(screen, option, menuFont, width, int(y), textColor)
	}

	// Navigation hint for whichever device was used last
	hint := MenuHint(getOrCreateInput(e).LastInputMethod)
	hintTop := screen.Bounds().Dy() - int(cfg.Menu.HintBottomMargin)
	drawCentered(screen, hint, fonts.Regular.Get(), width, hintTop, cfg.Menu.TextColorNormal)
}

// MenuHint returns the navigation hint for an input method
func MenuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return cfg.Menu.GamepadHint
	}
	return cfg.Menu.KeyboardHint
}

// drawCentered draws s horizontally centered with its top edge at top.
func drawCentered(screen *ebiten.Image, s string, face font.Face, width, top int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, (width-w)/2, top+ascent, clr)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			SelectionData: components.SelectionData{
				Selected:   int(components.MainMenuStart),
				NumOptions: len(cfg.Menu.MenuOptions),
			},
		})
	}
	return components.Menu.Get(entry)
}
