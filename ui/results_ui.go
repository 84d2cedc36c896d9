package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// ResultsUI holds the ebitenui panel of the game over screen
type ResultsUI struct {
	UI       *ebitenui.UI
	GameOver *components.GameOverData

	scoreLabel   *widget.Label
	optionLabels []*widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewResultsUI creates the results panel for a finished run
func NewResultsUI(gameOver *components.GameOverData) *ResultsUI {
	rui := &ResultsUI{GameOver: gameOver}

	rui.loadFonts()
	rui.buildUI()
	rui.Refresh()

	return rui
}

func (rui *ResultsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	rui.titleFace = &text.GoTextFace{Source: fontSource, Size: 56}
	rui.normalFace = &text.GoTextFace{Source: fontSource, Size: 28}
}

func (rui *ResultsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	top := int(cfg.GameOver.TitleY)
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: top}),
			widget.RowLayoutOpts.Spacing(int(cfg.GameOver.MenuItemGap)/2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	contentContainer.AddChild(rui.newLabel(cfg.GameOver.Title, &rui.titleFace, cfg.GameOver.TitleColor))

	rui.scoreLabel = rui.newLabel("", &rui.normalFace, cfg.GameOver.ScoreColor)
	contentContainer.AddChild(rui.scoreLabel)

	rui.optionLabels = make([]*widget.Label, len(cfg.GameOver.MenuOptions))
	for i := range cfg.GameOver.MenuOptions {
		rui.optionLabels[i] = rui.newLabel("", &rui.normalFace, cfg.GameOver.TextColorNormal)
		contentContainer.AddChild(rui.optionLabels[i])
	}

	rootContainer.AddChild(contentContainer)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (rui *ResultsUI) newLabel(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		),
	)
}

// Refresh copies the game over state into the labels
func (rui *ResultsUI) Refresh() {
	rui.scoreLabel.Label = FinalScoreLabel(rui.GameOver.FinalScore)
	for i, label := range rui.optionLabels {
		label.Label = OptionLabel(cfg.GameOver.MenuOptions[i], i == rui.GameOver.Selected, rui.GameOver.BlinkHidden)
	}
}

// Update calls the UI's Update method after syncing the labels
func (rui *ResultsUI) Update() {
	rui.Refresh()
	rui.UI.Update()
}
