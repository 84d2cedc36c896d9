package systems

import (
	"fmt"

	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// ScoreText is the in-game score overlay label.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// DrawHUD renders the score in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}

	face := fonts.Regular.Get()
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, ScoreText(session.Score), face, cfg.HUD.ScoreX, cfg.HUD.ScoreY+ascent, cfg.HUD.TextColor)
}
