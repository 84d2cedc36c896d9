package systems

import (
	"image/color"

	"github.com/automoto/dashdodge/assets"
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawBackground paints the playfield backdrop.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.DrawImage(assets.GetBackground(), nil)
}

// DrawEntities renders the pickup, the enemies and then the player on top.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}

	collectible := components.Collectible.Get(session.Collectible)
	if collectible.Active {
		pop := components.Pop.Get(session.Collectible)
		drawBody(screen, collectible.Body, cfg.Collectible.Color, pop.Scale)
	}

	for _, entry := range session.Enemies {
		enemy := components.Enemy.Get(entry)
		drawBody(screen, enemy.Body, cfg.Enemy.Color, 1)
	}

	player := components.Player.Get(session.Player)
	drawBody(screen, player.Body, cfg.Player.Color, 1)
}

// drawBody draws a tinted sprite over body, scaled about its center.
func drawBody(screen *ebiten.Image, body gamemath.RectBody, tint color.RGBA, scale float32) {
	if scale <= 0 {
		return
	}
	sprite := assets.GetSprite(body.Width(), body.Height())
	s := float64(scale)
	cx, cy := float64(body.CenterX()), float64(body.CenterY())
	hw, hh := float64(body.Width())/2, float64(body.Height())/2

	if assets.TintShader != nil {
		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Translate(-hw, -hh)
		shaderOp.GeoM.Scale(s, s)
		shaderOp.GeoM.Translate(cx, cy)
		shaderOp.Images[0] = sprite
		shaderOp.Uniforms = assets.TintUniforms(tint)
		screen.DrawRectShader(body.Width(), body.Height(), assets.TintShader, shaderOp)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-hw, -hh)
	drawOp.GeoM.Scale(s, s)
	drawOp.GeoM.Translate(cx, cy)
	drawOp.ColorScale.ScaleWithColor(tint)
	screen.DrawImage(sprite, drawOp)
}
