package factory

import (
	"github.com/automoto/dashdodge/archetypes"
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/gamemath"
	"github.com/automoto/dashdodge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := gamemath.NewRectBody(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Width, cfg.Player.Height)
	components.Player.SetValue(player, components.PlayerData{
		Body:  body,
		Speed: cfg.Player.Speed,
	})
	attachProxy(player, space, body, tags.ResolvPlayer)

	return player
}
