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

func CreateCollectible(ecs *ecs.ECS, space *resolv.Space, bounds gamemath.Bounds, rng gamemath.Rand) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)

	state := gamemath.NewCollectible(cfg.Collectible.Width, cfg.Collectible.Height, cfg.Collectible.RespawnDelay, bounds)
	state.Spawn(rng)
	components.Collectible.SetValue(collectible, components.CollectibleData{Collectible: state})
	attachProxy(collectible, space, state.Body, tags.ResolvCollectible)

	pop := components.PopData{}
	StartPop(&pop)
	components.Pop.SetValue(collectible, pop)

	return collectible
}
