package factory

import (
	"time"

	"github.com/automoto/dashdodge/archetypes"
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/gamemath"
	"github.com/automoto/dashdodge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns one pooled enemy. index fixes its place in the update
// and collision order.
func CreateEnemy(ecs *ecs.ECS, space *resolv.Space, spawn cfg.EnemySpawn, index int, now time.Time, rng gamemath.Rand) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	state := gamemath.NewEnemy(spawn.X, spawn.Y, cfg.Enemy.Width, cfg.Enemy.Height, spawn.BaseSpeed, now, rng, cfg.Enemy.Tuning)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Enemy: state,
		Index: index,
	})
	attachProxy(enemy, space, state.Body, tags.ResolvEnemy)

	return enemy
}
