package factory

import (
	"github.com/automoto/dashdodge/archetypes"
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/gamemath"
	"github.com/automoto/dashdodge/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the resolv cell edge in pixels.
const spaceCellSize = 16

// spaceExtent sizes one axis of the collision space. resolv truncates
// extent/cell, so an extra cell keeps proxies reaching the far edge
// (and the margin past it) inside the grid.
func spaceExtent(bound int) int {
	return bound + spaceCellSize + ProxyMargin
}

// SessionOptions is everything a session needs from outside the world.
type SessionOptions struct {
	Bounds gamemath.Bounds
	Clock  timing.Clock
	Rand   gamemath.Rand
}

// DefaultSessionOptions builds options from the global config, seeding the
// random source from seed, or from the clock when seed is 0.
func DefaultSessionOptions(seed int64) SessionOptions {
	clock := timing.NewMonotonicClock()
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	return SessionOptions{
		Bounds: gamemath.Bounds{Width: cfg.C.Width, Height: cfg.C.Height},
		Clock:  clock,
		Rand:   gamemath.NewRand(seed),
	}
}

// CreateSession builds a fresh run: collision space, player, collectible and
// the enemy pool, plus the session singleton that ties them together.
func CreateSession(ecs *ecs.ECS, opts SessionOptions) *donburi.Entry {
	now := opts.Clock.Now()

	spaceEntry := CreateSpace(ecs, spaceExtent(opts.Bounds.Width), spaceExtent(opts.Bounds.Height), spaceCellSize, spaceCellSize)
	space := components.Space.Get(spaceEntry)

	player := CreatePlayer(ecs, space)
	collectible := CreateCollectible(ecs, space, opts.Bounds, opts.Rand)

	enemies := make([]*donburi.Entry, 0, len(cfg.Enemy.Spawns))
	for i, spawn := range cfg.Enemy.Spawns {
		enemies = append(enemies, CreateEnemy(ecs, space, spawn, i, now, opts.Rand))
	}

	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Score:       0,
		Difficulty:  gamemath.Difficulty(0),
		Player:      player,
		Collectible: collectible,
		Enemies:     enemies,
		Bounds:      opts.Bounds,
		Rand:        opts.Rand,
		Clock:       opts.Clock,
		Now:         now,
	})

	return session
}
