package systems

import (
	"github.com/automoto/dashdodge/components"
	"github.com/automoto/dashdodge/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every collision proxy onto its body so the broadphase
// sees this frame's positions.
func UpdateObjects(e *ecs.ECS) {
	session, ok := activeSession(e)
	if !ok {
		return
	}

	player := components.Player.Get(session.Player)
	factory.SyncProxy(components.Object.Get(session.Player), player.Body)

	collectible := components.Collectible.Get(session.Collectible)
	factory.SyncProxy(components.Object.Get(session.Collectible), collectible.Body)

	for _, entry := range session.Enemies {
		enemy := components.Enemy.Get(entry)
		factory.SyncProxy(components.Object.Get(entry), enemy.Body)
	}
}
