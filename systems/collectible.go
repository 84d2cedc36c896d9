package systems

import (
	"github.com/automoto/dashdodge/components"
	"github.com/automoto/dashdodge/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectible brings the pickup back once its respawn delay is up.
func UpdateCollectible(e *ecs.ECS) {
	session, ok := activeSession(e)
	if !ok {
		return
	}

	collectible := components.Collectible.Get(session.Collectible)
	if collectible.Update(session.Now, session.Rand) {
		factory.StartPop(components.Pop.Get(session.Collectible))
	}
}
