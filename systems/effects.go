package systems

import (
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the pop-in tweens by one tick.
func UpdateEffects(ecs *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)

	components.Pop.Each(ecs.World, func(e *donburi.Entry) {
		pop := components.Pop.Get(e)
		if pop.Tween == nil {
			return
		}

		scale, finished := pop.Tween.Update(dt)
		pop.Scale = scale
		if finished {
			pop.Tween = nil
			pop.Scale = 1
		}
	})
}
