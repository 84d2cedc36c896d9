package systems

import (
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies steps every enemy once, in pool order. An enemy that leaves
// the playfield comes back on the right within the same frame.
func UpdateEnemies(e *ecs.ECS) {
	session, ok := activeSession(e)
	if !ok {
		return
	}

	player := components.Player.Get(session.Player)
	frame := gamemath.EnemyFrame{
		Now:           session.Now,
		Difficulty:    session.Difficulty,
		PlayerCenterY: player.Body.CenterY(),
		Bounds:        session.Bounds,
	}

	for _, entry := range session.Enemies {
		enemy := components.Enemy.Get(entry)
		enemy.Enemy, _ = enemy.Step(frame, session.Rand, cfg.Enemy.Tuning)
	}
}
