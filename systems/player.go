package systems

import (
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player from the held direction actions.
// Diagonals are not normalized.
func UpdatePlayer(e *ecs.ECS) {
	session, ok := activeSession(e)
	if !ok {
		return
	}

	input := getOrCreateInput(e)
	player := components.Player.Get(session.Player)

	dirs := gamemath.Directions{
		Up:    GetAction(input, cfg.ActionMoveUp).Pressed,
		Down:  GetAction(input, cfg.ActionMoveDown).Pressed,
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
	}
	player.Body = gamemath.MovePlayer(player.Body, player.Speed, dirs, session.Bounds)
}
