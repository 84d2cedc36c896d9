package systems

import (
	"github.com/automoto/dashdodge/components"
	"github.com/automoto/dashdodge/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the running session, if the world has one.
func GetSession(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// activeSession returns the session only while play is still going.
func activeSession(e *ecs.ECS) (*components.SessionData, bool) {
	session, ok := GetSession(e)
	if !ok || session.GameOver {
		return nil, false
	}
	return session, true
}

// UpdateSession samples the clock once for the frame. Every later system
// reads session.Now so they all agree on the frame time.
func UpdateSession(e *ecs.ECS) {
	session, ok := activeSession(e)
	if !ok {
		return
	}
	session.Now = session.Clock.Now()
}

// UpdateDifficulty rescales difficulty from the current score.
func UpdateDifficulty(e *ecs.ECS) {
	session, ok := activeSession(e)
	if !ok {
		return
	}
	session.Difficulty = gamemath.Difficulty(session.Score)
}
