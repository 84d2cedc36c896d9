package systems

import (
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/automoto/dashdodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves player contacts for the frame. Enemies are
// tested first, in pool order, and the first hit ends the run. The pickup is
// only scored if the run survived the enemy pass.
func UpdateCollisions(e *ecs.ECS) {
	session, ok := activeSession(e)
	if !ok {
		return
	}

	player := components.Player.Get(session.Player)
	candidates := broadphase(session.Player)

	for _, entry := range session.Enemies {
		if !candidates[entry] {
			continue
		}
		enemy := components.Enemy.Get(entry)
		if player.Body.Overlaps(enemy.Body) {
			endRun(e, session)
			break
		}
	}
	if session.GameOver {
		return
	}

	if !candidates[session.Collectible] {
		return
	}
	collectible := components.Collectible.Get(session.Collectible)
	if collectible.Active && player.Body.Overlaps(collectible.Body) {
		session.Score += cfg.Collectible.Points
		collectible.Collect(session.Now)
		PlaySFX(e, cfg.SoundCollect)
	}
}

// broadphase returns the entries whose proxies share a cell with the
// player's. It only narrows the search; overlap is decided on the bodies.
func broadphase(playerEntry *donburi.Entry) map[*donburi.Entry]bool {
	obj := components.Object.Get(playerEntry)
	check := obj.Check(0, 0, tags.ResolvEnemy, tags.ResolvCollectible)
	if check == nil {
		return nil
	}

	found := make(map[*donburi.Entry]bool, len(check.Objects))
	for _, o := range check.Objects {
		if entry, ok := o.Data.(*donburi.Entry); ok {
			found[entry] = true
		}
	}
	return found
}

func endRun(e *ecs.ECS, session *components.SessionData) {
	session.GameOver = true
	session.FinalScore = session.Score
	PlaySFX(e, cfg.SoundCollision)
	RequestStopMusic(e)
}
