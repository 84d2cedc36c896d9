package components

import (
	"time"

	"github.com/automoto/dashdodge/gamemath"
	"github.com/automoto/dashdodge/timing"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton state of one run, from spawn to game over.
// A restart builds a new world, so nothing here is ever reset in place.
type SessionData struct {
	Score      int
	Difficulty float64

	Player      *donburi.Entry
	Collectible *donburi.Entry
	Enemies     []*donburi.Entry // fixed pool, iterated in this order

	Bounds gamemath.Bounds
	Rand   gamemath.Rand
	Clock  timing.Clock

	Now time.Time // sampled once at the start of each frame

	GameOver   bool
	FinalScore int
}

var Session = donburi.NewComponentType[SessionData]()
