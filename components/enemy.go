package components

import (
	"github.com/automoto/dashdodge/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	gamemath.Enemy
	Index int // position in the session's update order
}

var Enemy = donburi.NewComponentType[EnemyData]()
