package components

import (
	"github.com/automoto/dashdodge/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Body  gamemath.RectBody
	Speed int // pixels per frame
}

var Player = donburi.NewComponentType[PlayerData]()
