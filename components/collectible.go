package components

import (
	"github.com/automoto/dashdodge/gamemath"
	"github.com/yohamta/donburi"
)

type CollectibleData struct {
	gamemath.Collectible
}

var Collectible = donburi.NewComponentType[CollectibleData]()
