package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broadphase proxy of an entity in the collision space.
// Its bounds follow the entity's body, inflated by one pixel on each side.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space of a session.
var Space = donburi.NewComponentType[resolv.Space]()
