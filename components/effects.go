package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PopData drives the scale-in effect played when a pickup appears.
type PopData struct {
	Tween *gween.Tween // nil when idle
	Scale float32      // current draw scale, 1 = full size
}

var Pop = donburi.NewComponentType[PopData]()
