package factory

import (
	"github.com/automoto/dashdodge/components"
	cfg "github.com/automoto/dashdodge/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StartPop restarts the scale-in effect from zero.
func StartPop(pop *components.PopData) {
	pop.Tween = gween.New(0, 1, cfg.Collectible.PopDuration, ease.OutBack)
	pop.Scale = 0
}
