package factory

import (
	"github.com/automoto/dashdodge/components"
	"github.com/automoto/dashdodge/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ProxyMargin inflates every broadphase proxy so that bodies whose edges
// only touch still land in a shared cell.
const ProxyMargin = 1

// attachProxy creates the collision proxy for body, registers it in space
// and stores it on the entry.
func attachProxy(entry *donburi.Entry, space *resolv.Space, body gamemath.RectBody, tag string) *resolv.Object {
	w := float64(body.Width() + 2*ProxyMargin)
	h := float64(body.Height() + 2*ProxyMargin)

	obj := resolv.NewObject(float64(body.X-ProxyMargin), float64(body.Y-ProxyMargin), w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	space.Add(obj)
	return obj
}

// SyncProxy moves a proxy onto its body's current position.
func SyncProxy(obj *components.ObjectData, body gamemath.RectBody) {
	obj.X = float64(body.X - ProxyMargin)
	obj.Y = float64(body.Y - ProxyMargin)
	obj.Update()
}
