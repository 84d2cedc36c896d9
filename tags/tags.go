package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for the collision broadphase
const (
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvCollectible = "Collectible"
)
