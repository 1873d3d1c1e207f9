package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Star     = donburi.NewTag().SetName("Star")
	Bomb     = donburi.NewTag().SetName("Bomb")
)

// Resolv tags for physics collision
const (
	ResolvPlayer   = "player"
	ResolvPlatform = "platform"
	ResolvStar     = "star"
	ResolvBomb     = "bomb"
)
