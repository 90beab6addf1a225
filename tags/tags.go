package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Wall       = donburi.NewTag().SetName("Wall")
	Enemy      = donburi.NewTag().SetName("Enemy")
	EndOfLevel = donburi.NewTag().SetName("EndOfLevel")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlatform   = "platform" // One-way, solid from above only
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvEndOfLevel = "endoflevel"
)
