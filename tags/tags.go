package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Wall   = donburi.NewTag().SetName("Wall")
	Floor  = donburi.NewTag().SetName("Floor")
	Key    = donburi.NewTag().SetName("Key")
	Door   = donburi.NewTag().SetName("Door")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
)
