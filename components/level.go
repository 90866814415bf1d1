package components

import (
	"github.com/yohamta/donburi"
)

// TileData is a floor cell of the current level.
type TileData struct {
	GridX, GridY int
	X, Y         float64 // top-left corner in pixels
}

// KeyData is the pickup that unlocks the door.
type KeyData struct {
	X, Y      float64 // center
	Collected bool
}

// DoorData is the exit of the level. Open follows key collection.
type DoorData struct {
	X, Y float64 // center
	Open bool
}

var Tile = donburi.NewComponentType[TileData]()
var Key = donburi.NewComponentType[KeyData]()
var Door = donburi.NewComponentType[DoorData]()
