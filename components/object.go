package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// SpaceData is the collision space of the current level (singleton).
type SpaceData struct {
	*resolv.Space
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[SpaceData]()
