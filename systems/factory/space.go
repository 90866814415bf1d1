package factory

import (
	"github.com/automoto/dungeon-escape/archetypes"
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the collision space of a level. One cell per tile.
func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(cfg.C.Width, cfg.C.Height, cfg.C.TileSize, cfg.C.TileSize)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
