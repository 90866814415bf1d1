package factory

import (
	"github.com/automoto/dungeon-escape/archetypes"
	"github.com/automoto/dungeon-escape/components"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWall creates a solid tile with its top-left corner at (x, y).
func CreateWall(w donburi.World, x, y, size float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(x, y, size, size, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}

// CreateFloor creates a walkable tile at grid coordinates (gx, gy).
func CreateFloor(w donburi.World, gx, gy, tileSize int) *donburi.Entry {
	floor := archetypes.Floor.Spawn(w)
	components.Tile.SetValue(floor, components.TileData{
		GridX: gx,
		GridY: gy,
		X:     float64(gx * tileSize),
		Y:     float64(gy * tileSize),
	})
	return floor
}
