package systems

import (
	"math"
	"slices"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems/factory"
	"github.com/yohamta/donburi"
)

// GenerateLevel rebuilds the world for a level: border and inner walls,
// floor tiles, then the player, key, door and slimes on distinct floor tiles.
// The player entity is reused when it exists, so health carries over.
func GenerateLevel(w donburi.World, level int) {
	rng := GetOrCreateRandom(w)
	tileSize := float64(cfg.C.TileSize)
	gw, gh := cfg.C.GridWidth, cfg.C.GridHeight

	factory.ClearLevel(w)
	factory.CreateSpace(w)

	var walls []Rect
	addWall := func(gx, gy int) {
		r := Rect{X: float64(gx) * tileSize, Y: float64(gy) * tileSize, W: tileSize, H: tileSize}
		walls = append(walls, r)
		factory.CreateWall(w, r.X, r.Y, tileSize)
	}

	// Border
	for x := 0; x < gw; x++ {
		addWall(x, 0)
		addWall(x, gh-1)
	}
	for y := 1; y < gh-1; y++ {
		addWall(0, y)
		addWall(gw-1, y)
	}

	// Inner walls may land on the same cell more than once.
	for i := 0; i < cfg.Levels.InternalWallCount(level); i++ {
		addWall(2+rng.IntN(gw-4), 2+rng.IntN(gh-4))
	}

	// Floors
	var available []components.Vector
	for x := 0; x < gw; x++ {
		for y := 0; y < gh; y++ {
			tile := Rect{X: float64(x) * tileSize, Y: float64(y) * tileSize, W: tileSize, H: tileSize}
			if slices.ContainsFunc(walls, tile.Overlaps) {
				continue
			}
			factory.CreateFloor(w, x, y, cfg.C.TileSize)
			available = append(available, components.Vector{X: tile.X + tileSize/2, Y: tile.Y + tileSize/2})
		}
	}

	pool := &spawnPool{tiles: available, rng: rng}

	playerPos := pool.take(0, components.Vector{})
	factory.PlacePlayer(w, playerPos.X, playerPos.Y)

	keyPos := pool.take(cfg.Levels.KeyMinDistanceTiles*tileSize, playerPos)
	factory.CreateKey(w, keyPos.X, keyPos.Y)

	doorPos := pool.takeDoor()
	factory.CreateDoor(w, doorPos.X, doorPos.Y)

	for i := 0; i < cfg.Levels.EnemyCount(level); i++ {
		pos := pool.take(cfg.Levels.EnemyMinDistanceTiles*tileSize, playerPos)
		kind := ChooseEnemyKind(level, rng.Float64())
		e := factory.CreateEnemy(w, kind, pos.X, pos.Y)
		initEnemyAI(components.Enemy.Get(e), components.Character.Get(e), rng)
	}

	ShowBanner(w, level)
}

// ChooseEnemyKind maps a uniform draw r in [0,1) to a slime kind using the
// cumulative weights of the level.
func ChooseEnemyKind(level int, r float64) cfg.EnemyKind {
	thresholds := cfg.Levels.Thresholds(level)
	for kind, bound := range thresholds {
		if r < bound {
			return cfg.EnemyKind(kind)
		}
	}
	return cfg.EnemyKindCount - 1
}

// spawnPool hands out floor tile centers without replacement.
type spawnPool struct {
	tiles []components.Vector
	rng   components.Source
}

// take draws a tile at least minDist away from from. After as many failed
// draws as there are tiles it settles for the first remaining tile. An empty
// pool yields the middle of the play area.
func (p *spawnPool) take(minDist float64, from components.Vector) components.Vector {
	if len(p.tiles) == 0 {
		return components.Vector{X: float64(cfg.C.Width / 2), Y: float64(cfg.C.PlayAreaHeight() / 2)}
	}

	for range len(p.tiles) {
		i := p.rng.IntN(len(p.tiles))
		if minDist <= 0 || Distance(p.tiles[i], from) >= minDist {
			return p.remove(i)
		}
	}
	return p.remove(0)
}

// takeDoor picks the rightmost tile, preferring the one closest to the
// vertical middle of the window. Remaining ties go to the upper tile.
func (p *spawnPool) takeDoor() components.Vector {
	if len(p.tiles) == 0 {
		return components.Vector{X: float64(cfg.C.Width - 100), Y: float64(cfg.C.Height / 2)}
	}

	middle := float64(cfg.C.Height / 2)
	best := 0
	for i, t := range p.tiles[1:] {
		b := p.tiles[best]
		switch {
		case t.X > b.X:
			best = i + 1
		case t.X == b.X:
			dt, db := math.Abs(t.Y-middle), math.Abs(b.Y-middle)
			if dt < db || (dt == db && t.Y < b.Y) {
				best = i + 1
			}
		}
	}
	return p.remove(best)
}

func (p *spawnPool) remove(i int) components.Vector {
	v := p.tiles[i]
	p.tiles = slices.Delete(p.tiles, i, i+1)
	return v
}
