package systems

import (
	"testing"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/yohamta/donburi"
)

const borderWalls = 64 // 20x14 perimeter

func TestGenerateLevelOne(t *testing.T) {
	w := newSeededWorld(42)
	GenerateLevel(w, 1)

	if got := countTagged(w, tags.Wall); got != borderWalls+7 {
		t.Errorf("expected %d walls, got %d", borderWalls+7, got)
	}
	if got := countTagged(w, tags.Enemy); got != 3 {
		t.Errorf("expected 3 enemies, got %d", got)
	}
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if kind := components.Enemy.Get(e).Kind; kind != cfg.SlimeNormal {
			t.Errorf("expected only SlimeNormal on level 1, got %s", kind)
		}
	})
	if got := countTagged(w, tags.Key); got != 1 {
		t.Errorf("expected 1 key, got %d", got)
	}
	if got := countTagged(w, tags.Door); got != 1 {
		t.Errorf("expected 1 door, got %d", got)
	}
	if got := countTagged(w, tags.Player); got != 1 {
		t.Errorf("expected 1 player, got %d", got)
	}
}

func TestGenerateLevelTables(t *testing.T) {
	tests := []struct {
		level   int
		walls   int
		enemies int
	}{
		{1, 7, 3},
		{2, 9, 4},
		{3, 12, 6},
		{4, 15, 7},
		{5, 18, 9},
		{8, 18, 9},
	}

	for _, tt := range tests {
		w := newSeededWorld(uint64(tt.level))
		GenerateLevel(w, tt.level)

		if got := countTagged(w, tags.Wall); got != borderWalls+tt.walls {
			t.Errorf("level %d: expected %d walls, got %d", tt.level, borderWalls+tt.walls, got)
		}
		if got := countTagged(w, tags.Enemy); got != tt.enemies {
			t.Errorf("level %d: expected %d enemies, got %d", tt.level, tt.enemies, got)
		}
	}
}

func TestGenerateLevelFloorsCoverNonWallCells(t *testing.T) {
	w := newSeededWorld(7)
	GenerateLevel(w, 5)

	wallCells := map[[2]int]bool{}
	tags.Wall.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		wallCells[[2]int{int(obj.X) / cfg.C.TileSize, int(obj.Y) / cfg.C.TileSize}] = true
	})

	floors := 0
	tags.Floor.Each(w, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		if wallCells[[2]int{tile.GridX, tile.GridY}] {
			t.Errorf("floor at wall cell (%d, %d)", tile.GridX, tile.GridY)
		}
		floors++
	})

	total := cfg.C.GridWidth * cfg.C.GridHeight
	if floors+len(wallCells) != total {
		t.Errorf("expected floors + wall cells = %d, got %d + %d", total, floors, len(wallCells))
	}
}

func TestGenerateLevelSpawnsAreDistinctFloorTiles(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		for level := 1; level <= 5; level++ {
			w := newSeededWorld(seed)
			GenerateLevel(w, level)

			floorCenters := map[components.Vector]bool{}
			half := float64(cfg.C.TileSize) / 2
			tags.Floor.Each(w, func(e *donburi.Entry) {
				tile := components.Tile.Get(e)
				floorCenters[components.Vector{X: tile.X + half, Y: tile.Y + half}] = true
			})

			var spawns []components.Vector
			spawns = append(spawns, components.Character.Get(mustPlayer(t, w)).Position())
			keyEntry, _ := tags.Key.First(w)
			key := components.Key.Get(keyEntry)
			spawns = append(spawns, components.Vector{X: key.X, Y: key.Y})
			doorEntry, _ := tags.Door.First(w)
			door := components.Door.Get(doorEntry)
			spawns = append(spawns, components.Vector{X: door.X, Y: door.Y})
			tags.Enemy.Each(w, func(e *donburi.Entry) {
				spawns = append(spawns, components.Character.Get(e).Position())
			})

			seen := map[components.Vector]bool{}
			for _, s := range spawns {
				if seen[s] {
					t.Fatalf("seed %d level %d: two spawns share tile %+v", seed, level, s)
				}
				seen[s] = true
				if !floorCenters[s] {
					t.Fatalf("seed %d level %d: spawn %+v is not a floor tile center", seed, level, s)
				}
			}
		}
	}
}

func TestGenerateLevelKeepsPlayer(t *testing.T) {
	w := newSeededWorld(3)
	GenerateLevel(w, 1)

	first := mustPlayer(t, w)
	player := components.Player.Get(first)
	player.Health = 1
	player.InvulnTimer = 1
	components.Character.Get(first).Direction = components.Vector{X: 1}

	GenerateLevel(w, 2)

	if got := countTagged(w, tags.Player); got != 1 {
		t.Fatalf("expected 1 player, got %d", got)
	}
	e := mustPlayer(t, w)
	if e.Entity() != first.Entity() {
		t.Errorf("expected the player entity to be reused")
	}
	player = components.Player.Get(e)
	if player.Health != 1 {
		t.Errorf("expected health to carry over as 1, got %d", player.Health)
	}
	if player.InvulnTimer != 0 {
		t.Errorf("expected invulnerability reset, got %f", player.InvulnTimer)
	}
	char := components.Character.Get(e)
	if char.Direction != (components.Vector{}) || char.State != cfg.Idle {
		t.Errorf("expected idle player at rest, got %+v %s", char.Direction, char.State)
	}

	if got := countTagged(w, tags.Wall); got != borderWalls+9 {
		t.Errorf("expected old level walls to be cleared, got %d walls", got)
	}
}

func TestChooseEnemyKind(t *testing.T) {
	tests := []struct {
		level int
		r     float64
		want  cfg.EnemyKind
	}{
		{0, 0.99, cfg.SlimeNormal},
		{1, 0.99, cfg.SlimeNormal},
		{2, 0.5, cfg.SlimeNormal},
		{2, 0.8, cfg.SlimeFire},
		{3, 0.39, cfg.SlimeNormal},
		{3, 0.4, cfg.SlimeFire},
		{3, 0.8, cfg.SlimeBlock},
		{4, 0.2, cfg.SlimeNormal},
		{4, 0.59, cfg.SlimeFire},
		{4, 0.7, cfg.SlimeBlock},
		{4, 0.9, cfg.SlimeSpike},
		{5, 0.1, cfg.SlimeNormal},
		{5, 0.3, cfg.SlimeFire},
		{5, 0.5, cfg.SlimeBlock},
		{5, 0.8, cfg.SlimeSpike},
		{9, 0.8, cfg.SlimeSpike},
	}

	for _, tt := range tests {
		if got := ChooseEnemyKind(tt.level, tt.r); got != tt.want {
			t.Errorf("level %d, r=%.2f: expected %s, got %s", tt.level, tt.r, tt.want, got)
		}
	}
}

func TestSpawnPoolFallsBackToFirstTile(t *testing.T) {
	pool := &spawnPool{
		tiles: []components.Vector{{X: 100, Y: 100}, {X: 140, Y: 100}},
		rng:   &scriptedSource{ints: []int{1, 1}},
	}

	got := pool.take(1000, components.Vector{X: 100, Y: 100})
	if got != (components.Vector{X: 100, Y: 100}) {
		t.Errorf("expected fallback to the first tile, got %+v", got)
	}
	if len(pool.tiles) != 1 {
		t.Errorf("expected one tile left, got %d", len(pool.tiles))
	}
}

func TestSpawnPoolHonorsDistance(t *testing.T) {
	pool := &spawnPool{
		tiles: []components.Vector{{X: 100, Y: 100}, {X: 500, Y: 100}},
		rng:   &scriptedSource{ints: []int{0, 1}},
	}

	got := pool.take(240, components.Vector{X: 100, Y: 100})
	if got != (components.Vector{X: 500, Y: 100}) {
		t.Errorf("expected the far tile, got %+v", got)
	}
}

func TestSpawnPoolEmpty(t *testing.T) {
	pool := &spawnPool{rng: &scriptedSource{}}

	if got := pool.take(0, components.Vector{}); got != (components.Vector{X: 400, Y: 280}) {
		t.Errorf("expected (400, 280), got %+v", got)
	}
	if got := pool.takeDoor(); got != (components.Vector{X: 700, Y: 300}) {
		t.Errorf("expected (700, 300), got %+v", got)
	}
}

func TestSpawnPoolDoorPrefersRightMiddle(t *testing.T) {
	pool := &spawnPool{tiles: []components.Vector{
		{X: 60, Y: 300},
		{X: 740, Y: 60},
		{X: 740, Y: 340},
		{X: 700, Y: 300},
		{X: 740, Y: 260},
	}}

	if got := pool.takeDoor(); got != (components.Vector{X: 740, Y: 260}) {
		t.Errorf("expected (740, 260), got %+v", got)
	}
	if got := pool.takeDoor(); got != (components.Vector{X: 740, Y: 340}) {
		t.Errorf("expected (740, 340), got %+v", got)
	}
}
