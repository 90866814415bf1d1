package config

// EnemyThresholds holds cumulative upper bounds, indexed by EnemyKind, for a
// uniform [0,1) draw. The first kind whose bound exceeds the draw is chosen.
type EnemyThresholds [EnemyKindCount]float64

// LevelConfig contains the difficulty tables of the level generator
type LevelConfig struct {
	MaxLevel int

	InternalWalls        map[int]int
	DefaultInternalWalls int // for any level without an entry

	EnemyCounts       map[int]int
	DefaultEnemyCount int

	EnemyTypes        map[int]EnemyThresholds
	DefaultEnemyTypes EnemyThresholds

	// Minimum spawn distances from the player, in tiles
	KeyMinDistanceTiles   float64
	EnemyMinDistanceTiles float64
}

// InternalWallCount returns how many random inner walls a level gets.
func (l *LevelConfig) InternalWallCount(level int) int {
	if n, ok := l.InternalWalls[level]; ok {
		return n
	}
	return l.DefaultInternalWalls
}

// EnemyCount returns how many slimes spawn on a level.
func (l *LevelConfig) EnemyCount(level int) int {
	if n, ok := l.EnemyCounts[level]; ok {
		return n
	}
	return l.DefaultEnemyCount
}

// Thresholds returns the enemy type distribution for a level. Levels below 1
// use the level 1 table.
func (l *LevelConfig) Thresholds(level int) EnemyThresholds {
	if level < 1 {
		level = 1
	}
	if t, ok := l.EnemyTypes[level]; ok {
		return t
	}
	return l.DefaultEnemyTypes
}

var Levels LevelConfig

func init() {
	Levels = LevelConfig{
		MaxLevel: 5,

		InternalWalls:        map[int]int{1: 7, 2: 9, 3: 12, 4: 15, 5: 18},
		DefaultInternalWalls: 18,

		EnemyCounts:       map[int]int{1: 3, 2: 4, 3: 6, 4: 7, 5: 9},
		DefaultEnemyCount: 9,

		// Normal / Fire / Block / Spike
		EnemyTypes: map[int]EnemyThresholds{
			1: {1.00, 1.00, 1.00, 1.00}, // 100%
			2: {0.70, 1.00, 1.00, 1.00}, // 70 / 30
			3: {0.40, 0.75, 1.00, 1.00}, // 40 / 35 / 25
			4: {0.25, 0.60, 0.85, 1.00}, // 25 / 35 / 25 / 15
		},
		DefaultEnemyTypes: EnemyThresholds{0.15, 0.45, 0.75, 1.00}, // 15 / 30 / 30 / 25

		KeyMinDistanceTiles:   6,
		EnemyMinDistanceTiles: 2,
	}
}
