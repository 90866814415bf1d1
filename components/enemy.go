package components

import (
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind       cfg.EnemyKind
	TypeConfig *cfg.EnemyTypeConfig // Cached reference to type configuration

	// AI state management
	AIState      cfg.StateID
	Timer        float64   // seconds until the next wander/patrol/erratic re-roll
	PatrolPoints [2]Vector // SlimeBlock only
	Target       int       // index into PatrolPoints
	Aggressive   bool      // SlimeSpike only
}

var Enemy = donburi.NewComponentType[EnemyData]()
