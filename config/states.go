package config

// StateID identifies a character animation state or an enemy AI state.
type StateID int

const (
	StateNone StateID = iota

	// Character animation states
	Idle
	Move

	// Enemy AI states
	StateWander       // SlimeNormal
	StatePatrol       // SlimeFire
	StatePatrolPoints // SlimeBlock
	StateErratic      // SlimeSpike
	StateChase        // Normal, Fire and Block pursuit
	StateAggressive   // SlimeSpike pursuit
)

var stateNames = map[StateID]string{
	StateNone:         "none",
	Idle:              "idle",
	Move:              "move",
	StateWander:       "wander",
	StatePatrol:       "patrol",
	StatePatrolPoints: "patrol_points",
	StateErratic:      "erratic",
	StateChase:        "chase",
	StateAggressive:   "aggressive",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// EnemyKind identifies one of the four slime archetypes.
type EnemyKind int

const (
	SlimeNormal EnemyKind = iota
	SlimeFire
	SlimeBlock
	SlimeSpike
	EnemyKindCount // Must be last - used for array sizing
)

func (k EnemyKind) String() string {
	if t, ok := Enemy.Types[k]; ok {
		return t.Name
	}
	return "unknown"
}

// GameState is the state of the session state machine.
type GameState int

const (
	GameMenu GameState = iota
	GamePlaying
	GamePaused
	GameOverState
	GameVictory
)

func (g GameState) String() string {
	switch g {
	case GameMenu:
		return "menu"
	case GamePlaying:
		return "playing"
	case GamePaused:
		return "paused"
	case GameOverState:
		return "game_over"
	case GameVictory:
		return "victory"
	}
	return "unknown"
}
