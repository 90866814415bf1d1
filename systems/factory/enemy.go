package factory

import (
	"github.com/automoto/dungeon-escape/archetypes"
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// initialAIState is the out-of-range state each slime starts in.
var initialAIState = map[cfg.EnemyKind]cfg.StateID{
	cfg.SlimeNormal: cfg.StateWander,
	cfg.SlimeFire:   cfg.StatePatrol,
	cfg.SlimeBlock:  cfg.StatePatrolPoints,
	cfg.SlimeSpike:  cfg.StateErratic,
}

// CreateEnemy creates a slime of the given kind centered on (x, y).
func CreateEnemy(w donburi.World, kind cfg.EnemyKind, x, y float64) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[kind]
	if !exists {
		kind = cfg.SlimeNormal
		enemyType = cfg.Enemy.Types[kind]
	}

	enemy := archetypes.Enemy.Spawn(w)

	size := float64(enemyType.HitboxSize)
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Character.SetValue(enemy, components.CharacterData{
		X:          x,
		Y:          y,
		Speed:      enemyType.Speed,
		State:      cfg.Idle,
		HitboxSize: size,
	})

	enemyData := components.EnemyData{
		Kind:       kind,
		TypeConfig: &enemyType,
		AIState:    initialAIState[kind],
	}
	if kind == cfg.SlimeBlock {
		enemyData.PatrolPoints = [2]components.Vector{
			{X: x - cfg.Enemy.PatrolOffset, Y: y},
			{X: x + cfg.Enemy.PatrolOffset, Y: y},
		}
	}
	components.Enemy.SetValue(enemy, enemyData)

	components.Animation.Set(enemy, GenerateAnimations(cfg.EnemyAnimations(kind)))

	addToSpace(w, obj)

	return enemy
}
