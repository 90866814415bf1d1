package systems

import (
	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs one frame of every slime: think, move, animate, then
// damage the player on contact. It stops early once a hit ends the run.
func UpdateEnemies(w donburi.World, dt float64) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerChar := components.Character.Get(playerEntry)
	rng := GetOrCreateRandom(w)

	// Singletons touched by a hit must exist before iterating.
	GetOrCreateSession(w)
	GetOrCreateAudio(w)

	stopped := false
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if stopped {
			return
		}

		enemy := components.Enemy.Get(e)
		char := components.Character.Get(e)

		Think(enemy, char, playerChar.Position(), dt, rng)
		Move(w, e, dt)
		animate(e, dt)

		if Hitbox(char).Overlaps(Hitbox(playerChar)) {
			DamagePlayer(w, playerEntry)
			stopped = !isPlaying(w)
		}
	})
}

// Think sets the direction of a slime for this frame from its kind, its
// timers and the player position.
func Think(enemy *components.EnemyData, char *components.CharacterData, player components.Vector, dt float64, rng components.Source) {
	switch enemy.Kind {
	case cfg.SlimeNormal:
		thinkNormal(enemy, char, player, dt, rng)
	case cfg.SlimeFire:
		thinkFire(enemy, char, player, dt, rng)
	case cfg.SlimeBlock:
		thinkBlock(enemy, char, player)
	case cfg.SlimeSpike:
		thinkSpike(enemy, char, player, dt, rng)
	}
}

// initEnemyAI gives a freshly spawned slime its first heading.
func initEnemyAI(enemy *components.EnemyData, char *components.CharacterData, rng components.Source) {
	if enemy.Kind == cfg.SlimeNormal {
		wander(enemy, char, rng)
	}
}

func detectRange(enemy *components.EnemyData) float64 {
	if enemy.TypeConfig != nil {
		return enemy.TypeConfig.DetectRange
	}
	return cfg.Enemy.Types[enemy.Kind].DetectRange
}

// chase points the slime straight at the player. A slime sitting exactly on
// the player keeps its previous heading.
func chase(char *components.CharacterData, player components.Vector) {
	if dir, ok := directionTo(char.Position(), player); ok {
		char.Direction = dir
	}
}

func thinkNormal(enemy *components.EnemyData, char *components.CharacterData, player components.Vector, dt float64, rng components.Source) {
	enemy.Timer -= dt

	if Distance(char.Position(), player) < detectRange(enemy) {
		enemy.AIState = cfg.StateChase
		chase(char, player)
	} else if enemy.Timer <= 0 {
		wander(enemy, char, rng)
	}
}

func wander(enemy *components.EnemyData, char *components.CharacterData, rng components.Source) {
	d := choose(rng, cfg.Enemy.WanderDirections)
	char.Direction = components.Vector{X: d[0], Y: d[1]}
	enemy.Timer = cfg.Enemy.WanderMinSeconds + rng.Float64()*cfg.Enemy.WanderJitter
	enemy.AIState = cfg.StateWander
}

func thinkFire(enemy *components.EnemyData, char *components.CharacterData, player components.Vector, dt float64, rng components.Source) {
	if Distance(char.Position(), player) < detectRange(enemy) {
		enemy.AIState = cfg.StateChase
		chase(char, player)
		return
	}

	enemy.AIState = cfg.StatePatrol
	enemy.Timer -= dt
	if enemy.Timer <= 0 {
		char.Direction = components.Vector{
			X: choose(rng, cfg.Enemy.PatrolSteps),
			Y: choose(rng, cfg.Enemy.PatrolSteps),
		}
		enemy.Timer = cfg.Enemy.PatrolSeconds
	}
}

func thinkBlock(enemy *components.EnemyData, char *components.CharacterData, player components.Vector) {
	if Distance(char.Position(), player) < detectRange(enemy) {
		enemy.AIState = cfg.StateChase
		chase(char, player)
		return
	}

	enemy.AIState = cfg.StatePatrolPoints
	target := enemy.PatrolPoints[enemy.Target]
	if Distance(char.Position(), target) < cfg.Enemy.ArriveDistance {
		enemy.Target = (enemy.Target + 1) % len(enemy.PatrolPoints)
		target = enemy.PatrolPoints[enemy.Target]
	}

	if dir, ok := directionTo(char.Position(), target); ok {
		char.Direction = dir
	}
}

func thinkSpike(enemy *components.EnemyData, char *components.CharacterData, player components.Vector, dt float64, rng components.Source) {
	enemy.Timer -= dt

	if Distance(char.Position(), player) < detectRange(enemy) {
		enemy.Aggressive = true
		enemy.AIState = cfg.StateAggressive
		chase(char, player)
	} else if enemy.Timer <= 0 {
		char.Direction = components.Vector{
			X: choose(rng, cfg.Enemy.ErraticSteps),
			Y: choose(rng, cfg.Enemy.ErraticSteps),
		}
		enemy.Timer = cfg.Enemy.ErraticMinSeconds + rng.Float64()*cfg.Enemy.ErraticJitter
		enemy.Aggressive = false
		enemy.AIState = cfg.StateErratic
	}
}
