package systems

import (
	"math"
	"testing"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems/factory"
)

func newSlime(t *testing.T, kind cfg.EnemyKind, x, y float64) (*components.EnemyData, *components.CharacterData) {
	t.Helper()
	w := newEmptyRoom()
	e := factory.CreateEnemy(w, kind, x, y)
	return components.Enemy.Get(e), components.Character.Get(e)
}

func approxVector(a, b components.Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestSlimeNormalChasesInRange(t *testing.T) {
	enemy, char := newSlime(t, cfg.SlimeNormal, 200, 200)
	enemy.Timer = 5

	Think(enemy, char, components.Vector{X: 200, Y: 319}, 0.016, &scriptedSource{})

	if enemy.AIState != cfg.StateChase {
		t.Errorf("expected chase, got %s", enemy.AIState)
	}
	if !approxVector(char.Direction, components.Vector{X: 0, Y: 1}) {
		t.Errorf("expected to head down, got %+v", char.Direction)
	}
}

func TestSlimeNormalWandersWhenTimerExpires(t *testing.T) {
	enemy, char := newSlime(t, cfg.SlimeNormal, 200, 200)
	enemy.Timer = 0.5
	char.Direction = components.Vector{X: 1}
	player := components.Vector{X: 600, Y: 200}
	rng := &scriptedSource{ints: []int{4}, floats: []float64{0.25}}

	Think(enemy, char, player, 0.2, rng)
	if char.Direction != (components.Vector{X: 1}) {
		t.Errorf("expected heading kept while the timer runs, got %+v", char.Direction)
	}

	Think(enemy, char, player, 0.4, rng)
	if char.Direction != (components.Vector{X: 0.7, Y: 0.7}) {
		t.Errorf("expected wander direction (0.7, 0.7), got %+v", char.Direction)
	}
	if enemy.Timer != 1.25 {
		t.Errorf("expected timer 1.25, got %f", enemy.Timer)
	}
	if enemy.AIState != cfg.StateWander {
		t.Errorf("expected wander, got %s", enemy.AIState)
	}
}

func TestSlimeNormalStaysInChaseUntilTimerExpires(t *testing.T) {
	enemy, char := newSlime(t, cfg.SlimeNormal, 200, 200)
	enemy.Timer = 1

	Think(enemy, char, components.Vector{X: 250, Y: 200}, 0.1, &scriptedSource{})
	Think(enemy, char, components.Vector{X: 600, Y: 200}, 0.1, &scriptedSource{})

	if enemy.AIState != cfg.StateChase {
		t.Errorf("expected chase to persist while the timer runs, got %s", enemy.AIState)
	}
}

func TestSlimeFirePatrolAndChase(t *testing.T) {
	enemy, char := newSlime(t, cfg.SlimeFire, 200, 200)
	rng := &scriptedSource{ints: []int{2, 0}}

	Think(enemy, char, components.Vector{X: 600, Y: 200}, 0.016, rng)
	if char.Direction != (components.Vector{X: 1, Y: -1}) {
		t.Errorf("expected patrol heading (1, -1), got %+v", char.Direction)
	}
	if enemy.Timer != cfg.Enemy.PatrolSeconds {
		t.Errorf("expected patrol timer %f, got %f", cfg.Enemy.PatrolSeconds, enemy.Timer)
	}
	if enemy.AIState != cfg.StatePatrol {
		t.Errorf("expected patrol, got %s", enemy.AIState)
	}

	Think(enemy, char, components.Vector{X: 200, Y: 10}, 0.016, rng)
	if enemy.AIState != cfg.StateChase {
		t.Errorf("expected chase at 190 px, got %s", enemy.AIState)
	}
	if !approxVector(char.Direction, components.Vector{X: 0, Y: -1}) {
		t.Errorf("expected to head up, got %+v", char.Direction)
	}
}

func TestSlimeBlockPingPongs(t *testing.T) {
	enemy, char := newSlime(t, cfg.SlimeBlock, 200, 200)
	player := components.Vector{X: 600, Y: 500}

	if enemy.PatrolPoints[0] != (components.Vector{X: 120, Y: 200}) || enemy.PatrolPoints[1] != (components.Vector{X: 280, Y: 200}) {
		t.Fatalf("unexpected patrol points %+v", enemy.PatrolPoints)
	}

	Think(enemy, char, player, 0.016, nil)
	if !approxVector(char.Direction, components.Vector{X: -1}) {
		t.Errorf("expected to head to the left point, got %+v", char.Direction)
	}

	char.X = 125
	Think(enemy, char, player, 0.016, nil)
	if enemy.Target != 1 {
		t.Errorf("expected target to switch to 1, got %d", enemy.Target)
	}
	if !approxVector(char.Direction, components.Vector{X: 1}) {
		t.Errorf("expected to head to the right point, got %+v", char.Direction)
	}
	if enemy.AIState != cfg.StatePatrolPoints {
		t.Errorf("expected patrol_points, got %s", enemy.AIState)
	}

	Think(enemy, char, components.Vector{X: 125, Y: 290}, 0.016, nil)
	if enemy.AIState != cfg.StateChase {
		t.Errorf("expected chase at 90 px, got %s", enemy.AIState)
	}
}

func TestSlimeSpikeAggressionAndErratic(t *testing.T) {
	enemy, char := newSlime(t, cfg.SlimeSpike, 200, 200)
	rng := &scriptedSource{ints: []int{0, 3}, floats: []float64{0.5}}

	Think(enemy, char, components.Vector{X: 300, Y: 200}, 0.1, rng)
	if !enemy.Aggressive || enemy.AIState != cfg.StateAggressive {
		t.Errorf("expected aggressive, got %v %s", enemy.Aggressive, enemy.AIState)
	}

	Think(enemy, char, components.Vector{X: 600, Y: 200}, 0.1, rng)
	if enemy.Aggressive || enemy.AIState != cfg.StateErratic {
		t.Errorf("expected erratic, got %v %s", enemy.Aggressive, enemy.AIState)
	}
	if char.Direction != (components.Vector{X: -1, Y: 0.7}) {
		t.Errorf("expected erratic heading (-1, 0.7), got %+v", char.Direction)
	}
	if enemy.Timer != 1.0 {
		t.Errorf("expected timer 1.0, got %f", enemy.Timer)
	}
}

func TestThinkZeroDistanceKeepsHeading(t *testing.T) {
	for _, kind := range []cfg.EnemyKind{cfg.SlimeNormal, cfg.SlimeFire, cfg.SlimeBlock, cfg.SlimeSpike} {
		enemy, char := newSlime(t, kind, 200, 200)
		enemy.Timer = 5
		char.Direction = components.Vector{X: 0, Y: 1}

		Think(enemy, char, components.Vector{X: 200, Y: 200}, 0.016, &scriptedSource{})

		if math.IsNaN(char.Direction.X) || math.IsNaN(char.Direction.Y) {
			t.Errorf("%s: direction became NaN", kind)
		}
		if char.Direction != (components.Vector{X: 0, Y: 1}) {
			t.Errorf("%s: expected heading kept, got %+v", kind, char.Direction)
		}
	}
}

func TestUpdateEnemiesDamagesPlayerOnContact(t *testing.T) {
	w := newEmptyRoom()
	GetOrCreateSession(w).State = cfg.GamePlaying
	player := factory.CreatePlayer(w, 300, 300)
	factory.CreateEnemy(w, cfg.SlimeBlock, 310, 300)

	UpdateEnemies(w, 0.016)

	if got := components.Player.Get(player).Health; got != cfg.Player.Health-1 {
		t.Errorf("expected health %d, got %d", cfg.Player.Health-1, got)
	}
}
