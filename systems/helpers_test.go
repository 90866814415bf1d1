package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/dungeon-escape/components"
	"github.com/automoto/dungeon-escape/systems/factory"
	"github.com/automoto/dungeon-escape/tags"
	"github.com/yohamta/donburi"
)

// scriptedSource replays fixed draws. Once a script runs out it returns zero.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	i := s.ints[0]
	s.ints = s.ints[1:]
	return i % n
}

func newSeededWorld(seed uint64) donburi.World {
	w := donburi.NewWorld()
	SetRandom(w, rand.New(rand.NewPCG(seed, seed*7+1)))
	return w
}

// newEmptyRoom returns a world with a collision space and no walls.
func newEmptyRoom() donburi.World {
	w := newSeededWorld(1)
	factory.CreateSpace(w)
	return w
}

func countTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func removeEnemies(w donburi.World) {
	var doomed []donburi.Entity
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, e := range doomed {
		w.Remove(e)
	}
}

func mustPlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := tags.Player.First(w)
	if !ok {
		t.Fatal("expected a player entity")
	}
	return e
}

// movePlayerTo teleports the player, keeping its hitbox object in sync.
func movePlayerTo(w donburi.World, e *donburi.Entry, x, y float64) {
	char := components.Character.Get(e)
	char.X, char.Y = x, y
	obj := components.Object.Get(e)
	obj.X = x - char.HitboxSize/2
	obj.Y = y - char.HitboxSize/2
	obj.Update()
}
