package systems

import (
	"math/rand/v2"

	"github.com/automoto/dungeon-escape/components"
	"github.com/yohamta/donburi"
)

// GetOrCreateRandom returns the randomness of the world. Without an injected
// source a randomly seeded PCG generator is installed.
func GetOrCreateRandom(w donburi.World) components.Source {
	if entry, ok := components.Random.First(w); ok {
		return components.Random.Get(entry).Source
	}
	SetRandom(w, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	entry, _ := components.Random.First(w)
	return components.Random.Get(entry).Source
}

// SetRandom replaces the randomness of the world.
func SetRandom(w donburi.World, src components.Source) {
	entry, ok := components.Random.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Random))
	}
	components.Random.SetValue(entry, components.RandomData{Source: src})
}

func choose[T any](rng components.Source, options []T) T {
	return options[rng.IntN(len(options))]
}
