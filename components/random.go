package components

import (
	"github.com/yohamta/donburi"
)

// Source is the randomness used by level generation and enemy AI.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type RandomData struct {
	Source
}

var Random = donburi.NewComponentType[RandomData]()
