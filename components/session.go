package components

import (
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/yohamta/donburi"
)

// SessionData stores the state of the current run (singleton component)
type SessionData struct {
	State cfg.GameState
	Level int

	// LevelTime accumulates Playing time of the level in progress.
	// LevelTimes is append-only: one entry per finished (or failed) level.
	LevelTime  float64
	LevelTimes []float64

	QuitRequested bool
}

// TotalTime returns the sum of the finished level durations.
func (s *SessionData) TotalTime() float64 {
	total := 0.0
	for _, t := range s.LevelTimes {
		total += t
	}
	return total
}

var Session = donburi.NewComponentType[SessionData]()
