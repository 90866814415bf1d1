package systems

import (
	"fmt"
	"log"

	"github.com/automoto/dungeon-escape/components"
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems/factory"
	"github.com/yohamta/donburi"
)

// GetOrCreateSession returns the singleton session. A new session sits on
// the main menu.
func GetOrCreateSession(w donburi.World) *components.SessionData {
	if _, ok := components.Session.First(w); !ok {
		ent := w.Entry(w.Create(components.Session))
		components.Session.SetValue(ent, components.SessionData{
			State: cfg.GameMenu,
			Level: 1,
		})
	}

	entry, _ := components.Session.First(w)
	return components.Session.Get(entry)
}

func isPlaying(w donburi.World) bool {
	return GetOrCreateSession(w).State == cfg.GamePlaying
}

func setState(session *components.SessionData, state cfg.GameState) {
	if session.State != state {
		log.Printf("session: %s -> %s (level %d)", session.State, state, session.Level)
	}
	session.State = state
}

// UpdateSession runs one frame of the session: keyboard-driven transitions,
// then the gameplay pass while playing.
func UpdateSession(w donburi.World, dt float64) {
	session := GetOrCreateSession(w)
	pause := GetAction(w, cfg.ActionPause).JustPressed
	confirm := GetAction(w, cfg.ActionConfirm).JustPressed

	switch session.State {
	case cfg.GameMenu:
		if confirm {
			StartGame(w)
		}
	case cfg.GamePlaying:
		if pause {
			PauseGame(w)
			return
		}
		UpdatePlaying(w, dt)
	case cfg.GamePaused:
		if pause {
			ResumeGame(w)
		}
	case cfg.GameOverState, cfg.GameVictory:
		if confirm {
			ReturnToMenu(w)
		}
	}
}

// UpdatePlaying is the gameplay pass of one frame. A transition out of
// Playing ends the pass.
func UpdatePlaying(w donburi.World, dt float64) {
	session := GetOrCreateSession(w)
	if session.State != cfg.GamePlaying {
		return
	}

	session.LevelTime += dt
	UpdatePlayer(w, dt)

	UpdateEnemies(w, dt)
	if !isPlaying(w) {
		return
	}

	UpdatePickups(w)
	if !isPlaying(w) {
		return
	}

	UpdateTweens(w, dt)
}

// StartGame begins a new run on level 1 with a fresh player.
func StartGame(w donburi.World) {
	session := GetOrCreateSession(w)
	session.Level = 1
	session.LevelTime = 0
	session.LevelTimes = nil
	setState(session, cfg.GamePlaying)

	factory.RemovePlayer(w)
	GenerateLevel(w, session.Level)

	StartMusic(w)
	PlaySFX(w, cfg.SoundStart)
}

// PauseGame freezes a running level.
func PauseGame(w donburi.World) {
	session := GetOrCreateSession(w)
	if session.State == cfg.GamePlaying {
		setState(session, cfg.GamePaused)
	}
}

// ResumeGame continues a paused level.
func ResumeGame(w donburi.World) {
	session := GetOrCreateSession(w)
	if session.State == cfg.GamePaused {
		setState(session, cfg.GamePlaying)
	}
}

// QuitToMenu abandons a paused run.
func QuitToMenu(w donburi.World) {
	session := GetOrCreateSession(w)
	if session.State != cfg.GamePaused {
		return
	}
	setState(session, cfg.GameMenu)
	StopMusic(w)
}

// ReturnToMenu leaves the game over or victory screen.
func ReturnToMenu(w donburi.World) {
	session := GetOrCreateSession(w)
	if session.State != cfg.GameOverState && session.State != cfg.GameVictory {
		return
	}
	setState(session, cfg.GameMenu)
	StopMusic(w)
}

// NextLevel records the finished level time and moves on, ending the run in
// victory after the last level.
func NextLevel(w donburi.World) {
	session := GetOrCreateSession(w)
	session.LevelTimes = append(session.LevelTimes, session.LevelTime)
	session.LevelTime = 0
	session.Level++

	if session.Level > cfg.Levels.MaxLevel {
		setState(session, cfg.GameVictory)
		PlaySFX(w, cfg.SoundVictory)
		return
	}

	GenerateLevel(w, session.Level)
	PlaySFX(w, cfg.SoundNextLevel)
}

func gameOver(w donburi.World) {
	session := GetOrCreateSession(w)
	session.LevelTimes = append(session.LevelTimes, session.LevelTime)
	session.LevelTime = 0
	setState(session, cfg.GameOverState)

	StopMusic(w)
	PlaySFX(w, cfg.SoundGameOver)
}

// ToggleMusic switches the background loop on or off.
func ToggleMusic(w donburi.World) {
	audio := GetOrCreateAudio(w)
	audio.MusicEnabled = !audio.MusicEnabled
	audio.MusicWanted = audio.MusicEnabled
	PlaySFX(w, cfg.SoundToggle)
}

// ToggleSound switches sound effects on or off. The toggle sound only plays
// when effects come back on.
func ToggleSound(w donburi.World) {
	audio := GetOrCreateAudio(w)
	audio.SoundEnabled = !audio.SoundEnabled
	PlaySFX(w, cfg.SoundToggle)
}

// RequestExit asks the game loop to terminate.
func RequestExit(w donburi.World) {
	GetOrCreateSession(w).QuitRequested = true
}

// FormatRunTime renders seconds as MM:SS.ss.
func FormatRunTime(seconds float64) string {
	minutes := int(seconds / 60)
	rest := seconds - float64(minutes*60)
	return fmt.Sprintf("%02d:%05.2f", minutes, rest)
}

// AudioStatus is the menu line describing the audio toggles.
func AudioStatus(w donburi.World) string {
	audio := GetOrCreateAudio(w)
	return fmt.Sprintf("Music: %s | Sound: %s", onOff(audio.MusicEnabled), onOff(audio.SoundEnabled))
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
