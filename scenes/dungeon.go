package scenes

import (
	"image/color"
	"math/rand/v2"
	"slices"
	"sync"

	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/controls"
	"github.com/automoto/dungeon-escape/render"
	"github.com/automoto/dungeon-escape/sound"
	"github.com/automoto/dungeon-escape/systems"
	"github.com/automoto/dungeon-escape/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DungeonScene runs the whole game. Menu, play, pause and end screens are
// states of the session stored in its world.
type DungeonScene struct {
	ecs     *ecs.ECS
	menuUI  *ui.MenuUI
	pauseUI *ui.PauseUI
	once    sync.Once
}

func NewDungeonScene() *DungeonScene {
	return &DungeonScene{}
}

func (ds *DungeonScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DungeonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

// QuitRequested reports whether Exit was chosen on the main menu.
func (ds *DungeonScene) QuitRequested() bool {
	if ds.ecs == nil {
		return false
	}
	return systems.GetOrCreateSession(ds.ecs.World).QuitRequested
}

func (ds *DungeonScene) configure() {
	if err := render.LoadSprites(); err != nil {
		panic("failed to load sprites: " + err.Error())
	}

	ds.ecs = ecs.NewECS(donburi.NewWorld())
	w := ds.ecs.World
	systems.GetOrCreateSession(w)
	systems.GetOrCreateAudio(w)
	if cfg.Debug.Seed != 0 {
		systems.SetRandom(w, rand.New(rand.NewPCG(cfg.Debug.Seed, cfg.Debug.Seed)))
	}

	ds.menuUI = ui.NewMenuUI(w)
	ds.pauseUI = ui.NewPauseUI(w)

	// Input first so every later system sees this frame's keys
	ds.ecs.AddSystem(func(e *ecs.ECS) { controls.Poll(e.World) })
	ds.ecs.AddSystem(ds.updateUI)
	ds.ecs.AddSystem(toggleDebug)
	ds.ecs.AddSystem(func(e *ecs.ECS) {
		systems.UpdateSession(e.World, 1/float64(ebiten.TPS()))
	})
	// Audio runs last so this frame's requests are heard this frame
	ds.ecs.AddSystem(func(e *ecs.ECS) { sound.Update(e.World) })

	ds.ecs.AddRenderer(render.LayerDefault, inStates(render.DrawMenuBackground, cfg.GameMenu))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(ds.drawMenuUI, cfg.GameMenu))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(render.DrawLevel, cfg.GamePlaying, cfg.GamePaused))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(render.DrawHUD, cfg.GamePlaying, cfg.GamePaused))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(render.DrawDebug, cfg.GamePlaying, cfg.GamePaused))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(render.DrawBanner, cfg.GamePlaying))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(render.DrawPausePanel, cfg.GamePaused))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(ds.drawPauseUI, cfg.GamePaused))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(render.DrawGameOver, cfg.GameOverState))
	ds.ecs.AddRenderer(render.LayerDefault, inStates(render.DrawVictory, cfg.GameVictory))

	if cfg.Debug.SkipMenu {
		systems.StartGame(w)
	}
}

func (ds *DungeonScene) updateUI(e *ecs.ECS) {
	switch systems.GetOrCreateSession(e.World).State {
	case cfg.GameMenu:
		ds.menuUI.Update()
	case cfg.GamePaused:
		ds.pauseUI.Update()
	}
}

func toggleDebug(e *ecs.ECS) {
	if systems.GetAction(e.World, cfg.ActionDebug).JustPressed {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}
}

func (ds *DungeonScene) drawMenuUI(_ *ecs.ECS, screen *ebiten.Image) {
	ds.menuUI.UI.Draw(screen)
}

func (ds *DungeonScene) drawPauseUI(_ *ecs.ECS, screen *ebiten.Image) {
	ds.pauseUI.UI.Draw(screen)
}

// inStates wraps a renderer so it only draws while the session is in one of
// the given states.
func inStates(r func(*ecs.ECS, *ebiten.Image), states ...cfg.GameState) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if slices.Contains(states, systems.GetOrCreateSession(e.World).State) {
			r(e, screen)
		}
	}
}
