package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/fonts"
	"github.com/automoto/dungeon-escape/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewDungeonScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", config.Debug.SkipMenu, "Start a run without showing the menu")
	flag.BoolVar(&config.Debug.Hitboxes, "hitboxes", config.Debug.Hitboxes, "Outline collision objects (toggle in game with F3)")
	flag.Uint64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "Dungeon seed, 0 = random")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
