package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/fonts"
	"github.com/automoto/dungeon-escape/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawMenuBackground fills the screen behind the main menu widgets.
func DrawMenuBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
}

// DrawPausePanel dims the frozen level and draws the panel the pause buttons
// sit on.
func DrawPausePanel(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	pw := float32(cfg.Pause.PanelWidth)
	ph := float32(cfg.Pause.PanelHeight)
	px := (width - pw) / 2
	py := (height - ph) / 2
	vector.FillRect(screen, px, py, pw, ph, cfg.Pause.PanelColor, false)
	vector.StrokeRect(screen, px, py, pw, ph, 2, cfg.Pause.BorderColor, false)

	face := fonts.Banner.Get()
	drawCenteredText(screen, cfg.Pause.Title, face, int(py)+50, cfg.Pause.TitleColor)
}

// DrawGameOver renders the game over screen with the reached level and the
// accumulated run time.
func DrawGameOver(ecs *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetOrCreateSession(ecs.World)
	drawEndScreen(screen, cfg.GameOver,
		fmt.Sprintf("You reached level %d", session.Level),
		"Total time: "+systems.FormatRunTime(session.TotalTime()),
	)
}

// DrawVictory renders the victory screen with the total run time.
func DrawVictory(ecs *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetOrCreateSession(ecs.World)
	drawEndScreen(screen, cfg.Victory,
		"You escaped the dungeon!",
		"Total time: "+systems.FormatRunTime(session.TotalTime()),
	)
}

func drawEndScreen(screen *ebiten.Image, c cfg.EndScreenConfig, lines ...string) {
	screen.Fill(c.BackgroundColor)

	drawCenteredText(screen, c.Title, fonts.Title.Get(), 180, c.TitleColor)

	body := fonts.Body.Get()
	for i, line := range lines {
		drawCenteredText(screen, line, body, 280+i*50, c.TextColor)
	}

	drawCenteredText(screen, c.Hint, fonts.Small.Get(), 480, c.HintColor)
}

func drawCenteredText(screen *ebiten.Image, s string, face font.Face, y int, col color.Color) {
	x := (cfg.C.Width - fonts.Width(face, s)) / 2
	text.Draw(screen, s, face, x, y, col)
}
