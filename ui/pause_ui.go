package ui

import (
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/yohamta/donburi"
)

// PauseUI holds the Resume and Quit buttons shown on the pause panel.
// The panel and its title are drawn underneath by the renderer.
type PauseUI struct {
	UI    *ebitenui.UI
	faces faces
}

func NewPauseUI(w donburi.World) *PauseUI {
	pui := &PauseUI{faces: loadFaces()}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Leaves room for the panel title above the buttons.
	content := centeredColumn(10, &widget.Insets{Top: 60})
	content.AddChild(newButton("Resume", &pui.faces.normal, cfg.Pause.ButtonWidth, cfg.Pause.ButtonHeight, func() {
		systems.ResumeGame(w)
	}))
	content.AddChild(newButton("Quit to Menu", &pui.faces.normal, cfg.Pause.ButtonWidth, cfg.Pause.ButtonHeight, func() {
		systems.QuitToMenu(w)
	}))
	rootContainer.AddChild(content)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	return pui
}

func (pui *PauseUI) Update() {
	pui.UI.Update()
}
