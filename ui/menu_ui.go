package ui

import (
	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/automoto/dungeon-escape/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/yohamta/donburi"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI    *ebitenui.UI
	world donburi.World
	faces faces

	statusLabel *widget.Label
}

// NewMenuUI creates the main menu. Its buttons act directly on the session
// of w.
func NewMenuUI(w donburi.World) *MenuUI {
	mui := &MenuUI{
		world: w,
		faces: loadFaces(),
	}
	mui.buildUI()
	return mui
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := centeredColumn(cfg.Menu.ButtonSpacing, widget.NewInsetsSimple(10))

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.faces.title, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(rowItem())),
	))

	mui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text(systems.AudioStatus(mui.world), &mui.faces.small, &widget.LabelColor{
			Idle: cfg.Menu.StatusColor,
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(rowItem())),
	)
	content.AddChild(mui.statusLabel)

	buttons := []struct {
		label   string
		onClick func()
	}{
		{"Start Game", func() { systems.StartGame(mui.world) }},
		{"Toggle Music", func() { systems.ToggleMusic(mui.world) }},
		{"Toggle Sound", func() { systems.ToggleSound(mui.world) }},
		{"Exit", func() { systems.RequestExit(mui.world) }},
	}
	for _, b := range buttons {
		content.AddChild(newButton(b.label, &mui.faces.normal, cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight, b.onClick))
	}

	rootContainer.AddChild(content)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update refreshes the audio status line and processes widget input.
func (mui *MenuUI) Update() {
	mui.statusLabel.Label = systems.AudioStatus(mui.world)
	mui.UI.Update()
}
