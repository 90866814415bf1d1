package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/dungeon-escape/config"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	return faces{
		title:  &text.GoTextFace{Source: fontSource, Size: 56},
		normal: &text.GoTextFace{Source: fontSource, Size: 26},
		small:  &text.GoTextFace{Source: fontSource, Size: 20},
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    cfg.Menu.ButtonTextColor,
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}

func newButton(label string, face *text.Face, w, h int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
			rowItem(),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, face, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// centeredColumn is a vertical row layout anchored in the middle of its parent.
func centeredColumn(spacing int, padding *widget.Insets) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

// rowItem centers a child horizontally inside a vertical row layout.
func rowItem() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})
}
