package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	hoverColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

type menuButton struct {
	label   string
	onClick func()
}

// newMenu builds a centered panel holding a heading and a column of buttons.
func newMenu(g *Game, heading *widget.Text, buttons ...menuButton) *ebitenui.UI {
	face := g.menuFace(24)

	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Hover:   imageui.NewNineSliceColor(hoverColor),
		Pressed: imageui.NewNineSliceColor(hoverColor),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: colornames.White}

	w, h := int(g.set.World.Width), int(g.set.World.Height)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w/2, h/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(heading)

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (g *Game) menuFace(size float64) ebtext.Face {
	return &ebtext.GoTextFace{Source: g.renderer.FontSource(), Size: size}
}

func newHeading(g *Game, label string) *widget.Text {
	face := g.menuFace(32)
	return widget.NewText(
		widget.TextOpts.Text(label, &face, colornames.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// NewPauseUI builds the pause menu: Resume, Restart and Quit.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenu(g, newHeading(g, "Paused"),
		menuButton{"Resume", g.resume},
		menuButton{"Restart", g.restart},
		menuButton{"Quit", g.requestQuit},
	)
}

// NewGameOverUI builds the end screen. The returned label is updated with
// the score when a run ends.
func NewGameOverUI(g *Game) (*ebitenui.UI, *widget.Text) {
	label := newHeading(g, gameOverText(0, 0))
	ui := newMenu(g, label,
		menuButton{"Play again", g.restart},
		menuButton{"Quit", g.requestQuit},
	)
	return ui, label
}

func gameOverText(score, best int) string {
	return fmt.Sprintf("Game over\nScore %d  Best %d", score, best)
}
