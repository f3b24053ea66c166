package ui

import (
	"image/color"

	"github.com/automoto/kokaton/assets"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleUI lays out the title heading, the instructions and the Start/Exit
// buttons.
type TitleUI struct {
	UI *ebitenui.UI

	OnStart func()
	OnExit  func()

	fullscreenLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(onStart, onExit func()) *TitleUI {
	ui := &TitleUI{
		OnStart: onStart,
		OnExit:  onExit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *TitleUI) loadFonts() {
	ui.titleFace = fonts.UIFace(48)
	ui.normalFace = fonts.UIFace(22)
	ui.smallFace = fonts.UIFace(16)
}

func (ui *TitleUI) buildUI() {
	strs := assets.Text().Title

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(strs.Heading, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Title.TextColor,
		}),
	))

	for _, line := range strs.Lines {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.normalFace, &widget.LabelColor{
				Idle: cfg.Title.TextColor,
			}),
		))
	}

	ui.fullscreenLabel = widget.NewLabel(
		widget.LabelOpts.Text(strs.Fullscreen, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{220, 230, 255, 255},
		}),
	)
	contentContainer.AddChild(ui.fullscreenLabel)

	contentContainer.AddChild(ui.buildButtons(strs.Start, strs.Exit))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) buildButtons(start, exit string) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text(start, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnStart != nil {
				ui.OnStart()
			}
		}),
	)
	container.AddChild(startButton)

	exitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(exit, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnExit != nil {
				ui.OnExit()
			}
		}),
	)
	container.AddChild(exitButton)

	return container
}

// SetFullscreen updates the fullscreen hint to the current setting.
func (ui *TitleUI) SetFullscreen(on bool) {
	if ui.fullscreenLabel == nil {
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	ui.fullscreenLabel.Label = assets.Text().Title.Fullscreen + ": " + state
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}
