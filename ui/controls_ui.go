package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/merlinio-playground/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI is the Start / Pause / Respawn button row.
type ControlsUI struct {
	UI *ebitenui.UI

	OnStart   func()
	OnPause   func()
	OnRespawn func()

	startBtn   *widget.Button
	pauseBtn   *widget.Button
	respawnBtn *widget.Button

	normalFace text.Face
}

func NewControlsUI(onStart, onPause, onRespawn func()) (*ControlsUI, error) {
	ui := &ControlsUI{
		OnStart:   onStart,
		OnPause:   onPause,
		OnRespawn: onRespawn,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	ui.Sync(components.RoundIdle, false)
	return ui, nil
}

func (ui *ControlsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	return nil
}

func (ui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	ui.startBtn = ui.newButton("Start", func() { call(ui.OnStart) })
	ui.pauseBtn = ui.newButton("Pause", func() { call(ui.OnPause) })
	ui.respawnBtn = ui.newButton("Respawn", func() { call(ui.OnRespawn) })
	buttons.AddChild(ui.startBtn)
	buttons.AddChild(ui.pauseBtn)
	buttons.AddChild(ui.respawnBtn)

	rootContainer.AddChild(buttons)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ControlsUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 160}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{149, 228, 228, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Sync enables the buttons that are valid in state. Respawn stays disabled
// until the end message has finished typing.
func (ui *ControlsUI) Sync(state components.RoundState, respawnAvailable bool) {
	ui.startBtn.GetWidget().Disabled = state != components.RoundIdle
	ui.pauseBtn.GetWidget().Disabled = state != components.RoundRunning && state != components.RoundPaused
	ui.respawnBtn.GetWidget().Disabled = !respawnAvailable

	label := "Pause"
	if state == components.RoundPaused {
		label = "Resume"
	}
	ui.pauseBtn.Text().Label = label
}

func (ui *ControlsUI) Update() {
	ui.UI.Update()
}

func (ui *ControlsUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
