package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/pursuer"
	"golang.org/x/image/font/basicfont"
)

const (
	intervalStep     = 100 * time.Millisecond
	panelMinInterval = 100.0
	panelMaxInterval = 10000.0
)

var textColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewPauseUI builds the pause panel: spawn interval tuning, Resume and Quit.
// It returns the label showing the current interval so the game can refresh it.
func NewPauseUI(g *Game) (*ebitenui.UI, *widget.Text) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}

	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Left: 12, Right: 12, Top: 4, Bottom: 4}),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, textColor),
		widget.TextOpts.WidgetOpts(center),
	)

	intervalLabel := widget.NewText(
		widget.TextOpts.Text(intervalText(g.pursuers.SpawnInterval()), &face, textColor),
		widget.TextOpts.WidgetOpts(center),
	)

	intervalRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(center),
	)
	intervalRow.AddChild(button("-", func() { g.nudgeInterval(-intervalStep) }))
	intervalRow.AddChild(intervalLabel)
	intervalRow.AddChild(button("+", func() { g.nudgeInterval(intervalStep) }))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(intervalRow)
	panel.AddChild(button("Resume", func() { g.setPaused(false) }))
	panel.AddChild(button("Quit", func() { g.quit = true }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, intervalLabel
}

// nudgeInterval moves the spawn interval by delta within the panel's range.
// While paused the new value is kept and used when spawning resumes.
func (g *Game) nudgeInterval(delta time.Duration) {
	if d, ok := pursuer.IntervalFromMillis(nudgeMillis(g.pursuers.SpawnInterval(), delta)); ok {
		g.pursuers.SetSpawnInterval(d)
	}
	g.refreshPanel()
}

// nudgeMillis applies delta to cur in milliseconds. It clamps only on the side
// being nudged, so a value already outside the panel's range never jumps.
func nudgeMillis(cur, delta time.Duration) float64 {
	ms := float64(cur) / float64(time.Millisecond)
	next := ms + float64(delta)/float64(time.Millisecond)
	if delta < 0 {
		return math.Max(next, math.Min(ms, panelMinInterval))
	}
	return math.Min(next, math.Max(ms, panelMaxInterval))
}

func (g *Game) refreshPanel() {
	if g.intervalLabel == nil {
		return
	}
	g.intervalLabel.Label = intervalText(g.pursuers.SpawnInterval())
}

func intervalText(d time.Duration) string {
	return fmt.Sprintf("Spawn every %dms", d.Milliseconds())
}
