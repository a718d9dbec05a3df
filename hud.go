package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pursuit/common"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const healthBarWidth = 120.0

type hud struct {
	face  ebtext.Face
	pixel *ebiten.Image
}

func newHUD() *hud {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &hud{
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
		pixel: pixel,
	}
}

func (h *hud) Draw(screen *ebiten.Image, g *Game) {
	health := g.avatar.Health
	h.text(screen, fmt.Sprintf("Health: %d", health.Current), 16, 16, colornames.White)

	frac := common.Clamp(float64(health.Current)/float64(health.Max), 0, 1)
	h.rect(screen, 16, 34, healthBarWidth, 6, colornames.Dimgray)
	h.rect(screen, 16, 34, common.Lerp(0, healthBarWidth, frac), 6, colornames.Tomato)

	h.text(screen, statusLine(g.pursuers.SpawnInterval(), g.pursuers.Len(), g.pursuers.Speed()), 16, 48, colornames.Lightgray)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    TPS: %.2f    FPS: %.2f", g.frames, ebiten.ActualTPS(), ebiten.ActualFPS()), 16, int(g.height)-24)
	}
}

func statusLine(interval time.Duration, population int, speed float64) string {
	return fmt.Sprintf("Spawn: %dms  Pursuers: %d  Speed: %.1f", interval.Milliseconds(), population, speed)
}

func (h *hud) text(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, h.face, op)
}

func (h *hud) rect(screen *ebiten.Image, x, y, w, ht float64, c color.Color) {
	if w <= 0 || ht <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, ht)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(h.pixel, op)
}
