// Package render draws the arena with ebiten and provides the visual
// template pursuers are instantiated from.
package render

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/pursuer"
)

// TintFunc picks a colour for a new sprite.
type TintFunc func() color.Color

// Template is a loaded texture pursuers are drawn with.
type Template struct {
	img  *ebiten.Image
	tint TintFunc
}

// NewTemplate wraps img. tint may be nil for untinted sprites.
func NewTemplate(img *ebiten.Image, tint TintFunc) *Template {
	return &Template{img: img, tint: tint}
}

// Footprint is the texture size.
func (t *Template) Footprint() (float64, float64) {
	if t == nil || t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Instantiate creates a sprite sharing the template texture.
func (t *Template) Instantiate() pursuer.Visual {
	s := &Sprite{Image: t.img}
	if t.tint != nil {
		s.Tint = t.tint()
	}
	return s
}

// Sprite is one pursuer's visual. The texture is shared with the template.
type Sprite struct {
	Image *ebiten.Image
	Tint  color.Color
}

// Release detaches the sprite from its texture; it draws nothing afterwards.
func (s *Sprite) Release() {
	s.Image = nil
	s.Tint = nil
}

// RandomTint returns a TintFunc choosing a random opaque colour from rng.
func RandomTint(rng *rand.Rand) TintFunc {
	return func() color.Color {
		v := rng.Uint32() & 0xffffff
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
}

// DrawCentered draws img with its centre at pos.
func DrawCentered(screen, img *ebiten.Image, pos cp.Vector, tint color.Color) {
	if screen == nil || img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Translate(pos.X, pos.Y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

// DrawPopulation draws every pursuer whose visual is a live Sprite.
func DrawPopulation(screen *ebiten.Image, pop []*pursuer.Pursuer) {
	for _, p := range pop {
		s, ok := p.Visual.(*Sprite)
		if !ok || s.Image == nil {
			continue
		}
		DrawCentered(screen, s.Image, p.Position, s.Tint)
	}
}
