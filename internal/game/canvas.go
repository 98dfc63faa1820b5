package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heart-burst/internal/burst"
	"github.com/iburimskiy/heart-burst/internal/glyph"
)

const heartMaskSize = 64

// newHeartImage uploads the heart mask once; every heart on screen is a
// tinted, scaled draw of it.
func newHeartImage() *ebiten.Image {
	return ebiten.NewImageFromImage(glyph.Heart(heartMaskSize))
}

// drawHeart draws the heart image centred on (x, y).
func drawHeart(dst, heart *ebiten.Image, x, y, size float64, c color.Color, alpha float64) {
	scale := size / heartMaskSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-size/2, y-size/2)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(heart, op)
}

// canvas is the offscreen burst.Surface drawn over the card.
type canvas struct {
	img   *ebiten.Image
	heart *ebiten.Image
}

func (c *canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.img.Deallocate()
	c.img = ebiten.NewImage(w, h)
}

func (c *canvas) Clear() { c.img.Clear() }

func (c *canvas) DrawGlyph(x, y, size float64, clr color.NRGBA, alpha float64) {
	drawHeart(c.img, c.heart, x, y, size, clr, alpha)
}

func (c *canvas) Release() { c.img.Deallocate() }

type canvasAllocator struct {
	heart *ebiten.Image
}

func (a canvasAllocator) Allocate(w, h int) (burst.Surface, error) {
	if w <= 0 || h <= 0 || a.heart == nil {
		return nil, burst.ErrNoSurface
	}
	return &canvas{img: ebiten.NewImage(w, h), heart: a.heart}, nil
}
