package game

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	_ "golang.org/x/image/webp"

	"github.com/iburimskiy/heart-burst/internal/card"
)

// Print geometry: a photo area with a white border and a caption strip.
const (
	thumbW      = 120
	thumbH      = 90
	printBorder = 8
	captionH    = 22
	printW      = thumbW + 2*printBorder
	printH      = thumbH + printBorder + captionH
	galleryCols = 3
	galleryGap  = 16
)

// openedLayout places everything on the opened page that takes clicks.
// Draw and click share it so the hit areas follow the fade-in lift.
type openedLayout struct {
	prints []rect
	button rect
}

func layoutOpened(w, h float64, photos int, lift float64) openedLayout {
	l := openedLayout{
		button: loveButtonRect(w, h),
		prints: make([]rect, photos),
	}
	l.button.y += lift

	cols := min(photos, galleryCols)
	gridW := float64(cols)*printW + float64(max(cols-1, 0))*galleryGap
	left := w*0.3 - gridW/2
	top := h*0.22 + lift
	for i := range l.prints {
		col, row := i%galleryCols, i/galleryCols
		l.prints[i] = rect{
			x: left + float64(col)*(printW+galleryGap),
			y: top + float64(row)*(printH+galleryGap),
			w: printW,
			h: printH,
		}
	}
	return l
}

// printAt returns the index of the print under (x, y), or -1.
func (l openedLayout) printAt(x, y float64) int {
	for i, r := range l.prints {
		if r.contains(x, y) {
			return i
		}
	}
	return -1
}

// lightboxRect fits an iw×ih photo into most of the viewport, keeping its
// aspect ratio. Zero sizes fall back to 4:3.
func lightboxRect(w, h, iw, ih float64) rect {
	if iw <= 0 || ih <= 0 {
		iw, ih = 4, 3
	}
	scale := math.Min(w*0.8/iw, (h*0.8-2*captionH)/ih)
	return centeredRect(w/2, h/2-captionH, iw*scale, ih*scale)
}

// loadPhotos decodes the gallery images. Photos without a path, or whose
// file cannot be decoded, get a nil image and draw as placeholders.
func loadPhotos(photos []card.Photo) []*ebiten.Image {
	out := make([]*ebiten.Image, len(photos))
	for i, p := range photos {
		if p.Path == "" {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(p.Path)
		if err != nil {
			log.Printf("game: photo %q: %v", p.Path, err)
			continue
		}
		out[i] = img
	}
	return out
}

// newPrint renders a photo, or a heart placeholder, into a bordered print
// with its caption.
func (g *Game) newPrint(photo *ebiten.Image, caption string) *ebiten.Image {
	dst := ebiten.NewImage(printW, printH)
	dst.Fill(white)
	g.drawPhoto(dst, photo, rect{x: printBorder, y: printBorder, w: thumbW, h: thumbH})
	g.drawText(dst, caption, printW/2, printBorder+thumbH+captionH/2, 1, slate600, 1)
	return dst
}

// drawPhoto draws photo scaled to cover r, cropping the overflow.
func (g *Game) drawPhoto(dst, photo *ebiten.Image, r rect) {
	if photo == nil {
		vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), petal, false)
		drawHeart(dst, g.heart, r.x+r.w/2, r.y+r.h/2, math.Min(r.w, r.h)*0.5, rose400, 1)
		return
	}
	b := photo.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	scale := math.Max(r.w/iw, r.h/ih)
	cw, ch := int(r.w/scale), int(r.h/scale)
	cx, cy := b.Min.X+(b.Dx()-cw)/2, b.Min.Y+(b.Dy()-ch)/2
	crop := photo.SubImage(image.Rect(cx, cy, cx+cw, cy+ch)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.x, r.y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(crop, op)
}

func (g *Game) drawGallery(screen *ebiten.Image, l openedLayout, alpha float64) {
	if g.prints == nil {
		g.prints = make([]*ebiten.Image, len(g.photos))
		for i, p := range g.photos {
			g.prints[i] = g.newPrint(g.photoImages[i], p.Caption)
		}
	}

	mx, my := ebiten.CursorPosition()
	hover := -1
	if _, open := g.card.ShownPhoto(); !open {
		hover = l.printAt(float64(mx), float64(my))
	}
	for i, r := range l.prints {
		tilt, scale := g.photos[i].Tilt, 1.0
		if i == hover {
			tilt, scale = 0, 1.05
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-printW/2, -printH/2)
		op.GeoM.Rotate(tilt * math.Pi / 180)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(r.x+r.w/2, r.y+r.h/2)
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.prints[i], op)
	}
}

func (g *Game) drawLightbox(screen *ebiten.Image) {
	i, ok := g.card.ShownPhoto()
	if !ok {
		return
	}
	w, h := float64(g.width), float64(g.height)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), withAlpha(black, 0.8), false)

	r := g.lightboxRect(i)
	g.drawPhoto(screen, g.photoImages[i], r)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 4, white, true)
	g.drawText(screen, g.photos[i].Caption, w/2, r.y+r.h+captionH+8, 2, white, 1)
	g.drawText(screen, "Click outside the photo or press Esc to close", w/2, h-24, 1, white, 0.7)
}

func (g *Game) drawReasons(screen *ebiten.Image, lift, alpha float64) {
	if len(g.reasons) == 0 {
		return
	}
	w, h := float64(g.width), float64(g.height)
	x, y := w*0.74, h*0.22+lift
	g.drawText(screen, "Why I Love You", x, y, 2, rose600, alpha)
	for i, reason := range g.reasons {
		ry := y + 40 + float64(i)*28
		tw, _ := text.Measure(reason, g.face, 0)
		tw *= 1.2
		drawHeart(screen, g.heart, x-tw/2-14, ry, 14, rose500, alpha)
		g.drawText(screen, reason, x, ry, 1.2, slate600, alpha)
	}
}
