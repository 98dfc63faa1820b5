package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heart-burst/internal/card"
	"github.com/iburimskiy/heart-burst/internal/config"
)

var (
	blush     = color.NRGBA{R: 0xff, G: 0xeb, B: 0xef, A: 0xff}
	lavender  = color.NRGBA{R: 0xff, G: 0xf0, B: 0xf5, A: 0xff}
	petal     = color.NRGBA{R: 0xff, G: 0xe4, B: 0xe6, A: 0xff}
	rose400   = color.NRGBA{R: 0xfb, G: 0x71, B: 0x85, A: 0xff}
	rose500   = color.NRGBA{R: 0xf4, G: 0x3f, B: 0x5e, A: 0xff}
	rose600   = color.NRGBA{R: 0xe1, G: 0x1d, B: 0x48, A: 0xff}
	rose800   = color.NRGBA{R: 0x9f, G: 0x12, B: 0x39, A: 0xff}
	pink600   = color.NRGBA{R: 0xdb, G: 0x27, B: 0x77, A: 0xff}
	slate600  = color.NRGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff}
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black     = color.NRGBA{A: 0xff}
	envelopeT = 700 * time.Millisecond
	fadeInT   = time.Second
)

var whiteSubImage *ebiten.Image

func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func envelopeRect(w, h float64) rect {
	return centeredRect(w/2, h/2, config.EnvelopeWidth, config.EnvelopeHeight)
}

func loveButtonRect(w, h float64) rect {
	return centeredRect(w*0.74, h*0.72, config.ButtonWidth, config.ButtonHeight)
}

// openedFade is the opened page's fade-in: its opacity and how far below
// its resting place it is drawn, since elapsed time since it appeared.
func openedFade(since time.Duration) (alpha, lift float64) {
	alpha = easeOut(float64(since) / float64(fadeInT))
	return alpha, 80 * (1 - alpha)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawFloaters(screen)

	switch g.card.Stage() {
	case card.Closed, card.Opening:
		g.drawEnvelope(screen)
	case card.Opened:
		g.drawOpened(screen)
	}

	if s, ok := g.burst.Surface().(*canvas); ok {
		screen.DrawImage(s.img, nil)
	}
	if g.card.GiantHeart() {
		g.drawGiantHeart(screen)
	}
	g.drawLightbox(screen)

	status := "Click the envelope to open"
	switch g.card.Stage() {
	case card.Opening:
		status = "Opening..."
	case card.Opened:
		status = "Click a photo to enlarge it, or the button to send love"
		if _, ok := g.card.ShownPhoto(); ok {
			status = "Click outside the photo to close it"
		}
	}
	if g.music.Playing() {
		status += " | P: pause music"
	} else {
		status += " | M: choose music"
	}
	status += " | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	const strip = 8
	w, h := float64(g.width), float64(g.height)
	for y := 0.0; y < h; y += strip {
		ratio := y / h
		var c color.NRGBA
		if ratio < 0.5 {
			c = lerpColor(blush, lavender, ratio*2)
		} else {
			c = lerpColor(lavender, petal, (ratio-0.5)*2)
		}
		shimmer := 3 * math.Sin(g.elapsed*0.5+ratio*math.Pi)
		c.G = uint8(math.Max(0, math.Min(255, float64(c.G)+shimmer)))
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), strip, c, false)
	}
}

func (g *Game) drawFloaters(screen *ebiten.Image) {
	for _, f := range g.floaters {
		s := f.At(g.elapsed, g.width, g.height)
		if !s.Visible {
			continue
		}
		drawHeart(screen, g.heart, s.X, s.Y, f.Size, f.Color, s.Opacity)
	}
}

func (g *Game) drawEnvelope(screen *ebiten.Image) {
	r := envelopeRect(float64(g.width), float64(g.height))

	var t float64
	if g.card.Stage() == card.Opening {
		t = easeOut(float64(g.card.SinceOpen()) / float64(envelopeT))
	}
	if t >= 1 {
		return
	}
	alpha := 1 - t
	scale := 1 + 0.1*t
	cx, cy := r.x+r.w/2, r.y+r.h/2+128*t
	r = centeredRect(cx, cy, r.w*scale, r.h*scale)

	// glow
	pulse := 0.15 + 0.05*math.Sin(g.elapsed*3)
	vector.DrawFilledRect(screen, float32(r.x-12), float32(r.y-12), float32(r.w+24), float32(r.h+24), withAlpha(rose400, pulse*alpha), true)

	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), withAlpha(rose500, alpha), true)

	// the letter slides out of the pocket as the envelope drops
	letter := centeredRect(cx, r.y+r.h-80-192*t, r.w-32, 160*scale)
	if t > 0 {
		vector.DrawFilledRect(screen, float32(letter.x), float32(letter.y), float32(letter.w), float32(letter.h), withAlpha(white, math.Min(1, t*2)), true)
		drawHeart(screen, g.heart, cx, letter.y+48, 40, rose500, 1)
		g.drawText(screen, "For You", cx, letter.y+96, 2, rose800, 1)
	}

	left, right, bottom := r.x, r.x+r.w, r.y+r.h
	fillTriangle(screen, left, bottom, left+r.w/2, r.y+r.h/2, left, r.y+r.h/2, withAlpha(rose600, alpha))
	fillTriangle(screen, right, bottom, right-r.w/2, r.y+r.h/2, right, r.y+r.h/2, withAlpha(rose600, alpha))
	fillTriangle(screen, left, bottom, right, bottom, cx, r.y+r.h/2, withAlpha(rose600, alpha))
	// flap
	fillTriangle(screen, left, r.y, right, r.y, cx, r.y+r.h*0.52, withAlpha(rose400, alpha))

	if g.card.Stage() == card.Closed {
		bounce := 6 * math.Abs(math.Sin(g.elapsed*3))
		g.drawText(screen, "Tap to open", cx, r.y+r.h+40-bounce, 1.5, rose500, 1)
	}
}

func (g *Game) drawGiantHeart(screen *ebiten.Image) {
	since := g.card.SinceOpen() - g.card.Timings().GiantHeartAt
	in := easeOut(float64(since) / float64(500*time.Millisecond))

	cx, cy := float64(g.width)/2, float64(g.height)/2-32
	size := config.GiantHeartSize * in * heartbeat(g.elapsed, g.level)
	drawHeart(screen, g.heart, cx, cy, size, rose600, 1)

	bounce := 8 * math.Abs(math.Sin(g.elapsed*4))
	g.drawText(screen, "Love You!", cx, cy+size/2+32-bounce, 4, white, in)
}

func (g *Game) drawOpened(screen *ebiten.Image) {
	alpha, lift := openedFade(g.card.SinceOpen() - g.card.Timings().OpenedAt)

	w, h := float64(g.width), float64(g.height)
	g.drawText(screen, "Happy Valentine's Day", w/2, h*0.08+lift, 4, pink600, alpha)
	g.drawText(screen, "A little collection of our memories", w/2, h*0.08+48+lift, 1.5, slate600, alpha)

	l := layoutOpened(w, h, len(g.photos), lift)
	g.drawGallery(screen, l, alpha)
	g.drawReasons(screen, lift, alpha)

	b := l.button
	g.drawText(screen, "Want to send some love? Click as much as you like!", b.x+b.w/2, b.y-40, 1.2, rose800, alpha)
	mx, my := ebiten.CursorPosition()
	fill := rose500
	if _, open := g.card.ShownPhoto(); !open && b.contains(float64(mx), float64(my)) {
		fill = pink600
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), withAlpha(fill, alpha), true)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, withAlpha(rose600, alpha), true)
	drawHeart(screen, g.heart, b.x+40, b.y+b.h/2, 32, white, alpha)
	g.drawText(screen, fmt.Sprintf("Send love (%d)", g.card.LoveCount()), b.x+b.w/2+20, b.y+b.h/2, 2, white, alpha)

	g.drawText(screen, fmt.Sprintf("Created with infinite love %d", time.Now().Year()), w/2, h-40, 1, rose400, alpha)

	for _, p := range g.card.Pops() {
		t := p.Progress()
		size := config.PopSize * (1 + 0.5*t)
		drawHeart(screen, g.heart, p.X, p.Y-config.PopRise*easeOut(t), size, rose500, 1-t)
	}
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y, scale float64, c color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, g.face, op)
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clamp01(alpha))
	return c
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, c color.NRGBA) {
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	vs := []ebiten.Vertex{
		{DstX: float32(x0), DstY: float32(y0), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x1), DstY: float32(y1), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x2), DstY: float32(y2), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
